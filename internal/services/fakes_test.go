package services_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"culturehub/internal/models/db_models"
	"culturehub/internal/services"
	"culturehub/pkg/utils"
)

// fakeAccountRepo implements repositories.AccountRepository in memory.
type fakeAccountRepo struct {
	accounts    map[uuid.UUID]*db_models.Account
	top         []db_models.Account
	history     []db_models.QuizHistoryEntry
	recordCalls int
	failRecord  bool
	failFind    bool
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[uuid.UUID]*db_models.Account{}}
}

func (f *fakeAccountRepo) addAccount(name string) *db_models.Account {
	account := &db_models.Account{Name: name, Role: db_models.RoleUser}
	account.ID = uuid.New()
	f.accounts[account.ID] = account
	return account
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, _ context.Context) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return f.accounts[parsed], nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindTopByScore(_ context.Context, limit int) ([]db_models.Account, error) {
	if f.failFind {
		return nil, utils.ErrDatabaseError
	}
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

func (f *fakeAccountRepo) FindHistory(_ context.Context, accountID uuid.UUID) ([]db_models.QuizHistoryEntry, error) {
	var entries []db_models.QuizHistoryEntry
	for _, e := range f.history {
		if e.AccountID == accountID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (f *fakeAccountRepo) FindHistoryEntry(_ context.Context, accountID, quizID uuid.UUID) (*db_models.QuizHistoryEntry, error) {
	for i := range f.history {
		if f.history[i].AccountID == accountID && f.history[i].QuizID == quizID {
			return &f.history[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) RecordQuizResult(_ context.Context, accountID, quizID uuid.UUID, score, totalQuestions, points int) error {
	if f.failRecord {
		return utils.ErrDatabaseError
	}
	for _, e := range f.history {
		if e.AccountID == accountID && e.QuizID == quizID {
			return utils.ErrAlreadyAttempted
		}
	}
	f.recordCalls++
	if account, ok := f.accounts[accountID]; ok {
		account.Score += points
	}
	f.history = append(f.history, db_models.QuizHistoryEntry{
		AccountID:      accountID,
		QuizID:         quizID,
		Score:          score,
		TotalQuestions: totalQuestions,
		TakenAt:        time.Now().Unix(),
	})
	return nil
}

// fakeQuizRepo implements repositories.QuizRepository in memory.
type fakeQuizRepo struct {
	quizzes     map[string]*db_models.Quiz
	insertCalls int
	failWrites  bool
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: map[string]*db_models.Quiz{}}
}

func (f *fakeQuizRepo) Insert(_ context.Context, quiz *db_models.Quiz) error {
	if f.failWrites {
		return utils.ErrDatabaseError
	}
	if quiz.ID == uuid.Nil {
		quiz.ID = uuid.New()
	}
	f.insertCalls++
	f.quizzes[quiz.ID.String()] = quiz
	return nil
}

func (f *fakeQuizRepo) Replace(_ context.Context, quiz *db_models.Quiz) error {
	if f.failWrites {
		return utils.ErrDatabaseError
	}
	f.quizzes[quiz.ID.String()] = quiz
	return nil
}

func (f *fakeQuizRepo) FindById(_ context.Context, id string) (*db_models.Quiz, error) {
	return f.quizzes[id], nil
}

func (f *fakeQuizRepo) FindAll(_ context.Context) ([]db_models.Quiz, error) {
	var all []db_models.Quiz
	for _, quiz := range f.quizzes {
		all = append(all, *quiz)
	}
	return all, nil
}

func (f *fakeQuizRepo) Delete(_ context.Context, id string) error {
	delete(f.quizzes, id)
	return nil
}

// threeQuestionQuiz builds a multiple-choice quiz with correct answers
// A, B, C.
func threeQuestionQuiz(repo *fakeQuizRepo) *db_models.Quiz {
	quiz := &db_models.Quiz{
		Title:       "Nigerian History",
		Description: "Test your knowledge",
	}
	quiz.ID = uuid.New()
	for i, correct := range []string{"A", "B", "C"} {
		question := db_models.Question{
			Position:      i,
			Text:          "Pick the right letter",
			Type:          db_models.QuestionTypeMultipleChoice,
			Options:       []string{"A", "B", "C", "X"},
			CorrectAnswer: correct,
		}
		question.ID = uuid.New()
		quiz.Questions = append(quiz.Questions, question)
	}
	repo.quizzes[quiz.ID.String()] = quiz
	return quiz
}

var _ services.AttemptStore = (*storeSpy)(nil)

// storeSpy wraps a plain map so tests can inspect stored machines.
type storeSpy struct {
	machines map[string]*services.AttemptMachine
}

func newStoreSpy() *storeSpy {
	return &storeSpy{machines: map[string]*services.AttemptMachine{}}
}

func (s *storeSpy) Get(userID, quizID string) (*services.AttemptMachine, bool) {
	m, ok := s.machines[userID+"/"+quizID]
	return m, ok
}

func (s *storeSpy) Put(userID, quizID string, m *services.AttemptMachine, _ time.Duration) {
	s.machines[userID+"/"+quizID] = m
}

func (s *storeSpy) Delete(userID, quizID string) {
	delete(s.machines, userID+"/"+quizID)
}
