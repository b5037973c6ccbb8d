package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"culturehub/internal/grading"
	"culturehub/internal/models/db_models"
	"culturehub/internal/models/response_models"
	"culturehub/internal/repositories"
	"culturehub/pkg/utils"
)

const pointsPerCorrectAnswer = 10

// AttemptStore parks in-flight attempt machines between requests. The
// in-memory implementation lives in pkg/memcache.
type AttemptStore interface {
	Get(userID, quizID string) (*AttemptMachine, bool)
	Put(userID, quizID string, m *AttemptMachine, ttl time.Duration)
	Delete(userID, quizID string)
}

type AttemptServiceInterface interface {
	Start(ctx context.Context, userID, quizID string) (*response_models.AttemptState, error)
	SubmitAnswer(ctx context.Context, userID, quizID, answer string) (*response_models.AnswerOutcome, error)
	Advance(ctx context.Context, userID, quizID string) (*response_models.AttemptState, error)
	Restart(ctx context.Context, userID, quizID string) (*response_models.AttemptState, error)
}

type AttemptService struct {
	accountRepo repositories.AccountRepository
	quizRepo    repositories.QuizRepository
	store       AttemptStore
	engine      *grading.Engine
	attemptTTL  time.Duration
}

func NewAttemptService(
	accountRepo repositories.AccountRepository,
	quizRepo repositories.QuizRepository,
	store AttemptStore,
	engine *grading.Engine,
) AttemptServiceInterface {
	return &AttemptService{
		accountRepo: accountRepo,
		quizRepo:    quizRepo,
		store:       store,
		engine:      engine,
		attemptTTL:  2 * time.Hour,
	}
}

// Start opens an attempt. A user with a recorded history entry for the quiz
// is not allowed to replay: the attempt resolves immediately to finished,
// showing the historical score. Otherwise a fresh machine replaces whatever
// unfinished attempt may have been parked, so restarting always begins at
// question 0.
func (s *AttemptService) Start(ctx context.Context, userID, quizID string) (*response_models.AttemptState, error) {
	quiz, userUUID, err := s.loadQuizAndUser(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	entry, err := s.accountRepo.FindHistoryEntry(ctx, userUUID, quiz.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if entry != nil {
		return replayedState(quiz, entry), nil
	}

	machine := NewAttemptMachine(quizID, userID, len(quiz.Questions))
	s.store.Put(userID, quizID, machine, s.attemptTTL)

	state := s.stateOf(machine, quiz, false)
	return &state, nil
}

// SubmitAnswer grades the current question and applies the result to the
// machine. A second submission for the same question is a no-op: the first
// grade stands and is simply echoed back.
func (s *AttemptService) SubmitAnswer(ctx context.Context, userID, quizID, answer string) (*response_models.AnswerOutcome, error) {
	machine, ok := s.store.Get(userID, quizID)
	if !ok {
		return nil, utils.ErrAttemptNotFound
	}
	if machine.Finished {
		return nil, utils.ErrAlreadyAttempted
	}

	quiz, _, err := s.loadQuizAndUser(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}
	if machine.Index >= len(quiz.Questions) {
		return nil, utils.ErrAttemptNotFound
	}
	question := quiz.Questions[machine.Index]

	graded := answer
	if machine.Answered {
		graded = machine.SelectedAnswer
	}
	correct, err := s.engine.Grade(question, graded)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if machine.Submit(correct, answer) {
		s.store.Put(userID, quizID, machine, s.attemptTTL)
	}

	return &response_models.AnswerOutcome{
		Correct:        correct,
		CorrectAnswers: grading.AnswerKey(question),
		State:          s.stateOf(machine, quiz, false),
	}, nil
}

// Advance moves past an answered question. When it was the last one the
// attempt finishes and the result is recorded exactly once; a persistence
// failure keeps the finished local state and is surfaced as save_failed
// rather than rolling the attempt back.
func (s *AttemptService) Advance(ctx context.Context, userID, quizID string) (*response_models.AttemptState, error) {
	machine, ok := s.store.Get(userID, quizID)
	if !ok {
		return nil, utils.ErrAttemptNotFound
	}

	quiz, userUUID, err := s.loadQuizAndUser(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	finished, applied := machine.Advance()
	if !applied {
		if machine.Finished {
			return nil, utils.ErrAlreadyAttempted
		}
		return nil, utils.ErrAnswerRequired
	}

	saveFailed := false
	if finished {
		points := machine.Score * pointsPerCorrectAnswer
		err := s.accountRepo.RecordQuizResult(ctx, userUUID, quiz.ID, machine.Score, machine.TotalQuestions, points)
		switch {
		case err == nil:
		case errors.Is(err, utils.ErrAlreadyAttempted):
			// A concurrent session got there first; the score on record wins
			// and this one is not counted again.
		default:
			log.Printf("recording quiz result failed for user %s quiz %s: %v", userID, quizID, err)
			saveFailed = true
		}
		s.store.Delete(userID, quizID)
	} else {
		s.store.Put(userID, quizID, machine, s.attemptTTL)
	}

	state := s.stateOf(machine, quiz, saveFailed)
	return &state, nil
}

// Restart resets local progress. Once a result is on record the restart is
// rejected: each quiz can only be taken once.
func (s *AttemptService) Restart(ctx context.Context, userID, quizID string) (*response_models.AttemptState, error) {
	quiz, userUUID, err := s.loadQuizAndUser(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	entry, err := s.accountRepo.FindHistoryEntry(ctx, userUUID, quiz.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if entry != nil {
		return nil, utils.ErrAlreadyAttempted
	}

	machine, ok := s.store.Get(userID, quizID)
	if !ok {
		machine = NewAttemptMachine(quizID, userID, len(quiz.Questions))
	} else {
		machine.Restart()
	}
	s.store.Put(userID, quizID, machine, s.attemptTTL)

	state := s.stateOf(machine, quiz, false)
	return &state, nil
}

func (s *AttemptService) loadQuizAndUser(ctx context.Context, userID, quizID string) (*db_models.Quiz, uuid.UUID, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, uuid.Nil, utils.ErrAccountNotFound
	}
	quiz, err := s.quizRepo.FindById(ctx, quizID)
	if err != nil {
		return nil, uuid.Nil, utils.ErrDatabaseError
	}
	if quiz == nil || len(quiz.Questions) == 0 {
		return nil, uuid.Nil, utils.ErrQuizNotFound
	}
	return quiz, userUUID, nil
}

func (s *AttemptService) stateOf(machine *AttemptMachine, quiz *db_models.Quiz, saveFailed bool) response_models.AttemptState {
	state := response_models.AttemptState{
		QuizID:         machine.QuizID,
		CurrentIndex:   machine.Index,
		TotalQuestions: machine.TotalQuestions,
		Score:          machine.Score,
		Answered:       machine.Answered,
		SelectedAnswer: machine.SelectedAnswer,
		Finished:       machine.Finished,
		SaveFailed:     saveFailed,
	}
	if machine.Finished {
		state.Percent = machine.Percent()
	} else if machine.Index < len(quiz.Questions) {
		view := questionView(quiz.Questions[machine.Index])
		state.Question = &view
	}
	return state
}

func replayedState(quiz *db_models.Quiz, entry *db_models.QuizHistoryEntry) *response_models.AttemptState {
	m := AttemptMachine{Score: entry.Score, TotalQuestions: entry.TotalQuestions}
	return &response_models.AttemptState{
		QuizID:         quiz.ID.String(),
		TotalQuestions: entry.TotalQuestions,
		Score:          entry.Score,
		Finished:       true,
		Replayed:       true,
		Percent:        m.Percent(),
	}
}
