package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"culturehub/internal/grading"
	"culturehub/internal/models/db_models"
	"culturehub/internal/services"
	"culturehub/pkg/utils"
)

func newAttemptFixture() (services.AttemptServiceInterface, *fakeAccountRepo, *fakeQuizRepo, *storeSpy) {
	accounts := newFakeAccountRepo()
	quizzes := newFakeQuizRepo()
	store := newStoreSpy()
	service := services.NewAttemptService(accounts, quizzes, store, grading.NewEngine())
	return service, accounts, quizzes, store
}

func TestStartOpensAtQuestionZero(t *testing.T) {
	service, accounts, quizzes, _ := newAttemptFixture()
	user := accounts.addAccount("ade")
	quiz := threeQuestionQuiz(quizzes)

	state, err := service.Start(context.Background(), user.ID.String(), quiz.ID.String())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if state.CurrentIndex != 0 || state.Finished || state.Answered {
		t.Fatalf("unexpected initial state: %+v", state)
	}
	if state.TotalQuestions != 3 {
		t.Fatalf("total questions = %d, want 3", state.TotalQuestions)
	}
	if state.Question == nil || state.Question.Text == "" {
		t.Fatal("initial state should carry the first question")
	}
}

func TestStartUnknownQuiz(t *testing.T) {
	service, accounts, _, _ := newAttemptFixture()
	user := accounts.addAccount("ade")

	_, err := service.Start(context.Background(), user.ID.String(), "b7f3a9e0-0000-0000-0000-000000000000")
	if !errors.Is(err, utils.ErrQuizNotFound) {
		t.Fatalf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestFullRunRecordsResultOnce(t *testing.T) {
	service, accounts, quizzes, store := newAttemptFixture()
	user := accounts.addAccount("ade")
	quiz := threeQuestionQuiz(quizzes)
	ctx := context.Background()

	if _, err := service.Start(ctx, user.ID.String(), quiz.ID.String()); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Answers A (correct), X (wrong), C (correct).
	for _, answer := range []string{"A", "X"} {
		if _, err := service.SubmitAnswer(ctx, user.ID.String(), quiz.ID.String(), answer); err != nil {
			t.Fatalf("submit %q: %v", answer, err)
		}
		if _, err := service.Advance(ctx, user.ID.String(), quiz.ID.String()); err != nil {
			t.Fatalf("advance after %q: %v", answer, err)
		}
	}
	outcome, err := service.SubmitAnswer(ctx, user.ID.String(), quiz.ID.String(), "C")
	if err != nil {
		t.Fatalf("submit C: %v", err)
	}
	if !outcome.Correct {
		t.Fatal("C should grade correct")
	}

	state, err := service.Advance(ctx, user.ID.String(), quiz.ID.String())
	if err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if !state.Finished {
		t.Fatal("attempt should be finished")
	}
	if state.Score != 2 {
		t.Fatalf("score = %d, want 2", state.Score)
	}
	if state.Percent != 67 {
		t.Fatalf("percent = %d, want 67", state.Percent)
	}
	if state.SaveFailed {
		t.Fatal("save should have succeeded")
	}

	if accounts.recordCalls != 1 {
		t.Fatalf("record calls = %d, want 1", accounts.recordCalls)
	}
	if got := accounts.accounts[user.ID].Score; got != 20 {
		t.Fatalf("account score = %d, want 20 (2 correct x 10 points)", got)
	}
	if len(accounts.history) != 1 {
		t.Fatalf("history entries = %d, want 1", len(accounts.history))
	}
	entry := accounts.history[0]
	if entry.Score != 2 || entry.TotalQuestions != 3 {
		t.Fatalf("history entry = %+v, want score 2 of 3", entry)
	}
	if _, ok := store.Get(user.ID.String(), quiz.ID.String()); ok {
		t.Fatal("finished attempt should be dropped from the store")
	}
}

func TestSubmitTwiceKeepsFirstGrade(t *testing.T) {
	service, accounts, quizzes, _ := newAttemptFixture()
	user := accounts.addAccount("ade")
	quiz := threeQuestionQuiz(quizzes)
	ctx := context.Background()

	service.Start(ctx, user.ID.String(), quiz.ID.String())

	first, err := service.SubmitAnswer(ctx, user.ID.String(), quiz.ID.String(), "A")
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := service.SubmitAnswer(ctx, user.ID.String(), quiz.ID.String(), "X")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if !first.Correct || !second.Correct {
		t.Fatalf("second submission should echo the first grade: first=%v second=%v", first.Correct, second.Correct)
	}
	if second.State.Score != 1 {
		t.Fatalf("score = %d, want 1 (no double counting)", second.State.Score)
	}
	if second.State.SelectedAnswer != "A" {
		t.Fatalf("selected answer = %q, want the first answer kept", second.State.SelectedAnswer)
	}
}

func TestAdvanceWithoutAnswerRejected(t *testing.T) {
	service, accounts, quizzes, _ := newAttemptFixture()
	user := accounts.addAccount("ade")
	quiz := threeQuestionQuiz(quizzes)
	ctx := context.Background()

	service.Start(ctx, user.ID.String(), quiz.ID.String())

	_, err := service.Advance(ctx, user.ID.String(), quiz.ID.String())
	if !errors.Is(err, utils.ErrAnswerRequired) {
		t.Fatalf("err = %v, want ErrAnswerRequired", err)
	}
	if accounts.recordCalls != 0 {
		t.Fatal("nothing should have been recorded")
	}
}

func TestStartAfterRecordedResultReplays(t *testing.T) {
	service, accounts, quizzes, store := newAttemptFixture()
	user := accounts.addAccount("ade")
	quiz := threeQuestionQuiz(quizzes)
	ctx := context.Background()

	if err := accounts.RecordQuizResult(ctx, user.ID, quiz.ID, 3, 3, 30); err != nil {
		t.Fatalf("seed history: %v", err)
	}
	accounts.recordCalls = 0

	state, err := service.Start(ctx, user.ID.String(), quiz.ID.String())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !state.Finished || !state.Replayed {
		t.Fatalf("state should resolve to a finished replay, got %+v", state)
	}
	if state.Score != 3 || state.Percent != 100 {
		t.Fatalf("replay should show the historical result, got score=%d percent=%d", state.Score, state.Percent)
	}
	if _, ok := store.Get(user.ID.String(), quiz.ID.String()); ok {
		t.Fatal("no machine should be parked for a replayed attempt")
	}
	if accounts.recordCalls != 0 {
		t.Fatal("replay must not record anything")
	}
}

func TestRestartBeforeRecordResets(t *testing.T) {
	service, accounts, quizzes, _ := newAttemptFixture()
	user := accounts.addAccount("ade")
	quiz := threeQuestionQuiz(quizzes)
	ctx := context.Background()

	service.Start(ctx, user.ID.String(), quiz.ID.String())
	service.SubmitAnswer(ctx, user.ID.String(), quiz.ID.String(), "A")
	service.Advance(ctx, user.ID.String(), quiz.ID.String())

	state, err := service.Restart(ctx, user.ID.String(), quiz.ID.String())
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if state.CurrentIndex != 0 || state.Score != 0 || state.Answered {
		t.Fatalf("restart should reset progress, got %+v", state)
	}
}

func TestRestartAfterRecordRejected(t *testing.T) {
	service, accounts, quizzes, _ := newAttemptFixture()
	user := accounts.addAccount("ade")
	quiz := threeQuestionQuiz(quizzes)
	ctx := context.Background()

	if err := accounts.RecordQuizResult(ctx, user.ID, quiz.ID, 2, 3, 20); err != nil {
		t.Fatalf("seed history: %v", err)
	}

	_, err := service.Restart(ctx, user.ID.String(), quiz.ID.String())
	if !errors.Is(err, utils.ErrAlreadyAttempted) {
		t.Fatalf("err = %v, want ErrAlreadyAttempted", err)
	}
}

func TestSaveFailureKeepsFinishedState(t *testing.T) {
	service, accounts, quizzes, _ := newAttemptFixture()
	user := accounts.addAccount("ade")
	quiz := threeQuestionQuiz(quizzes)
	ctx := context.Background()

	service.Start(ctx, user.ID.String(), quiz.ID.String())
	for _, answer := range []string{"A", "B"} {
		service.SubmitAnswer(ctx, user.ID.String(), quiz.ID.String(), answer)
		service.Advance(ctx, user.ID.String(), quiz.ID.String())
	}
	service.SubmitAnswer(ctx, user.ID.String(), quiz.ID.String(), "C")

	accounts.failRecord = true
	state, err := service.Advance(ctx, user.ID.String(), quiz.ID.String())
	if err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if !state.Finished {
		t.Fatal("attempt should still finish locally")
	}
	if !state.SaveFailed {
		t.Fatal("save_failed should be flagged")
	}
	if state.Score != 3 {
		t.Fatalf("score = %d, want 3", state.Score)
	}
	if len(accounts.history) != 0 {
		t.Fatal("no history entry should exist after a failed save")
	}
}

func TestConcurrentFinishDoesNotDoubleCount(t *testing.T) {
	service, accounts, quizzes, _ := newAttemptFixture()
	user := accounts.addAccount("ade")
	quiz := threeQuestionQuiz(quizzes)
	ctx := context.Background()

	service.Start(ctx, user.ID.String(), quiz.ID.String())
	for _, answer := range []string{"A", "B"} {
		service.SubmitAnswer(ctx, user.ID.String(), quiz.ID.String(), answer)
		service.Advance(ctx, user.ID.String(), quiz.ID.String())
	}
	service.SubmitAnswer(ctx, user.ID.String(), quiz.ID.String(), "C")

	// Another session recorded its result between this session's start and
	// finish. The repository reports the conflict and this finish must not
	// count again, and must not surface as a save failure either.
	accounts.RecordQuizResult(ctx, user.ID, quiz.ID, 1, 3, 10)
	accounts.recordCalls = 0

	state, err := service.Advance(ctx, user.ID.String(), quiz.ID.String())
	if err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if !state.Finished || state.SaveFailed {
		t.Fatalf("state = %+v, want finished without save_failed", state)
	}
	if accounts.recordCalls != 0 {
		t.Fatal("losing session must not record a second result")
	}
	if got := accounts.accounts[user.ID].Score; got != 10 {
		t.Fatalf("account score = %d, want the first session's 10 points only", got)
	}
}

func TestShortAnswerGradedThroughService(t *testing.T) {
	service, accounts, quizzes, _ := newAttemptFixture()
	user := accounts.addAccount("ade")
	ctx := context.Background()

	quiz := &db_models.Quiz{Title: "Cities", Description: "Name them"}
	quiz.ID = uuid.New()
	question := db_models.Question{
		Text:            "What is the largest city in Nigeria?",
		Type:            db_models.QuestionTypeShortAnswer,
		AcceptedAnswers: []string{"Lagos", "Eko"},
	}
	question.ID = uuid.New()
	quiz.Questions = []db_models.Question{question}
	quizzes.quizzes[quiz.ID.String()] = quiz

	service.Start(ctx, user.ID.String(), quiz.ID.String())

	outcome, err := service.SubmitAnswer(ctx, user.ID.String(), quiz.ID.String(), "  eko ")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !outcome.Correct {
		t.Fatal("\"  eko \" should match accepted answer \"Eko\"")
	}
	if len(outcome.CorrectAnswers) != 2 {
		t.Fatalf("correct answers = %v, want both accepted answers", outcome.CorrectAnswers)
	}
}

func TestSubmitWithoutStart(t *testing.T) {
	service, accounts, quizzes, _ := newAttemptFixture()
	user := accounts.addAccount("ade")
	quiz := threeQuestionQuiz(quizzes)

	_, err := service.SubmitAnswer(context.Background(), user.ID.String(), quiz.ID.String(), "A")
	if !errors.Is(err, utils.ErrAttemptNotFound) {
		t.Fatalf("err = %v, want ErrAttemptNotFound", err)
	}
}
