package services_test

import (
	"testing"

	"culturehub/internal/services"
)

func TestAttemptMachineHappyPath(t *testing.T) {
	m := services.NewAttemptMachine("quiz-1", "user-1", 3)

	if m.Index != 0 || m.Answered || m.Finished {
		t.Fatalf("fresh machine should sit unanswered at question 0, got %+v", m)
	}

	if !m.Submit(true, "A") {
		t.Fatal("first submit should be applied")
	}
	if finished, ok := m.Advance(); finished || !ok {
		t.Fatalf("advance from question 0 of 3: finished=%v ok=%v", finished, ok)
	}
	if m.Index != 1 || m.Answered || m.SelectedAnswer != "" {
		t.Fatalf("advance should clear per-question state, got %+v", m)
	}

	m.Submit(false, "X")
	m.Advance()
	m.Submit(true, "C")
	finished, ok := m.Advance()
	if !finished || !ok {
		t.Fatalf("advance past last question: finished=%v ok=%v", finished, ok)
	}
	if !m.Finished {
		t.Fatal("machine should be finished")
	}
	if m.Score != 2 {
		t.Fatalf("score = %d, want 2", m.Score)
	}
	if m.Percent() != 67 {
		t.Fatalf("percent = %d, want 67", m.Percent())
	}
}

func TestAttemptMachineDoubleSubmitIsNoOp(t *testing.T) {
	m := services.NewAttemptMachine("quiz-1", "user-1", 2)

	m.Submit(true, "A")
	if m.Submit(true, "A") {
		t.Fatal("second submit should not be applied")
	}
	if m.Score != 1 {
		t.Fatalf("score = %d, want 1 after double submit", m.Score)
	}
	if m.SelectedAnswer != "A" {
		t.Fatalf("selected answer = %q, want first answer kept", m.SelectedAnswer)
	}
}

func TestAttemptMachineAdvanceRequiresAnswer(t *testing.T) {
	m := services.NewAttemptMachine("quiz-1", "user-1", 2)

	if _, ok := m.Advance(); ok {
		t.Fatal("advance should refuse an unanswered question")
	}
	if m.Index != 0 {
		t.Fatalf("index moved to %d without an answer", m.Index)
	}
}

func TestAttemptMachineFinishedIsTerminal(t *testing.T) {
	m := services.NewAttemptMachine("quiz-1", "user-1", 1)
	m.Submit(true, "A")
	m.Advance()

	if m.Submit(true, "A") {
		t.Fatal("submit after finish should not be applied")
	}
	if _, ok := m.Advance(); ok {
		t.Fatal("advance after finish should not be applied")
	}
	if m.Score != 1 {
		t.Fatalf("score changed after finish: %d", m.Score)
	}
}

func TestAttemptMachineScoreNeverExceedsTotal(t *testing.T) {
	m := services.NewAttemptMachine("quiz-1", "user-1", 2)
	for i := 0; i < 5; i++ {
		m.Submit(true, "A")
		m.Advance()
	}
	if m.Score > m.TotalQuestions {
		t.Fatalf("score %d exceeds total %d", m.Score, m.TotalQuestions)
	}
}

func TestAttemptMachineRestart(t *testing.T) {
	m := services.NewAttemptMachine("quiz-1", "user-1", 3)
	m.Submit(true, "A")
	m.Advance()
	m.Submit(true, "B")

	m.Restart()
	if m.Index != 0 || m.Score != 0 || m.Answered || m.Finished || m.SelectedAnswer != "" {
		t.Fatalf("restart should reset all progress, got %+v", m)
	}
}

func TestAttemptMachinePercentRounds(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 6, 17},
		{0, 0, 0},
	}
	for _, tc := range cases {
		m := services.AttemptMachine{Score: tc.score, TotalQuestions: tc.total}
		if got := m.Percent(); got != tc.want {
			t.Errorf("percent(%d/%d) = %d, want %d", tc.score, tc.total, got, tc.want)
		}
	}
}
