package services

import "math"

// AttemptMachine drives a single pass through a quiz, one question at a
// time. It is pure in-memory state: no I/O, no clock, no rendering. The
// service layer owns loading questions, grading, and recording the result.
//
// States: in progress (index, answered) -> finished. Finished is entered
// exactly once, by advancing past the last answered question.
type AttemptMachine struct {
	QuizID         string
	UserID         string
	Index          int
	Score          int
	Answered       bool
	SelectedAnswer string
	Finished       bool
	TotalQuestions int
}

func NewAttemptMachine(quizID, userID string, totalQuestions int) *AttemptMachine {
	return &AttemptMachine{
		QuizID:         quizID,
		UserID:         userID,
		TotalQuestions: totalQuestions,
	}
}

// Submit records a graded answer for the current question. Re-submitting
// while already answered is a no-op; the first grade stands. Returns whether
// the submission was applied.
func (m *AttemptMachine) Submit(correct bool, answer string) bool {
	if m.Finished || m.Answered {
		return false
	}
	m.Answered = true
	m.SelectedAnswer = answer
	if correct {
		m.Score++
	}
	return true
}

// Advance moves to the next question, or transitions to finished when the
// current question is the last one. It refuses to move past an unanswered
// question, so a point can never be awarded for a question that was never
// submitted.
func (m *AttemptMachine) Advance() (finished bool, ok bool) {
	if m.Finished || !m.Answered {
		return m.Finished, false
	}
	if m.Index >= m.TotalQuestions-1 {
		m.Finished = true
		return true, true
	}
	m.Index++
	m.Answered = false
	m.SelectedAnswer = ""
	return false, true
}

// Restart resets local progress back to question 0. Only legal while the
// attempt has not been recorded; the service layer gates that.
func (m *AttemptMachine) Restart() {
	m.Index = 0
	m.Score = 0
	m.Answered = false
	m.SelectedAnswer = ""
	m.Finished = false
}

// Percent is the displayed final percentage, rounded to the nearest integer
// (2 of 3 correct renders as 67%).
func (m *AttemptMachine) Percent() int {
	if m.TotalQuestions == 0 {
		return 0
	}
	return int(math.Round(float64(m.Score) / float64(m.TotalQuestions) * 100))
}
