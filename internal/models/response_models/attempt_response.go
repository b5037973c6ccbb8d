package response_models

// AttemptState is the client's view of an in-flight or finished attempt.
type AttemptState struct {
	QuizID         string        `json:"quiz_id"`
	CurrentIndex   int           `json:"current_index"`
	TotalQuestions int           `json:"total_questions"`
	Score          int           `json:"score"`
	Answered       bool          `json:"answered"`
	SelectedAnswer string        `json:"selected_answer,omitempty"`
	Finished       bool          `json:"finished"`
	Replayed       bool          `json:"replayed"`
	Percent        int           `json:"percent,omitempty"`
	Question       *QuestionView `json:"question,omitempty"`
	// SaveFailed is set when the attempt finished but the result could not
	// be persisted; the local score is still shown.
	SaveFailed bool `json:"save_failed,omitempty"`
}

// AnswerOutcome reveals the grading result for the just-answered question.
type AnswerOutcome struct {
	Correct bool `json:"correct"`
	// CorrectAnswers echoes the answer key so the client can highlight it:
	// one element for choice questions, the accepted set for short answers.
	CorrectAnswers []string     `json:"correct_answers"`
	State          AttemptState `json:"state"`
}
