package response_models

// QuestionView is the student-safe projection of a question: no correct or
// accepted answers leak before grading.
type QuestionView struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	VideoURL string   `json:"video_url,omitempty"`
}

type QuizSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	QuestionCount int    `json:"question_count"`
	CreatedAt     string `json:"created_at"`
}

type QuizDetail struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ArticleID   string         `json:"article_id,omitempty"`
	Questions   []QuestionView `json:"questions"`
	CreatedAt   string         `json:"created_at"`
}

// AdminQuestionView includes the answer key for the authoring UI.
type AdminQuestionView struct {
	QuestionView
	CorrectAnswer   string   `json:"correct_answer,omitempty"`
	AcceptedAnswers []string `json:"accepted_answers,omitempty"`
}

type AdminQuizDetail struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	ArticleID   string              `json:"article_id,omitempty"`
	Questions   []AdminQuestionView `json:"questions"`
	CreatedAt   string              `json:"created_at"`
}
