package request_models

// QuestionInput is one question in a quiz save payload. Which fields are
// required depends on Type; the quiz service validates before any write.
type QuestionInput struct {
	Text            string   `json:"text"`
	Type            string   `json:"type"`
	Options         []string `json:"options,omitempty"`
	CorrectAnswer   string   `json:"correct_answer,omitempty"`
	AcceptedAnswers []string `json:"accepted_answers,omitempty"`
	VideoURL        string   `json:"video_url,omitempty"`
}

type SaveQuizRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ArticleID   string          `json:"article_id,omitempty"`
	Questions   []QuestionInput `json:"questions"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}
