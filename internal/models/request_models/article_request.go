package request_models

type SaveArticleRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	ImageURL  string `json:"image_url"`
	ImageHint string `json:"image_hint"`
	QuizID    string `json:"quiz_id,omitempty"`
}

type GenerateArticleRequest struct {
	Topic string `json:"topic" binding:"required"`
}
