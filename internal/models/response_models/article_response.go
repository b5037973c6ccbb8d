package response_models

type ArticleResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageURL  string `json:"image_url"`
	ImageHint string `json:"image_hint"`
	QuizID    string `json:"quiz_id,omitempty"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
}
