package utils

import "context"

// ArticleDraft is the structured output of an AI drafting request.
type ArticleDraft struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageHint string `json:"image_hint"`
}

// DraftClientInterface generates cultural article drafts from a topic prompt.
// Implementations: Gemini (default, free tier) and OpenAI.
type DraftClientInterface interface {
	GenerateArticleDraft(ctx context.Context, topic string) (*ArticleDraft, error)
}
