package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiDraftClient implements DraftClientInterface using Google's Gemini models
type GeminiDraftClient struct {
	client *genai.Client
	model  string
}

// NewGeminiDraftClient creates a new Gemini client
func NewGeminiDraftClient(apiKey, model string) (DraftClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiDraftClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiDraftClient) GenerateArticleDraft(ctx context.Context, topic string) (*ArticleDraft, error) {
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so response handling stays simple.
	m.ResponseMIMEType = "application/json"
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetTemperature(0.4)

	prompt := fmt.Sprintf(`
You are an editor for a Nigerian culture magazine. Write an article about the topic below.
Return **JSON only** matching this schema exactly:

{"title":"string","content":"string","image_hint":"two or three words describing a cover image"}

Requirements:
- 3 to 6 paragraphs of engaging, factually grounded prose in "content".
- "image_hint" is a short search phrase, e.g. "durbar festival".
- No markdown, no comments, JSON only.

Topic: %s
`, topic)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	var draft ArticleDraft
	if err := json.Unmarshal([]byte(content), &draft); err != nil {
		return nil, fmt.Errorf("not valid json: %w", err)
	}
	if draft.Title == "" || draft.Content == "" {
		return nil, fmt.Errorf("incomplete draft")
	}
	return &draft, nil
}
