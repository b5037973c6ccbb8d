package utils

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIDraftClient implements DraftClientInterface using OpenAI chat models
type OpenAIDraftClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIDraftClient(apiKey, model string) DraftClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIDraftClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIDraftClient) GenerateArticleDraft(ctx context.Context, topic string) (*ArticleDraft, error) {
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: `You are an editor for a Nigerian culture magazine. Respond with JSON only: ` +
					`{"title":"string","content":"string","image_hint":"two or three words describing a cover image"}. ` +
					`Content must be 3 to 6 paragraphs of engaging, factually grounded prose.`,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Write an article about: " + topic,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no content")
	}

	var draft ArticleDraft
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &draft); err != nil {
		return nil, fmt.Errorf("not valid json: %w", err)
	}
	if draft.Title == "" || draft.Content == "" {
		return nil, fmt.Errorf("incomplete draft")
	}
	return &draft, nil
}
