package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// VideoClientInterface generates a short video from a text prompt.
// The backing operation is long-running and polled until done.
type VideoClientInterface interface {
	GenerateVideo(ctx context.Context, prompt string, durationSeconds int, aspectRatio string) (string, error)
}

// VeoClient calls the Generative Language API's Veo model. The genai SDK does
// not expose video operations yet, so this speaks the REST surface directly.
type VeoClient struct {
	apiKey       string
	model        string
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
}

func NewVeoClient(apiKey, model string) VideoClientInterface {
	if model == "" {
		model = "veo-2.0-generate-001"
	}
	return &VeoClient{
		apiKey:       apiKey,
		model:        model,
		baseURL:      "https://generativelanguage.googleapis.com/v1beta",
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		pollInterval: 5 * time.Second,
	}
}

type veoOperation struct {
	Name  string `json:"name"`
	Done  bool   `json:"done"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Response struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response"`
}

func (v *VeoClient) GenerateVideo(ctx context.Context, prompt string, durationSeconds int, aspectRatio string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	if durationSeconds <= 0 {
		durationSeconds = 5
	}
	if aspectRatio == "" {
		aspectRatio = "16:9"
	}

	payload := map[string]interface{}{
		"instances": []map[string]interface{}{
			{"prompt": prompt},
		},
		"parameters": map[string]interface{}{
			"durationSeconds":  durationSeconds,
			"aspectRatio":      aspectRatio,
			"personGeneration": "allow_adult",
		},
	}

	op, err := v.post(ctx, fmt.Sprintf("%s/models/%s:predictLongRunning", v.baseURL, v.model), payload)
	if err != nil {
		return "", err
	}
	if op.Name == "" {
		return "", fmt.Errorf("expected the model to return an operation")
	}

	for !op.Done {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(v.pollInterval):
		}
		op, err = v.get(ctx, fmt.Sprintf("%s/%s", v.baseURL, op.Name))
		if err != nil {
			return "", err
		}
	}

	if op.Error != nil {
		return "", fmt.Errorf("video generation failed: %s", op.Error.Message)
	}
	samples := op.Response.GenerateVideoResponse.GeneratedSamples
	if len(samples) == 0 || samples[0].Video.URI == "" {
		return "", fmt.Errorf("no video in operation result")
	}
	return samples[0].Video.URI, nil
}

func (v *VeoClient) post(ctx context.Context, url string, payload interface{}) (*veoOperation, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return v.do(req)
}

func (v *VeoClient) get(ctx context.Context, url string) (*veoOperation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return v.do(req)
}

func (v *VeoClient) do(req *http.Request) (*veoOperation, error) {
	req.Header.Set("x-goog-api-key", v.apiKey)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("veo api status=%d body=%s", resp.StatusCode, string(body))
	}

	var op veoOperation
	if err := json.Unmarshal(body, &op); err != nil {
		return nil, fmt.Errorf("veo api returned invalid json: %w", err)
	}
	return &op, nil
}
