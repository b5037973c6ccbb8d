package request_models

type GenerateVideoRequest struct {
	Prompt          string `json:"prompt" binding:"required"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	AspectRatio     string `json:"aspect_ratio,omitempty"`
}
