package services

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"culturehub/pkg/utils"
)

// Uploader abstracts the blob store so tests don't need Supabase.
type Uploader func(fileHeader *multipart.FileHeader, folder, fileID string) (string, error)

type MediaServiceInterface interface {
	UploadImage(fileHeader *multipart.FileHeader) (string, error)
	UploadVideo(fileHeader *multipart.FileHeader) (string, error)
	GenerateVideo(ctx context.Context, prompt string, durationSeconds int, aspectRatio string) (string, error)
}

type MediaService struct {
	upload      Uploader
	videoClient utils.VideoClientInterface
}

func NewMediaService(upload Uploader, videoClient utils.VideoClientInterface) MediaServiceInterface {
	if upload == nil {
		upload = utils.UploadFileToSupabase
	}
	return &MediaService{
		upload:      upload,
		videoClient: videoClient,
	}
}

func (m *MediaService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	url, err := m.upload(fileHeader, "images", uuid.New().String())
	if err != nil {
		return "", utils.ErrUploadFailed
	}
	return url, nil
}

func (m *MediaService) UploadVideo(fileHeader *multipart.FileHeader) (string, error) {
	url, err := m.upload(fileHeader, "videos", uuid.New().String())
	if err != nil {
		return "", utils.ErrUploadFailed
	}
	return url, nil
}

// GenerateVideo produces a short clip from a text prompt for ai-video
// questions. Generation is long-running; the client polls until done.
func (m *MediaService) GenerateVideo(ctx context.Context, prompt string, durationSeconds int, aspectRatio string) (string, error) {
	videoURL, err := m.videoClient.GenerateVideo(ctx, prompt, durationSeconds, aspectRatio)
	if err != nil {
		return "", utils.ErrGenerationFailed
	}
	return videoURL, nil
}
