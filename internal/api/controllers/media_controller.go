package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"culturehub/internal/models/request_models"
	"culturehub/internal/services"
	"culturehub/pkg/utils"
)

type MediaController struct {
	mediaService services.MediaServiceInterface
}

func NewMediaController(mediaService services.MediaServiceInterface) *MediaController {
	return &MediaController{
		mediaService: mediaService,
	}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Stores the image in blob storage and returns its public URL
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /admin/media/images [post]
func (m *MediaController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing file")
		return
	}

	url, err := m.mediaService.UploadImage(fileHeader)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"url": url}, "Image uploaded successfully")
}

func (m *MediaController) UploadVideo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing file")
		return
	}

	url, err := m.mediaService.UploadVideo(fileHeader)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"url": url}, "Video uploaded successfully")
}

// GenerateVideo godoc
// @Summary Generate a video with AI
// @Description Generates a short clip from a text prompt for ai-video questions; blocks until generation completes
// @Tags Media
// @Accept json
// @Produce json
// @Param request body request_models.GenerateVideoRequest true "Generation parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /admin/media/videos/generate [post]
func (m *MediaController) GenerateVideo(c *gin.Context) {
	var req request_models.GenerateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	videoURL, err := m.mediaService.GenerateVideo(c.Request.Context(), req.Prompt, req.DurationSeconds, req.AspectRatio)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"video_url": videoURL}, "Video generated successfully")
}
