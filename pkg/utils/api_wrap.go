package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Field   string      `json:"field,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	traceID := c.GetString("trace_id")

	respond := func(code int, message string) {
		c.JSON(code, APIResponse{
			Status:  "error",
			Code:    code,
			Message: message,
			TraceID: traceID,
		})
	}

	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, APIResponse{
			Status:  "error",
			Code:    http.StatusUnprocessableEntity,
			Message: validationErr.Message,
			Field:   validationErr.Field,
			TraceID: traceID,
		})
	case errors.Is(err, ErrInvalidCredentials):
		respond(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrAccountNotFound):
		respond(http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrQuizNotFound):
		respond(http.StatusNotFound, "Quiz not found")
	case errors.Is(err, ErrArticleNotFound):
		respond(http.StatusNotFound, "Article not found")
	case errors.Is(err, ErrAttemptNotFound):
		respond(http.StatusNotFound, "No attempt in progress for this quiz")
	case errors.Is(err, ErrEmailAlreadyExists):
		respond(http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrAlreadyAttempted):
		respond(http.StatusConflict, "You can only take each quiz once")
	case errors.Is(err, ErrAnswerRequired):
		respond(http.StatusBadRequest, "Answer the current question before moving on")
	case errors.Is(err, ErrUploadFailed):
		respond(http.StatusBadGateway, "File upload failed")
	case errors.Is(err, ErrGenerationFailed):
		respond(http.StatusBadGateway, "AI generation failed")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		respond(http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		respond(http.StatusInternalServerError, "Internal server error")
	}
}
