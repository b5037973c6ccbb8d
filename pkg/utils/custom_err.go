package utils

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrAttemptNotFound    = errors.New("attempt not found or expired")
	ErrAlreadyAttempted   = errors.New("quiz already attempted")
	ErrAnswerRequired     = errors.New("current question has not been answered")
	ErrUploadFailed       = errors.New("upload failed")
	ErrGenerationFailed   = errors.New("generation failed")
)

// ValidationError reports which authoring field is invalid.
// Field follows the request shape, e.g. "questions[2].options".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
