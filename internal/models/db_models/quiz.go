package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	QuestionTypeMultipleChoice = "multiple-choice"
	QuestionTypeTrueFalse      = "true-false"
	QuestionTypeShortAnswer    = "short-answer"
	QuestionTypeAIVideo        = "ai-video"
)

type Quiz struct {
	BaseModel
	Title       string
	Description string
	ArticleID   *uuid.UUID `gorm:"type:uuid"`
	Questions   []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

// Question is one entry in a quiz, ordered by Position. Options and
// AcceptedAnswers live in text[] columns; which fields are populated depends
// on Type (see the quiz service validation rules).
type Question struct {
	BaseModel
	QuizID   uuid.UUID `gorm:"type:uuid;index"`
	Position int       `gorm:"index"`
	Text     string    `gorm:"type:text"`
	Type     string    `gorm:"size:20"`
	Options  pq.StringArray `gorm:"type:text[]"`
	// CorrectAnswer is the single correct option for multiple-choice,
	// true-false and ai-video questions.
	CorrectAnswer string
	// AcceptedAnswers is the set of acceptable strings for short-answer
	// questions; matching is case- and trim-insensitive.
	AcceptedAnswers pq.StringArray `gorm:"type:text[]"`
	VideoURL        string
}
