package db_models

import "github.com/google/uuid"

// QuizHistoryEntry records one completed attempt. Append-only; at most one
// entry per (account, quiz) is enforced inside the recording transaction.
type QuizHistoryEntry struct {
	BaseModel
	AccountID      uuid.UUID `gorm:"type:uuid;index"`
	QuizID         uuid.UUID `gorm:"type:uuid;index"`
	Score          int
	TotalQuestions int
	TakenAt        int64
}
