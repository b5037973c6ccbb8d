package db_models

import "github.com/google/uuid"

type Article struct {
	BaseModel
	Title     string
	Content   string `gorm:"type:text"`
	ImageURL  string
	ImageHint string
	QuizID    *uuid.UUID `gorm:"type:uuid"`
	AuthorID  uuid.UUID  `gorm:"type:uuid"`
}
