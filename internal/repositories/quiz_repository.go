package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"culturehub/internal/models/db_models"
)

type QuizRepository interface {
	Insert(ctx context.Context, quiz *db_models.Quiz) error
	Replace(ctx context.Context, quiz *db_models.Quiz) error
	FindById(ctx context.Context, id string) (*db_models.Quiz, error)
	FindAll(ctx context.Context) ([]db_models.Quiz, error)
	Delete(ctx context.Context, id string) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{
		db: db,
	}
}

func (q *quizRepository) Insert(ctx context.Context, quiz *db_models.Quiz) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(quiz).Error
	})
}

// Replace rewrites a quiz and its full question list atomically. Editing is
// all-or-nothing: a failed save leaves the stored quiz untouched.
func (q *quizRepository) Replace(ctx context.Context, quiz *db_models.Quiz) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.Quiz
		if err := tx.First(&existing, "id = ?", quiz.ID).Error; err != nil {
			return err
		}

		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"title":       quiz.Title,
			"description": quiz.Description,
			"article_id":  quiz.ArticleID,
		}).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().
			Where("quiz_id = ?", quiz.ID).
			Delete(&db_models.Question{}).Error; err != nil {
			return err
		}

		for i := range quiz.Questions {
			quiz.Questions[i].QuizID = quiz.ID
		}
		return tx.Create(&quiz.Questions).Error
	})
}

func (q *quizRepository) FindById(ctx context.Context, id string) (*db_models.Quiz, error) {
	var quiz db_models.Quiz
	err := q.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&quiz, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &quiz, nil
}

func (q *quizRepository) FindAll(ctx context.Context) ([]db_models.Quiz, error) {
	var quizzes []db_models.Quiz
	err := q.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (q *quizRepository) Delete(ctx context.Context, id string) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&db_models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Quiz{}, "id = ?", id).Error
	})
}
