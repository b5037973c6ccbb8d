package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"culturehub/internal/models/db_models"
	"culturehub/pkg/utils"
)

type AccountRepository interface {
	InsertTx(account *db_models.Account, ctx context.Context) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindTopByScore(ctx context.Context, limit int) ([]db_models.Account, error)
	FindHistory(ctx context.Context, accountID uuid.UUID) ([]db_models.QuizHistoryEntry, error)
	FindHistoryEntry(ctx context.Context, accountID, quizID uuid.UUID) (*db_models.QuizHistoryEntry, error)
	RecordQuizResult(ctx context.Context, accountID, quizID uuid.UUID, score, totalQuestions, points int) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindTopByScore(ctx context.Context, limit int) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).
		Order("score DESC, created_at ASC").
		Limit(limit).
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *accountRepository) FindHistory(ctx context.Context, accountID uuid.UUID) ([]db_models.QuizHistoryEntry, error) {
	var entries []db_models.QuizHistoryEntry
	err := a.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("taken_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (a *accountRepository) FindHistoryEntry(ctx context.Context, accountID, quizID uuid.UUID) (*db_models.QuizHistoryEntry, error) {
	var entry db_models.QuizHistoryEntry
	err := a.db.WithContext(ctx).
		Where("account_id = ? AND quiz_id = ?", accountID, quizID).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

// RecordQuizResult increments the account's running score and appends the
// history entry in one transaction. The account row is locked and the
// history re-checked inside the transaction, so two racing sessions (two
// tabs finishing the same quiz) cannot double-count.
func (a *accountRepository) RecordQuizResult(ctx context.Context, accountID, quizID uuid.UUID, score, totalQuestions, points int) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account db_models.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&account, "id = ?", accountID).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&db_models.QuizHistoryEntry{}).
			Where("account_id = ? AND quiz_id = ?", accountID, quizID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return utils.ErrAlreadyAttempted
		}

		if err := tx.Model(&account).
			Update("score", account.Score+points).Error; err != nil {
			return err
		}

		entry := db_models.QuizHistoryEntry{
			AccountID:      accountID,
			QuizID:         quizID,
			Score:          score,
			TotalQuestions: totalQuestions,
			TakenAt:        utils.NowUnixSeconds(),
		}
		return tx.Create(&entry).Error
	})
}
