package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"culturehub/internal/models/db_models"
)

type ArticleRepository interface {
	Insert(ctx context.Context, article *db_models.Article) error
	Update(ctx context.Context, article *db_models.Article) error
	FindById(ctx context.Context, id string) (*db_models.Article, error)
	FindAll(ctx context.Context) ([]db_models.Article, error)
	Delete(ctx context.Context, id string) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{
		db: db,
	}
}

func (a *articleRepository) Insert(ctx context.Context, article *db_models.Article) error {
	return a.db.WithContext(ctx).Create(article).Error
}

func (a *articleRepository) Update(ctx context.Context, article *db_models.Article) error {
	return a.db.WithContext(ctx).Save(article).Error
}

func (a *articleRepository) FindById(ctx context.Context, id string) (*db_models.Article, error) {
	var article db_models.Article
	err := a.db.WithContext(ctx).First(&article, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &article, nil
}

func (a *articleRepository) FindAll(ctx context.Context) ([]db_models.Article, error) {
	var articles []db_models.Article
	err := a.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (a *articleRepository) Delete(ctx context.Context, id string) error {
	return a.db.WithContext(ctx).Delete(&db_models.Article{}, "id = ?", id).Error
}
