package services

import (
	"context"

	"github.com/google/uuid"

	"culturehub/internal/models/db_models"
	"culturehub/internal/models/request_models"
	"culturehub/internal/models/response_models"
	"culturehub/internal/repositories"
	"culturehub/pkg/utils"
)

type ArticleServiceInterface interface {
	CreateArticle(ctx context.Context, authorID string, request request_models.SaveArticleRequest) (string, error)
	UpdateArticle(ctx context.Context, articleID string, request request_models.SaveArticleRequest) error
	DeleteArticle(ctx context.Context, articleID string) error
	ListArticles(ctx context.Context) ([]response_models.ArticleResponse, error)
	GetArticle(ctx context.Context, articleID string) (*response_models.ArticleResponse, error)
	GenerateDraft(ctx context.Context, topic string) (*utils.ArticleDraft, error)
}

type ArticleService struct {
	articleRepo repositories.ArticleRepository
	draftClient utils.DraftClientInterface
}

func NewArticleService(articleRepo repositories.ArticleRepository, draftClient utils.DraftClientInterface) ArticleServiceInterface {
	return &ArticleService{
		articleRepo: articleRepo,
		draftClient: draftClient,
	}
}

func (a *ArticleService) CreateArticle(ctx context.Context, authorID string, request request_models.SaveArticleRequest) (string, error) {
	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return "", utils.ErrAccountNotFound
	}

	article := &db_models.Article{
		Title:     request.Title,
		Content:   request.Content,
		ImageURL:  request.ImageURL,
		ImageHint: request.ImageHint,
		AuthorID:  authorUUID,
	}
	if request.QuizID != "" {
		quizID, err := uuid.Parse(request.QuizID)
		if err != nil {
			return "", utils.NewValidationError("quiz_id", "not a valid quiz id")
		}
		article.QuizID = &quizID
	}

	if err := a.articleRepo.Insert(ctx, article); err != nil {
		return "", utils.ErrDatabaseError
	}
	return article.ID.String(), nil
}

func (a *ArticleService) UpdateArticle(ctx context.Context, articleID string, request request_models.SaveArticleRequest) error {
	article, err := a.articleRepo.FindById(ctx, articleID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if article == nil {
		return utils.ErrArticleNotFound
	}

	article.Title = request.Title
	article.Content = request.Content
	article.ImageURL = request.ImageURL
	article.ImageHint = request.ImageHint
	if request.QuizID != "" {
		quizID, err := uuid.Parse(request.QuizID)
		if err != nil {
			return utils.NewValidationError("quiz_id", "not a valid quiz id")
		}
		article.QuizID = &quizID
	} else {
		article.QuizID = nil
	}

	if err := a.articleRepo.Update(ctx, article); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *ArticleService) DeleteArticle(ctx context.Context, articleID string) error {
	article, err := a.articleRepo.FindById(ctx, articleID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if article == nil {
		return utils.ErrArticleNotFound
	}
	if err := a.articleRepo.Delete(ctx, articleID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *ArticleService) ListArticles(ctx context.Context) ([]response_models.ArticleResponse, error) {
	articles, err := a.articleRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		responses = append(responses, articleResponse(article))
	}
	return responses, nil
}

func (a *ArticleService) GetArticle(ctx context.Context, articleID string) (*response_models.ArticleResponse, error) {
	article, err := a.articleRepo.FindById(ctx, articleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if article == nil {
		return nil, utils.ErrArticleNotFound
	}
	response := articleResponse(*article)
	return &response, nil
}

// GenerateDraft asks the configured AI provider for an article draft. The
// draft is returned to the authoring UI, never persisted directly.
func (a *ArticleService) GenerateDraft(ctx context.Context, topic string) (*utils.ArticleDraft, error) {
	draft, err := a.draftClient.GenerateArticleDraft(ctx, topic)
	if err != nil {
		return nil, utils.ErrGenerationFailed
	}
	return draft, nil
}

func articleResponse(article db_models.Article) response_models.ArticleResponse {
	response := response_models.ArticleResponse{
		ID:        article.ID.String(),
		Title:     article.Title,
		Content:   article.Content,
		ImageURL:  article.ImageURL,
		ImageHint: article.ImageHint,
		AuthorID:  article.AuthorID.String(),
		CreatedAt: utils.FormatRFC3339(utils.FromUnixSeconds(article.CreatedAt)),
	}
	if article.QuizID != nil {
		response.QuizID = article.QuizID.String()
	}
	return response
}
