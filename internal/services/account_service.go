package services

import (
	"context"
	"fmt"
	"net/url"

	"culturehub/internal/models/db_models"
	"culturehub/internal/models/request_models"
	"culturehub/internal/models/response_models"
	"culturehub/internal/repositories"
	"culturehub/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (string, error)
	CreateAccount(request request_models.SignUpRequest, ctx context.Context) error
	GetProfile(ctx context.Context, accountID string) (*response_models.ProfileResponse, error)
	GetQuizHistory(ctx context.Context, accountID string) ([]response_models.QuizHistoryResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	quizRepo    repositories.QuizRepository
}

func NewAccountService(accountRepo repositories.AccountRepository, quizRepo repositories.QuizRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		quizRepo:    quizRepo,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest, ctx context.Context) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Avatar:       avatarURL(request.DisplayName),
		Role:         db_models.RoleUser,
		Score:        0,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID string) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.ProfileResponse{
		UID:    account.ID.String(),
		Name:   account.Name,
		Email:  account.Email,
		Avatar: account.Avatar,
		Role:   account.Role,
		Score:  account.Score,
	}, nil
}

func (a *AccountService) GetQuizHistory(ctx context.Context, accountID string) ([]response_models.QuizHistoryResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	entries, err := a.accountRepo.FindHistory(ctx, account.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	history := make([]response_models.QuizHistoryResponse, 0, len(entries))
	for _, e := range entries {
		item := response_models.QuizHistoryResponse{
			QuizID:         e.QuizID.String(),
			Score:          e.Score,
			TotalQuestions: e.TotalQuestions,
			Date:           utils.FormatRFC3339(utils.FromUnixSeconds(e.TakenAt)),
		}
		if quiz, err := a.quizRepo.FindById(ctx, e.QuizID.String()); err == nil && quiz != nil {
			item.QuizTitle = quiz.Title
		}
		history = append(history, item)
	}
	return history, nil
}

// avatarURL seeds a dicebear avatar from the display name, same scheme the
// web client uses for accounts without a photo.
func avatarURL(name string) string {
	return fmt.Sprintf("https://api.dicebear.com/8.x/lorelei/svg?seed=%s", url.QueryEscape(name))
}
