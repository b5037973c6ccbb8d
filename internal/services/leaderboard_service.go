package services

import (
	"context"

	"culturehub/internal/models/response_models"
	"culturehub/internal/repositories"
	"culturehub/pkg/utils"
)

// Leaderboard size shown to clients.
const leaderboardLimit = 20

type LeaderboardServiceInterface interface {
	GetLeaderboard(ctx context.Context) ([]response_models.LeaderboardEntry, error)
}

type LeaderboardService struct {
	accountRepo repositories.AccountRepository
}

func NewLeaderboardService(accountRepo repositories.AccountRepository) LeaderboardServiceInterface {
	return &LeaderboardService{
		accountRepo: accountRepo,
	}
}

// GetLeaderboard is a read-only projection: top accounts by score
// descending, rank assigned by position. Ties are broken by account age so
// the ordering is stable between refreshes.
func (l *LeaderboardService) GetLeaderboard(ctx context.Context) ([]response_models.LeaderboardEntry, error) {
	accounts, err := l.accountRepo.FindTopByScore(ctx, leaderboardLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entries := make([]response_models.LeaderboardEntry, 0, len(accounts))
	for i, account := range accounts {
		entries = append(entries, response_models.LeaderboardEntry{
			Rank:   i + 1,
			Name:   account.Name,
			Avatar: account.Avatar,
			Score:  account.Score,
		})
	}
	return entries, nil
}
