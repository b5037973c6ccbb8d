package leaderboard_fx

import (
	"go.uber.org/fx"

	"culturehub/internal/repositories"
	"culturehub/internal/services"
)

var Module = fx.Provide(
	provideLeaderboardService)

func provideLeaderboardService(accountRepo repositories.AccountRepository) services.LeaderboardServiceInterface {
	return services.NewLeaderboardService(accountRepo)
}
