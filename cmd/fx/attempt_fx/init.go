package attempt_fx

import (
	"go.uber.org/fx"

	"culturehub/internal/grading"
	"culturehub/internal/repositories"
	"culturehub/internal/services"
	mem "culturehub/pkg/memcache"
)

var Module = fx.Provide(
	provideGradingEngine,
	provideAttemptStore,
	provideAttemptService)

func provideGradingEngine() *grading.Engine {
	return grading.NewEngine()
}

func provideAttemptStore() services.AttemptStore {
	return mem.NewAttemptStore()
}

func provideAttemptService(
	accountRepo repositories.AccountRepository,
	quizRepo repositories.QuizRepository,
	store services.AttemptStore,
	engine *grading.Engine,
) services.AttemptServiceInterface {
	return services.NewAttemptService(accountRepo, quizRepo, store, engine)
}
