package quiz_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"culturehub/internal/repositories"
	"culturehub/internal/services"
)

var Module = fx.Provide(
	provideQuizService, provideQuizRepo)

func provideQuizRepo(db *gorm.DB) repositories.QuizRepository {
	return repositories.NewQuizRepository(db)
}

func provideQuizService(quizRepo repositories.QuizRepository) services.QuizServiceInterface {
	return services.NewQuizService(quizRepo)
}
