package controllers_fx

import (
	"go.uber.org/fx"

	"culturehub/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewArticleController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewAttemptController),
	fx.Provide(controllers.NewLeaderboardController),
	fx.Provide(controllers.NewMediaController))
