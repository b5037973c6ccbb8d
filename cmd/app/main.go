package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"culturehub/cmd/fx/account_fx"
	"culturehub/cmd/fx/article_fx"
	"culturehub/cmd/fx/attempt_fx"
	"culturehub/cmd/fx/controllers_fx"
	"culturehub/cmd/fx/db_fx"
	"culturehub/cmd/fx/leaderboard_fx"
	"culturehub/cmd/fx/media_fx"
	"culturehub/cmd/fx/quiz_fx"
	"culturehub/internal/api/controllers"
	"culturehub/internal/models/db_models"
	"culturehub/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		article_fx.Module,
		quiz_fx.Module,
		attempt_fx.Module,
		leaderboard_fx.Module,
		media_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	articleController *controllers.ArticleController,
	quizController *controllers.QuizController,
	attemptController *controllers.AttemptController,
	leaderboardController *controllers.LeaderboardController,
	mediaController *controllers.MediaController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	RegisterRoutes(r, accountController, articleController, quizController,
		attemptController, leaderboardController, mediaController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	articleController *controllers.ArticleController,
	quizController *controllers.QuizController,
	attemptController *controllers.AttemptController,
	leaderboardController *controllers.LeaderboardController,
	mediaController *controllers.MediaController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	me := r.Group("/me", middleware.JWTAuthMiddleware())
	me.GET("", accountController.Me)
	me.GET("/history", accountController.History)

	articles := r.Group("/articles")
	articles.GET("", articleController.ListArticles)
	articles.GET("/:id", articleController.GetArticle)

	quizzes := r.Group("/quizzes")
	quizzes.GET("", quizController.ListQuizzes)
	quizzes.GET("/:id", quizController.GetQuiz)

	attempts := r.Group("/quizzes/:id/attempt", middleware.JWTAuthMiddleware())
	attempts.POST("/start", attemptController.Start)
	attempts.POST("/answer", attemptController.SubmitAnswer)
	attempts.POST("/next", attemptController.Advance)
	attempts.POST("/restart", attemptController.Restart)

	r.GET("/leaderboard", leaderboardController.GetLeaderboard)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(db_models.RoleAdmin))
	admin.POST("/quizzes", quizController.CreateQuiz)
	admin.GET("/quizzes/:id", quizController.GetQuizAdmin)
	admin.PUT("/quizzes/:id", quizController.UpdateQuiz)
	admin.DELETE("/quizzes/:id", quizController.DeleteQuiz)
	admin.POST("/articles", articleController.CreateArticle)
	admin.PUT("/articles/:id", articleController.UpdateArticle)
	admin.DELETE("/articles/:id", articleController.DeleteArticle)
	admin.POST("/articles/generate", articleController.GenerateDraft)
	admin.POST("/media/images", mediaController.UploadImage)
	admin.POST("/media/videos", mediaController.UploadVideo)
	admin.POST("/media/videos/generate", mediaController.GenerateVideo)
}
