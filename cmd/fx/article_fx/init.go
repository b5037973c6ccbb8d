package article_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"culturehub/internal/repositories"
	"culturehub/internal/services"
	"culturehub/pkg/utils"
)

var Module = fx.Provide(
	ProvideDraftClient,
	provideArticleRepo,
	provideArticleService)

// DraftConfig holds configuration for AI draft clients
type DraftConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideDraftClient creates an article draft client based on environment variables
func ProvideDraftClient() (utils.DraftClientInterface, error) {
	config := getDraftConfig()

	log.Printf("Initializing %s draft client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIDraftClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiDraftClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported draft provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func provideArticleRepo(db *gorm.DB) repositories.ArticleRepository {
	return repositories.NewArticleRepository(db)
}

func provideArticleService(articleRepo repositories.ArticleRepository, draftClient utils.DraftClientInterface) services.ArticleServiceInterface {
	return services.NewArticleService(articleRepo, draftClient)
}

// getDraftConfig reads configuration from environment variables
func getDraftConfig() DraftConfig {
	provider := getEnvWithDefault("DRAFT_PROVIDER", "gemini") // Default to free Gemini

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return DraftConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
