package media_fx

import (
	"os"

	"go.uber.org/fx"

	"culturehub/internal/services"
	"culturehub/pkg/utils"
)

var Module = fx.Provide(
	provideVideoClient,
	provideMediaService)

func provideVideoClient() utils.VideoClientInterface {
	return utils.NewVeoClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("VEO_MODEL"))
}

func provideMediaService(videoClient utils.VideoClientInterface) services.MediaServiceInterface {
	return services.NewMediaService(nil, videoClient)
}
