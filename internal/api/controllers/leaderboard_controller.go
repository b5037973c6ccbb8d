package controllers

import (
	"github.com/gin-gonic/gin"

	"culturehub/internal/services"
	"culturehub/pkg/utils"
)

type LeaderboardController struct {
	leaderboardService services.LeaderboardServiceInterface
}

func NewLeaderboardController(leaderboardService services.LeaderboardServiceInterface) *LeaderboardController {
	return &LeaderboardController{
		leaderboardService: leaderboardService,
	}
}

// GetLeaderboard godoc
// @Summary Top users by score
// @Description The top 20 users ordered by total score descending
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /leaderboard [get]
func (l *LeaderboardController) GetLeaderboard(c *gin.Context) {
	entries, err := l.leaderboardService.GetLeaderboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Fetched leaderboard successfully")
}
