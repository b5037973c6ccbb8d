package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"culturehub/internal/models/request_models"
	"culturehub/internal/services"
	"culturehub/pkg/utils"
)

type AttemptController struct {
	attemptService services.AttemptServiceInterface
}

func NewAttemptController(attemptService services.AttemptServiceInterface) *AttemptController {
	return &AttemptController{
		attemptService: attemptService,
	}
}

// Start godoc
// @Summary Start a quiz attempt
// @Description Opens an attempt, or resolves directly to the recorded result when the quiz was already taken
// @Tags Attempts
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /quizzes/{id}/attempt/start [post]
func (a *AttemptController) Start(c *gin.Context) {
	state, err := a.attemptService.Start(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Attempt started"
	if state.Replayed {
		message = "Quiz already attempted; showing recorded result"
	}
	utils.RespondSuccess(c, state, message)
}

// SubmitAnswer grades the current question. Submitting again before
// advancing is a no-op and echoes the first grade.
func (a *AttemptController) SubmitAnswer(c *gin.Context) {
	var req request_models.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	outcome, err := a.attemptService.SubmitAnswer(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Answer)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, outcome, "Answer graded")
}

// Advance moves to the next question, finishing and recording the attempt
// after the last one.
func (a *AttemptController) Advance(c *gin.Context) {
	state, err := a.attemptService.Advance(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Moved to next question"
	if state.Finished {
		message = "Quiz complete"
		if state.SaveFailed {
			message = "Quiz complete, but the result could not be saved"
		}
	}
	utils.RespondSuccess(c, state, message)
}

// Restart resets an unrecorded attempt back to the first question.
func (a *AttemptController) Restart(c *gin.Context) {
	state, err := a.attemptService.Restart(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Attempt restarted")
}
