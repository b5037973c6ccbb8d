package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"culturehub/internal/models/request_models"
	"culturehub/internal/services"
	"culturehub/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Quizzes ordered by creation time, newest first
// @Tags Quizzes
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /quizzes [get]
func (q *QuizController) ListQuizzes(c *gin.Context) {
	quizzes, err := q.quizService.ListQuizzes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quizzes, "Fetched quizzes successfully")
}

// GetQuiz returns the student-safe view of a quiz: questions without their
// answer keys.
func (q *QuizController) GetQuiz(c *gin.Context) {
	quiz, err := q.quizService.GetQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quiz, "Fetched quiz successfully")
}

// GetQuizAdmin returns the full quiz including answer keys, for the
// authoring UI.
func (q *QuizController) GetQuizAdmin(c *gin.Context) {
	quiz, err := q.quizService.GetQuizAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quiz, "Fetched quiz successfully")
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Validates every question and saves the quiz atomically
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param request body request_models.SaveQuizRequest true "Quiz payload"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /admin/quizzes [post]
func (q *QuizController) CreateQuiz(c *gin.Context) {
	var req request_models.SaveQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := q.quizService.CreateQuiz(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Quiz saved successfully")
}

func (q *QuizController) UpdateQuiz(c *gin.Context) {
	var req request_models.SaveQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := q.quizService.UpdateQuiz(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Quiz updated successfully")
}

func (q *QuizController) DeleteQuiz(c *gin.Context) {
	if err := q.quizService.DeleteQuiz(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Quiz deleted successfully")
}
