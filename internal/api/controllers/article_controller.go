package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"culturehub/internal/models/request_models"
	"culturehub/internal/services"
	"culturehub/pkg/utils"
)

type ArticleController struct {
	articleService services.ArticleServiceInterface
}

func NewArticleController(articleService services.ArticleServiceInterface) *ArticleController {
	return &ArticleController{
		articleService: articleService,
	}
}

// ListArticles godoc
// @Summary List articles
// @Description Articles ordered by creation time, newest first
// @Tags Articles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /articles [get]
func (a *ArticleController) ListArticles(c *gin.Context) {
	articles, err := a.articleService.ListArticles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, articles, "Fetched articles successfully")
}

func (a *ArticleController) GetArticle(c *gin.Context) {
	article, err := a.articleService.GetArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, article, "Fetched article successfully")
}

func (a *ArticleController) CreateArticle(c *gin.Context) {
	var req request_models.SaveArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := a.articleService.CreateArticle(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Article saved successfully")
}

func (a *ArticleController) UpdateArticle(c *gin.Context) {
	var req request_models.SaveArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.articleService.UpdateArticle(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Article updated successfully")
}

func (a *ArticleController) DeleteArticle(c *gin.Context) {
	if err := a.articleService.DeleteArticle(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Article deleted successfully")
}

// GenerateDraft godoc
// @Summary Generate an article draft with AI
// @Description Produces a draft title, body and image hint from a topic prompt
// @Tags Articles
// @Accept json
// @Produce json
// @Param request body request_models.GenerateArticleRequest true "Draft topic"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /admin/articles/generate [post]
func (a *ArticleController) GenerateDraft(c *gin.Context) {
	var req request_models.GenerateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	draft, err := a.articleService.GenerateDraft(c.Request.Context(), req.Topic)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, draft, "Draft generated successfully")
}
