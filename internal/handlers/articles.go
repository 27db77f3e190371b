// Package handlers exposes the generation engine over HTTP.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"seo-forge/internal/auth"
	"seo-forge/internal/models"
	"seo-forge/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ArticlesHandler handles HTTP requests for article generation and management
type ArticlesHandler struct {
	articles *services.ArticlesService
}

// NewArticlesHandler creates a new articles handler
func NewArticlesHandler(articles *services.ArticlesService) *ArticlesHandler {
	return &ArticlesHandler{articles: articles}
}

// GenerateRequest is the payload for POST /api/articles/generate.
type GenerateRequest struct {
	Source models.SourceDocument   `json:"source"`
	Config models.GenerationConfig `json:"config"`
}

// Generate handles POST /api/articles/generate
func (h *ArticlesHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	article, err := h.articles.Generate(req.Source, req.Config, auth.UserID(c))
	if err != nil {
		if errors.Is(err, models.ErrMissingPrimaryKeyword) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "missing_primary_keyword",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate article",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, article)
}

// List handles GET /api/articles
func (h *ArticlesHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	if limit > 100 {
		limit = 100
	}
	if limit < 1 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * limit

	articles, total, err := h.articles.List(auth.UserID(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to retrieve articles",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// Get handles GET /api/articles/:id
func (h *ArticlesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.articles.Get(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Update handles PUT /api/articles/:id. Edits trigger a word recount and a
// rescore against the stored keywords.
func (h *ArticlesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var edit services.ArticleEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	article, err := h.articles.Update(id, edit)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /api/articles/:id
func (h *ArticlesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.articles.Delete(id); err != nil {
		respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ScoreRequest is the payload for POST /api/articles/score.
type ScoreRequest struct {
	Body              string   `json:"body"`
	PrimaryKeyword    string   `json:"primary_keyword"`
	SecondaryKeywords []string `json:"secondary_keywords"`
}

// Score handles POST /api/articles/score: stateless scoring of arbitrary text
func (h *ArticlesHandler) Score(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	report := h.articles.ScoreText(req.Body, req.PrimaryKeyword, req.SecondaryKeywords)
	c.JSON(http.StatusOK, report)
}

// HealthCheck handles GET /health
func (h *ArticlesHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "seo-forge",
	})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrArticleNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal error",
		"details": err.Error(),
	})
}
