package handlers

import (
	"net/http"

	"seo-forge/internal/export"
	"seo-forge/internal/services"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves articles in downloadable formats
type ExportHandler struct {
	articles *services.ArticlesService
}

// NewExportHandler creates a new export handler
func NewExportHandler(articles *services.ArticlesService) *ExportHandler {
	return &ExportHandler{articles: articles}
}

// Export handles GET /api/articles/:id/export?format=markdown|html|json|schema
func (h *ExportHandler) Export(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.articles.Get(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	format := c.DefaultQuery("format", "markdown")
	switch format {
	case "markdown":
		c.Header("Content-Disposition", "attachment; filename="+export.Filename(article, "md"))
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(export.Markdown(article)))

	case "html":
		c.Header("Content-Disposition", "attachment; filename="+export.Filename(article, "html"))
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(export.HTML(article)))

	case "json":
		data, err := export.JSON(article, article.Report)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export article", "details": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+export.Filename(article, "json"))
		c.Data(http.StatusOK, "application/json", data)

	case "schema":
		data, err := export.Schema(article)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export schema", "details": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/ld+json", data)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown export format: " + format})
	}
}
