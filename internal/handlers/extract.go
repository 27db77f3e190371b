package handlers

import (
	"net/http"
	"net/url"

	"seo-forge/internal/metadata"

	"github.com/gin-gonic/gin"
)

// ExtractHandler turns URLs and pasted text into source documents
type ExtractHandler struct {
	extractor *metadata.Extractor
}

// NewExtractHandler creates a new extract handler
func NewExtractHandler(extractor *metadata.Extractor) *ExtractHandler {
	return &ExtractHandler{extractor: extractor}
}

type extractURLRequest struct {
	URL string `json:"url"`
}

// FromURL handles POST /api/extract
func (h *ExtractHandler) FromURL(c *gin.Context) {
	var req extractURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	parsed, err := url.ParseRequestURI(req.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL"})
		return
	}

	source, err := h.extractor.ExtractFromURL(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to extract content",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source":       source,
		"reading_time": metadata.ReadingTime(source.WordCount),
	})
}

type extractTextRequest struct {
	Text string `json:"text"`
}

// FromText handles POST /api/extract/text
func (h *ExtractHandler) FromText(c *gin.Context) {
	var req extractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	source := metadata.FromText(req.Text)
	c.JSON(http.StatusOK, gin.H{
		"source":       source,
		"reading_time": metadata.ReadingTime(source.WordCount),
	})
}
