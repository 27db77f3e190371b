package handlers

import (
	"errors"
	"log"
	"net/http"

	"seo-forge/internal/auth"
	"seo-forge/internal/models"
	"seo-forge/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The HTTP layer already applies permissive CORS; mirror that here.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// progressFrame is one message on the generation stream.
type progressFrame struct {
	Stage    string          `json:"stage"`
	Progress int             `json:"progress"`
	Error    string          `json:"error,omitempty"`
	Article  *models.Article `json:"article,omitempty"`
}

// GenerateStreamHandler streams generation progress over a websocket
type GenerateStreamHandler struct {
	articles *services.ArticlesService
}

// NewGenerateStreamHandler creates a new stream handler
func NewGenerateStreamHandler(articles *services.ArticlesService) *GenerateStreamHandler {
	return &GenerateStreamHandler{articles: articles}
}

// Stream handles GET /api/ws/generate. The client sends one GenerateRequest
// as JSON; the server replies with ordered progress frames and finishes with
// either the generated article or a terminal error frame, then closes.
func (h *GenerateStreamHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade websocket: %v", err)
		return
	}
	defer conn.Close()

	var req GenerateRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(progressFrame{Stage: "error", Error: "Invalid request payload"})
		return
	}

	stages := []progressFrame{
		{Stage: "structure", Progress: 20},
		{Stage: "sections", Progress: 40},
		{Stage: "optimizing", Progress: 60},
		{Stage: "scoring", Progress: 80},
	}
	for _, frame := range stages {
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
	}

	article, err := h.articles.Generate(req.Source, req.Config, auth.UserID(c))
	if err != nil {
		frame := progressFrame{Stage: "error", Error: err.Error()}
		if errors.Is(err, models.ErrMissingPrimaryKeyword) {
			frame.Error = "missing_primary_keyword"
		}
		conn.WriteJSON(frame)
		return
	}

	conn.WriteJSON(progressFrame{Stage: "done", Progress: 100, Article: article})
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
