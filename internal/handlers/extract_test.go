package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"seo-forge/internal/metadata"

	"github.com/gin-gonic/gin"
)

func setupExtractRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewExtractHandler(metadata.NewExtractor())

	router := gin.New()
	router.POST("/api/extract", handler.FromURL)
	router.POST("/api/extract/text", handler.FromText)
	return router
}

func TestExtractFromURLEndpoint(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><head><title>Remote Page</title></head><body><p>Remote body text with enough words to count.</p></body></html>"))
	}))
	defer page.Close()

	router := setupExtractRouter()
	w := postJSON(t, router, "/api/extract", map[string]string{"url": page.URL})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Source struct {
			Title     string `json:"title"`
			Body      string `json:"body"`
			WordCount int    `json:"word_count"`
		} `json:"source"`
		ReadingTime int `json:"reading_time"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Source.Title != "Remote Page" {
		t.Errorf("Expected extracted title, got %q", resp.Source.Title)
	}
	if resp.ReadingTime != 1 {
		t.Errorf("Expected reading time 1, got %d", resp.ReadingTime)
	}
}

func TestExtractFromURLEndpointRejectsBadURLs(t *testing.T) {
	router := setupExtractRouter()

	for _, bad := range []string{"", "not a url", "ftp://example.com/file"} {
		w := postJSON(t, router, "/api/extract", map[string]string{"url": bad})
		if w.Code != http.StatusBadRequest {
			t.Errorf("URL %q: expected 400, got %d", bad, w.Code)
		}
	}
}

func TestExtractFromURLEndpointUpstreamFailure(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer page.Close()

	router := setupExtractRouter()
	w := postJSON(t, router, "/api/extract", map[string]string{"url": page.URL})
	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected 502 for an upstream failure, got %d", w.Code)
	}
}

func TestExtractFromTextEndpoint(t *testing.T) {
	router := setupExtractRouter()

	w := postJSON(t, router, "/api/extract/text", map[string]string{
		"text": "Pasted Headline\nThe rest of the pasted draft body goes here.",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Source struct {
			Title string `json:"title"`
		} `json:"source"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Source.Title != "Pasted Headline" {
		t.Errorf("Expected the first line promoted to title, got %q", resp.Source.Title)
	}
}
