// Package metadata turns external inputs (article URLs, pasted text) into
// SourceDocument records for the generator. Extraction is a single
// best-effort fetch; the generator never performs I/O itself.
package metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"seo-forge/internal/models"

	"golang.org/x/net/html"
)

const wordsPerMinute = 200.0

var whitespace = regexp.MustCompile(`\s+`)

// Extractor fetches article pages and extracts their title and text content.
type Extractor struct {
	httpClient *http.Client
}

// NewExtractor creates an extractor with sane fetch limits.
func NewExtractor() *Extractor {
	return &Extractor{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// ExtractFromURL fetches articleURL once and returns a SourceDocument built
// from its title and readable text. Network or parse failures are returned
// to the caller; there are no retries.
func (e *Extractor) ExtractFromURL(ctx context.Context, articleURL string) (*models.SourceDocument, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", articleURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "SEOForge/1.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	source := &models.SourceDocument{
		Title: extractTitle(doc),
		Body:  extractText(doc),
	}
	source.RecountWords()
	return source, nil
}

// FromText builds a SourceDocument from pasted text. It never fails: empty
// input yields an empty document, which downstream generation treats as the
// no-source code path. A short first line (100 chars or less) is promoted to
// the title.
func FromText(raw string) *models.SourceDocument {
	text := strings.TrimSpace(raw)
	source := &models.SourceDocument{Body: text}

	if lines := strings.SplitN(text, "\n", 2); len(lines) > 0 {
		first := strings.TrimSpace(lines[0])
		if first != "" && len(first) <= 100 {
			source.Title = first
		}
	}

	source.RecountWords()
	return source
}

// ReadingTime estimates reading minutes at 200 words per minute, minimum 1
// for any non-empty document.
func ReadingTime(wordCount int) int {
	if wordCount <= 0 {
		return 0
	}
	minutes := int(float64(wordCount)/wordsPerMinute + 0.5)
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// extractTitle prefers og:title, then the <title> element.
func extractTitle(doc *html.Node) string {
	if title := findMetaContent(doc, "property", "og:title"); title != "" {
		return title
	}

	var walk func(*html.Node) string
	walk = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				return strings.TrimSpace(n.FirstChild.Data)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if title := walk(c); title != "" {
				return title
			}
		}
		return ""
	}
	return walk(doc)
}

// findMetaContent returns the content attribute of the first <meta> whose
// attrKey attribute equals attrVal.
func findMetaContent(doc *html.Node, attrKey, attrVal string) string {
	var walk func(*html.Node) string
	walk = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.Data == "meta" {
			var matched bool
			var content string
			for _, attr := range n.Attr {
				if attr.Key == attrKey && attr.Val == attrVal {
					matched = true
				} else if attr.Key == "content" {
					content = attr.Val
				}
			}
			if matched && content != "" {
				return content
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if content := walk(c); content != "" {
				return content
			}
		}
		return ""
	}
	return walk(doc)
}

// skipped elements contribute no text to the extracted body.
var skippedElements = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"header": true,
	"footer": true,
	"aside":  true,
}

// extractText collects the page's visible text, whitespace-normalized.
func extractText(doc *html.Node) string {
	var collect func(*html.Node) string
	collect = func(n *html.Node) string {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return ""
		}

		var text strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			var chunk string
			if c.Type == html.TextNode {
				chunk = c.Data
			} else if c.Type == html.ElementNode {
				chunk = collect(c)
			}
			if chunk != "" {
				if text.Len() > 0 {
					text.WriteString(" ")
				}
				text.WriteString(chunk)
			}
		}
		return text.String()
	}

	raw := collect(findBody(doc))
	return whitespace.ReplaceAllString(strings.TrimSpace(raw), " ")
}

// findBody returns the <body> node, or the whole document when absent.
func findBody(doc *html.Node) *html.Node {
	var walk func(*html.Node) *html.Node
	walk = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "body" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	if body := walk(doc); body != nil {
		return body
	}
	return doc
}
