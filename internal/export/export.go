// Package export renders finished articles into downloadable formats.
// Exporters read articles, never mutate them.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"seo-forge/internal/models"

	"github.com/russross/blackfriday/v2"
)

// Markdown renders the article as a standalone Markdown document with the
// title as H1 and the meta description called out above the body.
func Markdown(article *models.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", article.Title)
	if article.MetaDescription != "" {
		fmt.Fprintf(&b, "**Meta Description:** %s\n\n", article.MetaDescription)
	}
	b.WriteString(article.Body)
	b.WriteString("\n")
	return b.String()
}

// HTML renders the article body through blackfriday and wraps it in a
// minimal page carrying the SEO meta tags and the JSON-LD schema script.
func HTML(article *models.Article) string {
	extensions := blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags,
	})
	body := blackfriday.Run([]byte(article.Body), blackfriday.WithRenderer(renderer), blackfriday.WithExtensions(extensions))

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("    <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", htmlEscape(article.Title))
	fmt.Fprintf(&b, "    <meta name=\"description\" content=\"%s\">\n", htmlEscape(article.MetaDescription))
	fmt.Fprintf(&b, "    <meta name=\"keywords\" content=\"%s\">\n", htmlEscape(article.PrimaryKeyword))
	if article.SchemaJSON != "" {
		fmt.Fprintf(&b, "    <script type=\"application/ld+json\">%s</script>\n", article.SchemaJSON)
	}
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "    <h1>%s</h1>\n", htmlEscape(article.Title))
	b.Write(body)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// Bundle is the machine-readable export: the article, its current score
// report and an export timestamp.
type Bundle struct {
	Article    *models.Article     `json:"article"`
	Report     *models.ScoreReport `json:"seo_report,omitempty"`
	ExportedAt time.Time           `json:"exported_at"`
}

// JSON marshals the full export bundle, indented.
func JSON(article *models.Article, report *models.ScoreReport) ([]byte, error) {
	return json.MarshalIndent(Bundle{
		Article:    article,
		Report:     report,
		ExportedAt: time.Now(),
	}, "", "  ")
}

// Schema pretty-prints the article's stored JSON-LD object.
func Schema(article *models.Article) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(article.SchemaJSON), "", "  "); err != nil {
		return nil, fmt.Errorf("invalid schema markup: %w", err)
	}
	return buf.Bytes(), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9]+`)

// Filename derives a download filename from the article title.
func Filename(article *models.Article, extension string) string {
	slug := unsafeFilenameChars.ReplaceAllString(strings.ToLower(article.Title), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		slug = "article"
	}
	return slug + "." + extension
}

func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}
