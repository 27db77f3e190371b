// Package generator is the SEO content generation engine: it turns a source
// document and a keyword configuration into a titled, sectioned,
// keyword-tuned article with a JSON-LD schema object and a score report.
package generator

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"seo-forge/internal/models"
	"seo-forge/internal/seo"

	"github.com/google/uuid"
)

// Generator assembles SEO-optimized articles from static templates. Template
// data is read-only after construction and the random source is mutex-guarded,
// so a single Generator is safe for concurrent use.
type Generator struct {
	templates map[string]ContentTemplate
	patterns  SEOPatterns
	pools     WordPools
	analyzer  *seo.Analyzer

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator with time-seeded randomness.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed creates a Generator whose template and word-pool choices are
// pinned by seed, so tests can assert exact output.
func NewWithSeed(seed int64) *Generator {
	return &Generator{
		templates: loadContentTemplates(),
		patterns:  loadSEOPatterns(),
		pools:     loadWordPools(),
		analyzer:  seo.NewAnalyzer(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// pick returns a pseudo-random element of options.
func (g *Generator) pick(options []string) string {
	return options[g.intn(len(options))]
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

// GenerateArticle runs the full generation pipeline: title, meta description,
// sections, assembly, density optimization, schema markup and scoring.
// The only hard failure is a missing primary keyword; every other anomaly
// degrades to a safe default. Neither input is mutated.
func (g *Generator) GenerateArticle(source models.SourceDocument, config models.GenerationConfig) (*models.Article, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	primaryKeyword := strings.TrimSpace(config.PrimaryKeyword)
	now := time.Now()

	title := g.GenerateTitle(primaryKeyword, config.ContentType)
	metaDescription := g.GenerateMetaDescription(primaryKeyword, config.ContentType)

	sections := g.GenerateSections(source, config)
	body := AssembleBody(sections)
	body = OptimizeKeywordDensity(body, primaryKeyword, config.SecondaryKeywords)

	schemaJSON, err := marshalSchema(buildSchema(title, metaDescription, primaryKeyword, now))
	if err != nil {
		return nil, err
	}

	report := g.analyzer.Score(body, primaryKeyword, config.SecondaryKeywords)

	return &models.Article{
		ID:                uuid.New(),
		Title:             title,
		MetaDescription:   metaDescription,
		Body:              body,
		SchemaJSON:        schemaJSON,
		PrimaryKeyword:    primaryKeyword,
		SecondaryKeywords: config.SecondaryKeywords,
		ContentType:       config.ContentType,
		Tone:              config.Tone,
		WordCount:         len(strings.Fields(body)),
		Score:             report.Score,
		Grade:             report.Grade,
		GeneratedAt:       now,
		Report:            report,
	}, nil
}

// GenerateTitle resolves a pseudo-randomly chosen title pattern. Titles over
// 60 characters are replaced wholesale with a short fallback pattern.
func (g *Generator) GenerateTitle(primaryKeyword, contentType string) string {
	pattern := g.pick(g.patterns.TitlePatterns)

	title := Resolve(pattern, map[string]string{
		"keyword":   primaryKeyword,
		"year":      strconv.Itoa(time.Now().Year()),
		"number":    strconv.Itoa(5 + g.intn(11)),
		"adjective": g.pick(poolFor(g.pools.Adjectives, contentType)),
		"action":    g.pick(poolFor(g.pools.Actions, contentType)),
	})

	if len(title) > 60 {
		title = primaryKeyword + ": " + g.pick([]string{"Complete Guide", "Expert Tips", "Best Practices"})
	}
	return title
}

// GenerateMetaDescription resolves a pseudo-randomly chosen meta pattern,
// enforcing the 160-character budget with a keyword-bearing fallback.
func (g *Generator) GenerateMetaDescription(primaryKeyword, contentType string) string {
	pattern := g.pick(g.patterns.MetaPatterns)

	meta := Resolve(pattern, map[string]string{
		"keyword":            primaryKeyword,
		"benefit":            g.pick(poolFor(g.pools.Benefits, contentType)),
		"timeframe":          g.pick(g.pools.Timeframes),
		"call_to_action":     g.pick(g.pools.CTAs),
		"adjective":          g.pick([]string{"proven", "effective", "powerful", "simple"}),
		"result":             "deliver real results",
		"additional_benefit": "save time",
	})

	if len(meta) > 160 {
		meta = "Learn " + primaryKeyword + " with our comprehensive guide. Expert tips and proven strategies to improve your results. Get started today."
	}
	return meta
}

// buildSchema creates the JSON-LD Article object for the generated piece.
func buildSchema(title, description, keyword string, now time.Time) models.SchemaMarkup {
	publisher := models.SchemaOrganization{Type: "Organization", Name: "SEO Forge"}
	timestamp := now.Format(time.RFC3339)
	return models.SchemaMarkup{
		Context:       "https://schema.org",
		Type:          "Article",
		Headline:      title,
		Description:   description,
		Keywords:      keyword,
		Author:        publisher,
		Publisher:     publisher,
		DatePublished: timestamp,
		DateModified:  timestamp,
	}
}

func marshalSchema(schema models.SchemaMarkup) (string, error) {
	data, err := json.Marshal(schema)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
