package models

import "strings"

// Content type identifiers. Each selects a template family in the generator.
const (
	ContentTypeBlogPost    = "blog_post"
	ContentTypeReview      = "review"
	ContentTypeHowToGuide  = "how_to_guide"
	ContentTypeLandingPage = "landing_page"
)

// Tone identifiers accepted in a GenerationConfig.
const (
	ToneProfessional   = "professional"
	ToneConversational = "conversational"
	ToneAuthoritative  = "authoritative"
	ToneFriendly       = "friendly"
	ToneTechnical      = "technical"
	TonePersuasive     = "persuasive"
)

// SourceDocument is the raw material handed to the generator by the
// extraction collaborators (URL scraper, transcripts, manual text box).
// It is never mutated by the core.
type SourceDocument struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	WordCount int    `json:"word_count"`
}

// RecountWords recomputes WordCount as the whitespace token count of Body.
func (d *SourceDocument) RecountWords() {
	d.WordCount = len(strings.Fields(d.Body))
}

// GenerationConfig carries the user's keyword and style choices into one
// generation call. Read-only input.
type GenerationConfig struct {
	PrimaryKeyword    string   `json:"primary_keyword"`
	SecondaryKeywords []string `json:"secondary_keywords"`
	ContentType       string   `json:"content_type"`
	Tone              string   `json:"tone"`
	TargetLength      int      `json:"target_length"`
}

// Validate enforces the only hard precondition of generation: a non-empty
// primary keyword. Everything else degrades to a safe default downstream.
func (c *GenerationConfig) Validate() error {
	if strings.TrimSpace(c.PrimaryKeyword) == "" {
		return ErrMissingPrimaryKeyword
	}
	return nil
}

// GeneratedSection is one ordered slice of the in-progress article. Sections
// only exist during generation and are flattened into Article.Body.
type GeneratedSection struct {
	Role    string `json:"role"`
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// ScoreReport is the rubric-based SEO evaluation of an article body. It is a
// pure function of (body, primary keyword, secondary keywords) and is
// recomputed on demand rather than persisted.
type ScoreReport struct {
	Score           int      `json:"score"`
	Grade           string   `json:"grade"`
	KeywordDensity  float64  `json:"keyword_density"`
	WordCount       int      `json:"word_count"`
	HeadingCount    int      `json:"heading_count"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// AddIssue records a failed criterion as an issue with its matching
// recommendation, keeping the two lists the same length.
func (r *ScoreReport) AddIssue(issue, recommendation string) {
	r.Issues = append(r.Issues, issue)
	r.Recommendations = append(r.Recommendations, recommendation)
}

// SchemaOrganization is the author/publisher node of the JSON-LD object.
type SchemaOrganization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// SchemaMarkup is the JSON-LD Article object emitted alongside generated text.
type SchemaMarkup struct {
	Context       string             `json:"@context"`
	Type          string             `json:"@type"`
	Headline      string             `json:"headline"`
	Description   string             `json:"description"`
	Keywords      string             `json:"keywords"`
	Author        SchemaOrganization `json:"author"`
	Publisher     SchemaOrganization `json:"publisher"`
	DatePublished string             `json:"datePublished"`
	DateModified  string             `json:"dateModified"`
}
