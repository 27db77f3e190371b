// Package seo scores article text against a fixed rubric. Scoring is a pure
// function of (body, primary keyword, secondary keywords): identical inputs
// always produce identical reports.
package seo

import (
	"fmt"
	"regexp"
	"strings"

	"seo-forge/internal/models"
)

// Rubric thresholds.
const (
	densityMin  = 1.0
	densityMax  = 2.0
	wordsMin    = 800
	wordsMax    = 2000
	headingsMin = 3
	maxAvgWords = 20.0
	maxScore    = 100
)

var headingLine = regexp.MustCompile(`(?m)^## (.+)$`)

// Weights holds the point allocation per rubric criterion. They are fixed
// product constants with no stated rationale; kept configurable in case of
// future recalibration.
type Weights struct {
	DensityOptimal   int // primary keyword density inside [1%, 2%]
	DensityLow       int
	DensityHigh      int
	LengthOptimal    int // word count inside [800, 2000]
	LengthLong       int
	LengthShort      int
	Headings         int // three or more ## headings
	HeadingsPartial  int // exactly two
	KeywordInHeading int
	SecondaryPresent int
	Readability      int
}

// DefaultWeights returns the standard 20/20/15/15/10/10 allocation.
func DefaultWeights() Weights {
	return Weights{
		DensityOptimal:   20,
		DensityLow:       10,
		DensityHigh:      5,
		LengthOptimal:    20,
		LengthLong:       15,
		LengthShort:      10,
		Headings:         15,
		HeadingsPartial:  10,
		KeywordInHeading: 15,
		SecondaryPresent: 10,
		Readability:      10,
	}
}

// Analyzer evaluates article bodies against the rubric.
type Analyzer struct {
	weights Weights
}

// NewAnalyzer creates an Analyzer with the default weights.
func NewAnalyzer() *Analyzer {
	return &Analyzer{weights: DefaultWeights()}
}

// NewAnalyzerWithWeights creates an Analyzer with a custom point allocation.
func NewAnalyzerWithWeights(w Weights) *Analyzer {
	return &Analyzer{weights: w}
}

// Score computes the 0-100 SEO score of body. Each criterion is evaluated
// independently; failed criteria append one issue and one matching
// recommendation, so the two lists always have equal length. An empty body
// short-circuits to score 0 with a single issue.
func (a *Analyzer) Score(body, primaryKeyword string, secondaryKeywords []string) *models.ScoreReport {
	totalWords := len(strings.Fields(body))
	if totalWords == 0 {
		return &models.ScoreReport{
			Score:  0,
			Issues: []string{"No content to analyze"},
		}
	}

	report := &models.ScoreReport{
		WordCount:       totalWords,
		Issues:          []string{},
		Recommendations: []string{},
	}
	score := 0

	// Keyword density
	count := 0
	if primaryKeyword != "" {
		count = strings.Count(strings.ToLower(body), strings.ToLower(primaryKeyword))
	}
	density := float64(count) / float64(totalWords) * 100
	report.KeywordDensity = density
	switch {
	case density >= densityMin && density <= densityMax:
		score += a.weights.DensityOptimal
	case density < densityMin:
		score += a.weights.DensityLow
		report.AddIssue(
			fmt.Sprintf("Primary keyword density is low (%.1f%%)", density),
			"Increase primary keyword usage naturally",
		)
	default:
		score += a.weights.DensityHigh
		report.AddIssue(
			fmt.Sprintf("Primary keyword density is high (%.1f%%)", density),
			"Reduce keyword density to avoid over-optimization",
		)
	}

	// Content length
	switch {
	case totalWords >= wordsMin && totalWords <= wordsMax:
		score += a.weights.LengthOptimal
	case totalWords > wordsMax:
		score += a.weights.LengthLong
	default:
		score += a.weights.LengthShort
		report.AddIssue(
			fmt.Sprintf("Content is short (%d words)", totalWords),
			"Consider adding more comprehensive information",
		)
	}

	// Heading structure
	headings := Headings(body)
	report.HeadingCount = len(headings)
	switch {
	case len(headings) >= headingsMin:
		score += a.weights.Headings
	case len(headings) == 2:
		score += a.weights.HeadingsPartial
	default:
		report.AddIssue(
			"Add more H2 headings for better structure",
			"Include 3-5 H2 headings for optimal structure",
		)
	}

	// Keyword in headings
	keywordInHeading := false
	loweredKeyword := strings.ToLower(primaryKeyword)
	if loweredKeyword != "" {
		for _, heading := range headings {
			if strings.Contains(strings.ToLower(heading), loweredKeyword) {
				keywordInHeading = true
				break
			}
		}
	}
	if keywordInHeading {
		score += a.weights.KeywordInHeading
	} else {
		report.AddIssue(
			"Primary keyword not found in headings",
			"Include primary keyword in at least one heading",
		)
	}

	// Secondary keywords, only scored when any were configured
	if len(secondaryKeywords) > 0 {
		loweredBody := strings.ToLower(body)
		found := false
		for _, kw := range secondaryKeywords {
			if strings.Contains(loweredBody, strings.ToLower(kw)) {
				found = true
				break
			}
		}
		if found {
			score += a.weights.SecondaryPresent
		} else {
			report.AddIssue(
				"Secondary keywords not found in content",
				"Include secondary keywords naturally in content",
			)
		}
	}

	// Readability: average sentence length
	sentenceCount := strings.Count(body, ".")
	if sentenceCount < 1 {
		sentenceCount = 1
	}
	if float64(totalWords)/float64(sentenceCount) <= maxAvgWords {
		score += a.weights.Readability
	} else {
		report.AddIssue(
			"Sentences are too long on average",
			"Use shorter sentences for better readability",
		)
	}

	if score > maxScore {
		score = maxScore
	}
	report.Score = score
	report.Grade = Grade(score)

	return report
}

// Headings returns the text of every ## heading line in body, in order.
func Headings(body string) []string {
	matches := headingLine.FindAllStringSubmatch(body, -1)
	headings := make([]string, 0, len(matches))
	for _, match := range matches {
		headings = append(headings, match[1])
	}
	return headings
}

// Grade maps a score to its letter grade. Monotonic: a higher score never
// yields a lower-ranked grade.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
