package seo

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// buildScoredBody constructs a body with known rubric characteristics:
// three ## headings (one carrying the keyword), one hundred 15-word
// sentences, the given number of keyword mentions and one secondary keyword.
func buildScoredBody(keyword string, keywordSentences int) string {
	var b strings.Builder
	b.WriteString("## " + keyword + " overview\n\n")
	b.WriteString("## getting started\n\n")
	b.WriteString("## closing thoughts\n\n")

	for i := 0; i < 100; i++ {
		if i < keywordSentences {
			fmt.Fprintf(&b, "Working with %s takes steady practice and a clear plan from day one onward here.\n", keyword)
		} else if i == 99 {
			b.WriteString("Pairing this plan with blogging habits keeps the whole routine fresh and easy to follow.\n")
		} else {
			b.WriteString("Alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu nu xi omicron.\n")
		}
	}
	return b.String()
}

func TestScorePerfectBody(t *testing.T) {
	// 3 headings of 3 words plus 100 sentences of 15 words = 1509 words.
	// 17 sentence mentions + 1 heading mention = 18 occurrences, 1.2% density.
	// 100 periods give an average sentence length of ~15 words.
	body := buildScoredBody("seo", 17)

	analyzer := NewAnalyzer()
	report := analyzer.Score(body, "seo", []string{"blogging"})

	if report.Score != 100 {
		t.Errorf("Expected score 100, got %d (issues: %v)", report.Score, report.Issues)
	}
	if report.Grade != "A+" {
		t.Errorf("Expected grade A+, got %s", report.Grade)
	}
	if report.HeadingCount != 3 {
		t.Errorf("Expected 3 headings, got %d", report.HeadingCount)
	}
	if len(report.Issues) != 0 {
		t.Errorf("Expected no issues, got %v", report.Issues)
	}
	if report.KeywordDensity < 1.0 || report.KeywordDensity > 2.0 {
		t.Errorf("Expected density inside [1.0, 2.0], got %.2f", report.KeywordDensity)
	}
}

func TestScoreEmptyBody(t *testing.T) {
	report := NewAnalyzer().Score("", "seo", nil)

	if report.Score != 0 {
		t.Errorf("Expected score 0, got %d", report.Score)
	}
	if len(report.Issues) != 1 || report.Issues[0] != "No content to analyze" {
		t.Errorf("Expected single 'No content to analyze' issue, got %v", report.Issues)
	}
	// Short-circuit: nothing else is populated.
	if report.Grade != "" || report.WordCount != 0 || report.HeadingCount != 0 || report.KeywordDensity != 0 {
		t.Errorf("Expected default values in short-circuited report, got %+v", report)
	}
}

func TestScoreDeterministic(t *testing.T) {
	body := buildScoredBody("content marketing", 20)
	analyzer := NewAnalyzer()

	first := analyzer.Score(body, "content marketing", []string{"blogging"})
	second := analyzer.Score(body, "content marketing", []string{"blogging"})

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Scoring is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestScoreIssuesMatchRecommendations(t *testing.T) {
	bodies := []string{
		"Short text without the keyword at all. It has a period.",
		buildScoredBody("seo", 0),
		strings.Repeat("seo ", 300) + ".",
	}

	analyzer := NewAnalyzer()
	for _, body := range bodies {
		report := analyzer.Score(body, "seo", []string{"missing keyword"})
		if len(report.Issues) != len(report.Recommendations) {
			t.Errorf("Issues and recommendations should pair 1:1, got %d issues and %d recommendations",
				len(report.Issues), len(report.Recommendations))
		}
	}
}

func TestScoreLowDensityFlagged(t *testing.T) {
	body := buildScoredBody("seo", 0) // only the heading mention
	report := NewAnalyzer().Score(body, "seo", nil)

	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "density is low") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a low-density issue, got %v", report.Issues)
	}
}

func TestScoreHighDensityFlagged(t *testing.T) {
	// 300 repeats of the keyword is far above the 2% ceiling.
	body := "## seo\n\n" + strings.Repeat("seo is seo and more seo. ", 50)
	report := NewAnalyzer().Score(body, "seo", nil)

	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "density is high") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a high-density issue, got %v", report.Issues)
	}
}

func TestHeadingsRoundTrip(t *testing.T) {
	body := "intro text\n\n## First\n\ncontent\n\n### not an h2\n\n## Second\n\nmore\n\n## Third\n\nend"
	report := NewAnalyzer().Score(body, "first", nil)

	lines := 0
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "## ") {
			lines++
		}
	}
	if report.HeadingCount != lines {
		t.Errorf("HeadingCount %d does not match literal '^## ' line count %d", report.HeadingCount, lines)
	}
	if report.HeadingCount != 3 {
		t.Errorf("Expected 3 headings, got %d", report.HeadingCount)
	}
}

func TestGradeMapping(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "A+"},
		{90, "A+"},
		{89, "A"},
		{80, "A"},
		{79, "B"},
		{70, "B"},
		{69, "C"},
		{60, "C"},
		{59, "D"},
		{50, "D"},
		{49, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.expected {
			t.Errorf("Grade(%d) = %s, expected %s", tt.score, got, tt.expected)
		}
	}
}

func TestGradeMonotonic(t *testing.T) {
	rank := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "A": 4, "A+": 5}

	previous := Grade(0)
	for score := 1; score <= 100; score++ {
		current := Grade(score)
		if rank[current] < rank[previous] {
			t.Fatalf("Grade is not monotonic: Grade(%d)=%s ranked below Grade(%d)=%s", score, current, score-1, previous)
		}
		previous = current
	}
}

func TestScoreSecondaryKeywordsOptional(t *testing.T) {
	body := buildScoredBody("seo", 17)
	analyzer := NewAnalyzer()

	// No secondary keywords configured: criterion is skipped entirely, so the
	// capped total can still be reached without the 10 points.
	report := analyzer.Score(body, "seo", nil)
	for _, issue := range report.Issues {
		if strings.Contains(issue, "Secondary") {
			t.Errorf("Secondary keyword issue raised with no secondary keywords configured: %v", report.Issues)
		}
	}

	// Configured but absent: flagged.
	report = analyzer.Score(body, "seo", []string{"nowhere-to-be-found"})
	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "Secondary keywords not found") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected secondary keyword issue, got %v", report.Issues)
	}
}
