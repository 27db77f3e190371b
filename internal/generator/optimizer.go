package generator

import (
	"fmt"
	"strings"
)

// Primary keyword density below this triggers phrase insertion.
const minKeywordDensity = 1.0

// OptimizeKeywordDensity nudges the primary-keyword frequency of body toward
// the target band. When density is below 1%, up to two keyword-bearing
// phrases not already present are spliced into the paragraph nearest the
// midpoint; heading lines are never touched. This is a single best-effort
// pass: density is not re-measured after insertion, so landing inside the
// band is not guaranteed.
func OptimizeKeywordDensity(body, primaryKeyword string, secondaryKeywords []string) string {
	totalWords := len(strings.Fields(body))
	if totalWords == 0 {
		return body
	}

	if KeywordDensity(body, primaryKeyword) >= minKeywordDensity {
		return body
	}

	variations := []string{
		"effective " + primaryKeyword,
		primaryKeyword + " strategies",
		"successful " + primaryKeyword,
		primaryKeyword + " implementation",
	}

	inserted := 0
	for _, variation := range variations {
		if inserted == 2 {
			break
		}
		if strings.Contains(strings.ToLower(body), strings.ToLower(variation)) {
			continue
		}

		paragraphs := strings.Split(body, "\n\n")
		idx := insertionIndex(paragraphs)
		if idx < 0 {
			break
		}
		paragraphs[idx] += fmt.Sprintf(" When it comes to %s, consistency is key.", variation)
		body = strings.Join(paragraphs, "\n\n")
		inserted++
	}

	return body
}

// insertionIndex picks the paragraph nearest the midpoint that is not a
// heading line, scanning forward then backward. Returns -1 when every
// paragraph is a heading.
func insertionIndex(paragraphs []string) int {
	mid := len(paragraphs) / 2
	for i := mid; i < len(paragraphs); i++ {
		if !isHeading(paragraphs[i]) {
			return i
		}
	}
	for i := mid - 1; i >= 0; i-- {
		if !isHeading(paragraphs[i]) {
			return i
		}
	}
	return -1
}

func isHeading(paragraph string) bool {
	return strings.HasPrefix(strings.TrimSpace(paragraph), "#")
}

// KeywordDensity reports the case-insensitive occurrence count of keyword in
// body as a percentage of its whitespace-delimited word count.
func KeywordDensity(body, keyword string) float64 {
	totalWords := len(strings.Fields(body))
	if totalWords == 0 || keyword == "" {
		return 0
	}
	count := strings.Count(strings.ToLower(body), strings.ToLower(keyword))
	return float64(count) / float64(totalWords) * 100
}
