package generator

import (
	"regexp"
	"strings"
	"unicode"
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_]+)\}`)

// Resolve substitutes every bound {name} placeholder in template in a single
// pass. Placeholders without a binding are left as literal text; replacement
// values are never re-scanned, so a value containing a brace token cannot
// trigger a second substitution.
func Resolve(template string, bindings map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := bindings[name]; ok {
			return value
		}
		return match
	})
}

// titleCase capitalizes the first letter of every whitespace-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
