package generator

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		template string
		bindings map[string]string
		expected string
	}{
		{
			name:     "single token",
			template: "Guide to {keyword}",
			bindings: map[string]string{"keyword": "seo"},
			expected: "Guide to seo",
		},
		{
			name:     "repeated token",
			template: "{keyword} and {keyword} again",
			bindings: map[string]string{"keyword": "seo"},
			expected: "seo and seo again",
		},
		{
			name:     "unknown token left literal",
			template: "{adjective} {keyword} Tips for {target_audience}",
			bindings: map[string]string{"adjective": "Proven", "keyword": "seo"},
			expected: "Proven seo Tips for {target_audience}",
		},
		{
			name:     "value containing a token is not re-resolved",
			template: "{a} {b}",
			bindings: map[string]string{"a": "{b}", "b": "two"},
			expected: "{b} two",
		},
		{
			name:     "no tokens",
			template: "plain text",
			bindings: map[string]string{"keyword": "seo"},
			expected: "plain text",
		},
		{
			name:     "empty binding value",
			template: "before {gap} after",
			bindings: map[string]string{"gap": ""},
			expected: "before  after",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Resolve(test.template, test.bindings); got != test.expected {
				t.Errorf("Resolve(%q) = %q, expected %q", test.template, got, test.expected)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"content marketing", "Content Marketing"},
		{"seo", "Seo"},
		{"already Title", "Already Title"},
		{"", ""},
		// Fields-based splitting collapses runs of whitespace.
		{"  spaced  words ", "Spaced Words"},
	}

	for _, test := range tests {
		if got := titleCase(test.input); got != test.expected {
			t.Errorf("titleCase(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
