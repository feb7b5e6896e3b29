package extract

import (
	"regexp"
	"strings"

	"github.com/hyperwork/susume/internal/taxonomy"
)

// skillToken matches skill-shaped tokens in resume text. The character class
// keeps c++, c#, and node.js intact instead of splitting on punctuation.
var skillToken = regexp.MustCompile(`[a-z0-9][a-z0-9+#.]*`)

// Skills returns the catalog skills mentioned in text, in catalog order.
// Single-token skill names are matched against the tokenized text; multi-word
// names are matched as substrings of the lowercased text.
func Skills(text string, catalog *taxonomy.Catalog) []string {
	if text == "" || catalog == nil {
		return nil
	}
	lower := strings.ToLower(text)

	tokens := make(map[string]bool)
	for _, t := range skillToken.FindAllString(lower, -1) {
		// A sentence-final "node.js." tokenizes with a trailing dot.
		t = strings.TrimRight(t, ".")
		if t != "" {
			tokens[t] = true
		}
	}

	var found []string
	for _, name := range catalog.Names() {
		if strings.ContainsRune(name, ' ') {
			if strings.Contains(lower, name) {
				found = append(found, canonicalName(catalog, name))
			}
			continue
		}
		if tokens[name] {
			found = append(found, canonicalName(catalog, name))
		}
	}
	return found
}

func canonicalName(catalog *taxonomy.Catalog, key string) string {
	if s, ok := catalog.Lookup(key); ok {
		return s.Name
	}
	return key
}
