// Package utils holds small shared helpers: logging, float math, text normalization.
package utils

import "strings"

// NormalizeToken lowercases and trims a skill token. Equality of skill tokens
// is defined over this normalized form.
func NormalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeTokens normalizes every token in order. Duplicates are preserved.
func NormalizeTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = NormalizeToken(t)
	}
	return out
}

// TruncateForLog shortens s to at most n runes for log output.
func TruncateForLog(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
