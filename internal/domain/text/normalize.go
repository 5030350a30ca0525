package text

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and keeps only letters and digits, turning every
// punctuation run into a single space and collapsing whitespace.
func Normalize(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			builder.WriteRune(' ')
			lastSpace = true
		}
	}
	normalized := strings.TrimSpace(builder.String())
	return strings.Join(strings.Fields(normalized), " ")
}

// FoldLetters lowercases s and drops every rune that is not a letter or
// whitespace, without substituting a space. Digits and punctuation vanish
// entirely, so "AI/ML-2024" becomes "aiml".
func FoldLetters(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// ContentTokens splits already-normalized text into tokens of at least
// minLen runes with stop words removed. Token order is preserved so
// callers can form n-grams over the result.
func ContentTokens(normalized string, minLen int) []string {
	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < minLen {
			continue
		}
		if IsStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
