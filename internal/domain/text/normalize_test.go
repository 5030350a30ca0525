package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Hello WORLD", want: "hello world"},
		{name: "punctuation becomes space", input: "don't stop-me now!", want: "don t stop me now"},
		{name: "collapses whitespace", input: "  too    many   spaces  ", want: "too many spaces"},
		{name: "keeps digits", input: "Top 10 GOALS (2024)", want: "top 10 goals 2024"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "?!...", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestFoldLetters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "drops digits without spacing", input: "AI/ML-2024", want: "aiml"},
		{name: "keeps whitespace", input: "Best Goals Ever!", want: "best goals ever"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, FoldLetters(tt.input))
		})
	}
}

func TestContentTokens(t *testing.T) {
	tokens := ContentTokens("the quick brown fox is on a roll", 2)
	require.Equal(t, []string{"quick", "brown", "fox", "roll"}, tokens)

	require.Empty(t, ContentTokens("", 2))
	require.Empty(t, ContentTokens("a i", 2))
}

func TestIsStopWord(t *testing.T) {
	require.True(t, IsStopWord("the"))
	require.True(t, IsStopWord("don"))
	require.False(t, IsStopWord("gaming"))
}
