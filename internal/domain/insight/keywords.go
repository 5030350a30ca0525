package insight

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/yanqian/trendlens/internal/domain/record"
	"github.com/yanqian/trendlens/internal/domain/text"
)

const defaultTopKeywords = 15

// KeywordCount is one ranked title word.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopKeywords counts title words: letters only (digits and punctuation
// dropped outright), words longer than two runes, stop words removed.
// Ranked by count descending with alphabetical tie-break, truncated to
// limit (15 when limit is not positive).
func TopKeywords(videos []record.Video, limit int) []KeywordCount {
	if limit <= 0 {
		limit = defaultTopKeywords
	}

	counts := make(map[string]int)
	for _, v := range videos {
		for _, word := range strings.Fields(text.FoldLetters(v.Title)) {
			if utf8.RuneCountInString(word) <= 2 || text.IsStopWord(word) {
				continue
			}
			counts[word]++
		}
	}

	ranked := make([]KeywordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, KeywordCount{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Word < ranked[j].Word
		}
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
