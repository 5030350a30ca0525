package insight

import (
	"strings"

	"github.com/yanqian/trendlens/internal/domain/text"
)

// TitleSentiment scores one title in [-1, 1]: the mean weight of the
// tokens found in the polarity lexicon, 0 when none match.
func TitleSentiment(title string) float64 {
	var sum float64
	matched := 0
	for _, token := range strings.Fields(text.Normalize(title)) {
		weight, ok := polarity[token]
		if !ok {
			continue
		}
		sum += weight
		matched++
	}
	if matched == 0 {
		return 0
	}
	return clamp(sum/float64(matched), -1, 1)
}

// CorpusSentiment averages TitleSentiment across all titles, including
// the neutral zeros, so a corpus of unscored titles stays at 0.
func CorpusSentiment(titles []string) float64 {
	if len(titles) == 0 {
		return 0
	}
	var sum float64
	for _, title := range titles {
		sum += TitleSentiment(title)
	}
	return sum / float64(len(titles))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
