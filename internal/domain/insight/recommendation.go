// Package insight turns the temporal and category aggregates into the
// human-facing pieces of a trending report: the upload recommendation,
// keyword counts, scatter points and title sentiment.
package insight

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/yanqian/trendlens/internal/domain/category"
	"github.com/yanqian/trendlens/internal/domain/temporal"
)

const (
	fallbackHour      = 12
	fallbackHourLabel = "12PM"
	fallbackCategory  = "Various Categories"
	topHourCount      = 3
)

// Recommendation is the synthesized upload advice for a region.
type Recommendation struct {
	BestHour             int                   `json:"bestHour"`
	BestHourLabel        string                `json:"bestHourLabel"`
	BestHourAverageViews int64                 `json:"bestHourAverageViews"`
	TopThreeHours        []temporal.HourBucket `json:"topThreeHours"`
	BestCategoryID       string                `json:"bestCategoryId,omitempty"`
	BestCategoryName     string                `json:"bestCategoryName"`
	RecommendationText   string                `json:"recommendationText"`
}

// Synthesize picks the strongest upload hour and category from the
// aggregates. Buckets without videos never win: when no bucket has any,
// the noon fallback is used and the hour ranking falls back to the full
// 24-bucket set.
func Synthesize(buckets []temporal.HourBucket, categories []category.Performance) Recommendation {
	rec := Recommendation{
		BestHour:         fallbackHour,
		BestHourLabel:    fallbackHourLabel,
		BestCategoryName: fallbackCategory,
	}

	qualifying := make([]temporal.HourBucket, 0, len(buckets))
	for _, b := range buckets {
		if b.VideoCount > 0 {
			qualifying = append(qualifying, b)
		}
	}
	source := qualifying
	if len(source) == 0 {
		source = buckets
	}
	ranked := append([]temporal.HourBucket(nil), source...)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AverageViews == ranked[j].AverageViews {
			return ranked[i].Hour < ranked[j].Hour
		}
		return ranked[i].AverageViews > ranked[j].AverageViews
	})
	if len(qualifying) > 0 {
		rec.BestHour = ranked[0].Hour
		rec.BestHourLabel = ranked[0].HourLabel
		rec.BestHourAverageViews = ranked[0].AverageViews
	}
	if len(ranked) > topHourCount {
		ranked = ranked[:topHourCount]
	}
	rec.TopThreeHours = ranked

	if len(categories) > 0 {
		best := categories[0]
		for _, c := range categories[1:] {
			if c.PerformanceScore > best.PerformanceScore {
				best = c
			}
		}
		rec.BestCategoryID = best.CategoryID
		rec.BestCategoryName = best.CategoryName
	}

	rec.RecommendationText = fmt.Sprintf(
		"Based on trending video analytics, upload your content at %s for maximum reach. "+
			"Videos uploaded at this time show an average of %s views. "+
			"The most successful category in trending videos is %s.",
		rec.BestHourLabel, groupDigits(rec.BestHourAverageViews), rec.BestCategoryName)
	return rec
}

// groupDigits renders n with comma thousands separators.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
