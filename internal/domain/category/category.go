package category

import (
	"sort"

	"github.com/yanqian/trendlens/internal/domain/record"
)

// Performance ranks one video category by popularity and frequency.
// PerformanceScore rewards both: averageViews weighted by how often the
// category appears in the batch.
type Performance struct {
	CategoryID       string  `json:"categoryId"`
	CategoryName     string  `json:"categoryName"`
	VideoCount       int     `json:"videoCount"`
	AverageViews     float64 `json:"averageViews"`
	PerformanceScore float64 `json:"performanceScore"`
}

// Aggregate reduces the batch into one Performance per distinct non-empty
// category id, sorted by PerformanceScore descending with ties broken by
// ascending id. Records without a category id are excluded.
func Aggregate(videos []record.Video) []Performance {
	type acc struct {
		views int64
		count int
	}
	totals := make(map[string]*acc)
	for _, v := range videos {
		if v.CategoryID == "" {
			continue
		}
		a, ok := totals[v.CategoryID]
		if !ok {
			a = &acc{}
			totals[v.CategoryID] = a
		}
		a.views += v.Views
		a.count++
	}

	out := make([]Performance, 0, len(totals))
	for id, a := range totals {
		avg := float64(a.views) / float64(a.count)
		out = append(out, Performance{
			CategoryID:       id,
			CategoryName:     Name(id),
			VideoCount:       a.count,
			AverageViews:     avg,
			PerformanceScore: avg * float64(a.count),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PerformanceScore == out[j].PerformanceScore {
			return out[i].CategoryID < out[j].CategoryID
		}
		return out[i].PerformanceScore > out[j].PerformanceScore
	})
	return out
}
