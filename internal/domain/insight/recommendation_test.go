package insight

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/trendlens/internal/domain/category"
	"github.com/yanqian/trendlens/internal/domain/temporal"
)

func flatBuckets(videoCount, averageViews int64) []temporal.HourBucket {
	buckets := make([]temporal.HourBucket, 24)
	for h := 0; h < 24; h++ {
		buckets[h] = temporal.HourBucket{
			Hour:         h,
			HourLabel:    temporal.Label(h),
			VideoCount:   int(videoCount),
			AverageViews: averageViews,
		}
	}
	return buckets
}

func TestSynthesizeTiedHoursPreferEarliest(t *testing.T) {
	t.Parallel()

	// Every hour performs identically, so the earliest hours win.
	rec := Synthesize(flatBuckets(1, 100), nil)

	require.Equal(t, 0, rec.BestHour)
	require.Equal(t, "12AM", rec.BestHourLabel)
	require.Equal(t, int64(100), rec.BestHourAverageViews)
	require.Len(t, rec.TopThreeHours, 3)
	require.Equal(t, 0, rec.TopThreeHours[0].Hour)
	require.Equal(t, 1, rec.TopThreeHours[1].Hour)
	require.Equal(t, 2, rec.TopThreeHours[2].Hour)
}

func TestSynthesizePicksStrongestHour(t *testing.T) {
	t.Parallel()

	buckets := flatBuckets(0, 0)
	buckets[9] = temporal.HourBucket{Hour: 9, HourLabel: "9AM", VideoCount: 3, AverageViews: 500}
	buckets[18] = temporal.HourBucket{Hour: 18, HourLabel: "6PM", VideoCount: 2, AverageViews: 900}
	buckets[23] = temporal.HourBucket{Hour: 23, HourLabel: "11PM", VideoCount: 1, AverageViews: 200}

	rec := Synthesize(buckets, nil)

	require.Equal(t, 18, rec.BestHour)
	require.Equal(t, "6PM", rec.BestHourLabel)
	require.Equal(t, int64(900), rec.BestHourAverageViews)
	// Only populated buckets compete for the top spots.
	require.Len(t, rec.TopThreeHours, 3)
	require.Equal(t, []int{18, 9, 23}, []int{
		rec.TopThreeHours[0].Hour,
		rec.TopThreeHours[1].Hour,
		rec.TopThreeHours[2].Hour,
	})
}

func TestSynthesizeEmptyInput(t *testing.T) {
	t.Parallel()

	rec := Synthesize(flatBuckets(0, 0), nil)

	require.Equal(t, 12, rec.BestHour)
	require.Equal(t, "12PM", rec.BestHourLabel)
	require.Equal(t, int64(0), rec.BestHourAverageViews)
	require.Equal(t, "Various Categories", rec.BestCategoryName)
	require.Empty(t, rec.BestCategoryID)
	// With nothing to rank, the full zero-filled set is ranked instead.
	require.Len(t, rec.TopThreeHours, 3)
	require.Equal(t, 0, rec.TopThreeHours[0].Hour)
	require.Equal(t,
		"Based on trending video analytics, upload your content at 12PM for maximum reach. "+
			"Videos uploaded at this time show an average of 0 views. "+
			"The most successful category in trending videos is Various Categories.",
		rec.RecommendationText)
}

func TestSynthesizeBestCategory(t *testing.T) {
	t.Parallel()

	categories := []category.Performance{
		{CategoryID: "20", CategoryName: "Gaming", VideoCount: 2, AverageViews: 4000, PerformanceScore: 8000},
		{CategoryID: "10", CategoryName: "Music", VideoCount: 5, AverageViews: 1000, PerformanceScore: 5000},
	}
	buckets := flatBuckets(0, 0)
	buckets[15] = temporal.HourBucket{Hour: 15, HourLabel: "3PM", VideoCount: 4, AverageViews: 1234567}

	rec := Synthesize(buckets, categories)

	require.Equal(t, "20", rec.BestCategoryID)
	require.Equal(t, "Gaming", rec.BestCategoryName)
	require.Equal(t,
		"Based on trending video analytics, upload your content at 3PM for maximum reach. "+
			"Videos uploaded at this time show an average of 1,234,567 views. "+
			"The most successful category in trending videos is Gaming.",
		rec.RecommendationText)
}

func TestGroupDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{54321, "54,321"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%d", tt.in), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, groupDigits(tt.in))
		})
	}
}
