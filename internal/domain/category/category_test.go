package category

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/trendlens/internal/domain/record"
)

func TestAggregate_ScoresAndOrder(t *testing.T) {
	videos := []record.Video{
		{ID: "a", Title: "t", CategoryID: "10", Views: 1000},
		{ID: "b", Title: "t", CategoryID: "10", Views: 1000},
		{ID: "c", Title: "t", CategoryID: "10", Views: 1000},
		{ID: "d", Title: "t", CategoryID: "10", Views: 1000},
		{ID: "e", Title: "t", CategoryID: "10", Views: 1000},
		{ID: "f", Title: "t", CategoryID: "20", Views: 4000},
		{ID: "g", Title: "t", CategoryID: "20", Views: 4000},
	}

	perf := Aggregate(videos)
	require.Len(t, perf, 2)

	// avg 4000 x 2 videos beats avg 1000 x 5 videos.
	require.Equal(t, "20", perf[0].CategoryID)
	require.Equal(t, "Gaming", perf[0].CategoryName)
	require.Equal(t, 4000.0, perf[0].AverageViews)
	require.Equal(t, 8000.0, perf[0].PerformanceScore)

	require.Equal(t, "10", perf[1].CategoryID)
	require.Equal(t, "Music", perf[1].CategoryName)
	require.Equal(t, 5, perf[1].VideoCount)
	require.Equal(t, 5000.0, perf[1].PerformanceScore)
}

func TestAggregate_SkipsEmptyCategory(t *testing.T) {
	videos := []record.Video{
		{ID: "a", Title: "t", Views: 100},
		{ID: "b", Title: "t", CategoryID: "23", Views: 100},
	}

	perf := Aggregate(videos)
	require.Len(t, perf, 1)
	require.Equal(t, "23", perf[0].CategoryID)
}

func TestAggregate_Empty(t *testing.T) {
	require.Empty(t, Aggregate(nil))
}

func TestName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{id: "10", want: "Music"},
		{id: "20", want: "Gaming"},
		{id: "28", want: "Science & Technology"},
		{id: "99", want: "Category 99"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Name(tt.id))
		})
	}
}
