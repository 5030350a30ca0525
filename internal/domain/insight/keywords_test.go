package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/trendlens/internal/domain/record"
)

func titled(titles ...string) []record.Video {
	videos := make([]record.Video, len(titles))
	for i, title := range titles {
		videos[i] = record.Video{ID: string(rune('a' + i)), Title: title}
	}
	return videos
}

func TestTopKeywords(t *testing.T) {
	t.Parallel()

	t.Run("counts across titles", func(t *testing.T) {
		t.Parallel()

		got := TopKeywords(titled(
			"Epic gaming moments",
			"Gaming setup tour",
			"The gaming chair",
		), 0)

		require.NotEmpty(t, got)
		require.Equal(t, KeywordCount{Word: "gaming", Count: 3}, got[0])
	})

	t.Run("drops stop words and short words", func(t *testing.T) {
		t.Parallel()

		got := TopKeywords(titled("The cat and the dog ran far"), 0)
		words := make([]string, len(got))
		for i, kw := range got {
			words[i] = kw.Word
		}
		require.ElementsMatch(t, []string{"cat", "dog", "far", "ran"}, words)
	})

	t.Run("digits vanish without splitting words", func(t *testing.T) {
		t.Parallel()

		// "Top10" loses its digits and becomes "top", not "top 10".
		got := TopKeywords(titled("Top10 Tricks"), 0)
		words := make([]string, len(got))
		for i, kw := range got {
			words[i] = kw.Word
		}
		require.ElementsMatch(t, []string{"top", "tricks"}, words)
	})

	t.Run("ties break alphabetically", func(t *testing.T) {
		t.Parallel()

		got := TopKeywords(titled("zebra apple", "zebra apple"), 0)
		require.Equal(t, []KeywordCount{
			{Word: "apple", Count: 2},
			{Word: "zebra", Count: 2},
		}, got)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		t.Parallel()

		got := TopKeywords(titled("alpha bravo charlie delta echo"), 2)
		require.Len(t, got, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, TopKeywords(nil, 0))
	})
}

func TestScatterPoints(t *testing.T) {
	t.Parallel()

	published := time.Date(2024, 7, 8, 10, 0, 0, 0, time.UTC)
	videos := []record.Video{
		{
			ID:              "in-scope",
			Title:           "Morning run",
			Views:           1200,
			EngagementRate:  4.5,
			PublishedAt:     published,
			PublishHour:     10,
			DaysSinceUpload: 2,
		},
		{ID: "no-timestamp", Title: "Lost in time", Views: 50},
		{
			ID:              "future",
			Title:           "Scheduled premiere",
			Views:           10,
			PublishedAt:     published,
			DaysSinceUpload: -1,
		},
	}

	points := ScatterPoints(videos)

	require.Len(t, points, 1)
	require.Equal(t, ScatterPoint{
		X:              2,
		Y:              1200,
		EngagementRate: 4.5,
		Title:          "Morning run",
		VideoID:        "in-scope",
		R:              8,
	}, points[0])
}

func TestTitleSentiment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  float64
	}{
		{name: "positive words average", title: "Amazing Best Day", want: 0.8},
		{name: "negative", title: "Worst fail ever", want: -0.75},
		{name: "mixed", title: "Good idea, bad timing", want: 0.0},
		{name: "no matches", title: "Quarterly spreadsheet walkthrough", want: 0},
		{name: "empty", title: "", want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tt.want, TitleSentiment(tt.title), 1e-9)
		})
	}
}

func TestCorpusSentiment(t *testing.T) {
	t.Parallel()

	// One scored title at 0.8, one neutral: the neutral zero still
	// dilutes the mean.
	titles := []string{"Amazing Best Day", "Quarterly spreadsheet walkthrough"}
	require.InDelta(t, 0.4, CorpusSentiment(titles), 1e-9)
	require.Zero(t, CorpusSentiment(nil))
}
