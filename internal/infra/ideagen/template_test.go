package ideagen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/trendlens/internal/domain/insight"
	"github.com/yanqian/trendlens/internal/domain/record"
	"github.com/yanqian/trendlens/internal/domain/trending"
)

func TestIdeasProse(t *testing.T) {
	t.Parallel()

	brief := trending.IdeaBrief{
		Region:            "US",
		TopTerms:          []string{"gaming", "speedrun", "record"},
		SampleTitles:      []string{"Speedrun World Record Attempt Live"},
		AverageEngagement: 12.34,
		Sentiment:         0.25,
		VideoCount:        12,
	}

	writer := NewTemplateWriter()
	got, err := writer.Ideas(context.Background(), brief)
	require.NoError(t, err)

	require.Contains(t, got, "Content ideas for US, drawn from 12 trending videos.")
	require.Contains(t, got, `"gaming", "speedrun" and "record"`)
	require.Contains(t, got, "12.34%")
	require.Contains(t, got, "sentiment reads positive")
	require.Contains(t, got, `1. Build a straightforward explainer around "gaming"`)
	require.Contains(t, got, "- Speedrun World Record Attempt Live")
	require.Equal(t, 3, strings.Count(got, "\n1. ")+strings.Count(got, "\n2. ")+strings.Count(got, "\n3. "))

	again, err := writer.Ideas(context.Background(), brief)
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestIdeasHandlesSparseBrief(t *testing.T) {
	t.Parallel()

	got, err := NewTemplateWriter().Ideas(context.Background(), trending.IdeaBrief{
		Region:    "GB",
		Sentiment: -0.5,
	})
	require.NoError(t, err)
	require.Contains(t, got, "Content ideas for GB, drawn from 0 trending videos.")
	require.Contains(t, got, "sentiment reads negative")
	require.NotContains(t, got, "Ideas worth trying")
}

func TestCoachReportProse(t *testing.T) {
	t.Parallel()

	brief := trending.CoachBrief{
		Region: "US",
		Genre:  "20",
		Videos: []record.Video{
			{Title: "Ranked Climb", Views: 620000, EngagementRate: 6.97, Tags: []string{"gaming", "ranked"}},
			{Title: "Speedrun Record", Views: 1530000, EngagementRate: 9.07},
		},
		Recommendation: insight.Recommendation{
			RecommendationText: "Based on trending video analytics, upload your content at 9PM for maximum reach. " +
				"Videos uploaded at this time show an average of 1,075,000 views. " +
				"The most successful category in trending videos is Gaming.",
		},
	}

	got, err := NewTemplateWriter().CoachReport(context.Background(), brief)
	require.NoError(t, err)

	require.Contains(t, got, "Trending coaching for US, genre Gaming.")
	require.Contains(t, got, `the pack leader is "Speedrun Record" at 1530000 views`)
	require.Contains(t, got, `- "Ranked Climb", 620000 views, 6.97% engagement, tagged gaming, ranked`)
	require.Contains(t, got, "upload your content at 9PM")
	require.Contains(t, got, "publish on your strongest hour")
}

func TestCoachReportAllGenres(t *testing.T) {
	t.Parallel()

	got, err := NewTemplateWriter().CoachReport(context.Background(), trending.CoachBrief{Region: "DE"})
	require.NoError(t, err)
	require.Contains(t, got, "Trending coaching for DE, all genres.")
	require.NotContains(t, got, "Standouts")
}
