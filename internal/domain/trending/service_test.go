package trending

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/trendlens/internal/domain/record"
	"github.com/yanqian/trendlens/internal/domain/topics"
	apperrors "github.com/yanqian/trendlens/pkg/errors"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubSource struct {
	records  []record.Raw
	extended []record.Raw
	err      error
	queries  []SourceQuery
}

func (s *stubSource) Collect(_ context.Context, q SourceQuery) ([]record.Raw, error) {
	s.queries = append(s.queries, q)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.queries) > 1 && s.extended != nil {
		return s.extended, nil
	}
	return s.records, nil
}

type stubWriter struct {
	ideaBrief  *IdeaBrief
	coachBrief *CoachBrief
	err        error
}

func (w *stubWriter) Ideas(_ context.Context, brief IdeaBrief) (string, error) {
	w.ideaBrief = &brief
	if w.err != nil {
		return "", w.err
	}
	return "idea prose", nil
}

func (w *stubWriter) CoachReport(_ context.Context, brief CoachBrief) (string, error) {
	w.coachBrief = &brief
	if w.err != nil {
		return "", w.err
	}
	return "coach prose", nil
}

type stubStore struct {
	reports map[string]Report
	getErr  error
	sets    int
}

func (s *stubStore) Get(_ context.Context, key string) (Report, bool, error) {
	if s.getErr != nil {
		return Report{}, false, s.getErr
	}
	r, ok := s.reports[key]
	return r, ok, nil
}

func (s *stubStore) Set(_ context.Context, key string, report Report, _ time.Duration) error {
	if s.reports == nil {
		s.reports = make(map[string]Report)
	}
	s.reports[key] = report
	s.sets++
	return nil
}

func testConfig() Config {
	return Config{
		DefaultRegion:   "US",
		MaxResults:      50,
		ExtendedResults: 100,
		TopKeywords:     15,
		CacheTTL:        time.Minute,
	}
}

func rawFixture() []record.Raw {
	return []record.Raw{
		{
			ID:           "vid-1",
			Title:        "Amazing Cooking Pasta",
			Description:  "A weeknight pasta recipe",
			ChannelTitle: "Kitchen Channel",
			CategoryID:   "26",
			PublishedAt:  "2024-01-05T09:00:00Z",
			ViewCount:    "999",
			LikeCount:    "40",
			CommentCount: "10",
		},
		{
			ID:           "vid-2",
			Title:        "Gaming Speedrun Record",
			Description:  "World record attempt",
			ChannelTitle: "Speed Channel",
			CategoryID:   "20",
			PublishedAt:  "2024-01-06T18:30:00Z",
			ViewCount:    "199",
			LikeCount:    "140",
			CommentCount: "40",
		},
	}
}

func newTestService(source Source, writer IdeaWriter, store ReportStore, clusters int) *service {
	svc := NewService(source, writer, store,
		topics.NewClusterer(topics.Config{Clusters: clusters}),
		testConfig(), newTestLogger()).(*service)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestReportBuildsAllSections(t *testing.T) {
	t.Parallel()

	source := &stubSource{records: rawFixture()}
	svc := newTestService(source, &stubWriter{}, nil, 2)

	report, err := svc.Report(context.Background(), Query{})
	require.NoError(t, err)

	require.Equal(t, "US", report.Region)
	require.Len(t, report.Videos, 2)
	require.Equal(t, VideoRow{
		VideoID:        "vid-1",
		Title:          "Amazing Cooking Pasta",
		ChannelTitle:   "Kitchen Channel",
		Views:          999,
		Likes:          40,
		CommentCount:   10,
		EngagementRate: 5.01,
		CategoryID:     "26",
		Description:    "A weeknight pasta recipe",
	}, report.Videos[0])

	require.Len(t, report.UploadTimes, 24)
	require.Equal(t, 1, report.UploadTimes[9].VideoCount)
	require.Equal(t, 1, report.UploadTimes[18].VideoCount)

	require.Len(t, report.CategoryAnalysis, 2)
	require.Equal(t, "Howto & Style", report.CategoryAnalysis[0].CategoryName)

	require.NotEmpty(t, report.KeywordAnalysis)
	require.Len(t, report.UploadVsPopularity, 2)
	require.Equal(t, 9, report.Recommendations.BestHour)
	require.Equal(t, "9AM", report.Recommendations.BestHourLabel)

	require.Equal(t, 2, report.Stats.RecordsFetched)
	require.Equal(t, 2, report.Stats.RecordsKept)
	require.Equal(t, time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC), report.GeneratedAt)

	require.Len(t, source.queries, 1)
	require.Equal(t, SourceQuery{Region: "US", MaxResults: 50}, source.queries[0])
}

func TestReportKeywordFiltersDashboardOnly(t *testing.T) {
	t.Parallel()

	extended := append(rawFixture(), record.Raw{
		ID:          "vid-3",
		Title:       "Weekend vlog",
		Description: "We tried a pasta marathon",
		ViewCount:   "10",
	})
	source := &stubSource{records: rawFixture(), extended: extended}
	svc := newTestService(source, &stubWriter{}, nil, 2)

	report, err := svc.Report(context.Background(), Query{Keyword: "  PASTA "})
	require.NoError(t, err)

	require.Equal(t, "pasta", report.Keyword)
	// Dashboard narrows to title matches.
	require.Len(t, report.Videos, 1)
	require.Equal(t, "vid-1", report.Videos[0].VideoID)

	// Analyses still cover both collected records.
	require.Len(t, report.UploadVsPopularity, 2)
	require.Equal(t, 1, report.UploadTimes[18].VideoCount)

	// The extended pass matches descriptions too and skips listed ids.
	require.Len(t, report.AlsoTrending, 1)
	require.Equal(t, "vid-3", report.AlsoTrending[0].VideoID)

	require.Len(t, source.queries, 2)
	require.Equal(t, 100, source.queries[1].MaxResults)
}

func TestReportUsesCache(t *testing.T) {
	t.Parallel()

	source := &stubSource{records: rawFixture()}
	store := &stubStore{}
	svc := newTestService(source, &stubWriter{}, store, 2)

	first, err := svc.Report(context.Background(), Query{})
	require.NoError(t, err)
	require.Equal(t, 1, store.sets)

	second, err := svc.Report(context.Background(), Query{})
	require.NoError(t, err)
	require.Equal(t, first.Videos, second.Videos)
	// Only the first call reached the source.
	require.Len(t, source.queries, 1)
	require.Equal(t, 1, store.sets)
}

func TestReportCacheReadFailureFallsThrough(t *testing.T) {
	t.Parallel()

	source := &stubSource{records: rawFixture()}
	store := &stubStore{getErr: errors.New("connection refused")}
	svc := newTestService(source, &stubWriter{}, store, 2)

	report, err := svc.Report(context.Background(), Query{})
	require.NoError(t, err)
	require.Len(t, report.Videos, 2)
	require.Len(t, source.queries, 1)
}

func TestReportSourceError(t *testing.T) {
	t.Parallel()

	source := &stubSource{err: errors.New("fixture missing")}
	svc := newTestService(source, &stubWriter{}, nil, 2)

	report, err := svc.Report(context.Background(), Query{})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "source_error"))
	require.Nil(t, report)
}

func TestSuggestionsBuildsKit(t *testing.T) {
	t.Parallel()

	source := &stubSource{records: rawFixture()}
	writer := &stubWriter{}
	svc := newTestService(source, writer, nil, 2)

	kit, err := svc.Suggestions(context.Background(), Query{Region: "GB"})
	require.NoError(t, err)

	require.Equal(t, "GB", kit.Region)
	require.Equal(t, "idea prose", kit.Ideas)
	require.Len(t, kit.Clusters, 2)

	// The gaming record carries the stronger engagement, so its
	// singleton cluster leads.
	require.Equal(t, []string{"Gaming Speedrun Record"}, kit.TopCluster.SampleTitles)
	require.InDelta(t, 90.0, kit.AverageEngagement, 1e-9)

	// "Amazing" is the only lexicon hit across the two titles.
	require.InDelta(t, 0.3, kit.Sentiment, 1e-9)

	require.Len(t, kit.VideoData, 2)
	rowByID := make(map[string]SuggestionRow)
	for _, row := range kit.VideoData {
		rowByID[row.VideoID] = row
	}
	cooking := rowByID["vid-1"]
	require.Equal(t, "amazing cooking pasta", cooking.CleanTitle)
	require.InDelta(t, 0.04, cooking.LikeRatio, 1e-9)
	require.InDelta(t, 0.01, cooking.CommentRatio, 1e-9)
	require.InDelta(t, 0.05, cooking.EngagementScore, 1e-9)
	require.InDelta(t, 0.6, cooking.Sentiment, 1e-9)
	gaming := rowByID["vid-2"]
	require.InDelta(t, 0.9, gaming.EngagementScore, 1e-9)
	require.NotEqual(t, cooking.Cluster, gaming.Cluster)

	require.NotNil(t, writer.ideaBrief)
	require.Equal(t, "GB", writer.ideaBrief.Region)
	require.Equal(t, 2, writer.ideaBrief.VideoCount)
	require.InDelta(t, 90.0, writer.ideaBrief.AverageEngagement, 1e-9)
	require.Equal(t, []string{"Gaming Speedrun Record"}, writer.ideaBrief.SampleTitles)
}

func TestSuggestionsInsufficientData(t *testing.T) {
	t.Parallel()

	source := &stubSource{records: rawFixture()}
	svc := newTestService(source, &stubWriter{}, nil, 5)

	kit, err := svc.Suggestions(context.Background(), Query{})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "insufficient_data"))
	require.Nil(t, kit)
}

func TestCoachPassesGenreToSource(t *testing.T) {
	t.Parallel()

	source := &stubSource{records: rawFixture()}
	writer := &stubWriter{}
	svc := newTestService(source, writer, nil, 2)

	report, err := svc.Coach(context.Background(), Query{Genre: "20"})
	require.NoError(t, err)

	require.Equal(t, "US", report.Region)
	require.Equal(t, "20", report.Genre)
	require.Equal(t, "coach prose", report.Text)

	require.Len(t, source.queries, 1)
	require.Equal(t, SourceQuery{Region: "US", CategoryID: "20", MaxResults: 20}, source.queries[0])

	require.NotNil(t, writer.coachBrief)
	require.Len(t, writer.coachBrief.Videos, 2)
	require.Equal(t, "20", writer.coachBrief.Genre)
	require.NotEmpty(t, writer.coachBrief.Recommendation.RecommendationText)
}

func TestCoachNotFound(t *testing.T) {
	t.Parallel()

	source := &stubSource{records: nil}
	svc := newTestService(source, &stubWriter{}, nil, 2)

	report, err := svc.Coach(context.Background(), Query{})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "not_found"))
	require.Contains(t, err.Error(), "genre: all")
	require.Nil(t, report)
}
