// Package trending is the facade over the analytics engine: it collects
// records through a Source, runs the pure domain transforms and shapes
// the three public payloads.
package trending

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/yanqian/trendlens/internal/domain/category"
	"github.com/yanqian/trendlens/internal/domain/insight"
	"github.com/yanqian/trendlens/internal/domain/record"
	"github.com/yanqian/trendlens/internal/domain/temporal"
	"github.com/yanqian/trendlens/internal/domain/topics"
	apperrors "github.com/yanqian/trendlens/pkg/errors"
	"github.com/yanqian/trendlens/pkg/util"
)

const (
	// The coach works a deliberately smaller window than the dashboard.
	coachCollectLimit = 20
	coachBriefLimit   = 10
)

// Config carries the facade defaults resolved from configuration.
type Config struct {
	DefaultRegion   string
	MaxResults      int
	ExtendedResults int
	TopKeywords     int
	CacheTTL        time.Duration
}

// Service exposes the trending analytics operations.
type Service interface {
	Report(ctx context.Context, q Query) (*Report, error)
	Suggestions(ctx context.Context, q Query) (*SuggestionKit, error)
	Coach(ctx context.Context, q Query) (*CoachReport, error)
}

type service struct {
	source     Source
	writer     IdeaWriter
	store      ReportStore
	normalizer *record.Normalizer
	clusterer  *topics.Clusterer
	cfg        Config
	logger     *slog.Logger
	now        func() time.Time
}

// NewService is a wire provider for the trending domain. store may be
// nil, which disables report caching.
func NewService(source Source, writer IdeaWriter, store ReportStore, clusterer *topics.Clusterer, cfg Config, logger *slog.Logger) Service {
	return &service{
		source:     source,
		writer:     writer,
		store:      store,
		normalizer: record.NewNormalizer(),
		clusterer:  clusterer,
		cfg:        cfg,
		logger:     logger.With("component", "trending.service"),
		now:        util.NowUTC,
	}
}

func (s *service) Report(ctx context.Context, q Query) (*Report, error) {
	region, keyword, limit := s.resolve(q)

	cacheKey := fmt.Sprintf("%s|%s|%d", region, keyword, limit)
	if s.store != nil {
		cached, ok, err := s.store.Get(ctx, cacheKey)
		if err != nil {
			s.logger.Warn("report cache read failed", "key", cacheKey, "error", err)
		} else if ok {
			s.logger.Debug("report served from cache", "key", cacheKey)
			return &cached, nil
		}
	}

	raws, err := s.source.Collect(ctx, SourceQuery{Region: region, MaxResults: limit})
	if err != nil {
		return nil, apperrors.Wrap("source_error", "collect trending records", err)
	}
	videos, stats := s.normalizer.NormalizeAll(raws)
	if stats.IsZero() {
		s.logger.Warn("source returned an empty snapshot", "region", region)
	}
	s.logger.Info("trending records collected",
		"region", region,
		"fetched", stats.RecordsFetched,
		"kept", stats.RecordsKept)

	// Every analytical section covers the unfiltered set; the keyword
	// only narrows the dashboard list below.
	buckets := temporal.Aggregate(videos)
	categories := category.Aggregate(videos)

	report := &Report{
		Region:             region,
		Keyword:            keyword,
		Videos:             dashboardRows(videos, keyword),
		CategoryAnalysis:   categories,
		KeywordAnalysis:    insight.TopKeywords(videos, s.cfg.TopKeywords),
		UploadVsPopularity: insight.ScatterPoints(videos),
		UploadTimes:        buckets,
		Recommendations:    insight.Synthesize(buckets, categories),
		Stats:              stats,
		GeneratedAt:        s.now(),
	}

	if keyword != "" {
		also, err := s.alsoTrending(ctx, region, keyword, report.Videos)
		if err != nil {
			return nil, err
		}
		report.AlsoTrending = also
	}

	if s.store != nil {
		if err := s.store.Set(ctx, cacheKey, *report, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("report cache write failed", "key", cacheKey, "error", err)
		}
	}
	return report, nil
}

// alsoTrending widens the collection and keeps records the dashboard
// filter missed: keyword match on title or description, minus the ids
// already listed. Note the match here is broader than the dashboard's
// title-only filter.
func (s *service) alsoTrending(ctx context.Context, region, keyword string, listed []VideoRow) ([]VideoRow, error) {
	raws, err := s.source.Collect(ctx, SourceQuery{Region: region, MaxResults: s.cfg.ExtendedResults})
	if err != nil {
		return nil, apperrors.Wrap("source_error", "collect extended records", err)
	}
	videos, _ := s.normalizer.NormalizeAll(raws)

	seen := make(map[string]struct{}, len(listed))
	for _, row := range listed {
		seen[row.VideoID] = struct{}{}
	}

	rows := make([]VideoRow, 0, len(videos))
	for _, v := range videos {
		if _, dup := seen[v.ID]; dup {
			continue
		}
		if !strings.Contains(strings.ToLower(v.Title), keyword) &&
			!strings.Contains(strings.ToLower(v.Description), keyword) {
			continue
		}
		rows = append(rows, rowFromVideo(v))
	}
	return rows, nil
}

func (s *service) Suggestions(ctx context.Context, q Query) (*SuggestionKit, error) {
	region, _, limit := s.resolve(q)

	raws, err := s.source.Collect(ctx, SourceQuery{Region: region, MaxResults: limit})
	if err != nil {
		return nil, apperrors.Wrap("source_error", "collect trending records", err)
	}
	videos, stats := s.normalizer.NormalizeAll(raws)

	result, err := s.clusterer.Cluster(videos)
	if err != nil {
		// insufficient_data travels to the caller untouched.
		return nil, err
	}
	stats.ClustersBuilt = len(result.Profiles)
	top := result.TopCluster()
	averageEngagement := round2(top.AverageEngagement * 100)

	titles := make([]string, len(result.Records))
	for i, v := range result.Records {
		titles[i] = v.Title
	}
	sentiment := insight.CorpusSentiment(titles)

	ideas, err := s.writer.Ideas(ctx, IdeaBrief{
		Region:            region,
		TopTerms:          top.TopTerms,
		SampleTitles:      top.SampleTitles,
		AverageEngagement: averageEngagement,
		Sentiment:         sentiment,
		VideoCount:        len(result.Records),
	})
	if err != nil {
		return nil, apperrors.Wrap("internal_error", "render idea prose", err)
	}

	rows := make([]SuggestionRow, len(result.Records))
	for i, v := range result.Records {
		rows[i] = SuggestionRow{
			VideoID:         v.ID,
			Title:           v.Title,
			CleanTitle:      result.CleanTitles[i],
			Views:           v.Views,
			Likes:           v.Likes,
			Comments:        v.Comments,
			LikeRatio:       v.LikeRatio,
			CommentRatio:    v.CommentRatio,
			EngagementScore: v.EngagementScore,
			Sentiment:       insight.TitleSentiment(v.Title),
			Cluster:         result.Labels[i],
		}
	}

	s.logger.Info("suggestions built",
		"region", region,
		"kept", stats.RecordsKept,
		"clusters", stats.ClustersBuilt)

	return &SuggestionKit{
		Region:            region,
		Ideas:             ideas,
		TopCluster:        top,
		Clusters:          result.Profiles,
		AverageEngagement: averageEngagement,
		Sentiment:         sentiment,
		VideoData:         rows,
	}, nil
}

func (s *service) Coach(ctx context.Context, q Query) (*CoachReport, error) {
	region, _, _ := s.resolve(q)
	genre := strings.TrimSpace(q.Genre)

	raws, err := s.source.Collect(ctx, SourceQuery{
		Region:     region,
		CategoryID: genre,
		MaxResults: coachCollectLimit,
	})
	if err != nil {
		return nil, apperrors.Wrap("source_error", "collect trending records", err)
	}
	videos, _ := s.normalizer.NormalizeAll(raws)
	if len(videos) == 0 {
		label := genre
		if label == "" {
			label = "all"
		}
		return nil, apperrors.New("not_found",
			fmt.Sprintf("no trending videos found for %s (genre: %s)", region, label))
	}

	buckets := temporal.Aggregate(videos)
	categories := category.Aggregate(videos)

	sample := videos
	if len(sample) > coachBriefLimit {
		sample = sample[:coachBriefLimit]
	}
	text, err := s.writer.CoachReport(ctx, CoachBrief{
		Region:         region,
		Genre:          genre,
		Videos:         sample,
		Recommendation: insight.Synthesize(buckets, categories),
	})
	if err != nil {
		return nil, apperrors.Wrap("internal_error", "render coach report", err)
	}

	s.logger.Info("coach report built", "region", region, "genre", genre, "records", len(videos))
	return &CoachReport{Region: region, Genre: genre, Text: text}, nil
}

// resolve applies the configured defaults to a query and canonicalizes
// the keyword the same way the dashboard filter expects it.
func (s *service) resolve(q Query) (region, keyword string, limit int) {
	region = strings.TrimSpace(q.Region)
	if region == "" {
		region = s.cfg.DefaultRegion
	}
	keyword = strings.ToLower(strings.TrimSpace(q.Keyword))
	limit = q.MaxResults
	if limit <= 0 {
		limit = s.cfg.MaxResults
	}
	return region, keyword, limit
}

func dashboardRows(videos []record.Video, keyword string) []VideoRow {
	rows := make([]VideoRow, 0, len(videos))
	for _, v := range videos {
		if keyword != "" && !strings.Contains(strings.ToLower(v.Title), keyword) {
			continue
		}
		rows = append(rows, rowFromVideo(v))
	}
	return rows
}

func rowFromVideo(v record.Video) VideoRow {
	return VideoRow{
		VideoID:        v.ID,
		Title:          v.Title,
		Thumbnail:      v.Thumbnail,
		ChannelTitle:   v.ChannelTitle,
		Views:          v.Views,
		Likes:          v.Likes,
		CommentCount:   v.Comments,
		EngagementRate: v.EngagementRate,
		CategoryID:     v.CategoryID,
		Description:    v.Description,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
