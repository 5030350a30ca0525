package trending

import (
	"context"
	"time"

	"github.com/yanqian/trendlens/internal/domain/category"
	"github.com/yanqian/trendlens/internal/domain/insight"
	"github.com/yanqian/trendlens/internal/domain/record"
	"github.com/yanqian/trendlens/internal/domain/temporal"
	"github.com/yanqian/trendlens/internal/domain/topics"
	"github.com/yanqian/trendlens/pkg/metrics"
)

// Query narrows one analytics request. Zero values fall back to the
// service defaults.
type Query struct {
	Region     string
	Keyword    string
	Genre      string
	MaxResults int
}

// VideoRow is one dashboard entry in a trending report.
type VideoRow struct {
	VideoID        string  `json:"videoId"`
	Title          string  `json:"title"`
	Thumbnail      string  `json:"thumbnail,omitempty"`
	ChannelTitle   string  `json:"channelTitle,omitempty"`
	Views          int64   `json:"views"`
	Likes          int64   `json:"likes"`
	CommentCount   int64   `json:"commentCount"`
	EngagementRate float64 `json:"engagementRate"`
	CategoryID     string  `json:"categoryId,omitempty"`
	Description    string  `json:"description,omitempty"`
}

// Report is the full trending analytics payload for one region. The
// analytical sections always cover the whole collected set; only Videos
// and AlsoTrending react to the keyword filter.
type Report struct {
	Region             string                 `json:"country"`
	Keyword            string                 `json:"keyword,omitempty"`
	Videos             []VideoRow             `json:"videos"`
	AlsoTrending       []VideoRow             `json:"alsoTrending,omitempty"`
	CategoryAnalysis   []category.Performance `json:"categoryAnalysis"`
	KeywordAnalysis    []insight.KeywordCount `json:"keywordAnalysis"`
	UploadVsPopularity []insight.ScatterPoint `json:"uploadVsPopularity"`
	UploadTimes        []temporal.HourBucket  `json:"uploadTimes"`
	Recommendations    insight.Recommendation `json:"recommendations"`
	Stats              metrics.PipelineStats  `json:"stats"`
	GeneratedAt        time.Time              `json:"generatedAt"`
}

// SuggestionRow mirrors one clustered record with its derived features.
type SuggestionRow struct {
	VideoID         string  `json:"videoId"`
	Title           string  `json:"title"`
	CleanTitle      string  `json:"cleanTitle"`
	Views           int64   `json:"views"`
	Likes           int64   `json:"likes"`
	Comments        int64   `json:"comments"`
	LikeRatio       float64 `json:"likeRatio"`
	CommentRatio    float64 `json:"commentRatio"`
	EngagementScore float64 `json:"engagementScore"`
	Sentiment       float64 `json:"sentiment"`
	Cluster         int     `json:"cluster"`
}

// SuggestionKit is the content-idea payload built on topic clustering.
type SuggestionKit struct {
	Region            string           `json:"region"`
	Ideas             string           `json:"ideas"`
	TopCluster        topics.Profile   `json:"topCluster"`
	Clusters          []topics.Profile `json:"clusters"`
	AverageEngagement float64          `json:"averageEngagement"`
	Sentiment         float64          `json:"sentiment"`
	VideoData         []SuggestionRow  `json:"videoData"`
}

// CoachReport is the genre-focused advice payload.
type CoachReport struct {
	Region string `json:"country"`
	Genre  string `json:"genre,omitempty"`
	Text   string `json:"report"`
}

// SourceQuery narrows a record collection.
type SourceQuery struct {
	Region     string
	CategoryID string
	MaxResults int
}

// Source supplies already-fetched trending records. Implementations
// read fixtures or static slices; none of them talk to a live API.
type Source interface {
	Collect(ctx context.Context, q SourceQuery) ([]record.Raw, error)
}

// IdeaBrief carries the aggregates an IdeaWriter turns into idea prose.
type IdeaBrief struct {
	Region            string
	TopTerms          []string
	SampleTitles      []string
	AverageEngagement float64
	Sentiment         float64
	VideoCount        int
}

// CoachBrief carries the inputs for a genre coaching report.
type CoachBrief struct {
	Region         string
	Genre          string
	Videos         []record.Video
	Recommendation insight.Recommendation
}

// IdeaWriter renders the generative-sounding prose sections.
type IdeaWriter interface {
	Ideas(ctx context.Context, brief IdeaBrief) (string, error)
	CoachReport(ctx context.Context, brief CoachBrief) (string, error)
}

// ReportStore caches rendered reports for a short TTL.
type ReportStore interface {
	Get(ctx context.Context, key string) (Report, bool, error)
	Set(ctx context.Context, key string, report Report, ttl time.Duration) error
}
