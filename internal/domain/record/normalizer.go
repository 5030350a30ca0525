package record

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/trendlens/pkg/metrics"
	"github.com/yanqian/trendlens/pkg/util"
)

const (
	layoutZulu    = "2006-01-02T15:04:05Z"
	layoutSeconds = "2006-01-02T15:04:05"
)

// Normalizer converts raw catalog items into Videos against a fixed clock.
// Malformed fields never error: counts coerce to zero and bad timestamps
// leave the publish instant absent while the record stays usable for
// category, engagement and topic analyses.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer builds a Normalizer on the UTC wall clock.
func NewNormalizer() *Normalizer {
	return &Normalizer{now: util.NowUTC}
}

// Normalize produces one Video, or ok=false when the item lacks both an
// identifier and a title.
func (n *Normalizer) Normalize(raw Raw) (Video, bool) {
	if strings.TrimSpace(raw.ID) == "" && strings.TrimSpace(raw.Title) == "" {
		return Video{}, false
	}

	views := coerceCount(raw.ViewCount)
	likes := coerceCount(raw.LikeCount)
	comments := coerceCount(raw.CommentCount)

	v := Video{
		ID:           raw.ID,
		Title:        raw.Title,
		Description:  raw.Description,
		ChannelTitle: raw.ChannelTitle,
		CategoryID:   strings.TrimSpace(raw.CategoryID),
		Views:        views,
		Likes:        likes,
		Comments:     comments,
		LikeRatio:    float64(likes) / float64(views+1),
		CommentRatio: float64(comments) / float64(views+1),
		Thumbnail:    raw.Thumbnail,
	}
	v.EngagementScore = v.LikeRatio + v.CommentRatio
	if views > 0 {
		v.EngagementRate = round2(100 * float64(likes+comments) / float64(views))
	}
	if len(raw.Tags) > 0 {
		v.Tags = append([]string(nil), raw.Tags...)
	}

	if ts, ok := parseTimestamp(raw.PublishedAt); ok {
		v.PublishedAt = ts
		v.PublishHour = ts.Hour()
		v.DaysSinceUpload = int(math.Floor(n.now().UTC().Sub(ts).Hours() / 24))
	}

	return v, true
}

// NormalizeAll maps a raw batch, dropping only items that fail the
// id-and-title minimum, and reports what it kept.
func (n *Normalizer) NormalizeAll(raws []Raw) ([]Video, metrics.PipelineStats) {
	videos := make([]Video, 0, len(raws))
	stats := metrics.PipelineStats{RecordsFetched: len(raws)}
	for _, raw := range raws {
		v, ok := n.Normalize(raw)
		if !ok {
			stats.RecordsDiscarded++
			continue
		}
		videos = append(videos, v)
	}
	stats.RecordsKept = len(videos)
	return videos, stats
}

// coerceCount parses a count field, returning 0 for anything that is not
// a non-negative integer.
func coerceCount(value string) int64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

// parseTimestamp accepts the two upstream shapes: a Z-suffixed
// whole-second instant, or one with a fractional suffix that is cut
// before parsing. Both are interpreted as UTC. A Z-suffixed value that
// fails its layout stays absent; there is no cross-shape fallback.
func parseTimestamp(value string) (time.Time, bool) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return time.Time{}, false
	}
	if strings.HasSuffix(raw, "Z") {
		ts, err := time.Parse(layoutZulu, raw)
		if err != nil {
			return time.Time{}, false
		}
		return ts, true
	}
	trimmed := raw
	if idx := strings.IndexByte(raw, '.'); idx >= 0 {
		trimmed = raw[:idx]
	}
	ts, err := time.Parse(layoutSeconds, trimmed)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
