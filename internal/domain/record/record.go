package record

import "time"

// Raw is one loosely typed video item exactly as a record source supplied
// it. Count fields stay strings because the upstream catalog serializes
// them that way; absent fields are empty.
type Raw struct {
	ID           string
	Title        string
	Description  string
	ChannelTitle string
	CategoryID   string
	PublishedAt  string
	ViewCount    string
	LikeCount    string
	CommentCount string
	Tags         []string
	Thumbnail    string
}

// Video is the normalized record every analysis consumes. Instances are
// never mutated after Normalize returns them.
type Video struct {
	ID           string
	Title        string
	Description  string
	ChannelTitle string
	CategoryID   string
	Views        int64
	Likes        int64
	Comments     int64

	// EngagementRate is 100*(likes+comments)/views rounded to two
	// decimals, exactly 0 when views is 0.
	EngagementRate float64

	// LikeRatio and CommentRatio use a views+1 denominator so they stay
	// total without branching; EngagementScore is their sum.
	LikeRatio       float64
	CommentRatio    float64
	EngagementScore float64

	// PublishedAt is zero when the source timestamp was absent or
	// unparseable. PublishHour and DaysSinceUpload are meaningful only
	// when PublishedAt is non-zero; DaysSinceUpload may be negative on
	// clock skew, which excludes the record from temporal bucketing but
	// from nothing else.
	PublishedAt     time.Time
	PublishHour     int
	DaysSinceUpload int

	Tags      []string
	Thumbnail string
}

// HasTimestamp reports whether the publish instant survived parsing.
func (v Video) HasTimestamp() bool {
	return !v.PublishedAt.IsZero()
}

// InTemporalScope reports whether the record participates in hour
// bucketing and the upload-recency series.
func (v Video) InTemporalScope() bool {
	return v.HasTimestamp() && v.DaysSinceUpload >= 0
}
