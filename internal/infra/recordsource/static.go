package recordsource

import (
	"context"
	"sync"

	"github.com/yanqian/trendlens/internal/domain/record"
	"github.com/yanqian/trendlens/internal/domain/trending"
)

// StaticSource serves an in-memory snapshot. Useful for tests and as
// the fallback when no fixture file is configured.
type StaticSource struct {
	mu   sync.RWMutex
	raws []record.Raw
}

// NewStaticSource copies records into a ready source.
func NewStaticSource(raws []record.Raw) *StaticSource {
	s := &StaticSource{}
	s.Replace(raws)
	return s
}

// Replace swaps the snapshot the source serves.
func (s *StaticSource) Replace(raws []record.Raw) {
	copied := make([]record.Raw, len(raws))
	copy(copied, raws)
	s.mu.Lock()
	s.raws = copied
	s.mu.Unlock()
}

// Collect implements trending.Source.
func (s *StaticSource) Collect(_ context.Context, q trending.SourceQuery) ([]record.Raw, error) {
	s.mu.RLock()
	raws := s.raws
	s.mu.RUnlock()
	return applyQuery(raws, q), nil
}

var _ trending.Source = (*StaticSource)(nil)

// DemoRecords is a small built-in snapshot, enough to exercise every
// analysis including clustering at the default cluster count.
func DemoRecords() []record.Raw {
	return []record.Raw{
		{
			ID: "demo-01", Title: "Perfect Pasta Carbonara at Home",
			Description:  "A weeknight carbonara that actually works.",
			ChannelTitle: "Home Kitchen", CategoryID: "26",
			PublishedAt: "2025-11-03T17:00:00Z",
			ViewCount:   "412000", LikeCount: "18400", CommentCount: "2210",
			Tags: []string{"cooking", "pasta", "recipe"},
		},
		{
			ID: "demo-02", Title: "Street Food Tour Through Bangkok",
			Description:  "Night market skewers, noodles and mango sticky rice.",
			ChannelTitle: "Fork and Flight", CategoryID: "19",
			PublishedAt: "2025-11-02T09:30:00Z",
			ViewCount:   "980000", LikeCount: "45200", CommentCount: "5120",
			Tags: []string{"travel", "food", "bangkok"},
		},
		{
			ID: "demo-03", Title: "Speedrun World Record Attempt Live",
			Description:  "Going for sub 28 minutes after 400 resets.",
			ChannelTitle: "FrameOne", CategoryID: "20",
			PublishedAt: "2025-11-03T21:15:00Z",
			ViewCount:   "1530000", LikeCount: "120300", CommentCount: "18400",
			Tags: []string{"gaming", "speedrun"},
		},
		{
			ID: "demo-04", Title: "Ranked Climb to Diamond in One Night",
			Description:  "Solo queue strategy breakdown.",
			ChannelTitle: "FrameOne", CategoryID: "20",
			PublishedAt: "2025-11-01T20:05:00Z",
			ViewCount:   "620000", LikeCount: "38800", CommentCount: "4450",
			Tags: []string{"gaming", "ranked"},
		},
		{
			ID: "demo-05", Title: "Morning Yoga Routine for Beginners",
			Description:  "Fifteen minutes to loosen up before work.",
			ChannelTitle: "Stillpoint", CategoryID: "26",
			PublishedAt: "2025-11-04T06:00:00Z",
			ViewCount:   "275000", LikeCount: "16900", CommentCount: "980",
			Tags: []string{"yoga", "wellness"},
		},
		{
			ID: "demo-06", Title: "Official Music Video Premiere Tonight",
			Description:  "The long awaited single is finally here.",
			ChannelTitle: "Nightwave Records", CategoryID: "10",
			PublishedAt: "2025-11-04T00:00:00Z",
			ViewCount:   "4200000", LikeCount: "512000", CommentCount: "48100",
			Tags: []string{"music", "premiere"},
		},
		{
			ID: "demo-07", Title: "Acoustic Cover of a Classic Ballad",
			Description:  "One take, one guitar.",
			ChannelTitle: "Attic Sessions", CategoryID: "10",
			PublishedAt: "2025-11-02T19:45:00Z",
			ViewCount:   "310000", LikeCount: "29800", CommentCount: "2040",
			Tags: []string{"music", "acoustic", "cover"},
		},
		{
			ID: "demo-08", Title: "Budget Phone Camera Test Results",
			Description:  "Side by side against last year's flagship.",
			ChannelTitle: "Benchpress Tech", CategoryID: "28",
			PublishedAt: "2025-11-03T14:20:00Z",
			ViewCount:   "845000", LikeCount: "52700", CommentCount: "7320",
			Tags: []string{"tech", "review", "camera"},
		},
		{
			ID: "demo-09", Title: "Why Bridges Do Not Fall Down",
			Description:  "Load paths explained with spaghetti models.",
			ChannelTitle: "Applied Curiosity", CategoryID: "27",
			PublishedAt: "2025-10-31T16:10:00Z",
			ViewCount:   "1120000", LikeCount: "98400", CommentCount: "6110",
			Tags: []string{"education", "engineering"},
		},
		{
			ID: "demo-10", Title: "Late Night Comedy Monologue Highlights",
			Description:  "The best bits from this week's shows.",
			ChannelTitle: "After Hours Clips", CategoryID: "23",
			PublishedAt: "2025-11-04T05:30:00Z",
			ViewCount:   "560000", LikeCount: "31200", CommentCount: "3980",
			Tags: []string{"comedy", "late night"},
		},
		{
			ID: "demo-11", Title: "Rescue Puppy Learns to Swim",
			Description:  "From scared paddler to cannonball in a week.",
			ChannelTitle: "Paws Ahead", CategoryID: "15",
			PublishedAt: "2025-11-01T12:00:00Z",
			ViewCount:   "1890000", LikeCount: "204000", CommentCount: "11600",
			Tags: []string{"pets", "puppy"},
		},
		{
			ID: "demo-12", Title: "Marathon Training Week One Vlog",
			Description:  "Base mileage, sore calves and big breakfasts.",
			ChannelTitle: "Run Far Club", CategoryID: "17",
			PublishedAt: "2025-11-02T07:15:00Z",
			ViewCount:   "198000", LikeCount: "12100", CommentCount: "1340",
			Tags: []string{"running", "marathon", "training"},
		},
	}
}
