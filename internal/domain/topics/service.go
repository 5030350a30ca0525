package topics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yanqian/trendlens/internal/domain/record"
	"github.com/yanqian/trendlens/internal/domain/text"
	apperrors "github.com/yanqian/trendlens/pkg/errors"
)

const (
	defaultClusters     = 5
	defaultSeed         = 42
	defaultMaxTerms     = 1000
	defaultSampleTitles = 5
	topTermCount        = 5
)

// Config carries the clustering tunables. Zero values fall back to the
// defaults above.
type Config struct {
	Clusters     int
	Seed         int64
	MaxTerms     int
	SampleTitles int
}

// Profile describes one topic cluster after partitioning.
type Profile struct {
	ClusterID           int      `json:"clusterId"`
	TopTerms            []string `json:"topTerms"`
	MemberCount         int      `json:"memberCount"`
	AverageViews        float64  `json:"averageViews"`
	AverageLikeRatio    float64  `json:"averageLikeRatio"`
	AverageCommentRatio float64  `json:"averageCommentRatio"`
	AverageEngagement   float64  `json:"averageEngagement"`
	SampleTitles        []string `json:"sampleTitles"`
}

// Result bundles everything one clustering run produced. Profiles are
// ordered by mean engagement score descending, so Profiles[0] is the top
// cluster; Records, CleanTitles and Labels are aligned by index and keep
// the input order of the clustered subset.
type Result struct {
	Profiles    []Profile
	Assignments map[string]int
	Records     []record.Video
	CleanTitles []string
	Labels      []int
}

// TopCluster returns the highest-engagement profile.
func (r *Result) TopCluster() Profile {
	return r.Profiles[0]
}

// Clusterer vectorizes record titles and partitions them into topic
// clusters. It is a pure CPU transform: no I/O, no shared state, and
// identical output for identical input and seed.
type Clusterer struct {
	cfg Config
}

// NewClusterer applies defaults and returns a ready Clusterer.
func NewClusterer(cfg Config) *Clusterer {
	if cfg.Clusters <= 0 {
		cfg.Clusters = defaultClusters
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}
	if cfg.MaxTerms <= 0 {
		cfg.MaxTerms = defaultMaxTerms
	}
	if cfg.SampleTitles <= 0 {
		cfg.SampleTitles = defaultSampleTitles
	}
	return &Clusterer{cfg: cfg}
}

// Cluster partitions every record with a non-empty title into exactly
// cfg.Clusters clusters. It fails with the insufficient_data code when
// fewer distinct normalized titles than clusters exist; the caller
// decides whether to lower the cluster count or skip topic analysis —
// the engine never shrinks k on its own.
func (c *Clusterer) Cluster(videos []record.Video) (*Result, error) {
	subset := make([]record.Video, 0, len(videos))
	clean := make([]string, 0, len(videos))
	distinct := make(map[string]struct{})
	for _, v := range videos {
		if strings.TrimSpace(v.Title) == "" {
			continue
		}
		normalized := text.Normalize(v.Title)
		subset = append(subset, v)
		clean = append(clean, normalized)
		distinct[normalized] = struct{}{}
	}

	k := c.cfg.Clusters
	if len(distinct) < k {
		return nil, apperrors.New("insufficient_data",
			fmt.Sprintf("clustering needs at least %d distinct titles, got %d", k, len(distinct)))
	}

	space, ok := newVectorizer(c.cfg.MaxTerms).fit(clean)
	if !ok {
		return nil, apperrors.New("insufficient_data", "titles produced an empty vocabulary")
	}

	solution := kMeans(space.matrix, k, c.cfg.Seed)

	result := &Result{
		Profiles:    c.buildProfiles(subset, solution, space),
		Assignments: make(map[string]int, len(subset)),
		Records:     subset,
		CleanTitles: clean,
		Labels:      solution.assignments,
	}
	for i, v := range subset {
		result.Assignments[v.ID] = solution.assignments[i]
	}
	return result, nil
}

func (c *Clusterer) buildProfiles(subset []record.Video, solution kmeansResult, space *termSpace) []Profile {
	k := c.cfg.Clusters
	profiles := make([]Profile, k)
	for id := 0; id < k; id++ {
		profiles[id] = Profile{
			ClusterID: id,
			TopTerms:  topTerms(solution.centroids.RawRowView(id), space.terms, topTermCount),
		}
	}

	type agg struct {
		views      float64
		likeRatio  float64
		comments   float64
		engagement float64
	}
	sums := make([]agg, k)
	for i, v := range subset {
		id := solution.assignments[i]
		p := &profiles[id]
		p.MemberCount++
		if len(p.SampleTitles) < c.cfg.SampleTitles {
			p.SampleTitles = append(p.SampleTitles, v.Title)
		}
		sums[id].views += float64(v.Views)
		sums[id].likeRatio += v.LikeRatio
		sums[id].comments += v.CommentRatio
		sums[id].engagement += v.EngagementScore
	}
	for id := range profiles {
		if n := float64(profiles[id].MemberCount); n > 0 {
			profiles[id].AverageViews = sums[id].views / n
			profiles[id].AverageLikeRatio = sums[id].likeRatio / n
			profiles[id].AverageCommentRatio = sums[id].comments / n
			profiles[id].AverageEngagement = sums[id].engagement / n
		}
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		if profiles[i].AverageEngagement == profiles[j].AverageEngagement {
			return profiles[i].ClusterID < profiles[j].ClusterID
		}
		return profiles[i].AverageEngagement > profiles[j].AverageEngagement
	})
	return profiles
}

// topTerms returns the highest-weighted centroid dimensions, descending
// by weight with ties broken alphabetically.
func topTerms(centroid []float64, terms []string, limit int) []string {
	order := make([]int, len(terms))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if centroid[i] == centroid[j] {
			return terms[i] < terms[j]
		}
		return centroid[i] > centroid[j]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	out := make([]string, len(order))
	for i, idx := range order {
		out[i] = terms[idx]
	}
	return out
}
