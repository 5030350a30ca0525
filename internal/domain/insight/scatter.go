package insight

import "github.com/yanqian/trendlens/internal/domain/record"

const scatterRadius = 8

// ScatterPoint plots one video as upload age against view count.
type ScatterPoint struct {
	X              int     `json:"x"`
	Y              int64   `json:"y"`
	EngagementRate float64 `json:"engagementRate"`
	Title          string  `json:"title"`
	VideoID        string  `json:"videoId"`
	R              int     `json:"r"`
}

// ScatterPoints maps every record with a usable, non-future timestamp to
// a point. Records outside temporal scope are left out rather than
// plotted at a synthetic age.
func ScatterPoints(videos []record.Video) []ScatterPoint {
	points := make([]ScatterPoint, 0, len(videos))
	for _, v := range videos {
		if !v.InTemporalScope() {
			continue
		}
		points = append(points, ScatterPoint{
			X:              v.DaysSinceUpload,
			Y:              v.Views,
			EngagementRate: v.EngagementRate,
			Title:          v.Title,
			VideoID:        v.ID,
			R:              scatterRadius,
		})
	}
	return points
}
