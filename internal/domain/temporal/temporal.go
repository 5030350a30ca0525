package temporal

import (
	"math"
	"strconv"

	"github.com/yanqian/trendlens/internal/domain/record"
)

// HourBucket aggregates publish-time performance for one hour of the day.
type HourBucket struct {
	Hour              int     `json:"hour"`
	HourLabel         string  `json:"hourLabel"`
	VideoCount        int     `json:"videoCount"`
	AverageViews      int64   `json:"averageViews"`
	AverageEngagement float64 `json:"averageEngagement"`
}

// Aggregate reduces records in temporal scope into exactly 24 buckets,
// hours 0 through 23 ascending. Hours with no contributing records report
// zeros rather than being omitted; downstream consumers rely on the fixed
// 24-length domain.
func Aggregate(videos []record.Video) []HourBucket {
	type acc struct {
		views      int64
		engagement float64
		count      int
	}
	var hours [24]acc

	for _, v := range videos {
		if !v.InTemporalScope() {
			continue
		}
		h := v.PublishHour
		hours[h].views += v.Views
		hours[h].engagement += v.EngagementRate
		hours[h].count++
	}

	buckets := make([]HourBucket, 24)
	for h := range buckets {
		b := HourBucket{Hour: h, HourLabel: Label(h)}
		if hours[h].count > 0 {
			b.VideoCount = hours[h].count
			b.AverageViews = int64(math.Round(float64(hours[h].views) / float64(hours[h].count)))
			b.AverageEngagement = math.Round(hours[h].engagement/float64(hours[h].count)*100) / 100
		}
		buckets[h] = b
	}
	return buckets
}

// Label renders an hour of day on a 12-hour clock with an AM/PM suffix;
// hours 0 and 12 both render as "12".
func Label(hour int) string {
	display := hour % 12
	if display == 0 {
		display = 12
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	return strconv.Itoa(display) + suffix
}
