package util

import "time"

// NowUTC is the default clock for record normalization; tests swap it out.
func NowUTC() time.Time {
	return time.Now().UTC()
}
