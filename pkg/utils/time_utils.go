package utils

import "time"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// Month windows for earnings aggregation, unix seconds, server local time.
func StartOfMonth(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Unix()
}

func StartOfLastMonth(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, -1, 0).Unix()
}
