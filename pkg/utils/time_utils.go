package utils

import "time"

// TimestampLayout is the layout used for every human readable timestamp in
// reports and exports.
const TimestampLayout = "2006-01-02 15:04:05"

// Use explicit "seconds" variant for DB storage
func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds returns the zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}

func FormatUnixTimestamp(t int64) string {
	return FormatTimestamp(FromUnixSeconds(t))
}
