package utils

import "time"

// Timestamps are stored as UNIX seconds and rendered as RFC3339 UTC.

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds returns the zero time for t<=0 so callers decide how
// to render missing values.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func FormatUnixRFC3339(t int64) string {
	return FormatRFC3339(FromUnixSeconds(t))
}
