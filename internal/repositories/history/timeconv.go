package history

import "time"

// Timestamps are stored as integer milliseconds since the epoch, matching the
// layout of the original mobile database.

func toUnixMilli(t time.Time) int64 {
	return t.UnixMilli()
}

func fromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms)
}
