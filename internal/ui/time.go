package ui

import (
	"fmt"
	"time"
)

// FormatTimeAgo returns a compact age string like "2m ago".
func FormatTimeAgo(then, now time.Time) string {
	if then.IsZero() {
		return "-"
	}
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatTimeAgeShort returns a compact age string like "2m".
func FormatTimeAgeShort(then, now time.Time) string {
	if then.IsZero() {
		return "-"
	}
	return FormatDurationShort(now.Sub(then))
}

var shortUnits = []struct {
	suffix  string
	seconds int64
}{
	{"d", 86400},
	{"h", 3600},
	{"m", 60},
}

// FormatDurationShort formats a duration with its largest short unit
// (s/m/h/d). Negative durations clamp to zero.
func FormatDurationShort(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int64(d / time.Second)
	for _, unit := range shortUnits {
		if seconds >= unit.seconds {
			return fmt.Sprintf("%d%s", seconds/unit.seconds, unit.suffix)
		}
	}
	return fmt.Sprintf("%ds", seconds)
}
