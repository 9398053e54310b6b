package ui

import (
	"fmt"
	"time"
)

// formatRelativeTime converts a timestamp to a human-readable relative time string.
// Returns empty string for zero times.
//
// Format:
//   - < 1 min: "just now"
//   - < 1 hour: "Xm ago"
//   - < 24 hours: "Xh ago"
//   - < 7 days: "Xd ago"
//   - < 30 days: "Xw ago"
//   - < 365 days: "Xmo ago"
//   - >= 365 days: "Xy ago"
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	elapsed := time.Since(t)

	if elapsed < time.Minute {
		return "just now"
	}

	if elapsed < time.Hour {
		return formatWithUnit(int(elapsed.Minutes()), "m")
	}

	if elapsed < 24*time.Hour {
		return formatWithUnit(int(elapsed.Hours()), "h")
	}

	if elapsed < 7*24*time.Hour {
		return formatWithUnit(int(elapsed.Hours()/24), "d")
	}

	if elapsed < 30*24*time.Hour {
		return formatWithUnit(int(elapsed.Hours()/(24*7)), "w")
	}

	if elapsed < 365*24*time.Hour {
		return formatWithUnit(int(elapsed.Hours()/(24*30)), "mo")
	}

	return formatWithUnit(int(elapsed.Hours()/(24*365)), "y")
}

// formatWithUnit creates a formatted string with value and unit followed by "ago"
func formatWithUnit(value int, unit string) string {
	return fmt.Sprintf("%d%s ago", value, unit)
}
