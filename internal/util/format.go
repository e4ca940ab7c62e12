package util

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

// FormatCount returns a human-readable count string.
func FormatCount(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1_000_000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	if n < 1_000_000_000 {
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	}
	return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
}

// FormatMinutes returns a "minutes remaining" string, switching to hours
// once the estimate reaches two hours.
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 120 {
		if minutes == 1 {
			return "1 minute remaining"
		}
		return fmt.Sprintf("%d minutes remaining", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh remaining", h)
	}
	return fmt.Sprintf("%dh %dm remaining", h, m)
}

// FormatLessons returns "N of M lessons".
func FormatLessons(completed, total int) string {
	if total == 1 {
		return fmt.Sprintf("%d of 1 lesson", completed)
	}
	return fmt.Sprintf("%d of %d lessons", completed, total)
}

// TruncateString truncates s to maxLen display cells, adding "..." if needed.
// ANSI sequences and wide runes are measured by their rendered width.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return ansi.Truncate(s, maxLen, "")
	}
	return ansi.Truncate(s, maxLen, "...")
}
