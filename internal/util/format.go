package util

import (
	"fmt"
)

// FormatMinutes renders whole minutes as "XhYm" style text.
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours := minutes / 60
	rest := minutes % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
	return fmt.Sprintf("%dm", rest)
}

// FormatPercent renders a clamped percentage with its sign.
func FormatPercent(percent int) string {
	return fmt.Sprintf("%d%%", percent)
}
