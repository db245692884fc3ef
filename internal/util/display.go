package util

import (
	"github.com/mattn/go-runewidth"
)

// GetDisplayWidth calculates the actual display width of a string,
// accounting for wide runes in app labels.
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateLabel shortens a label to fit the given display width.
func TruncateLabel(text string, width int) string {
	return runewidth.Truncate(text, width, "…")
}
