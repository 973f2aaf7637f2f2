// Package util provides shared text helpers for terminal and table output.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// ShortIDLen is how many characters of a task id the CLI prints.
const ShortIDLen = 8

// TruncateANSI truncates a string to maxWidth visual columns, adding "..." if truncated.
// ANSI escape codes are preserved and wide characters count as two columns.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= len(Ellipsis) {
		return Ellipsis
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate includes the tail in the final width calculation
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads plain text with spaces to width display columns, truncating
// it first if it is wider. Used for aligned columns in non-TUI output.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		if width <= len(Ellipsis) {
			return runewidth.Truncate(s, width, "")
		}
		s = runewidth.Truncate(s, width, Ellipsis)
	}
	return runewidth.FillRight(s, width)
}

// MaxWidth returns the widest display width among values.
func MaxWidth(values ...string) int {
	w := 0
	for _, v := range values {
		w = max(w, runewidth.StringWidth(v))
	}
	return w
}

// ShortID returns the first ShortIDLen characters of id.
func ShortID(id string) string {
	if len(id) <= ShortIDLen {
		return id
	}
	return id[:ShortIDLen]
}

// SingleLine collapses runs of whitespace, including newlines, into single
// spaces so multi-line input stays on one table row.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
