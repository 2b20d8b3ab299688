package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	rw "github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// fitWidth truncates s to width cells (with an ellipsis) and pads it with
// spaces to exactly width cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if rw.StringWidth(s) > width {
		s = ansi.Truncate(s, width, ellipsis)
	}
	return padWidth(s, width)
}

func padWidth(s string, width int) string {
	padding := width - rw.StringWidth(s)
	if padding <= 0 {
		return s
	}
	return s + strings.Repeat(" ", padding)
}

// firstLine returns the first line of s, marking dropped lines.
func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i] + " " + ellipsis
	}
	return s
}
