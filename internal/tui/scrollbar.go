package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderVerticalScrollbar(contentHeight, visibleHeight, scrollOffset int, colors ThemeColors) string {
	if contentHeight <= visibleHeight || visibleHeight <= 0 {
		return ""
	}

	trackStyle := lipgloss.NewStyle().Foreground(colors.ScrollTrack)
	thumbStyle := lipgloss.NewStyle().Foreground(colors.ScrollThumb)

	thumbSize := max(1, visibleHeight*visibleHeight/contentHeight)
	maxOffset := contentHeight - visibleHeight
	thumbPosition := 0
	if maxOffset > 0 {
		thumbPosition = scrollOffset * (visibleHeight - thumbSize) / maxOffset
	}
	thumbPosition = max(0, min(thumbPosition, visibleHeight-thumbSize))

	var sb strings.Builder
	for i := 0; i < visibleHeight; i++ {
		if i >= thumbPosition && i < thumbPosition+thumbSize {
			sb.WriteString(thumbStyle.Render("┃"))
		} else {
			sb.WriteString(trackStyle.Render("│"))
		}
		if i < visibleHeight-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
