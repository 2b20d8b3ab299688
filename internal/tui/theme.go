// Package tui provides the terminal user interface for droidset.
package tui

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dongho-jung/droidset/internal/config"
)

const (
	darkModeUnknown int32 = iota
	darkModeLight
	darkModeDark
)

var cachedDarkMode atomic.Int32

// DetectDarkMode returns whether the terminal is in dark mode.
// It checks the theme config setting first:
//   - "light": always returns false
//   - "dark": always returns true
//   - "auto" or empty: uses lipgloss.HasDarkBackground() to auto-detect
//
// Call it BEFORE bubbletea starts; the background query reads from the
// terminal.
func DetectDarkMode(theme config.Theme) bool {
	switch theme {
	case config.ThemeLight:
		return false
	case config.ThemeDark:
		return true
	default:
		if isDark, ok := cachedDarkModeValue(); ok {
			return isDark
		}
		isDark := detectDarkModeWithRetry()
		setCachedDarkMode(isDark)
		return isDark
	}
}

func cachedDarkModeValue() (bool, bool) {
	switch cachedDarkMode.Load() {
	case darkModeDark:
		return true, true
	case darkModeLight:
		return false, true
	default:
		return false, false
	}
}

func setCachedDarkMode(isDark bool) {
	if isDark {
		cachedDarkMode.Store(darkModeDark)
		return
	}
	cachedDarkMode.Store(darkModeLight)
}

// detectDarkModeWithRetry asks the terminal a few times and takes the
// majority; the OSC background query is flaky right after startup.
func detectDarkModeWithRetry() bool {
	_ = os.Stdout.Sync()
	time.Sleep(5 * time.Millisecond)

	const attempts = 3
	darkCount := 0
	for i := 0; i < attempts; i++ {
		if lipgloss.HasDarkBackground() {
			darkCount++
		}
		if i < attempts-1 {
			time.Sleep(10 * time.Millisecond)
		}
	}
	return darkCount >= 2
}

// ThemeColors is the palette for one background.
type ThemeColors struct {
	Accent        lipgloss.Color
	TextNormal    lipgloss.Color
	TextDim       lipgloss.Color
	TextBright    lipgloss.Color
	TextInverted  lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color
	Selection     lipgloss.Color
	ErrorColor    lipgloss.Color
	WarningColor  lipgloss.Color
	SuccessColor  lipgloss.Color
	ScrollTrack   lipgloss.Color
	ScrollThumb   lipgloss.Color
}

// NewThemeColors returns the palette for a dark or light background.
func NewThemeColors(isDark bool) ThemeColors {
	if isDark {
		return ThemeColors{
			Accent:        lipgloss.Color("39"),
			TextNormal:    lipgloss.Color("252"),
			TextDim:       lipgloss.Color("244"),
			TextBright:    lipgloss.Color("231"),
			TextInverted:  lipgloss.Color("16"),
			Border:        lipgloss.Color("240"),
			BorderFocused: lipgloss.Color("39"),
			Selection:     lipgloss.Color("237"),
			ErrorColor:    lipgloss.Color("203"),
			WarningColor:  lipgloss.Color("214"),
			SuccessColor:  lipgloss.Color("114"),
			ScrollTrack:   lipgloss.Color("238"),
			ScrollThumb:   lipgloss.Color("245"),
		}
	}
	return ThemeColors{
		Accent:        lipgloss.Color("25"),
		TextNormal:    lipgloss.Color("236"),
		TextDim:       lipgloss.Color("245"),
		TextBright:    lipgloss.Color("16"),
		TextInverted:  lipgloss.Color("231"),
		Border:        lipgloss.Color("250"),
		BorderFocused: lipgloss.Color("25"),
		Selection:     lipgloss.Color("254"),
		ErrorColor:    lipgloss.Color("160"),
		WarningColor:  lipgloss.Color("130"),
		SuccessColor:  lipgloss.Color("28"),
		ScrollTrack:   lipgloss.Color("250"),
		ScrollThumb:   lipgloss.Color("245"),
	}
}
