package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dongho-jung/droidset/internal/constants"
	"github.com/dongho-jung/droidset/internal/settings"
)

const (
	screenHelp = "↑/↓: Navigate  Tab: Focus  ←/→: Type  Enter/⌃S: Save  ⌃Y: Copy  Esc: Quit"
	valueHelp  = "↑/↓: History  Tab: Focus  Enter/⌃S: Save  ⌃Y: Copy  Esc: Cancel"
)

func (m *SettingsScreen) cacheStyles() {
	if m.stylesCached {
		return
	}
	c := m.colors
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c.Border).
		Padding(0, 1)

	m.styles = screenStyles{
		title:        lipgloss.NewStyle().Bold(true).Foreground(c.Accent),
		subtitle:     lipgloss.NewStyle().Foreground(c.TextDim),
		box:          box,
		boxFocused:   box.BorderForeground(c.BorderFocused),
		item:         lipgloss.NewStyle().Foreground(c.TextNormal),
		selected:     lipgloss.NewStyle().Foreground(c.Accent).Background(c.Selection).Bold(true),
		dim:          lipgloss.NewStyle().Foreground(c.TextDim),
		label:        lipgloss.NewStyle().Foreground(c.TextNormal).Width(7),
		typeItem:     lipgloss.NewStyle().Foreground(c.TextDim).Padding(0, 1),
		typeSelected: lipgloss.NewStyle().Foreground(c.TextInverted).Background(c.Accent).Bold(true).Padding(0, 1),
		toast:        lipgloss.NewStyle().Foreground(c.SuccessColor),
		toastError:   lipgloss.NewStyle().Foreground(c.ErrorColor).Bold(true),
		help:         lipgloss.NewStyle().Foreground(c.TextDim).MarginTop(1),
	}
	m.stylesCached = true
}

// View renders the settings screen.
func (m *SettingsScreen) View() string {
	m.cacheStyles()
	s := m.styles

	var sb strings.Builder

	title := s.title.Render(constants.AppName)
	if m.opts.Backend != "" {
		title += s.subtitle.Render("  " + m.opts.Backend)
	}
	if m.catalog != nil && !m.granted {
		title += "  " + lipgloss.NewStyle().Foreground(m.colors.WarningColor).Render("write permission missing")
	}
	sb.WriteString(title)
	sb.WriteString("\n\n")

	sb.WriteString(m.zones.Mark(zoneFilter, m.boxFor(focusFilter).Render(m.filter.View())))
	sb.WriteString("\n")

	sb.WriteString(m.renderList())
	sb.WriteString("\n\n")

	sb.WriteString(m.renderTypes())
	sb.WriteString("\n")

	sb.WriteString(m.renderValue())

	for _, t := range m.toasts {
		sb.WriteString("\n")
		style := s.toast
		if t.isError {
			style = s.toastError
		}
		sb.WriteString(style.Render(fitWidth(firstLine(t.text), max(10, m.width-2))))
	}

	sb.WriteString("\n")
	help := screenHelp
	if m.focus == focusValue {
		help = valueHelp
	}
	sb.WriteString(s.help.Render(help))

	return m.zones.Scan(sb.String())
}

func (m *SettingsScreen) boxFor(f focusArea) lipgloss.Style {
	if m.focus == f {
		return m.styles.boxFocused
	}
	return m.styles.box
}

func (m *SettingsScreen) renderList() string {
	s := m.styles
	if m.catalog == nil {
		return s.dim.Render("  Loading keys...")
	}
	if len(m.filtered) == 0 {
		if m.catalog.Len() == 0 {
			return s.dim.Render("  No keys")
		}
		return s.dim.Render("  No matching keys")
	}

	rows := m.visibleRows()
	end := min(m.offset+rows, len(m.filtered))
	labelWidth := max(10, m.width-4)

	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		key := m.catalog.At(m.filtered[i])
		var line string
		if i == m.cursor {
			line = s.selected.Render("> " + fitWidth(key.Label(), labelWidth))
		} else {
			line = s.item.Render("  " + fitWidth(key.Label(), labelWidth))
		}
		lines = append(lines, m.zones.Mark(rowZoneID(i), line))
	}
	list := strings.Join(lines, "\n")

	if bar := renderVerticalScrollbar(len(m.filtered), end-m.offset, m.offset, m.colors); bar != "" {
		list = lipgloss.JoinHorizontal(lipgloss.Top, list, " ", bar)
	}
	if len(m.filtered) > rows {
		list += "\n" + s.dim.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.filtered)))
	}
	return list
}

func (m *SettingsScreen) renderTypes() string {
	s := m.styles
	label := s.label
	if m.focus == focusType {
		label = label.Foreground(m.colors.Accent)
	}

	parts := []string{label.Render("Type")}
	for _, t := range settings.ValueTypes() {
		style := s.typeItem
		if t == m.typ {
			style = s.typeSelected
		}
		parts = append(parts, m.zones.Mark(typeZoneID(t), style.Render(t.String())))
	}
	return strings.Join(parts, " ")
}

func (m *SettingsScreen) renderValue() string {
	s := m.styles

	header := s.label.Render("Value")
	switch {
	case !m.hasShown:
	case m.loading:
		header += s.dim.Render("reading...")
	case !m.hasValue:
		header += s.dim.Render("(" + constants.SettingsNull + ") " + m.shown.Setting)
	default:
		header += s.dim.Render(m.shown.Setting)
	}

	field := m.value.View()
	if m.readOnly {
		field = s.dim.Render(fitWidth(strconv.Quote(m.current), max(10, m.value.Width)))
	}
	box := m.zones.Mark(zoneValue, m.boxFor(focusValue).Render(field))
	return header + "\n" + box
}
