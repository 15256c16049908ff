package components

import (
	"github.com/charmbracelet/lipgloss"

	"linkpad/tui/theme"
)

type styles struct {
	base,
	icon,
	date,
	header,
	selected,
	active lipgloss.Style

	iconWidth int
}

func NotesListStyle() styles {
	var s styles
	s.iconWidth = 2

	s.base = lipgloss.NewStyle().
		Foreground(theme.ColourFg)

	s.icon = lipgloss.NewStyle().
		Width(s.iconWidth).
		Foreground(theme.ColourDirty)

	s.date = s.base.
		Foreground(theme.ColourMuted)

	s.header = s.base.
		Bold(true)

	s.selected = s.base.
		Background(theme.ColourBgSelected).
		Bold(true)

	s.active = s.base.
		Foreground(theme.ColourBorderFocused)

	return s
}
