package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	bl "github.com/winder/bubblelayout"
	"golang.org/x/term"
)

var (
	ColourBorder        = lipgloss.Color("#424B5D")
	ColourBorderFocused = lipgloss.Color("#69c8dc")
	ColourBgSelected    = lipgloss.Color("#424B5D")
	ColourFg            = lipgloss.NoColor{}
	ColourDirty         = lipgloss.Color("#d7a65a")
	ColourLink          = lipgloss.Color("#69c8dc")
	ColourMail          = lipgloss.Color("#9e84b7")
	ColourDash          = lipgloss.Color("#5c6370")
	ColourEmbed         = lipgloss.Color("#d75a7d")
	ColourMuted         = lipgloss.Color("#7f8490")
	ColourAdded         = lipgloss.Color("#7bb791")
	ColourRemoved       = lipgloss.Color("#d75a7d")
	BorderStyle         = lipgloss.RoundedBorder()
)

// StatusBarHeight is the number of lines below the columns
const StatusBarHeight = 1

// BaseColumnLayout provides the basic layout style for a column
func BaseColumnLayout(size bl.Size, focused bool) lipgloss.Style {
	borderColour := ColourBorder
	if focused {
		borderColour = ColourBorderFocused
	}

	height := size.Height
	if height <= 0 {
		_, termHeight := GetTerminalSize()
		height = termHeight - StatusBarHeight
	}

	return lipgloss.NewStyle().
		Border(BorderStyle).
		BorderForeground(borderColour).
		Foreground(ColourFg).
		Padding(0, 1).
		Width(max(size.Width-2, 0)).
		Height(ColumnHeight(height))
}

// ColumnHeight returns the inner height of a column of the given
// outer height
func ColumnHeight(height int) int {
	return max(height-2, 1)
}

// ColumnWidth returns the usable text width of a column of the given
// outer width
func ColumnWidth(width int) int {
	// border and padding on both sides
	return max(width-4, 1)
}

// GetTerminalSize determines the current
// Terminal providing a fallback and subtracting 1 from height
// because otherwise the upper part of the ui gets truncated
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		// Default size if terminal size can't be detected
		return 80, 24
	}
	return width, height - 1
}
