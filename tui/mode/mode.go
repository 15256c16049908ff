package mode

import "github.com/charmbracelet/lipgloss"

type Mode int

const (
	Normal Mode = iota
	Insert
	// Command is active while the status bar prompt has the focus
	Command
	// Filter is active while the notes list is being filtered
	Filter
)

var modeName = map[Mode]string{
	Normal:  "n",
	Insert:  "i",
	Command: "c",
	Filter:  "f",
}

var fullName = map[Mode]string{
	Normal:  "-- NORMAL --",
	Insert:  "-- INSERT --",
	Command: "",
	Filter:  "-- FILTER --",
}

var colour = map[Mode]lipgloss.TerminalColor{
	Normal:  lipgloss.NoColor{},
	Insert:  lipgloss.Color("#7bb791"),
	Command: lipgloss.NoColor{},
	Filter:  lipgloss.Color("#b7b27b"),
}

func (m Mode) String() string {
	return modeName[m]
}

func (m Mode) FullString() string {
	return fullName[m]
}

func (m Mode) Colour() lipgloss.TerminalColor {
	return colour[m]
}

type ModeInstance struct {
	Current Mode
}
