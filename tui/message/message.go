package message

import (
	"github.com/charmbracelet/lipgloss"
)

type Type int

const (
	Success Type = iota
	Error
	Prompt
	PromptError
)

var msgColours = map[Type]lipgloss.TerminalColor{
	Success:     lipgloss.NoColor{},
	Error:       lipgloss.Color("#d75a7d"),
	Prompt:      lipgloss.NoColor{},
	PromptError: lipgloss.Color("#d75a7d"),
}

func (m Type) Colour() lipgloss.TerminalColor {
	return msgColours[m]
}

type Sender int

const (
	SenderNone Sender = iota
	SenderNotesList
	SenderEditor
	SenderStatusBar
)

// Column is a section of the status bar
type Column int

const (
	General Column = iota
	Info
	Changes
	CursorPos
)

type StatusBarMsg struct {
	Content string
	Type    Type
	Sender  Sender
	Column  Column
}

// Empty reports whether the message carries nothing to display
func (m StatusBarMsg) Empty() bool {
	return m.Content == "" && m.Type == Success
}
