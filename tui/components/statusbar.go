package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"linkpad/tui/message"
	"linkpad/tui/mode"
	"linkpad/tui/theme"
)

// Commands maps the commands of the command prompt to their functions
type Commands map[string]func(args ...string) message.StatusBarMsg

// PromptKind tells what the status bar prompt is asking for
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptTitle
	PromptDirectory
	PromptConfirmDelete
	PromptCommand
)

type StatusBar struct {
	Content string
	Type    message.Type
	Prompt  textinput.Model

	// PromptKind is what the focused prompt is asking for
	PromptKind PromptKind

	Mode   mode.Mode
	Sender message.Sender

	Columns [4]string

	// Width of the terminal, 0 if unknown
	Width int
}

func NewStatusBar() *StatusBar {
	ti := textinput.New()
	ti.Prompt = " "
	ti.CharLimit = 255

	return &StatusBar{
		Prompt: ti,
	}
}

// Init initialises the Model on program load. It partly implements the tea.Model interface.
func (s *StatusBar) Init() tea.Cmd {
	return nil
}

// Update shows msg in its column. Keys go to the prompt while it's
// focused.
func (s *StatusBar) Update(
	msg message.StatusBarMsg,
	teaMsg tea.Msg,
) (*StatusBar, tea.Cmd) {
	var cmd tea.Cmd

	s.SetColContent(msg.Column, msg.Content)
	if msg.Column == message.General && !s.Prompting() {
		s.Type = msg.Type
		s.Sender = msg.Sender
	}

	switch teaMsg.(type) {
	case tea.KeyMsg:
		if s.Prompting() {
			s.Prompt, cmd = s.Prompt.Update(teaMsg)
		}
	}

	return s, cmd
}

func (s *StatusBar) View() string {
	st := style()

	width := s.Width
	if width <= 0 {
		width, _ = theme.GetTerminalSize()
	}

	wColInfo := 22
	wColChanges := 14
	wColCursorPos := 10
	wColGeneral := max(width-(wColInfo+wColChanges+wColCursorPos), 1)

	colGeneral := s.ColContent(message.General)
	if s.Prompting() {
		colGeneral = s.Prompt.View()
	} else {
		colGeneral = truncate.StringWithTail(colGeneral, uint(max(wColGeneral-2, 0)), "…")
		if colGeneral == "" && s.Mode != mode.Normal {
			colGeneral = s.ModeView()
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		st.
			Width(wColGeneral).
			MaxWidth(wColGeneral).
			Foreground(s.Type.Colour()).
			Render(colGeneral),

		st.
			Width(wColInfo).
			Align(lipgloss.Right).
			Foreground(theme.ColourMuted).
			Render(truncate.StringWithTail(s.ColContent(message.Info), uint(wColInfo-1), "…")),

		st.
			Width(wColChanges).
			Align(lipgloss.Right).
			Render(s.ColContent(message.Changes)),

		st.
			Width(wColCursorPos).
			Align(lipgloss.Right).
			Render(s.ColContent(message.CursorPos)),
	)
}

// ModeView renders the current mode
func (s *StatusBar) ModeView() string {
	return lipgloss.NewStyle().
		Foreground(s.Mode.Colour()).
		Render(s.Mode.FullString())
}

// Ask focuses the prompt. value prefills the input.
func (s *StatusBar) Ask(kind PromptKind, prompt string, value string) tea.Cmd {
	s.PromptKind = kind
	s.Type = message.Prompt
	s.Prompt.Prompt = prompt
	s.Prompt.SetValue(value)
	s.Prompt.CursorEnd()
	return s.Prompt.Focus()
}

// Prompting reports whether the prompt is waiting for input
func (s *StatusBar) Prompting() bool {
	return s.PromptKind != PromptNone
}

// PromptValue returns what was typed into the prompt
func (s *StatusBar) PromptValue() string {
	return s.Prompt.Value()
}

// SetPromptValue replaces the prompt input, e.g. with a completion
func (s *StatusBar) SetPromptValue(value string) {
	s.Prompt.SetValue(value)
	s.Prompt.CursorEnd()
}

// BlurPrompt empties and hides the prompt
func (s *StatusBar) BlurPrompt() {
	s.Prompt.SetValue("")
	s.Prompt.Blur()
	s.PromptKind = PromptNone
	s.Type = message.Success
	s.Columns[message.General] = ""
}

// SetChanges shows the number of runes added and removed since the
// last save
func (s *StatusBar) SetChanges(added, removed int) {
	if added == 0 && removed == 0 {
		s.Columns[message.Changes] = ""
		return
	}

	s.Columns[message.Changes] = lipgloss.NewStyle().
		Foreground(theme.ColourAdded).
		Render(fmt.Sprintf("+%d", added)) +
		" " +
		lipgloss.NewStyle().
			Foreground(theme.ColourRemoved).
			Render(fmt.Sprintf("-%d", removed))
}

func (s *StatusBar) ColContent(col message.Column) string {
	return s.Columns[col]
}

func (s *StatusBar) SetColContent(col message.Column, cnt string) {
	s.Columns[col] = cnt
}

func style() lipgloss.Style {
	return lipgloss.NewStyle().
		AlignVertical(lipgloss.Center).
		PaddingLeft(1).
		Height(1)
}
