package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"linkpad/app/notes"
	"linkpad/app/utils"
	"linkpad/tui/message"
	"linkpad/tui/theme"
)

const dateLayout = "2006-01-02 15:04"

// NotesList is the sidebar listing the notes of the open directory
type NotesList struct {
	Component

	// all notes of the directory, ordered by id
	notes []notes.Note

	// indexes into notes that pass the filter
	visible []int

	// The currently selected row, an index into visible
	selectedIndex int

	// id of the note shown in the editor, 0 if none
	activeID int

	// whether the editor holds unsaved changes of the active note
	dirty bool

	filter textinput.Model

	// Filtering is set while the filter input has the focus
	Filtering bool

	styles styles
}

// NewNotesList creates a new model with default settings.
func NewNotesList() *NotesList {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 100

	return &NotesList{
		filter: ti,
		styles: NotesListStyle(),
	}
}

// Init initialises the Model on program load.
// It partly implements the tea.Model interface.
func (l *NotesList) Init() tea.Cmd {
	return nil
}

func (l *NotesList) Update(msg tea.Msg) (*NotesList, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if l.Filtering {
			l.filter, cmd = l.filter.Update(msg)
			l.applyFilter()
			return l, cmd
		}

	case tea.WindowSizeMsg:
		l.Size.Width = msg.Width
		l.Size.Height = msg.Height
		l.RefreshSize()
	}

	return l, cmd
}

func (l *NotesList) RefreshSize() {
	l.resizeViewport()
}

func (l *NotesList) View() string {
	if !l.Ready {
		return "\n  Initializing..."
	}

	l.viewport.SetContent(l.build())
	l.scrollTo(l.selectedIndex)

	return theme.BaseColumnLayout(l.Size, l.Focused()).
		Render(l.header() + "\n" + l.viewport.View())
}

// header shows the filter input while filtering, the number of
// notes otherwise
func (l *NotesList) header() string {
	width, _ := l.innerSize()

	if l.Filtering {
		return l.filter.View()
	}

	title := fmt.Sprintf("NOTES (%d)", len(l.notes))
	if f := l.Filter(); f != "" {
		title = fmt.Sprintf("NOTES /%s (%d/%d)", f, len(l.visible), len(l.notes))
	}

	return l.styles.header.Render(utils.TruncateText(title, width))
}

// build prepares the notes list as a string
func (l *NotesList) build() string {
	width, _ := l.innerSize()

	var list strings.Builder

	for row, idx := range l.visible {
		note := l.notes[idx]

		icon := " "
		if note.ID == l.activeID && l.dirty {
			icon = "●"
		}

		date := ""
		if !note.ModTime.IsZero() {
			date = " (" + note.ModTime.Format(dateLayout) + ")"
		}

		labelWidth := width - l.styles.iconWidth - ansi.StringWidth(date)
		if labelWidth < 8 {
			// too narrow for the date
			date = ""
			labelWidth = width - l.styles.iconWidth
		}

		label := utils.TruncateText(note.Label(), labelWidth)
		pad := strings.Repeat(" ", max(labelWidth-ansi.StringWidth(label), 0))

		style := l.styles.base
		if note.ID == l.activeID {
			style = l.styles.active
		}
		if row == l.selectedIndex && l.Focused() {
			style = l.styles.selected
		}

		list.WriteString(l.styles.icon.Render(icon))
		list.WriteString(style.Render(label + pad))
		list.WriteString(l.styles.date.Render(date))
		list.WriteByte('\n')
	}

	return strings.TrimSuffix(list.String(), "\n")
}

// SetNotes replaces the listed notes. The selection stays on the
// same note if it's still there.
func (l *NotesList) SetNotes(list []notes.Note) {
	selected, hadSelection := l.SelectedNote()

	l.notes = list
	l.applyFilter()

	if hadSelection {
		l.SelectByTitle(selected.Title)
	}
}

// Len returns the number of rows currently shown
func (l *NotesList) Len() int {
	return len(l.visible)
}

// SetActive marks the note shown in the editor
func (l *NotesList) SetActive(id int) {
	l.activeID = id
}

// SetDirty sets the unsaved marker of the active note
func (l *NotesList) SetDirty(dirty bool) {
	l.dirty = dirty
}

// SelectedNote returns the note of the selected row
func (l *NotesList) SelectedNote() (notes.Note, bool) {
	if l.selectedIndex < 0 || l.selectedIndex >= len(l.visible) {
		return notes.Note{}, false
	}
	return l.notes[l.visible[l.selectedIndex]], true
}

// SelectByID moves the selection to the note with id if it's shown
func (l *NotesList) SelectByID(id int) bool {
	for row, idx := range l.visible {
		if l.notes[idx].ID == id {
			l.selectedIndex = row
			return true
		}
	}
	return false
}

// SelectByTitle moves the selection to the note titled title if it's
// shown
func (l *NotesList) SelectByTitle(title string) bool {
	for row, idx := range l.visible {
		if l.notes[idx].Title == title {
			l.selectedIndex = row
			return true
		}
	}
	return false
}

///
/// filter
///

// Filter returns the current filter query
func (l *NotesList) Filter() string {
	return l.filter.Value()
}

// StartFilter focuses the filter input
func (l *NotesList) StartFilter() message.StatusBarMsg {
	l.Filtering = true
	l.filter.Focus()
	return message.StatusBarMsg{}
}

// ConfirmFilter leaves the filter input and keeps the query
func (l *NotesList) ConfirmFilter() message.StatusBarMsg {
	l.Filtering = false
	l.filter.Blur()
	return message.StatusBarMsg{
		Content: fmt.Sprintf(message.StatusBar.NotesLoaded, len(l.visible)),
	}
}

// ClearFilter leaves the filter input and shows all notes again
func (l *NotesList) ClearFilter() message.StatusBarMsg {
	l.Filtering = false
	l.filter.Blur()
	l.SetFilter("")
	return message.StatusBarMsg{}
}

// SetFilter shows only the notes whose label fuzzy matches query
func (l *NotesList) SetFilter(query string) {
	l.filter.SetValue(query)
	l.applyFilter()
}

func (l *NotesList) applyFilter() {
	query := l.filter.Value()

	if query == "" {
		l.visible = make([]int, len(l.notes))
		for i := range l.notes {
			l.visible[i] = i
		}
	} else {
		labels := make([]string, len(l.notes))
		for i, n := range l.notes {
			labels[i] = n.Label()
		}

		matches := fuzzy.Find(query, labels)
		l.visible = make([]int, len(matches))
		for i, match := range matches {
			l.visible[i] = match.Index
		}
	}

	if l.selectedIndex >= len(l.visible) {
		l.selectedIndex = max(0, len(l.visible)-1)
	}
}

///
/// keyboard shortcut commands
///

// LineUp selects the previous row
func (l *NotesList) LineUp() message.StatusBarMsg {
	if l.selectedIndex > 0 {
		l.selectedIndex--
	}
	return message.StatusBarMsg{}
}

// LineDown selects the next row
func (l *NotesList) LineDown() message.StatusBarMsg {
	if l.selectedIndex < len(l.visible)-1 {
		l.selectedIndex++
	}
	return message.StatusBarMsg{}
}

// GoToTop selects the first row
func (l *NotesList) GoToTop() message.StatusBarMsg {
	l.selectedIndex = 0
	return message.StatusBarMsg{}
}

// GoToBottom selects the last row
func (l *NotesList) GoToBottom() message.StatusBarMsg {
	l.selectedIndex = max(len(l.visible)-1, 0)
	return message.StatusBarMsg{}
}
