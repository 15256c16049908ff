package components_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bl "github.com/winder/bubblelayout"

	"linkpad/app/notes"
	"linkpad/tui/components"
)

func sampleNotes() []notes.Note {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []notes.Note{
		{ID: 1, Title: "groceries", Ext: notes.Ext, ModTime: now},
		{ID: 2, Title: "ideas", Ext: notes.Ext, ModTime: now.Add(-time.Hour)},
		{ID: 3, Title: "programming", Ext: notes.Ext, ModTime: now.Add(-2 * time.Hour)},
	}
}

func newNotesList(t *testing.T) *components.NotesList {
	t.Helper()

	l := components.NewNotesList()
	l.Size = bl.Size{Width: 40, Height: 12}
	l.RefreshSize()
	l.SetNotes(sampleNotes())

	return l
}

func selectedTitle(t *testing.T, l *components.NotesList) string {
	t.Helper()

	n, ok := l.SelectedNote()
	require.True(t, ok)
	return n.Title
}

func TestNotesListSelection(t *testing.T) {
	l := newNotesList(t)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "groceries", selectedTitle(t, l))

	l.LineUp()
	assert.Equal(t, "groceries", selectedTitle(t, l))

	l.LineDown()
	l.LineDown()
	l.LineDown()
	assert.Equal(t, "programming", selectedTitle(t, l))

	l.GoToTop()
	assert.Equal(t, "groceries", selectedTitle(t, l))

	l.GoToBottom()
	assert.Equal(t, "programming", selectedTitle(t, l))

	assert.True(t, l.SelectByID(2))
	assert.Equal(t, "ideas", selectedTitle(t, l))
	assert.False(t, l.SelectByID(9))
}

func TestNotesListKeepsSelectionOnReload(t *testing.T) {
	l := newNotesList(t)
	require.True(t, l.SelectByTitle("ideas"))

	// ideas was modified and moved to the top
	reloaded := []notes.Note{
		{ID: 1, Title: "ideas"},
		{ID: 2, Title: "groceries"},
		{ID: 3, Title: "programming"},
	}
	l.SetNotes(reloaded)

	n, ok := l.SelectedNote()
	require.True(t, ok)
	assert.Equal(t, "ideas", n.Title)
	assert.Equal(t, 1, n.ID)
}

func TestNotesListSelectionClampedWhenNotesVanish(t *testing.T) {
	l := newNotesList(t)
	l.GoToBottom()

	l.SetNotes(sampleNotes()[:1])
	assert.Equal(t, "groceries", selectedTitle(t, l))

	l.SetNotes(nil)
	_, ok := l.SelectedNote()
	assert.False(t, ok)
	assert.Zero(t, l.Len())
}

func TestNotesListFuzzyFilter(t *testing.T) {
	l := newNotesList(t)

	l.SetFilter("gro")
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, "groceries", selectedTitle(t, l))
	assert.Equal(t, "gro", l.Filter())

	l.ClearFilter()
	assert.Equal(t, 3, l.Len())
	assert.Empty(t, l.Filter())
}

func TestNotesListFilterMatchesDisplayTitle(t *testing.T) {
	l := newNotesList(t)

	list := sampleNotes()
	list[1].DisplayTitle = "Rust release notes"
	l.SetNotes(list)

	l.SetFilter("rust")
	require.Equal(t, 1, l.Len())
	assert.Equal(t, "ideas", selectedTitle(t, l))
}

func TestNotesListTypedFilter(t *testing.T) {
	l := newNotesList(t)

	l.StartFilter()
	assert.True(t, l.Filtering)

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("prog")})
	assert.Equal(t, "prog", l.Filter())
	assert.Equal(t, 1, l.Len())

	msg := l.ConfirmFilter()
	assert.False(t, l.Filtering)
	assert.Equal(t, "1 notes", msg.Content)
	assert.Equal(t, "programming", selectedTitle(t, l))
}

func TestNotesListView(t *testing.T) {
	l := newNotesList(t)
	l.SetFocus(true)
	l.SetActive(2)
	l.SetDirty(true)

	view := l.View()
	assert.Contains(t, view, "NOTES (3)")
	assert.Contains(t, view, "groceries")
	assert.Contains(t, view, "●")
	assert.Contains(t, view, "(2025-03-01 12:00)")

	l.SetFilter("idea")
	assert.Contains(t, l.View(), "NOTES /idea (1/3)")
}
