package session_test

import (
	"testing"
	"time"

	"linkpad/app/notes"
	"linkpad/app/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listing(titles ...string) []notes.Note {
	now := time.Now()
	list := make([]notes.Note, 0, len(titles))
	for i, title := range titles {
		list = append(list, notes.Note{
			Title:   title,
			Ext:     notes.Ext,
			ModTime: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	return list
}

func TestOpenAndClear(t *testing.T) {
	s := session.New()
	s.SetDirectory("/notes")

	require.True(t, s.ApplyListing(s.NextLoadToken(), listing("a", "b")))

	note, ok := s.Open(2)
	require.True(t, ok)
	assert.Equal(t, "b", note.Title)

	current, ok := s.CurrentNote()
	require.True(t, ok)
	assert.Equal(t, "b", current.Title)

	_, ok = s.Open(9)
	assert.False(t, ok)
	assert.Equal(t, 2, s.CurrentNoteID, "a failed open keeps the selection")

	s.StartNewNote()
	assert.True(t, s.IsNewNote)
	_, ok = s.CurrentNote()
	assert.False(t, ok)
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	s := session.New()

	first := s.NextLoadToken()
	second := s.NextLoadToken()

	assert.True(t, s.ApplyListing(second, listing("new")))
	assert.False(t, s.ApplyListing(first, listing("old", "older")))

	assert.Equal(t, 1, s.Store.Len())
	n, _ := s.Store.FindByID(1)
	assert.Equal(t, "new", n.Title)
}

func TestSaveTokens(t *testing.T) {
	s := session.New()

	first := s.NextSaveToken()
	assert.True(t, s.IsLatestSave(first))

	second := s.NextSaveToken()
	assert.False(t, s.IsLatestSave(first))
	assert.True(t, s.IsLatestSave(second))
}

func TestSetDirectoryInvalidatesPending(t *testing.T) {
	s := session.New()
	s.SetDirectory("/one")

	load := s.NextLoadToken()
	save := s.NextSaveToken()

	s.SetDirectory("/two")

	assert.False(t, s.IsLatestLoad(load))
	assert.False(t, s.IsLatestSave(save))
	assert.Equal(t, "/two", s.NotesDirectory)
	assert.Equal(t, 0, s.Store.Len())
}

func TestCurrentNoteFollowsReload(t *testing.T) {
	s := session.New()
	s.ApplyListing(s.NextLoadToken(), listing("a", "b", "c"))

	_, ok := s.Open(3)
	require.True(t, ok)

	// "c" was saved and is the most recent note now
	s.ApplyListing(s.NextLoadToken(), listing("c", "a", "b"))

	assert.Equal(t, 1, s.CurrentNoteID)
	note, _ := s.CurrentNote()
	assert.Equal(t, "c", note.Title)

	// deleted outside the app
	s.ApplyListing(s.NextLoadToken(), listing("a", "b"))
	assert.Equal(t, 0, s.CurrentNoteID)
}

func TestCommitNewNote(t *testing.T) {
	s := session.New()
	s.StartNewNote()

	s.CommitNewNote("fresh")
	assert.False(t, s.IsNewNote)

	s.ApplyListing(s.NextLoadToken(), listing("other", "fresh"))

	note, ok := s.CurrentNote()
	require.True(t, ok)
	assert.Equal(t, "fresh", note.Title)
	assert.Equal(t, 2, note.ID)
}

func TestRemoveCurrent(t *testing.T) {
	s := session.New()
	s.ApplyListing(s.NextLoadToken(), listing("a", "b"))
	s.Open(1)

	s.RemoveCurrent()

	assert.Equal(t, 0, s.CurrentNoteID)
	assert.Equal(t, 1, s.Store.Len())
	_, ok := s.Store.FindByID(1)
	assert.False(t, ok)
}
