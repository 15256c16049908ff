package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"linkpad/app/notes"
	"linkpad/app/preview"
	"linkpad/app/session"
	"linkpad/app/watcher"
)

// metadataTimeout bounds a whole link preview request including
// retries of the http client
const metadataTimeout = 10 * time.Second

// notesLoadedMsg carries the listing of a notes directory
type notesLoadedMsg struct {
	token session.Token
	dir   string
	notes []notes.Note
}

// noteSavedMsg reports the outcome of writing a note to disk
type noteSavedMsg struct {
	token session.Token
	dir   string
	note  notes.Note
	isNew bool
	ok    bool
}

// noteDeletedMsg reports the outcome of deleting a note
type noteDeletedMsg struct {
	dir  string
	note notes.Note
	ok   bool
}

// metadataMsg carries the link preview of the first URL of a note
type metadataMsg struct {
	dir   string
	title string
	url   string
	meta  preview.Metadata
}

// watchEventMsg is sent when notes changed on disk
type watchEventMsg struct {
	w     *watcher.Watcher
	event watcher.Event
}

// loadNotes lists the notes of the current directory
func (m *Model) loadNotes() tea.Cmd {
	token := m.session.NextLoadToken()
	dir := m.session.NotesDirectory
	gw := m.gateway

	return func() tea.Msg {
		return notesLoadedMsg{
			token: token,
			dir:   dir,
			notes: gw.ListNotes(context.Background(), dir),
		}
	}
}

// saveNote writes note to the current directory. New notes never
// overwrite an existing file.
func (m *Model) saveNote(note notes.Note, isNew bool) tea.Cmd {
	token := m.session.NextSaveToken()
	dir := m.session.NotesDirectory
	gw := m.gateway

	return func() tea.Msg {
		ctx := context.Background()

		var ok bool
		if isNew {
			ok = gw.SaveNewNote(ctx, dir, note)
		} else {
			ok = gw.SaveNote(ctx, dir, note)
		}

		return noteSavedMsg{
			token: token,
			dir:   dir,
			note:  note,
			isNew: isNew,
			ok:    ok,
		}
	}
}

// deleteNote removes note from the current directory
func (m *Model) deleteNote(note notes.Note) tea.Cmd {
	dir := m.session.NotesDirectory
	gw := m.gateway

	return func() tea.Msg {
		return noteDeletedMsg{
			dir:  dir,
			note: note,
			ok:   gw.DeleteNote(context.Background(), dir, note),
		}
	}
}

// fetchMetadata fetches the link preview of url for the note titled
// title
func (m *Model) fetchMetadata(title string, url string) tea.Cmd {
	dir := m.session.NotesDirectory
	gw := m.gateway

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), metadataTimeout)
		defer cancel()

		return metadataMsg{
			dir:   dir,
			title: title,
			url:   url,
			meta:  gw.FetchMetadata(ctx, url),
		}
	}
}

// waitForChange blocks until the watcher reports a change. It returns
// nil once the watcher is closed.
func waitForChange(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-w.Events()
		if !ok {
			return nil
		}
		return watchEventMsg{w: w, event: event}
	}
}
