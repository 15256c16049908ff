// Package session holds the state of one editing session: the open
// directory, the loaded notes and which of them is being edited.
package session

import (
	"linkpad/app/notes"
)

// Token identifies one asynchronous load or save. Only the completion
// carrying the most recent token of its kind is applied.
type Token uint64

type Session struct {
	NotesDirectory string

	// CurrentNoteID is the id of the note in the editor, 0 if none
	CurrentNoteID int

	// IsNewNote is set while the editor holds a note that was never saved
	IsNewNote bool

	Store *notes.Store

	// title of the current note, ids change on every reload
	currentTitle string

	loadToken Token
	saveToken Token
}

func New() *Session {
	return &Session{
		Store: notes.NewStore(),
	}
}

// SetDirectory switches to another notes directory and forgets
// everything loaded from the previous one
func (s *Session) SetDirectory(dir string) {
	s.NotesDirectory = dir
	s.Store.ReplaceAll(nil)
	s.ClearSelection()

	// completions for the old directory are stale now
	s.loadToken++
	s.saveToken++
}

// HasDirectory reports whether a notes directory is open
func (s *Session) HasDirectory() bool {
	return s.NotesDirectory != ""
}

// CurrentNote returns the note in the editor
func (s *Session) CurrentNote() (*notes.Note, bool) {
	if s.CurrentNoteID == 0 {
		return nil, false
	}
	return s.Store.FindByID(s.CurrentNoteID)
}

// Open makes the note with id the current one
func (s *Session) Open(id int) (*notes.Note, bool) {
	note, ok := s.Store.FindByID(id)
	if !ok {
		return nil, false
	}

	s.CurrentNoteID = id
	s.currentTitle = note.Title
	s.IsNewNote = false

	return note, true
}

// StartNewNote clears the selection for a note that has no file yet
func (s *Session) StartNewNote() {
	s.ClearSelection()
	s.IsNewNote = true
}

// CommitNewNote marks the new note as saved under title. It becomes
// the current note once the next listing arrives.
func (s *Session) CommitNewNote(title string) {
	s.IsNewNote = false
	s.CurrentNoteID = 0
	s.currentTitle = title
}

func (s *Session) ClearSelection() {
	s.CurrentNoteID = 0
	s.currentTitle = ""
	s.IsNewNote = false
}

// RemoveCurrent drops the current note from the store and clears the
// selection
func (s *Session) RemoveCurrent() {
	if s.CurrentNoteID != 0 {
		s.Store.Remove(s.CurrentNoteID)
	}
	s.ClearSelection()
}

// NextLoadToken starts a new load and invalidates all earlier ones
func (s *Session) NextLoadToken() Token {
	s.loadToken++
	return s.loadToken
}

func (s *Session) IsLatestLoad(t Token) bool {
	return t == s.loadToken
}

// NextSaveToken starts a new save and invalidates all earlier ones
func (s *Session) NextSaveToken() Token {
	s.saveToken++
	return s.saveToken
}

func (s *Session) IsLatestSave(t Token) bool {
	return t == s.saveToken
}

// ApplyListing numbers a fresh listing and replaces the store with it.
// Listings of an outdated load are ignored and false is returned.
// The current note is looked up again by title since its id may have
// changed.
func (s *Session) ApplyListing(t Token, list []notes.Note) bool {
	if !s.IsLatestLoad(t) {
		return false
	}

	notes.AssignSequentialIDs(list)
	s.Store.ReplaceAll(list)

	if s.currentTitle == "" || s.IsNewNote {
		return true
	}

	if note, ok := s.Store.FindByTitle(s.currentTitle); ok {
		s.CurrentNoteID = note.ID
	} else {
		s.ClearSelection()
	}

	return true
}
