package notes

import (
	"slices"
	"strings"
	"sync"
)

// Store is the in-memory collection of the notes of one directory
type Store struct {
	mu    sync.RWMutex
	notes []Note
}

func NewStore() *Store {
	return &Store{}
}

// ReplaceAll swaps the whole collection at once
func (s *Store) ReplaceAll(notes []Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = slices.Clone(notes)
}

// All returns a copy of the notes in id order
func (s *Store) All() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.notes)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.notes)
}

// FindByID returns the stored record, changes made through the
// pointer are seen by everyone holding the store.
func (s *Store) FindByID(id int) (*Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			return &s.notes[i], true
		}
	}
	return nil, false
}

func (s *Store) FindByTitle(title string) (*Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.notes {
		if s.notes[i].Title == title {
			return &s.notes[i], true
		}
	}
	return nil, false
}

// Update runs fn on the note with the given id while holding the
// write lock. It reports whether the note was found.
func (s *Store) Update(id int, fn func(*Note)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			fn(&s.notes[i])
			return true
		}
	}
	return false
}

// Remove drops the note with the given id. Ids of the remaining
// notes are kept until the next reload.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = slices.DeleteFunc(s.notes, func(n Note) bool {
		return n.ID == id
	})
}

// AssignSequentialIDs sorts notes by modification time, most recent
// first, and numbers them from 1. Notes with the same time are sorted
// by title.
func AssignSequentialIDs(notes []Note) {
	slices.SortStableFunc(notes, func(a, b Note) int {
		if c := b.ModTime.Compare(a.ModTime); c != 0 {
			return c
		}
		return strings.Compare(
			strings.ToLower(a.Title),
			strings.ToLower(b.Title),
		)
	})

	for i := range notes {
		notes[i].ID = i + 1
	}
}
