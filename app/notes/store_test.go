package notes_test

import (
	"sync"
	"testing"
	"time"

	"linkpad/app/notes"
)

func newStore() *notes.Store {
	now := time.Now()
	list := []notes.Note{
		{Title: "one", Content: "1", ModTime: now},
		{Title: "two", Content: "2", ModTime: now.Add(-time.Minute)},
		{Title: "three", Content: "3", ModTime: now.Add(-time.Hour)},
	}
	notes.AssignSequentialIDs(list)

	s := notes.NewStore()
	s.ReplaceAll(list)
	return s
}

func TestStoreFind(t *testing.T) {
	s := newStore()

	n, ok := s.FindByID(2)
	if !ok || n.Title != "two" {
		t.Fatalf("Expected note 2 to be 'two', got %v", n)
	}

	if _, ok := s.FindByID(42); ok {
		t.Error("Expected unknown id to be missing")
	}

	n, ok = s.FindByTitle("three")
	if !ok || n.ID != 3 {
		t.Errorf("Expected 'three' to have id 3, got %v", n)
	}
}

func TestStoreEditsByReference(t *testing.T) {
	s := newStore()

	n, _ := s.FindByID(1)
	n.Content = "edited"

	again, _ := s.FindByID(1)
	if again.Content != "edited" {
		t.Errorf("Expected content to be 'edited', got '%s'", again.Content)
	}

	if !s.Update(3, func(n *notes.Note) { n.DisplayTitle = "Preview" }) {
		t.Fatal("Update of note 3 failed")
	}
	n, _ = s.FindByID(3)
	if n.Label() != "Preview" {
		t.Errorf("Expected label 'Preview', got '%s'", n.Label())
	}

	if s.Update(99, func(n *notes.Note) {}) {
		t.Error("Update of an unknown note should report false")
	}
}

func TestStoreRemove(t *testing.T) {
	s := newStore()
	s.Remove(2)

	if s.Len() != 2 {
		t.Fatalf("Expected 2 notes, got %d", s.Len())
	}
	if _, ok := s.FindByID(2); ok {
		t.Error("Note 2 should be gone")
	}
	if n, _ := s.FindByID(3); n.Title != "three" {
		t.Error("Remaining ids should be kept")
	}

	s.Remove(2)
	if s.Len() != 2 {
		t.Error("Removing twice should be a no-op")
	}
}

func TestStoreReplaceAllCopies(t *testing.T) {
	list := []notes.Note{{ID: 1, Title: "a"}}
	s := notes.NewStore()
	s.ReplaceAll(list)

	list[0].Title = "changed"
	if n, _ := s.FindByID(1); n.Title != "a" {
		t.Error("Store should not share the slice it was given")
	}

	all := s.All()
	all[0].Title = "changed"
	if n, _ := s.FindByID(1); n.Title != "a" {
		t.Error("All should return a copy")
	}

	s.ReplaceAll(nil)
	if s.Len() != 0 {
		t.Errorf("Expected an empty store, got %d", s.Len())
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := newStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Update(i%3+1, func(n *notes.Note) { n.DisplayTitle = "t" })
		}()
		go func() {
			defer wg.Done()
			_ = s.All()
		}()
	}
	wg.Wait()

	if s.Len() != 3 {
		t.Errorf("Expected 3 notes, got %d", s.Len())
	}
}
