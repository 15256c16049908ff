package notes_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"linkpad/app/notes"
)

func TestNewNote(t *testing.T) {
	n := notes.NewNote("test", "content")

	if n.FileName() != "test.txt" {
		t.Errorf("Expected file name to be 'test.txt', got '%s'", n.FileName())
	}
	if n.Label() != "test" {
		t.Errorf("Expected label to be 'test', got '%s'", n.Label())
	}

	n.DisplayTitle = "Example Domain"
	if n.Label() != "Example Domain" {
		t.Errorf("Expected label to be the display title, got '%s'", n.Label())
	}

	if got := n.Path("/notes"); got != filepath.Join("/notes", "test.txt") {
		t.Errorf("Unexpected path '%s'", got)
	}
}

func TestCreateWriteDelete(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "test_note.txt")

	if err := notes.Create(path, "first"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected file at %s, but got error :%v", path, err)
	}

	content := "TEST"
	n, err := notes.Write(path, content)
	if err != nil || n != len(content) {
		t.Fatalf("Write failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != content {
		t.Errorf("Expected content '%s', got '%s'", content, data)
	}

	if err = notes.Delete(path); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if notes.Exists(path) {
		t.Error("Note should be deleted")
	}

	if err = notes.Delete(path); err == nil {
		t.Error("Deleting a missing note should fail")
	}
}

func TestCreateDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Ideas.txt")

	os.WriteFile(path, []byte("keep me"), 0644)

	err := notes.Create(path, "replacement")
	if !errors.Is(err, notes.ErrNoteExists) {
		t.Fatalf("Expected ErrNoteExists, got %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "keep me" {
		t.Errorf("Existing note was overwritten: '%s'", data)
	}
}

func TestCreateAddsExtension(t *testing.T) {
	dir := t.TempDir()

	if err := notes.Create(filepath.Join(dir, "plain"), ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !notes.Exists(filepath.Join(dir, "plain.txt")) {
		t.Error("Expected plain.txt to exist")
	}
}

func TestListFiltersOnlyNotes(t *testing.T) {
	dir := t.TempDir()

	os.WriteFile(filepath.Join(dir, "test_note.txt"), []byte("test"), 0644)
	os.WriteFile(filepath.Join(dir, ".hidden.txt"), []byte("nope"), 0644)
	os.WriteFile(filepath.Join(dir, "image.png"), []byte("png"), 0644)
	os.Mkdir(filepath.Join(dir, "folder.txt"), 0755)

	notesList, err := notes.List(dir)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(notesList) != 1 {
		t.Fatalf("Expected 1 note, got %d", len(notesList))
	}

	n := notesList[0]
	if n.Title != "test_note" {
		t.Errorf("Expected 'test_note', got '%s'", n.Title)
	}
	if n.FileName() != "test_note.txt" {
		t.Errorf("Expected 'test_note.txt', got '%s'", n.FileName())
	}
	if n.Content != "test" {
		t.Errorf("Expected content 'test', got '%s'", n.Content)
	}
	if n.ModTime.IsZero() {
		t.Error("Expected a modification time")
	}
}

func TestListMissingDirectory(t *testing.T) {
	if _, err := notes.List(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}

func TestValidateTitle(t *testing.T) {
	valid := []string{"Ideas", "2024 plans", "über"}
	invalid := []string{"", "   ", "a/b", `a\b`, ".hidden", "../up"}

	for _, title := range valid {
		if err := notes.ValidateTitle(title); err != nil {
			t.Errorf("Expected '%s' to be valid, got %v", title, err)
		}
	}

	for _, title := range invalid {
		if err := notes.ValidateTitle(title); !errors.Is(err, notes.ErrInvalidTitle) {
			t.Errorf("Expected '%s' to be invalid, got %v", title, err)
		}
	}
}

func TestAssignSequentialIDs(t *testing.T) {
	now := time.Now()
	list := []notes.Note{
		{Title: "old", ModTime: now.Add(-2 * time.Hour)},
		{Title: "b", ModTime: now},
		{Title: "a", ModTime: now},
		{Title: "mid", ModTime: now.Add(-time.Hour)},
	}

	notes.AssignSequentialIDs(list)

	want := []string{"a", "b", "mid", "old"}
	for i, n := range list {
		if n.Title != want[i] {
			t.Errorf("Position %d: expected '%s', got '%s'", i, want[i], n.Title)
		}
		if n.ID != i+1 {
			t.Errorf("Expected '%s' to have id %d, got %d", n.Title, i+1, n.ID)
		}
	}
}

// Ids follow the order of the latest listing, so touching a note
// moves it to id 1.
func TestIDsFollowModTime(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().Add(-time.Hour)

	for _, title := range []string{"first", "second"} {
		path := filepath.Join(dir, title+".txt")
		os.WriteFile(path, []byte(title), 0644)
		os.Chtimes(path, old, old)
	}

	touched := filepath.Join(dir, "second.txt")
	if _, err := notes.Write(touched, "changed"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	list, err := notes.List(dir)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	notes.AssignSequentialIDs(list)

	if list[0].Title != "second" || list[0].ID != 1 {
		t.Errorf("Expected 'second' to be note 1, got '%s' (%d)", list[0].Title, list[0].ID)
	}
}
