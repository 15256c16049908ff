package notes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const Ext = ".txt"

var (
	ErrNoteExists   = errors.New("note already exists")
	ErrInvalidTitle = errors.New("invalid note title")
)

type Note struct {
	// ID is the 1-based position after sorting by modification time,
	// the most recent note being 1. It only lives until the next reload.
	ID int

	// Title is the file name without extension
	Title   string
	Content string
	Ext     string
	ModTime time.Time

	// DisplayTitle is an optional title taken from a link preview
	DisplayTitle string
}

func NewNote(title string, content string) Note {
	return Note{
		Title:   title,
		Content: content,
		Ext:     Ext,
	}
}

// Label returns the name the note is shown with
func (n Note) Label() string {
	if n.DisplayTitle != "" {
		return n.DisplayTitle
	}
	return n.Title
}

// FileName returns the on-disk file name of the note
func (n Note) FileName() string {
	ext := n.Ext
	if ext == "" {
		ext = Ext
	}
	return n.Title + ext
}

// Path returns the location of the note inside dir
func (n Note) Path(dir string) string {
	return filepath.Join(dir, n.FileName())
}

// ValidateTitle checks a title typed by the user before it's used as
// a file name.
func ValidateTitle(title string) error {
	switch {
	case strings.TrimSpace(title) == "":
		return fmt.Errorf("%w: title is empty", ErrInvalidTitle)
	case strings.ContainsAny(title, `/\`) || strings.ContainsRune(title, os.PathSeparator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidTitle, title)
	case isHidden(title):
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidTitle, title)
	}
	return nil
}

// List reads every note of the given directory, content included.
// Only regular .txt files are notes, hidden files are ignored.
// The result is in directory order, ids are not assigned.
func List(dir string) ([]Note, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read notes directory: %w", err)
	}

	var notes []Note

	for _, child := range entries {
		name := child.Name()

		if child.IsDir() || isHidden(name) {
			continue
		}

		// skip unsupported files
		if filepath.Ext(name) != Ext {
			continue
		}

		info, err := child.Info()
		if err != nil {
			// removed while listing
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("could not stat %s: %w", name, err)
		}

		if !info.Mode().IsRegular() {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", name, err)
		}

		notes = append(notes, Note{
			Title:   strings.TrimSuffix(name, Ext),
			Content: string(content),
			Ext:     Ext,
			ModTime: info.ModTime(),
		})
	}

	return notes, nil
}

// Create writes a new note file and fails with ErrNoteExists if the
// file is already there. Existing files are never touched.
func Create(path string, content string) error {
	path = checkPath(path)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrNoteExists, filepath.Base(path))
		}
		return fmt.Errorf("could not create note: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("could not write note: %w", err)
	}

	return f.Close()
}

// Write replaces the contents of the note at path.
func Write(path string, content string) (int, error) {
	path = checkPath(path)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("could not open note: %w", err)
	}
	defer f.Close()

	n, err := f.WriteString(content)
	if err != nil {
		return n, fmt.Errorf("could not write note: %w", err)
	}

	return n, nil
}

// Delete removes the specified note file.
func Delete(path string) error {
	path = checkPath(path)

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("could not find note: %w", err)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("could not delete note: %w", err)
	}

	return nil
}

// Exists checks whether a file exists at the given path.
func Exists(path string) bool {
	if _, err := os.Stat(checkPath(path)); errors.Is(err, os.ErrNotExist) {
		return false
	}
	return true
}

// isHidden returns true if the file or directory is hidden
func isHidden(name string) bool {
	return name != "" && name[0] == '.'
}

// checkPath ensures that the path ends with the note extension
func checkPath(path string) string {
	if strings.HasSuffix(path, Ext) {
		return path
	}
	return path + Ext
}
