package directories

import (
	"os"
	"path/filepath"
	"strings"

	"linkpad/app"
	"linkpad/app/notes"
	"linkpad/app/utils"
)

// Directory is a candidate notes directory shown by the directory prompt
type Directory struct {
	name     string
	Path     string
	NbrNotes int
}

func (d Directory) Name() string {
	return d.name
}

// List returns the visible subdirectories of dirPath sorted by name,
// each with the number of notes it holds
func List(dirPath string) ([]Directory, error) {
	var dirs []Directory

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	for _, child := range entries {
		if !child.IsDir() || isHidden(child.Name()) {
			continue
		}

		path := filepath.Join(dirPath, child.Name())
		dirs = append(dirs, Directory{
			name:     child.Name(),
			Path:     path,
			NbrNotes: CountNotes(path),
		})
	}

	// Sort directory list aphabetically
	utils.SortSliceAsc(dirs)

	return dirs, nil
}

// CountNotes returns the number of notes in dirPath, 0 if it can't
// be read
func CountNotes(dirPath string) int {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return 0
	}

	n := 0
	for _, child := range entries {
		name := child.Name()
		if child.IsDir() || isHidden(name) || filepath.Ext(name) != notes.Ext {
			continue
		}
		n++
	}
	return n
}

// Complete returns the directories the partially typed path input
// may refer to. "~/no" completes in the home directory, a trailing
// separator lists the contents of a directory.
func Complete(input string) []Directory {
	if input == "" {
		return nil
	}

	expanded := app.ExpandHome(input)
	parent, prefix := filepath.Split(expanded)
	if parent == "" {
		parent = "."
	}

	dirs, err := List(parent)
	if err != nil {
		return nil
	}

	var matches []Directory
	for _, d := range dirs {
		if strings.HasPrefix(strings.ToLower(d.Name()), strings.ToLower(prefix)) {
			matches = append(matches, d)
		}
	}

	return matches
}

// CommonPrefix returns the longest path all matches share, used to
// complete the input as far as it is unambiguous
func CommonPrefix(matches []Directory) string {
	if len(matches) == 0 {
		return ""
	}

	prefix := matches[0].Path
	for _, m := range matches[1:] {
		for !strings.HasPrefix(m.Path, prefix) {
			_, size := lastRune(prefix)
			prefix = prefix[:len(prefix)-size]
		}
	}

	if len(matches) == 1 {
		prefix += string(os.PathSeparator)
	}

	return prefix
}

func lastRune(s string) (rune, int) {
	r := []rune(s)
	if len(r) == 0 {
		return 0, 0
	}
	last := r[len(r)-1]
	return last, len(string(last))
}

func isHidden(name string) bool {
	return name != "" && name[0] == '.'
}
