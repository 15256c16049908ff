package state

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"linkpad/app"
	"linkpad/app/debug"
	"linkpad/app/utils"
)

type HistoryType int

const (
	Directory HistoryType = iota
	Command
)

var historyTypes = map[HistoryType]string{
	Directory: "DIR",
	Command:   "CMD",
}

func (t HistoryType) String() string {
	return historyTypes[t]
}

// maxEntries is the number of entries kept per history type
const maxEntries = 50

type StateEntry struct {
	historyType HistoryType
	timestamp   string
	content     string
}

func (e StateEntry) Content() string {
	return e.content
}

func NewEntry(stateType HistoryType, content string) StateEntry {
	return StateEntry{
		historyType: stateType,
		timestamp:   time.Now().Format(time.RFC3339),
		content:     content,
	}
}

// State is the input history of the prompts: opened directories and
// typed commands. It's persisted in a line based file.
type State struct {
	filePath string
	entries  []StateEntry
	curIndex map[HistoryType]int
}

// New returns the state backed by the default state file
func New() *State {
	filePath, err := app.StateFile()
	if err != nil {
		debug.LogErr(err)
		return Open("")
	}
	return Open(filePath)
}

// Open returns the state backed by filePath. An empty path keeps the
// history in memory only.
func Open(filePath string) *State {
	return &State{
		filePath: filePath,
		entries:  []StateEntry{},
		curIndex: map[HistoryType]int{},
	}
}

func (s *State) Entries(st HistoryType) []StateEntry {
	entries := []StateEntry{}

	for _, entry := range s.entries {
		if entry.historyType == st {
			entries = append(entries, entry)
		}
	}

	return entries
}

// Recent returns the contents of the entries of a type, most recent first
func (s *State) Recent(st HistoryType) []string {
	entries := s.Entries(st)
	recent := make([]string, 0, len(entries))

	for i := len(entries) - 1; i >= 0; i-- {
		recent = append(recent, entries[i].content)
	}

	return recent
}

// Append adds an entry and moves an equal older entry to the end
func (s *State) Append(entry StateEntry) {
	if entry.content == "" {
		return
	}

	s.removeLastOccurence(entry.historyType, entry.content)
	s.entries = append(s.entries, entry)
	s.trim(entry.historyType)
	s.ResetIndex(entry.historyType)
}

func (s *State) removeLastOccurence(st HistoryType, c string) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].historyType == st && s.entries[i].content == c {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// trim drops the oldest entries of a type beyond maxEntries
func (s *State) trim(st HistoryType) {
	excess := len(s.Entries(st)) - maxEntries
	if excess <= 0 {
		return
	}

	kept := s.entries[:0]
	for _, entry := range s.entries {
		if entry.historyType == st && excess > 0 {
			excess--
			continue
		}
		kept = append(kept, entry)
	}
	s.entries = kept
}

func (s *State) Read() error {
	if s.filePath == "" {
		return nil
	}

	file, err := os.Open(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		ln := strings.SplitN(scanner.Text(), "|", 3)
		if len(ln) != 3 {
			continue
		}

		historyType, ok := parseType(ln[0])
		if !ok {
			continue
		}

		s.entries = append(s.entries, StateEntry{
			historyType: historyType,
			timestamp:   ln[1],
			content:     ln[2],
		})
	}

	for st := range historyTypes {
		s.ResetIndex(st)
	}

	return scanner.Err()
}

func (s *State) Write() error {
	if s.filePath == "" {
		return nil
	}

	f, err := os.OpenFile(s.filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		debug.LogErr(err)
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range s.entries {
		var line strings.Builder
		line.WriteString(entry.historyType.String())
		line.WriteRune('|')
		line.WriteString(entry.timestamp)
		line.WriteRune('|')
		line.WriteString(strings.ReplaceAll(entry.content, "\n", " "))
		line.WriteRune('\n')

		if _, err := w.WriteString(line.String()); err != nil {
			debug.LogErr(err)
			return err
		}
	}

	return w.Flush()
}

// Cycle walks through the history of a type, backwards from the most
// recent entry. An empty entry is returned past either end.
func (s *State) Cycle(st HistoryType, backwards bool) StateEntry {
	entries := s.Entries(st)
	if len(entries) == 0 {
		return StateEntry{}
	}

	idx := s.curIndex[st]
	if backwards {
		idx--
	} else {
		idx++
	}

	// len(entries) stands for the fresh, empty input
	idx = utils.Clamp(idx, 0, len(entries))
	s.curIndex[st] = idx

	if idx == len(entries) {
		return StateEntry{}
	}
	return entries[idx]
}

// ResetIndex starts cycling from the most recent entry again
func (s *State) ResetIndex(st HistoryType) {
	s.curIndex[st] = len(s.Entries(st))
}

func parseType(str string) (HistoryType, bool) {
	for hisType, name := range historyTypes {
		if name == str {
			return hisType, true
		}
	}
	return 0, false
}
