package state_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"linkpad/app/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendMovesDuplicates(t *testing.T) {
	s := state.Open("")

	s.Append(state.NewEntry(state.Directory, "/a"))
	s.Append(state.NewEntry(state.Directory, "/b"))
	s.Append(state.NewEntry(state.Directory, "/a"))
	s.Append(state.NewEntry(state.Directory, ""))
	s.Append(state.NewEntry(state.Command, "new"))

	assert.Equal(t, []string{"/a", "/b"}, s.Recent(state.Directory))
	assert.Equal(t, []string{"new"}, s.Recent(state.Command))
}

func TestCycle(t *testing.T) {
	s := state.Open("")
	s.Append(state.NewEntry(state.Command, "one"))
	s.Append(state.NewEntry(state.Command, "two"))

	assert.Equal(t, "two", s.Cycle(state.Command, true).Content())
	assert.Equal(t, "one", s.Cycle(state.Command, true).Content())
	assert.Equal(t, "one", s.Cycle(state.Command, true).Content(), "stops at the oldest")
	assert.Equal(t, "two", s.Cycle(state.Command, false).Content())
	assert.Equal(t, "", s.Cycle(state.Command, false).Content(), "back to the empty input")

	assert.Equal(t, "", s.Cycle(state.Directory, true).Content())
}

func TestTrim(t *testing.T) {
	s := state.Open("")
	for i := 0; i < 60; i++ {
		s.Append(state.NewEntry(state.Directory, fmt.Sprintf("/dir%d", i)))
	}
	s.Append(state.NewEntry(state.Command, "kept"))

	recent := s.Recent(state.Directory)
	assert.Len(t, recent, 50)
	assert.Equal(t, "/dir59", recent[0])
	assert.Equal(t, []string{"kept"}, s.Recent(state.Command))
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkpad_state")

	s := state.Open(path)
	require.NoError(t, s.Read(), "a missing file is an empty history")

	s.Append(state.NewEntry(state.Directory, "/notes|with pipe"))
	s.Append(state.NewEntry(state.Command, "dir ~/notes"))
	require.NoError(t, s.Write())

	loaded := state.Open(path)
	require.NoError(t, loaded.Read())

	assert.Equal(t, []string{"/notes|with pipe"}, loaded.Recent(state.Directory))
	assert.Equal(t, "dir ~/notes", loaded.Cycle(state.Command, true).Content())
}
