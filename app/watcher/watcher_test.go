package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"linkpad/app/watcher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsNoteChanges(t *testing.T) {
	dir := t.TempDir()

	w, err := watcher.NewWithDebounce(dir, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.txt"), []byte("x"), 0644))

	select {
	case ev := <-w.Events():
		assert.Equal(t, dir, ev.Dir)
		assert.Equal(t, "note.txt", ev.Name)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for a new note")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := watcher.NewWithDebounce(dir, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "image.png"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.txt"), nil, 0644))

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := watcher.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok, "events are closed after Close")
	case <-time.After(3 * time.Second):
		t.Fatal("events channel was not closed")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := watcher.New(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
