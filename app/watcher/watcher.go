// Package watcher reports changes to the notes of a directory made
// outside of the app.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"linkpad/app/debug"
	"linkpad/app/notes"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 200 * time.Millisecond

// Event is sent once a burst of changes to the directory settled
type Event struct {
	Dir string
	// Name is the base name of the last note file that changed
	Name string
}

type Watcher struct {
	dir      string
	fsw      *fsnotify.Watcher
	events   chan Event
	debounce time.Duration

	done      chan struct{}
	closeOnce sync.Once
}

// New starts watching dir. Create, write, remove and rename events of
// visible .txt files are coalesced into one Event per burst.
func New(dir string) (*Watcher, error) {
	return NewWithDebounce(dir, DefaultDebounce)
}

func NewWithDebounce(dir string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		dir:      dir,
		fsw:      fsw,
		events:   make(chan Event, 1),
		debounce: debounce,
		done:     make(chan struct{}),
	}

	go w.run()

	return w, nil
}

// Events returns the channel changes are reported on. It's closed
// when the watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

func (w *Watcher) Dir() string {
	return w.dir
}

// Close stops watching. It's safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	var (
		timer *time.Timer
		last  string
		mu    sync.Mutex
		// protects against sending on a closed channel from the timer
		closed bool
	)

	defer func() {
		mu.Lock()
		closed = true
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		close(w.events)
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if !relevant(event) {
				continue
			}

			mu.Lock()
			last = filepath.Base(event.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				mu.Lock()
				defer mu.Unlock()

				if closed {
					return
				}

				select {
				case w.events <- Event{Dir: w.dir, Name: last}:
				default:
					// a reload is already pending
				}
			})
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			debug.LogErr("watcher:", err)
		}
	}
}

func relevant(event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if name == "" || name[0] == '.' || filepath.Ext(name) != notes.Ext {
		return false
	}

	return event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
