// Package gateway is the boundary between the UI and the outside world:
// the notes directory, the persisted settings, the browser and the web.
// Operations never return errors. Failures are logged and reported as
// false or empty results.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"linkpad/app"
	"linkpad/app/config"
	"linkpad/app/debug"
	"linkpad/app/notes"
	"linkpad/app/preview"
)

var ErrNotADirectory = errors.New("not a directory")

type Gateway struct {
	conf    *config.Config
	fetcher *preview.Fetcher
	opener  func(url string) error
}

type Option func(*Gateway)

// WithFetcher replaces the link preview fetcher built from the config
func WithFetcher(f *preview.Fetcher) Option {
	return func(g *Gateway) {
		g.fetcher = f
	}
}

// WithOpener replaces the function that hands URLs to the system
func WithOpener(fn func(url string) error) Option {
	return func(g *Gateway) {
		g.opener = fn
	}
}

func New(conf *config.Config, opts ...Option) *Gateway {
	g := &Gateway{
		conf:   conf,
		opener: openURL,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.fetcher == nil {
		g.fetcher = newFetcher(conf)
	}

	return g
}

func newFetcher(conf *config.Config) *preview.Fetcher {
	timeout := preview.DefaultTimeout
	if v, err := conf.Value(config.Preview, config.Timeout); err == nil {
		timeout = v.GetDuration(preview.DefaultTimeout)
	}

	ua := preview.DefaultUserAgent
	if v, err := conf.Value(config.Preview, config.UserAgent); err == nil {
		ua = v.Value
	}

	return preview.NewFetcher(
		preview.WithTimeout(timeout),
		preview.WithUserAgent(ua),
	)
}

// Config returns the settings the gateway persists to
func (g *Gateway) Config() *config.Config {
	return g.conf
}

// SelectDirectory validates path and persists it as the notes
// directory. It returns the cleaned absolute path.
func (g *Gateway) SelectDirectory(path string) (string, bool) {
	dir, err := checkDirectory(path)
	if err != nil {
		debug.LogErr("select directory:", err)
		return "", false
	}

	if err := g.conf.SetValue(config.General, config.NotesDirectory, dir); err != nil {
		debug.LogErr("select directory:", err)
		return "", false
	}

	debug.LogInfo("notes directory set to", dir)
	return dir, true
}

// NotesDirectory returns the persisted notes directory if one is set
// and it still exists
func (g *Gateway) NotesDirectory() (string, bool) {
	dir, err := g.conf.NotesDir()
	if err != nil || dir == "" {
		return "", false
	}

	dir, err = checkDirectory(dir)
	if err != nil {
		debug.LogWarn("persisted notes directory unusable:", err)
		return "", false
	}

	return dir, true
}

// ListNotes reads all notes of dir. Cached link preview titles are
// applied to notes whose first link did not change since.
func (g *Gateway) ListNotes(ctx context.Context, dir string) []notes.Note {
	if err := ctx.Err(); err != nil {
		return []notes.Note{}
	}

	list, err := notes.List(dir)
	if err != nil {
		debug.LogErr("list notes:", err)
		return []notes.Note{}
	}

	for i := range list {
		list[i].DisplayTitle = g.cachedTitle(dir, list[i])
	}

	debug.LogDebug("listed", len(list), "notes in", dir)
	return list
}

// SaveNote overwrites the file of an existing note
func (g *Gateway) SaveNote(ctx context.Context, dir string, note notes.Note) bool {
	if err := ctx.Err(); err != nil {
		return false
	}

	if err := notes.ValidateTitle(note.Title); err != nil {
		debug.LogErr("save note:", err)
		return false
	}

	if _, err := notes.Write(note.Path(dir), note.Content); err != nil {
		debug.LogErr("save note:", err)
		return false
	}

	return true
}

// SaveNewNote creates the file of a new note. It fails if a note
// with the same title already exists and leaves that note untouched.
func (g *Gateway) SaveNewNote(ctx context.Context, dir string, note notes.Note) bool {
	if err := ctx.Err(); err != nil {
		return false
	}

	if err := notes.ValidateTitle(note.Title); err != nil {
		debug.LogErr("save new note:", err)
		return false
	}

	if err := notes.Create(note.Path(dir), note.Content); err != nil {
		debug.LogErr("save new note:", err)
		return false
	}

	return true
}

// DeleteNote removes the file of a note together with its cached
// meta infos
func (g *Gateway) DeleteNote(ctx context.Context, dir string, note notes.Note) bool {
	if err := ctx.Err(); err != nil {
		return false
	}

	path := note.Path(dir)
	if err := notes.Delete(path); err != nil {
		debug.LogErr("delete note:", err)
		return false
	}

	g.conf.DeleteMetaSection(path)
	return true
}

// OpenExternal opens url with the system's default handler
func (g *Gateway) OpenExternal(url string) bool {
	if url == "" {
		return false
	}

	if err := g.opener(url); err != nil {
		debug.LogErr("open external:", err)
		return false
	}

	return true
}

// PreviewEnabled reports whether link previews may be fetched
func (g *Gateway) PreviewEnabled() bool {
	return !app.NoPreview &&
		g.conf.Bool(config.Preview, config.FetchMetadata, true)
}

// FetchMetadata fetches the preview of url. Failures yield empty
// metadata.
func (g *Gateway) FetchMetadata(ctx context.Context, url string) preview.Metadata {
	if !g.PreviewEnabled() {
		return preview.Metadata{URL: url}
	}

	meta, err := g.fetcher.Fetch(ctx, url)
	if err != nil {
		debug.LogDebug("fetch metadata:", err)
		return preview.Metadata{URL: url}
	}

	return meta
}

// CacheDisplayTitle remembers the preview title of a note together
// with the URL it was taken from
func (g *Gateway) CacheDisplayTitle(dir string, note notes.Note, url string, title string) {
	path := note.Path(dir)
	g.conf.SetMetaValue(path, config.SourceURL, url)
	g.conf.SetMetaValue(path, config.DisplayTitle, title)
}

func (g *Gateway) cachedTitle(dir string, note notes.Note) string {
	path := note.Path(dir)

	source, err := g.conf.MetaValue(path, config.SourceURL)
	if err != nil || source != FirstURL(note) {
		return ""
	}

	title, err := g.conf.MetaValue(path, config.DisplayTitle)
	if err != nil {
		return ""
	}

	return title
}

func checkDirectory(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotADirectory)
	}

	dir, err := filepath.Abs(app.ExpandHome(path))
	if err != nil {
		return "", err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotADirectory, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	return dir, nil
}
