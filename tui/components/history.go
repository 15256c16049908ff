package components

import (
	"slices"

	"linkpad/app/debug"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// History manages a list of content changes (undo/redo history).
// Entries store patches between two versions of the stored content
// instead of full copies.
type History struct {
	// EntryIndex is the index of the most recent applied entry,
	// -1 if there's nothing to undo
	EntryIndex int

	// entries holds all recorded undo/redo history entries.
	entries []Entry

	// maxItems is the maximum number of entries allowed in history
	maxItems int

	// content and caret when the pending entry was started
	pending      *string
	pendingCaret int

	Dmp *dmp.DiffMatchPatch
}

// Entry represents a single change in the undo/redo history.
type Entry struct {
	redoPatch string
	undoPatch string
	UndoCaret int
	RedoCaret int
}

// NewHistory returns a new initialized History.
func NewHistory() History {
	return History{
		entries:    []Entry{},
		maxItems:   100,
		Dmp:        dmp.New(),
		EntryIndex: -1,
	}
}

// Begin remembers content as the state before the next change
func (h *History) Begin(content string, caret int) {
	if h.pending != nil {
		return
	}
	h.pending = &content
	h.pendingCaret = caret
}

// Commit records the change since Begin. Nothing is recorded if the
// content did not change. It reports whether an entry was added.
func (h *History) Commit(content string, caret int) bool {
	if h.pending == nil {
		return false
	}

	before := *h.pending
	h.pending = nil

	if before == content {
		return false
	}

	// discard the redo entries
	h.entries = h.entries[:h.EntryIndex+1]

	h.entries = append(h.entries, Entry{
		redoPatch: h.Dmp.PatchToText(h.Dmp.PatchMake(before, content)),
		undoPatch: h.Dmp.PatchToText(h.Dmp.PatchMake(content, before)),
		UndoCaret: h.pendingCaret,
		RedoCaret: caret,
	})

	if len(h.entries) > h.maxItems {
		h.entries = slices.Delete(h.entries, 0, len(h.entries)-h.maxItems)
	}

	h.EntryIndex = len(h.entries) - 1
	return true
}

// Pending reports whether a change was begun and not committed yet
func (h *History) Pending() bool {
	return h.pending != nil
}

// Undo reverts the most recent entry on content. It returns the
// previous content and the caret to restore.
func (h *History) Undo(content string) (string, int, bool) {
	if h.EntryIndex < 0 || h.EntryIndex >= len(h.entries) {
		return content, 0, false
	}

	entry := h.entries[h.EntryIndex]
	out, ok := h.apply(entry.undoPatch, content)
	if !ok {
		return content, 0, false
	}

	h.EntryIndex--
	return out, entry.UndoCaret, true
}

// Redo applies the entry following the current one again
func (h *History) Redo(content string) (string, int, bool) {
	next := h.EntryIndex + 1
	if next >= len(h.entries) {
		return content, 0, false
	}

	entry := h.entries[next]
	out, ok := h.apply(entry.redoPatch, content)
	if !ok {
		return content, 0, false
	}

	h.EntryIndex = next
	return out, entry.RedoCaret, true
}

// Reset forgets all entries, e.g. when another note is opened
func (h *History) Reset() {
	h.entries = h.entries[:0]
	h.EntryIndex = -1
	h.pending = nil
}

func (h *History) apply(patchText string, content string) (string, bool) {
	patches, err := h.Dmp.PatchFromText(patchText)
	if err != nil {
		debug.LogErr("history patch:", err)
		return content, false
	}

	out, applied := h.Dmp.PatchApply(patches, content)
	for _, ok := range applied {
		if !ok {
			debug.LogWarn("history patch could not be applied")
			return content, false
		}
	}

	return out, true
}
