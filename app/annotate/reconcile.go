package annotate

import (
	"unicode"
)

// Reconcile runs a full annotation pass over every raw run of doc.
// Annotated segments are left alone, which makes a second pass a no-op.
//
// sel is the caret before the pass. The returned position addresses the
// same character afterwards, also when the run holding the caret was
// rewritten. An invalid sel is returned as it is.
func Reconcile(doc Document, sel Position) (Document, Position) {
	if !isNormalized(doc.Segments) {
		offset := doc.OffsetOf(sel)
		doc = NewDocument(doc.Segments...)
		if offset >= 0 {
			sel = doc.PositionAt(offset)
		}
	}

	out := make([]Segment, 0, len(doc.Segments))
	newSel := sel

	for i, seg := range doc.Segments {
		var pieces []piece
		if seg.Kind == Text {
			pieces = annotateRun(seg.Text)
		}

		if !hasAnnotation(pieces) {
			if i == sel.Segment {
				newSel = Position{Segment: len(out), Offset: sel.Offset}
			}
			out = append(out, seg)
			continue
		}

		kept := make([]piece, 0, len(pieces))
		for _, p := range pieces {
			if p.seg.Kind == Text && p.seg.Text == "" {
				continue
			}
			kept = append(kept, p)
		}

		if i == sel.Segment {
			newSel = mapIntoPieces(kept, sel.Offset, len(out))
		}

		for _, p := range kept {
			out = append(out, p.seg)
		}
	}

	return Document{Segments: out}, newSel
}

// mapIntoPieces finds the piece holding the source offset and returns
// the matching position. base is the index of the first piece.
func mapIntoPieces(pieces []piece, offset int, base int) Position {
	for i, p := range pieces {
		if offset < p.start || offset > p.end {
			continue
		}

		next := i + 1
		if offset == p.end && p.seg.Kind != Text &&
			next < len(pieces) && pieces[next].seg.Kind == Text &&
			pieces[next].start == offset {

			return Position{Segment: base + next, Offset: 0}
		}

		// positions inside a break have no source width
		inner := min(offset-p.start, p.seg.Len())
		return Position{Segment: base + i, Offset: inner}
	}

	last := len(pieces) - 1
	return Position{Segment: base + last, Offset: pieces[last].seg.Len()}
}

// LinkifyLastWord annotates the word in front of the caret after a
// space or a newline was typed. The caret has to sit in a raw run right
// behind that whitespace; the word is the run of non-whitespace
// characters ending at it.
//
// On a match the run is split into the untouched text before the word,
// the annotated word and the remainder starting with the typed
// whitespace. The whitespace was typed before the word got annotated,
// so the caret right after the annotation is the one behind that
// whitespace, at offset 1 of the remainder. Typing continues there in
// plain text.
// Anything else leaves doc and caret unchanged and reports false.
func LinkifyLastWord(doc Document, caret Position) (Document, Position, bool) {
	if !doc.Valid(caret) {
		return doc, caret, false
	}

	seg := doc.Segments[caret.Segment]
	if seg.Kind != Text || caret.Offset == 0 {
		return doc, caret, false
	}

	runes := []rune(seg.Text)
	trigger := caret.Offset - 1
	if !unicode.IsSpace(runes[trigger]) {
		return doc, caret, false
	}

	start := trigger
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}

	word := string(runes[start:trigger])
	if word == "" {
		return doc, caret, false
	}

	pieces := annotateRun(word)
	if !hasAnnotation(pieces) {
		return doc, caret, false
	}

	replacement := make([]Segment, 0, len(pieces)+2)
	replacement = append(replacement, TextSegment(string(runes[:start])))

	grown := 0
	for _, p := range pieces {
		replacement = append(replacement, p.seg)
		grown += p.seg.Len()
	}
	grown -= len(runes[start:trigger])

	replacement = append(replacement, TextSegment(string(runes[trigger:])))

	segs := make([]Segment, 0, len(doc.Segments)+len(replacement))
	segs = append(segs, doc.Segments[:caret.Segment]...)
	segs = append(segs, replacement...)
	segs = append(segs, doc.Segments[caret.Segment+1:]...)

	offset := doc.OffsetOf(caret) + grown
	out := NewDocument(segs...)

	return out, out.PositionAt(offset), true
}
