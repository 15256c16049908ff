package annotate

// Insert returns a copy of d with text inserted at the absolute rune
// offset. Text typed strictly inside an annotated segment turns that
// segment back into a raw run; at a boundary it joins the neighbouring
// raw run, or becomes a new one.
func (d Document) Insert(offset int, text string) Document {
	if text == "" {
		return d
	}

	offset = max(0, min(offset, d.Len()))
	segs := make([]Segment, 0, len(d.Segments)+1)
	inserted := false
	start := 0

	for i, seg := range d.Segments {
		end := start + seg.Len()

		switch {
		case inserted || offset > end || offset < start:
			segs = append(segs, seg)

		case offset > start && offset < end:
			runes := []rune(seg.Text)
			segs = append(segs, TextSegment(string(runes[:offset-start])+text+string(runes[offset-start:])))
			inserted = true

		case offset == start:
			segs = append(segs, TextSegment(text), seg)
			inserted = true

		default:
			// offset == end: leave it to the next segment unless
			// this one is raw text or the last one
			if seg.Kind == Text || i == len(d.Segments)-1 {
				segs = append(segs, seg, TextSegment(text))
				inserted = true
			} else {
				segs = append(segs, seg)
			}
		}

		start = end
	}

	if !inserted {
		segs = append(segs, TextSegment(text))
	}

	return NewDocument(segs...)
}

// Delete returns a copy of d without the runes in [from, to).
// Annotated segments that lose only part of their text become raw runs.
func (d Document) Delete(from int, to int) Document {
	if from > to {
		from, to = to, from
	}

	from = max(0, from)
	to = min(to, d.Len())
	if from >= to {
		return d
	}

	segs := make([]Segment, 0, len(d.Segments))
	start := 0

	for _, seg := range d.Segments {
		end := start + seg.Len()

		switch {
		case end <= from || start >= to:
			segs = append(segs, seg)

		case start >= from && end <= to:
			// fully removed

		default:
			runes := []rune(seg.Text)
			cutFrom := max(from, start) - start
			cutTo := min(to, end) - start
			rest := string(runes[:cutFrom]) + string(runes[cutTo:])
			segs = append(segs, TextSegment(rest))
		}

		start = end
	}

	return NewDocument(segs...)
}

// Replace swaps the runes in [from, to) for text
func (d Document) Replace(from int, to int, text string) Document {
	return d.Delete(from, to).Insert(min(from, to), text)
}
