package annotate

import "slices"

// URLs returns the link targets found in a document: hyperlinks and
// embeds first, then URLs still sitting in raw runs. Duplicates are
// dropped, order is kept.
func URLs(d Document) []string {
	var urls []string

	add := func(url string) {
		if url != "" && !slices.Contains(urls, url) {
			urls = append(urls, url)
		}
	}

	for _, seg := range d.Segments {
		if seg.Kind == Link || seg.Kind == Embed {
			add(seg.Target())
		}
	}

	for _, seg := range d.Segments {
		if seg.Kind != Text {
			continue
		}
		for _, url := range previewURLPattern.FindAllString(seg.Text, -1) {
			add(url)
		}
	}

	return urls
}

// LinkAt returns the link, mail link or embed under the caret at the
// absolute offset. A caret right behind a link still counts as on it.
func LinkAt(d Document, offset int) (Segment, bool) {
	start := 0
	for _, seg := range d.Segments {
		end := start + seg.Len()
		if seg.IsLink() && offset >= start && offset <= end {
			return seg, true
		}
		if offset < end {
			break
		}
		start = end
	}
	return Segment{}, false
}
