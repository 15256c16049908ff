package gateway

import (
	"linkpad/app/annotate"
	"linkpad/app/notes"
)

// FirstURL returns the link a note is previewed with, the first one
// found in its content
func FirstURL(note notes.Note) string {
	urls := annotate.URLs(annotate.Parse(note.Content))
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}
