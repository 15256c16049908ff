// Package annotate turns plain text runs of a note into annotated
// segments: hyperlinks, mail links, thematic dash breaks and YouTube
// embeds. It works on a Document, a flat sequence of tagged segments,
// and never depends on how the document is displayed.
package annotate

import (
	"strings"
	"unicode/utf8"
)

type Kind int

const (
	// Text is a raw run that is still subject to annotation
	Text Kind = iota
	// Link is a hyperlink to an URL
	Link
	// Mail is a mailto hyperlink
	Mail
	// Break is a forced line break
	Break
	// Dash is the inert marker following a dash expansion
	Dash
	// Embed is an embedded YouTube player
	Embed
)

var kindNames = map[Kind]string{
	Text:  "text",
	Link:  "link",
	Mail:  "mail",
	Break: "break",
	Dash:  "dash",
	Embed: "embed",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Segment is one element of a Document.
// Every kind but Text is annotated and never scanned again.
type Segment struct {
	Kind Kind

	// Text is the visible text. It's also what the segment
	// contributes to the plain projection of the document.
	Text string

	// Href is the link target of Link and Mail segments and the
	// source URL of an Embed
	Href string

	// VideoID is the YouTube video id of an Embed
	VideoID string
}

func TextSegment(text string) Segment {
	return Segment{Kind: Text, Text: text}
}

func LinkSegment(url string) Segment {
	return Segment{Kind: Link, Text: url, Href: url}
}

func MailSegment(addr string) Segment {
	return Segment{Kind: Mail, Text: addr, Href: "mailto:" + addr}
}

func BreakSegment() Segment {
	return Segment{Kind: Break, Text: "\n"}
}

func DashSegment() Segment {
	return Segment{Kind: Dash, Text: dashLiteral}
}

func EmbedSegment(source string, videoID string) Segment {
	return Segment{Kind: Embed, Text: source, Href: source, VideoID: videoID}
}

// Annotated reports whether the segment is excluded from re-processing
func (s Segment) Annotated() bool {
	return s.Kind != Text
}

// IsLink reports whether the segment points somewhere that can be opened
func (s Segment) IsLink() bool {
	return s.Kind == Link || s.Kind == Mail || s.Kind == Embed
}

// Len returns the length of the segment's projection in runes
func (s Segment) Len() int {
	return utf8.RuneCountInString(s.Text)
}

// Position addresses a caret inside a document: the index of a
// segment and a rune offset within that segment's text.
type Position struct {
	Segment int
	Offset  int
}

// NoSelection is the position used when there is no active caret
var NoSelection = Position{Segment: -1, Offset: -1}

// Document is an ordered sequence of segments
type Document struct {
	Segments []Segment
}

// NewDocument returns a normalised document made of segs
func NewDocument(segs ...Segment) Document {
	return Document{Segments: normalize(segs)}
}

// PlainDocument wraps text into a document holding a single raw run
func PlainDocument(text string) Document {
	return NewDocument(TextSegment(text))
}

// Text returns the plain projection of the document
func (d Document) Text() string {
	var sb strings.Builder
	for _, seg := range d.Segments {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// Len returns the length of the projection in runes
func (d Document) Len() int {
	n := 0
	for _, seg := range d.Segments {
		n += seg.Len()
	}
	return n
}

// IsEmpty reports whether the document has no content at all
func (d Document) IsEmpty() bool {
	return d.Len() == 0
}

// Equal reports whether both documents hold the same segments
func (d Document) Equal(other Document) bool {
	if len(d.Segments) != len(other.Segments) {
		return false
	}
	for i := range d.Segments {
		if d.Segments[i] != other.Segments[i] {
			return false
		}
	}
	return true
}

// Valid reports whether pos addresses a caret inside d
func (d Document) Valid(pos Position) bool {
	if pos.Segment < 0 || pos.Segment >= len(d.Segments) {
		return false
	}
	return pos.Offset >= 0 && pos.Offset <= d.Segments[pos.Segment].Len()
}

// OffsetOf converts a position into an absolute rune offset.
// Invalid positions yield -1.
func (d Document) OffsetOf(pos Position) int {
	if !d.Valid(pos) {
		return -1
	}

	offset := 0
	for i := 0; i < pos.Segment; i++ {
		offset += d.Segments[i].Len()
	}
	return offset + pos.Offset
}

// PositionAt converts an absolute rune offset into a position.
// At a boundary between two segments the raw text segment wins, so a
// caret right after a link is placed in the text that follows it.
// Offsets outside the document are clamped.
func (d Document) PositionAt(offset int) Position {
	if len(d.Segments) == 0 {
		return Position{Segment: 0, Offset: 0}
	}

	if offset < 0 {
		offset = 0
	}

	start := 0
	for i, seg := range d.Segments {
		end := start + seg.Len()
		if offset <= end {
			next := i + 1
			if offset == end && seg.Kind != Text &&
				next < len(d.Segments) && d.Segments[next].Kind == Text {

				return Position{Segment: next, Offset: 0}
			}
			return Position{Segment: i, Offset: offset - start}
		}
		start = end
	}

	last := len(d.Segments) - 1
	return Position{Segment: last, Offset: d.Segments[last].Len()}
}

// normalize drops empty raw runs and merges adjacent ones
func normalize(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))

	for _, seg := range segs {
		if seg.Kind == Text {
			if seg.Text == "" {
				continue
			}
			if n := len(out); n > 0 && out[n-1].Kind == Text {
				out[n-1].Text += seg.Text
				continue
			}
		}
		out = append(out, seg)
	}

	return out
}

// isNormalized reports whether normalize would leave segs untouched
func isNormalized(segs []Segment) bool {
	for i, seg := range segs {
		if seg.Kind != Text {
			continue
		}
		if seg.Text == "" {
			return false
		}
		if i > 0 && segs[i-1].Kind == Text {
			return false
		}
	}
	return true
}
