package annotate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const dashLiteral = "--"

var (
	urlPattern   = regexp.MustCompile(`(?i)\b(?:https?|ftp|file)://[^\s<\x{00a0}]+`)
	emailPattern = regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`)

	// plain URLs considered for link previews
	previewURLPattern = regexp.MustCompile(`(?i)(?:https?|ftp)://[^\s]+`)
)

// piece is a produced segment together with the rune range of the
// source run it was made from. Breaks inserted by a dash expansion are
// zero-width.
type piece struct {
	seg        Segment
	start, end int
}

// Matches reports whether text contains anything Annotate would convert
func Matches(text string) bool {
	return strings.Contains(text, dashLiteral) ||
		urlPattern.MatchString(text) ||
		emailPattern.MatchString(text)
}

// Annotate converts a raw run into segments. Dash expansion splits the
// run first, then URLs are found in what is left and finally emails
// outside of those URLs.
// A run without matches comes back as a single raw segment, an empty
// run as no segment at all.
func Annotate(text string) []Segment {
	pieces := annotateRun(text)
	segs := make([]Segment, 0, len(pieces))
	for _, p := range pieces {
		if p.seg.Kind == Text && p.seg.Text == "" {
			continue
		}
		segs = append(segs, p.seg)
	}
	return segs
}

func annotateRun(text string) []piece {
	var pieces []piece

	// The dash expansion is purely textual and runs first, so a "--"
	// inside a URL cuts the URL in two.
	rest := text
	base := 0
	for {
		i := strings.Index(rest, dashLiteral)
		if i < 0 {
			break
		}

		part := rest[:i]
		pieces = append(pieces, linkifyPart(part, base)...)

		at := base + utf8.RuneCountInString(part)
		pieces = append(pieces,
			piece{seg: BreakSegment(), start: at, end: at},
			piece{seg: BreakSegment(), start: at, end: at},
			piece{seg: DashSegment(), start: at, end: at + 2},
		)

		rest = rest[i+len(dashLiteral):]
		base = at + 2
	}

	return append(pieces, linkifyPart(rest, base)...)
}

// linkifyPart finds URLs in part and emails in the gaps between them.
// base is the rune offset of part inside the whole run.
func linkifyPart(part string, base int) []piece {
	var pieces []piece

	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(part, -1) {
		pieces = append(pieces, mailifyGap(part, last, loc[0], base)...)

		url := part[loc[0]:loc[1]]
		start := base + utf8.RuneCountInString(part[:loc[0]])
		pieces = append(pieces, piece{
			seg:   LinkSegment(url),
			start: start,
			end:   start + utf8.RuneCountInString(url),
		})
		last = loc[1]
	}

	return append(pieces, mailifyGap(part, last, len(part), base)...)
}

// mailifyGap annotates the emails within part[from:to]
func mailifyGap(part string, from, to int, base int) []piece {
	gap := part[from:to]
	gapStart := base + utf8.RuneCountInString(part[:from])

	var pieces []piece
	last := 0
	for _, loc := range emailPattern.FindAllStringIndex(gap, -1) {
		if loc[0] > last {
			pieces = append(pieces, textPiece(gap[last:loc[0]], gapStart, gap[:last]))
		}

		addr := gap[loc[0]:loc[1]]
		start := gapStart + utf8.RuneCountInString(gap[:loc[0]])
		pieces = append(pieces, piece{
			seg:   MailSegment(addr),
			start: start,
			end:   start + utf8.RuneCountInString(addr),
		})
		last = loc[1]
	}

	if last < len(gap) || len(pieces) == 0 {
		pieces = append(pieces, textPiece(gap[last:], gapStart, gap[:last]))
	}

	return pieces
}

func textPiece(text string, gapStart int, before string) piece {
	start := gapStart + utf8.RuneCountInString(before)
	return piece{
		seg:   TextSegment(text),
		start: start,
		end:   start + utf8.RuneCountInString(text),
	}
}

func hasAnnotation(pieces []piece) bool {
	for _, p := range pieces {
		if p.seg.Annotated() {
			return true
		}
	}
	return false
}
