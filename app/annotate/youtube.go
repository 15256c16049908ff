package annotate

import (
	"regexp"
	"strings"
)

var (
	youtubePattern = regexp.MustCompile(
		`(?i)(?:https?://)?(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)([^\s&]+)`,
	)
	embedSrcPattern = regexp.MustCompile(`youtube(?:-nocookie)?\.com/embed/([^?&#"/\s]+)`)
)

// videoIDEnd marks where share parameters or a path tail follow the id
const videoIDEnd = "?&#/"

const youtubeEmbedURL = "https://www.youtube.com/embed/"

// VideoID extracts the video id of a YouTube watch or share URL.
// Query parameters like ?si= of share links are not part of the id.
func VideoID(url string) (string, bool) {
	m := youtubePattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return cleanVideoID(m[1])
}

func cleanVideoID(raw string) (string, bool) {
	if i := strings.IndexAny(raw, videoIDEnd); i >= 0 {
		raw = raw[:i]
	}
	return raw, raw != ""
}

// EmbedYouTube replaces YouTube links and plain YouTube URLs with
// embedded players. It's meant to run once when a note is loaded, before
// the full reconciliation, and never while typing.
func EmbedYouTube(doc Document) Document {
	out := make([]Segment, 0, len(doc.Segments))

	for _, seg := range doc.Segments {
		switch seg.Kind {
		case Link:
			if id, ok := VideoID(seg.Href); ok {
				out = append(out, EmbedSegment(seg.Text, id))
				continue
			}
			out = append(out, seg)

		case Text:
			out = append(out, embedInText(seg.Text)...)

		default:
			out = append(out, seg)
		}
	}

	return NewDocument(out...)
}

func embedInText(text string) []Segment {
	matches := youtubePattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return []Segment{TextSegment(text)}
	}

	segs := make([]Segment, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		id, ok := cleanVideoID(text[m[2]:m[3]])
		if !ok {
			continue
		}

		segs = append(segs, TextSegment(text[last:m[0]]))
		segs = append(segs, EmbedSegment(text[m[0]:m[1]], id))
		last = m[1]
	}

	return append(segs, TextSegment(text[last:]))
}

// EmbedURL returns the player URL of an Embed segment
func (s Segment) EmbedURL() string {
	return youtubeEmbedURL + s.VideoID
}

// watchURL rebuilds a watch URL for embeds that lost their source
func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// Target returns the URL an external browser should open for s
func (s Segment) Target() string {
	href := s.Href
	if s.Kind == Embed && href != "" &&
		!strings.Contains(href, "://") {

		href = "https://" + href
	}
	return href
}
