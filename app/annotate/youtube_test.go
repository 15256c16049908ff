package annotate_test

import (
	"strings"
	"testing"

	"linkpad/app/annotate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoID(t *testing.T) {
	tests := []struct {
		url string
		id  string
		ok  bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ", true},
		{"youtu.be/abc123", "abc123", true},
		{"http://YOUTU.BE/abc123", "abc123", true},
		{"https://youtu.be/dQw4w9WgXcQ?si=AbC123", "dQw4w9WgXcQ", true},
		{"youtu.be/abc123/extra", "abc123", true},
		{"https://youtu.be/?si=AbC123", "", false},
		{"https://vimeo.com/12345", "", false},
		{"https://www.youtube.com/channel/xyz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			id, ok := annotate.VideoID(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestEmbedYouTubeInText(t *testing.T) {
	doc := annotate.PlainDocument("watch https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1 now")

	out := annotate.EmbedYouTube(doc)

	require.Len(t, out.Segments, 3)
	assert.Equal(t, "watch ", out.Segments[0].Text)
	assert.Equal(t, annotate.EmbedSegment(
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ",
	), out.Segments[1])
	assert.Equal(t, "&t=1 now", out.Segments[2].Text)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", out.Segments[1].EmbedURL())
}

func TestEmbedYouTubeLink(t *testing.T) {
	doc := annotate.NewDocument(
		annotate.LinkSegment("https://youtu.be/abc123"),
		annotate.TextSegment(" and "),
		annotate.LinkSegment("https://example.com"),
	)

	out := annotate.EmbedYouTube(doc)

	assert.Equal(t, annotate.Embed, out.Segments[0].Kind)
	assert.Equal(t, "abc123", out.Segments[0].VideoID)
	assert.Equal(t, annotate.Link, out.Segments[2].Kind)
	assert.Equal(t, doc.Text(), out.Text())
}

func TestEmbedsSurviveReconcile(t *testing.T) {
	doc := annotate.EmbedYouTube(annotate.PlainDocument("youtu.be/abc123 http://example.com"))
	doc, _ = annotate.Reconcile(doc, annotate.NoSelection)

	require.Len(t, doc.Segments, 3)
	assert.Equal(t, annotate.Embed, doc.Segments[0].Kind)
	assert.Equal(t, annotate.Link, doc.Segments[2].Kind)

	out := doc.HTML()
	assert.True(t, strings.HasPrefix(out, `<div class="youtube-embed" data-src="youtu.be/abc123">`))
	assert.Contains(t, out, `src="https://www.youtube.com/embed/abc123"`)
	assert.Equal(t, "https://youtu.be/abc123", doc.Segments[0].Target())
}

func TestParseBareIframe(t *testing.T) {
	doc := annotate.Parse(`<iframe src="https://www.youtube-nocookie.com/embed/xyz?autoplay=1"></iframe>`)

	require.Len(t, doc.Segments, 1)
	assert.Equal(t, "xyz", doc.Segments[0].VideoID)
	assert.Equal(t, "https://www.youtube.com/watch?v=xyz", doc.Segments[0].Href)
}

func TestShareLinkSurvivesSaveAndLoad(t *testing.T) {
	load := func(content string) annotate.Document {
		doc := annotate.EmbedYouTube(annotate.Parse(content))
		doc, _ = annotate.Reconcile(doc, annotate.NoSelection)
		return doc
	}

	first := load("watch https://youtu.be/dQw4w9WgXcQ?si=AbC123 later")
	require.Len(t, first.Segments, 3)

	embed := first.Segments[1]
	assert.Equal(t, annotate.Embed, embed.Kind)
	assert.Equal(t, "dQw4w9WgXcQ", embed.VideoID)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ?si=AbC123", embed.Href)

	saved := first.HTML()
	assert.Contains(t, saved, `src="https://www.youtube.com/embed/dQw4w9WgXcQ"`)

	second := load(saved)
	assert.True(t, first.Equal(second), "%v != %v", first.Segments, second.Segments)
	assert.Equal(t, saved, second.HTML())
}
