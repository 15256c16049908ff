package annotate_test

import (
	"testing"

	"linkpad/app/annotate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStoredHTML(t *testing.T) {
	content := `hello <a href="https://x.io" class="external-link">https://x.io</a>` +
		`<br><br><span class="dash">--</span>bye <a href="mailto:a@b.com" class="external-link">a@b.com</a>`

	doc := annotate.Parse(content)

	require.Equal(t, []annotate.Segment{
		annotate.TextSegment("hello "),
		annotate.LinkSegment("https://x.io"),
		annotate.BreakSegment(),
		annotate.BreakSegment(),
		annotate.DashSegment(),
		annotate.TextSegment("bye "),
		annotate.MailSegment("a@b.com"),
	}, doc.Segments)

	assert.Equal(t, content, doc.HTML())
}

func TestParseBlocks(t *testing.T) {
	doc := annotate.Parse("<div>one</div><div>two</div><p><b>three</b></p>")

	assert.Equal(t, "one\ntwo\nthree", doc.Text())
	assert.Equal(t, annotate.Break, doc.Segments[1].Kind)
}

func TestParsePlainText(t *testing.T) {
	text := "first line\nsecond line with a < b && c\n"
	doc := annotate.Parse(text)

	require.Len(t, doc.Segments, 1)
	assert.Equal(t, text, doc.Text())
	assert.Empty(t, annotate.Parse("").Segments)
}

func TestParseSkipsScripts(t *testing.T) {
	doc := annotate.Parse("a<script>alert(1)</script>b")
	assert.Equal(t, "ab", doc.Text())
}

func TestHTMLRoundTrip(t *testing.T) {
	inputs := []string{
		"plain & <simple>",
		"a--b http://example.com/?x=1&y=\"2\" c@d.org\nnext line",
		"watch https://youtu.be/abc123 now",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			doc := annotate.EmbedYouTube(annotate.PlainDocument(in))
			doc, _ = annotate.Reconcile(doc, annotate.NoSelection)

			parsed := annotate.Parse(doc.HTML())
			assert.Equal(t, doc.Text(), parsed.Text())
			assert.True(t, doc.Equal(parsed), "%v != %v", doc.Segments, parsed.Segments)
		})
	}
}

func TestHTMLEscapes(t *testing.T) {
	doc := annotate.NewDocument(
		annotate.TextSegment("1 < 2 & 3"),
		annotate.Segment{Kind: annotate.Link, Text: "q", Href: `http://x.io/?a="b"`},
	)

	assert.Equal(t,
		`1 &lt; 2 &amp; 3<a href="http://x.io/?a=&#34;b&#34;" class="external-link">q</a>`,
		doc.HTML(),
	)
}
