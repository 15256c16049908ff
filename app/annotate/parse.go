package annotate

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads stored note content into a document. Content may be
// annotated HTML as written by Document.HTML, HTML produced by another
// editor or plain text. Unknown elements are transparent, block
// elements start on a new line.
func Parse(content string) Document {
	if content == "" {
		return Document{}
	}

	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}

	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return PlainDocument(content)
	}

	p := &parser{}
	for _, n := range nodes {
		p.walk(n)
	}

	return NewDocument(p.segs...)
}

type parser struct {
	segs []Segment
}

func (p *parser) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		p.segs = append(p.segs, TextSegment(n.Data))
		return

	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Br:
		p.segs = append(p.segs, BreakSegment())

	case atom.A:
		p.link(n)

	case atom.Span:
		if hasClass(n, "dash") {
			p.segs = append(p.segs, Segment{Kind: Dash, Text: textContent(n)})
			return
		}
		p.children(n)

	case atom.Iframe:
		if id, ok := embedID(n); ok {
			p.segs = append(p.segs, EmbedSegment(watchURL(id), id))
		}

	case atom.Div, atom.P:
		if hasClass(n, "youtube-embed") {
			if seg, ok := embedFromBlock(n); ok {
				p.segs = append(p.segs, seg)
				return
			}
		}
		p.newLine()
		p.children(n)

	case atom.Script, atom.Style:
		return

	default:
		p.children(n)
	}
}

func (p *parser) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c)
	}
}

// newLine starts a block element on its own line unless it's the very
// first content or a line break already precedes it
func (p *parser) newLine() {
	if len(p.segs) == 0 {
		return
	}

	last := p.segs[len(p.segs)-1]
	if last.Kind == Break || strings.HasSuffix(last.Text, "\n") {
		return
	}

	p.segs = append(p.segs, BreakSegment())
}

func (p *parser) link(n *html.Node) {
	text := textContent(n)
	href := attr(n, "href")

	switch {
	case text == "":
		return
	case href == "":
		p.segs = append(p.segs, TextSegment(text))
	case strings.HasPrefix(strings.ToLower(href), "mailto:"):
		p.segs = append(p.segs, Segment{Kind: Mail, Text: text, Href: href})
	default:
		p.segs = append(p.segs, Segment{Kind: Link, Text: text, Href: href})
	}
}

func embedFromBlock(n *html.Node) (Segment, bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Iframe {
			continue
		}

		id, ok := embedID(c)
		if !ok {
			continue
		}

		source := attr(n, "data-src")
		if source == "" {
			source = watchURL(id)
		}
		return EmbedSegment(source, id), true
	}

	return Segment{}, false
}

func embedID(n *html.Node) (string, bool) {
	m := embedSrcPattern.FindStringSubmatch(attr(n, "src"))
	if m == nil {
		return "", false
	}
	return m[1], true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(attr(n, "class")), class)
}

func textContent(n *html.Node) string {
	var sb strings.Builder

	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)

	return sb.String()
}
