package annotate

import (
	"html"
	"strings"
)

const linkClass = "external-link"

// HTML renders the document in the form notes are stored in.
// Raw runs keep their newlines, so Parse(d.HTML()) restores d.
func (d Document) HTML() string {
	var sb strings.Builder

	for _, seg := range d.Segments {
		switch seg.Kind {
		case Link, Mail:
			sb.WriteString(`<a href="`)
			sb.WriteString(html.EscapeString(seg.Href))
			sb.WriteString(`" class="` + linkClass + `">`)
			sb.WriteString(html.EscapeString(seg.Text))
			sb.WriteString(`</a>`)

		case Break:
			sb.WriteString(`<br>`)

		case Dash:
			sb.WriteString(`<span class="dash">`)
			sb.WriteString(html.EscapeString(seg.Text))
			sb.WriteString(`</span>`)

		case Embed:
			sb.WriteString(`<div class="youtube-embed" data-src="`)
			sb.WriteString(html.EscapeString(seg.Text))
			sb.WriteString(`"><iframe width="560" height="315" src="`)
			sb.WriteString(html.EscapeString(seg.EmbedURL()))
			sb.WriteString(`" frameborder="0" allowfullscreen></iframe></div>`)

		default:
			sb.WriteString(html.EscapeString(seg.Text))
		}
	}

	return sb.String()
}
