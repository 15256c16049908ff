package annotate_test

import (
	"testing"

	"linkpad/app/annotate"

	"github.com/stretchr/testify/assert"
)

func linkDoc() annotate.Document {
	return annotate.NewDocument(
		annotate.TextSegment("a "),
		annotate.LinkSegment("http://x.io"),
		annotate.TextSegment(" b"),
	)
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   []annotate.Segment
	}{
		{
			name:   "inside a link demotes it",
			offset: 5,
			want: []annotate.Segment{
				annotate.TextSegment("a httZp://x.io b"),
			},
		},
		{
			name:   "right behind a link joins the text",
			offset: 13,
			want: []annotate.Segment{
				annotate.TextSegment("a "),
				annotate.LinkSegment("http://x.io"),
				annotate.TextSegment("Z b"),
			},
		},
		{
			name:   "right before a link joins the text",
			offset: 2,
			want: []annotate.Segment{
				annotate.TextSegment("a Z"),
				annotate.LinkSegment("http://x.io"),
				annotate.TextSegment(" b"),
			},
		},
		{
			name:   "past the end is clamped",
			offset: 100,
			want: []annotate.Segment{
				annotate.TextSegment("a "),
				annotate.LinkSegment("http://x.io"),
				annotate.TextSegment(" bZ"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := linkDoc().Insert(tt.offset, "Z")
			assert.Equal(t, tt.want, out.Segments)
		})
	}
}

func TestInsertAfterTrailingAnnotation(t *testing.T) {
	doc := annotate.NewDocument(annotate.TextSegment("x"), annotate.DashSegment())

	out := doc.Insert(doc.Len(), "y")

	assert.Equal(t, []annotate.Segment{
		annotate.TextSegment("x"),
		annotate.DashSegment(),
		annotate.TextSegment("y"),
	}, out.Segments)
}

func TestInsertIntoEmpty(t *testing.T) {
	out := annotate.Document{}.Insert(0, "hi")
	assert.Equal(t, "hi", out.Text())
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []annotate.Segment
	}{
		{
			name: "part of a link demotes it",
			from: 2, to: 4,
			want: []annotate.Segment{
				annotate.TextSegment("a tp://x.io b"),
			},
		},
		{
			name: "a whole link",
			from: 2, to: 13,
			want: []annotate.Segment{
				annotate.TextSegment("a  b"),
			},
		},
		{
			name: "reversed range",
			from: 1, to: 0,
			want: []annotate.Segment{
				annotate.TextSegment(" "),
				annotate.LinkSegment("http://x.io"),
				annotate.TextSegment(" b"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := linkDoc().Delete(tt.from, tt.to)
			assert.Equal(t, tt.want, out.Segments)
		})
	}

	assert.True(t, linkDoc().Equal(linkDoc().Delete(3, 3)))
}

func TestDeleteBreak(t *testing.T) {
	doc := annotate.NewDocument(
		annotate.TextSegment("a"),
		annotate.BreakSegment(),
		annotate.TextSegment("b"),
	)

	assert.Equal(t, []annotate.Segment{annotate.TextSegment("ab")}, doc.Delete(1, 2).Segments)
}

func TestReplace(t *testing.T) {
	out := linkDoc().Replace(0, 1, "see")
	assert.Equal(t, "see http://x.io b", out.Text())
	assert.Equal(t, annotate.Link, out.Segments[1].Kind)
}

func TestPositionAt(t *testing.T) {
	doc := linkDoc()

	assert.Equal(t, annotate.Position{Segment: 0, Offset: 1}, doc.PositionAt(1))
	// boundaries prefer raw text
	assert.Equal(t, annotate.Position{Segment: 0, Offset: 2}, doc.PositionAt(2))
	assert.Equal(t, annotate.Position{Segment: 2, Offset: 0}, doc.PositionAt(13))
	assert.Equal(t, annotate.Position{Segment: 2, Offset: 2}, doc.PositionAt(99))
	assert.Equal(t, annotate.Position{Segment: 0, Offset: 0}, doc.PositionAt(-4))

	for offset := 0; offset <= doc.Len(); offset++ {
		assert.Equal(t, offset, doc.OffsetOf(doc.PositionAt(offset)))
	}

	assert.Equal(t, -1, doc.OffsetOf(annotate.NoSelection))
}
