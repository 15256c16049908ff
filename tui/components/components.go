package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	bl "github.com/winder/bubblelayout"
)

// Component holds what every column of the TUI shares
type Component struct {
	Id   bl.ID
	Size bl.Size

	// Indicates whether the column is focused.
	// Used to determine if the column should receive keyboard shortcuts
	focused bool

	viewport viewport.Model

	// Ready indicates if the component has been initialized
	Ready bool
}

// Focused returns whether the component is focused
func (c *Component) Focused() bool {
	return c.focused
}

// SetFocus sets the focus state of the component
func (c *Component) SetFocus(focus bool) {
	c.focused = focus
}

// innerSize returns the width and height available inside the
// column's border, minus the header line
func (c *Component) innerSize() (int, int) {
	width := max(c.Size.Width-4, 1)
	height := max(c.Size.Height-3, 1)
	return width, height
}

// resizeViewport creates the viewport on first use and keeps its
// dimensions in sync with the layout
func (c *Component) resizeViewport() {
	width, height := c.innerSize()

	if !c.Ready {
		c.viewport = viewport.New(width, height)
		c.viewport.KeyMap = viewport.KeyMap{}
		c.Ready = true
		return
	}

	c.viewport.Width = width
	c.viewport.Height = height
}

// scrollTo moves the viewport the least amount needed for line to be
// visible
func (c *Component) scrollTo(line int) {
	if line < c.viewport.YOffset {
		c.viewport.SetYOffset(line)
	} else if line >= c.viewport.YOffset+c.viewport.Height {
		c.viewport.SetYOffset(line - c.viewport.Height + 1)
	}
}
