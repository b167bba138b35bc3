package render

import (
	"fmt"

	"github.com/lixenwraith/term-snake/terminal"
	"github.com/lixenwraith/term-snake/vmath"
)

// Sink receives draw commands
// terminal.Terminal satisfies it
type Sink interface {
	MoveTo(x, y int) error
	Put(c terminal.Cell) error
}

// Canvas is a double-buffered logical grid mapped onto a terminal region
// Cells are stored column-major (index x*height + y); each logical cell spans mult terminal columns
// Not safe for concurrent use
type Canvas struct {
	offsetX, offsetY int
	width, height    int
	mult             int

	cur  []Element
	prev []Element
}

// NewCanvas creates a canvas whose current buffer is Empty and previous buffer is Invalid,
// so the first Render repaints every cell
func NewCanvas(offsetX, offsetY, width, height, horizontalMult int) *Canvas {
	if width <= 0 || height <= 0 || horizontalMult <= 0 {
		panic(fmt.Sprintf("render: bad canvas geometry %dx%d mult %d", width, height, horizontalMult))
	}
	c := &Canvas{
		offsetX: offsetX,
		offsetY: offsetY,
		width:   width,
		height:  height,
		mult:    horizontalMult,
		cur:     make([]Element, width*height),
		prev:    make([]Element, width*height),
	}
	c.Invalidate()
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		panic(fmt.Sprintf("render: cell (%d,%d) outside %dx%d canvas", x, y, c.width, c.height))
	}
	return x*c.height + y
}

// Set writes e at (x,y) in the current buffer
// Invalid elements and out-of-range coordinates are programming errors and panic
func (c *Canvas) Set(x, y int, e Element) {
	if e.Kind == Invalid {
		panic("render: Invalid element written to canvas")
	}
	i := c.index(x, y)
	if c.cur[i] != e {
		c.cur[i] = e
	}
}

// Get returns the current element at (x,y)
func (c *Canvas) Get(x, y int) Element {
	return c.cur[c.index(x, y)]
}

// Clear sets every current cell to Empty
func (c *Canvas) Clear() {
	clear(c.cur)
}

// Invalidate forces a full repaint on the next Render
func (c *Canvas) Invalidate() {
	for i := range c.prev {
		c.prev[i] = Element{Kind: Invalid}
	}
}

// Diff returns the cells whose current content differs from the last rendered frame,
// x-major then y; it does not modify the canvas
func (c *Canvas) Diff() []vmath.Point {
	var pts []vmath.Point
	for i := range c.cur {
		if c.cur[i] != c.prev[i] {
			pts = append(pts, vmath.Point{X: i / c.height, Y: i % c.height})
		}
	}
	return pts
}

// Render emits draw commands for changed cells, then records the current buffer as rendered
// Returns the number of logical cells drawn; on the first sink error it stops and leaves
// the previous buffer untouched so the next Render retries everything still pending
func (c *Canvas) Render(sink Sink, pal *Palette) (int, error) {
	pts := c.Diff()
	for _, p := range pts {
		first, fill := pal.Glyph(c.cur[p.X*c.height+p.Y])
		col := c.offsetX + p.X*c.mult
		row := c.offsetY + p.Y

		for i := 0; i < c.mult; i++ {
			if err := sink.MoveTo(col+i, row); err != nil {
				return 0, err
			}
			cell := fill
			if i == 0 {
				cell = first
			}
			if err := sink.Put(cell); err != nil {
				return 0, err
			}
		}
	}
	copy(c.prev, c.cur)
	return len(pts), nil
}
