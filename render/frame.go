// Package render rasterizes the board and the session's paths onto a
// colored cell matrix. It is pull-based: the shell asks the session for
// a render snapshot each frame and hands it here; the engine never
// calls into the painter.
package render

import "github.com/gdamore/tcell/v2"

// Cell is one character cell of a rendered frame.
type Cell struct {
	Ch    rune
	Color tcell.Color
}

// Frame is a fixed-size cell matrix. Writes outside the frame are
// dropped, so drawing code does not need to clip first.
type Frame struct {
	width  int
	height int
	cells  []Cell
}

// NewFrame creates a blank frame of the given size.
func NewFrame(width, height int) *Frame {
	if width <= 0 || height <= 0 {
		return nil
	}
	f := &Frame{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	f.Clear()
	return f
}

// Size returns the frame dimensions.
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Clear resets every cell to a blank.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = Cell{Ch: ' ', Color: tcell.ColorDefault}
	}
}

// Set writes one cell. Out-of-range coordinates are ignored.
func (f *Frame) Set(x, y int, ch rune, color tcell.Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = Cell{Ch: ch, Color: color}
}

// At reads one cell. Out-of-range coordinates return a blank.
func (f *Frame) At(x, y int) Cell {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Cell{Ch: ' ', Color: tcell.ColorDefault}
	}
	return f.cells[y*f.width+x]
}
