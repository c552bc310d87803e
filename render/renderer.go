package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"tangle/board"
	"tangle/core"
)

// Stroke glyphs. The in-progress stroke uses the lighter dot so the
// player can tell a live stroke from a committed one.
const (
	committedDot  = '●'
	inProgressDot = '·'
)

// CategoryColor maps a category to its terminal color.
func CategoryColor(c core.Category) tcell.Color {
	switch c {
	case core.Rose:
		return tcell.ColorRed
	case core.Mint:
		return tcell.ColorGreen
	case core.Sky:
		return tcell.ColorBlue
	default:
		return tcell.ColorWhite
	}
}

// Draw paints the full scene: target boxes, committed strokes, the
// in-progress stroke, and the win banner once won is set.
func Draw(f *Frame, snap board.Snapshot, st core.RenderState, won bool) {
	f.Clear()

	for _, t := range snap.Targets() {
		drawTarget(f, t)
	}
	for _, p := range st.Committed {
		drawStroke(f, p, committedDot)
	}
	if st.InProgress != nil {
		drawStroke(f, *st.InProgress, inProgressDot)
	}
	if won {
		drawBanner(f)
	}
}

// drawTarget draws a target's border and its one-letter label.
func drawTarget(f *Frame, t core.Target) {
	color := CategoryColor(t.Category)
	x0, y0 := round(t.Bounds.X), round(t.Bounds.Y)
	x1, y1 := round(t.Bounds.X+t.Bounds.W), round(t.Bounds.Y+t.Bounds.H)

	for x := x0 + 1; x < x1; x++ {
		f.Set(x, y0, '─', color)
		f.Set(x, y1, '─', color)
	}
	for y := y0 + 1; y < y1; y++ {
		f.Set(x0, y, '│', color)
		f.Set(x1, y, '│', color)
	}
	f.Set(x0, y0, '┌', color)
	f.Set(x1, y0, '┐', color)
	f.Set(x0, y1, '└', color)
	f.Set(x1, y1, '┘', color)

	c := t.Bounds.Center()
	label := []rune(t.Category.String())[0]
	f.Set(round(c.X), round(c.Y), label, color)
}

// drawStroke plots a path as line segments between its recorded points.
func drawStroke(f *Frame, p core.Path, dot rune) {
	color := CategoryColor(p.Category)
	if len(p.Points) == 1 {
		pt := p.Points[0]
		f.Set(round(pt.X), round(pt.Y), dot, color)
		return
	}
	for i := 0; i < len(p.Points)-1; i++ {
		a, b := p.Points[i], p.Points[i+1]
		drawLine(f, round(a.X), round(a.Y), round(b.X), round(b.Y), dot, color)
	}
}

// drawLine plots a Bresenham line between two cells.
func drawLine(f *Frame, x0, y0, x1, y1 int, ch rune, color tcell.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		f.Set(x0, y0, ch, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawBanner centers the win message over the scene.
func drawBanner(f *Frame) {
	lines := []string{
		"                             ",
		"     You untangled it!       ",
		"   r: new puzzle   q: quit   ",
		"                             ",
	}

	w, h := f.Size()
	top := h/2 - len(lines)/2
	for dy, line := range lines {
		left := (w - len(line)) / 2
		for dx, ch := range line {
			f.Set(left+dx, top+dy, ch, tcell.ColorYellow)
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
