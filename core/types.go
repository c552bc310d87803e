// Package core contains the fundamental types shared by the tangle puzzle engine.
package core

// Point represents a 2D coordinate in canvas space.
type Point struct {
	X, Y float64
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains checks if a point is inside the rectangle, inclusive of all four edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ContainsStrict checks if a point lies in the open interior of the rectangle.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.X && p.X < r.X+r.W &&
		p.Y > r.Y && p.Y < r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.W/2,
		Y: r.Y + r.H/2,
	}
}

// Category is the matching attribute a path's two endpoint targets must share.
type Category int

const (
	Rose Category = iota
	Mint
	Sky
)

// Categories returns the fixed set of categories the default puzzle uses.
func Categories() []Category {
	return []Category{Rose, Mint, Sky}
}

// String returns the category name for display.
func (c Category) String() string {
	switch c {
	case Rose:
		return "Rose"
	case Mint:
		return "Mint"
	case Sky:
		return "Sky"
	default:
		return "Unknown"
	}
}

// Target represents a fixed rectangular region a path can start or end at.
type Target struct {
	ID       string
	Category Category
	Bounds   Rect
}

// Path represents a freehand stroke between two targets. EndID is empty
// while the path is still being drawn.
type Path struct {
	Category Category
	Points   []Point
	StartID  string
	EndID    string
}

// Committed checks if both endpoints of the path are attached.
func (p Path) Committed() bool {
	return p.EndID != ""
}

// Last returns the most recently recorded point. A path always holds at
// least its starting point.
func (p Path) Last() Point {
	return p.Points[len(p.Points)-1]
}

// Touches checks if the path starts or ends at the given target ID.
func (p Path) Touches(id string) bool {
	return p.StartID == id || p.EndID == id
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	pts := make([]Point, len(p.Points))
	copy(pts, p.Points)
	p.Points = pts
	return p
}

// RenderState is a read-only snapshot of session state for painting.
// InProgress is nil when no stroke is being drawn.
type RenderState struct {
	Committed  []Path
	InProgress *Path
	Complete   bool
}
