// Package geometry provides the pure segment predicates the path
// validator is built on. All functions are total on finite inputs.
package geometry

import (
	"math"

	"tangle/core"
)

// SegmentsIntersect checks if the closed segments a0-a1 and b0-b1
// intersect. The segments are solved parametrically; an intersection
// exists when both parameters land in [0, 1]. Parallel and collinear
// segments report no intersection, even when they overlap.
func SegmentsIntersect(a0, a1, b0, b1 core.Point) bool {
	rx, ry := a1.X-a0.X, a1.Y-a0.Y
	sx, sy := b1.X-b0.X, b1.Y-b0.Y

	det := rx*sy - ry*sx
	if det == 0 {
		return false
	}

	qx, qy := b0.X-a0.X, b0.Y-a0.Y
	t := (qx*sy - qy*sx) / det
	u := (qx*ry - qy*rx) / det
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// SegmentIntersectsRect checks if the segment p1-p2 touches the
// rectangle r: either it crosses one of the four edges, or p1 lies
// strictly inside the interior. Only p1 is containment-tested; the
// validator feeds in one short segment at a time, so p1 is always a
// previously accepted point and a stroke cannot appear inside a
// rectangle without first crossing an edge.
func SegmentIntersectsRect(p1, p2 core.Point, r core.Rect) bool {
	tl := core.Point{X: r.X, Y: r.Y}
	tr := core.Point{X: r.X + r.W, Y: r.Y}
	bl := core.Point{X: r.X, Y: r.Y + r.H}
	br := core.Point{X: r.X + r.W, Y: r.Y + r.H}

	if SegmentsIntersect(p1, p2, tl, tr) ||
		SegmentsIntersect(p1, p2, tr, br) ||
		SegmentsIntersect(p1, p2, br, bl) ||
		SegmentsIntersect(p1, p2, bl, tl) {
		return true
	}
	return r.ContainsStrict(p1)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b core.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
