package geometry

import (
	"math"
	"testing"

	"tangle/core"
)

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a0, a1, b0, b1 core.Point
		want           bool
	}{
		{
			name: "perpendicular cross",
			a0:   core.Point{X: 0, Y: 0}, a1: core.Point{X: 10, Y: 10},
			b0: core.Point{X: 0, Y: 10}, b1: core.Point{X: 10, Y: 0},
			want: true,
		},
		{
			name: "diagonal cross at center",
			a0:   core.Point{X: -5, Y: 0}, a1: core.Point{X: 5, Y: 0},
			b0: core.Point{X: 0, Y: -5}, b1: core.Point{X: 0, Y: 5},
			want: true,
		},
		{
			name: "disjoint parallel horizontals",
			a0:   core.Point{X: 0, Y: 0}, a1: core.Point{X: 10, Y: 0},
			b0: core.Point{X: 0, Y: 5}, b1: core.Point{X: 10, Y: 5},
			want: false,
		},
		{
			name: "collinear overlapping",
			a0:   core.Point{X: 0, Y: 0}, a1: core.Point{X: 10, Y: 0},
			b0: core.Point{X: 5, Y: 0}, b1: core.Point{X: 15, Y: 0},
			want: false,
		},
		{
			name: "lines cross but segments too short",
			a0:   core.Point{X: 0, Y: 0}, a1: core.Point{X: 1, Y: 1},
			b0: core.Point{X: 10, Y: 0}, b1: core.Point{X: 0, Y: 10},
			want: false,
		},
		{
			name: "shared endpoint",
			a0:   core.Point{X: 0, Y: 0}, a1: core.Point{X: 5, Y: 5},
			b0: core.Point{X: 5, Y: 5}, b1: core.Point{X: 10, Y: 0},
			want: true,
		},
		{
			name: "touch at segment interior",
			a0:   core.Point{X: 0, Y: 0}, a1: core.Point{X: 10, Y: 0},
			b0: core.Point{X: 5, Y: 0}, b1: core.Point{X: 5, Y: 5},
			want: true,
		},
		{
			name: "degenerate first segment",
			a0:   core.Point{X: 3, Y: 3}, a1: core.Point{X: 3, Y: 3},
			b0: core.Point{X: 0, Y: 0}, b1: core.Point{X: 10, Y: 10},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.a0, tt.a1, tt.b0, tt.b1); got != tt.want {
				t.Errorf("SegmentsIntersect = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric in the two segments.
			if got := SegmentsIntersect(tt.b0, tt.b1, tt.a0, tt.a1); got != tt.want {
				t.Errorf("SegmentsIntersect (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSegmentsIntersectParametricCheck cross-checks the predicate
// against a direct evaluation of the parametric solution for a grid of
// non-parallel segment pairs.
func TestSegmentsIntersectParametricCheck(t *testing.T) {
	segs := []struct{ p0, p1 core.Point }{
		{core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 4}},
		{core.Point{X: 2, Y: 8}, core.Point{X: 9, Y: 1}},
		{core.Point{X: -3, Y: 5}, core.Point{X: 6, Y: -2}},
		{core.Point{X: 1, Y: 1}, core.Point{X: 4, Y: 9}},
	}

	for i, a := range segs {
		for j, b := range segs {
			if i == j {
				continue
			}
			rx, ry := a.p1.X-a.p0.X, a.p1.Y-a.p0.Y
			sx, sy := b.p1.X-b.p0.X, b.p1.Y-b.p0.Y
			det := rx*sy - ry*sx
			if det == 0 {
				continue
			}
			qx, qy := b.p0.X-a.p0.X, b.p0.Y-a.p0.Y
			lambda := (qx*sy - qy*sx) / det
			gamma := (qx*ry - qy*rx) / det
			want := lambda >= 0 && lambda <= 1 && gamma >= 0 && gamma <= 1

			if got := SegmentsIntersect(a.p0, a.p1, b.p0, b.p1); got != want {
				t.Errorf("segments %d/%d: got %v, parametric check says %v", i, j, got, want)
			}
		}
	}
}

func TestSegmentIntersectsRect(t *testing.T) {
	r := core.Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name   string
		p1, p2 core.Point
		want   bool
	}{
		{"passes through", core.Point{X: 0, Y: 20}, core.Point{X: 40, Y: 20}, true},
		{"clips a corner", core.Point{X: 5, Y: 15}, core.Point{X: 15, Y: 5}, true},
		{"ends on an edge", core.Point{X: 0, Y: 20}, core.Point{X: 10, Y: 20}, true},
		{"entirely left of rect", core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 40}, false},
		{"entirely above rect", core.Point{X: 0, Y: 5}, core.Point{X: 40, Y: 5}, false},
		{"starts inside", core.Point{X: 20, Y: 20}, core.Point{X: 22, Y: 22}, true},
		{"starts inside exits right", core.Point{X: 25, Y: 15}, core.Point{X: 50, Y: 15}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentIntersectsRect(tt.p1, tt.p2, r); got != tt.want {
				t.Errorf("SegmentIntersectsRect = %v, want %v", got, tt.want)
			}
		})
	}
}

// A zero-length segment at an interior point still registers as
// intersecting: the edge tests all degenerate to false, and the
// containment test on p1 catches it.
func TestSegmentIntersectsRectDegenerate(t *testing.T) {
	r := core.Rect{X: 0, Y: 0, W: 10, H: 10}
	inside := core.Point{X: 5, Y: 5}
	if !SegmentIntersectsRect(inside, inside, r) {
		t.Error("degenerate segment at interior point should intersect")
	}
	outside := core.Point{X: 15, Y: 15}
	if SegmentIntersectsRect(outside, outside, r) {
		t.Error("degenerate segment outside should not intersect")
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		a, b core.Point
		want float64
	}{
		{core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 4}, 5},
		{core.Point{X: 1, Y: 1}, core.Point{X: 1, Y: 1}, 0},
		{core.Point{X: -2, Y: 0}, core.Point{X: 2, Y: 0}, 4},
	}

	for _, tt := range tests {
		if got := Dist(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Dist(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
