// Package validation decides whether an in-progress path may grow by
// one point or terminate on a target. Every outcome is a policy
// decision, not an error: invalid input rejects, it never faults.
package validation

import (
	"tangle/board"
	"tangle/core"
	"tangle/geometry"
)

// DefaultWindow is the default number of trailing points exempt from
// the self-intersection check.
const DefaultWindow = 10

// Validator applies the extension and termination rules. Window is the
// trailing-point exemption for the self-crossing check: a freehand
// stroke is naturally self-proximate near its tip, and without the
// exemption ordinary wobble would read as a crossing.
type Validator struct {
	Window int
}

// New returns a Validator with the default exemption window.
func New() Validator {
	return Validator{Window: DefaultWindow}
}

// CanExtend checks if the in-progress path may be extended from its
// last point to candidate. The checks run cheapest first; the scan over
// the path's own history runs last because it grows with path length.
func (v Validator) CanExtend(snap board.Snapshot, path core.Path, candidate core.Point, committed []core.Path) bool {
	if !snap.Bounds().Contains(candidate) {
		return false
	}

	last := path.Last()
	for _, t := range snap.Targets() {
		if t.Category == path.Category {
			// A stroke may graze boxes of its own family,
			// including the one it started from.
			continue
		}
		if geometry.SegmentIntersectsRect(last, candidate, t.Bounds) {
			return false
		}
	}

	for _, c := range committed {
		if segmentCrossesPath(last, candidate, c.Points, 0) {
			return false
		}
	}

	return !segmentCrossesPath(last, candidate, path.Points, v.Window)
}

// CanTerminate checks if releasing over target completes the path: the
// target must share the path's category and differ from its start box.
func (v Validator) CanTerminate(path core.Path, target core.Target) bool {
	return target.Category == path.Category && target.ID != path.StartID
}

// segmentCrossesPath checks the segment a-b against every segment of
// pts, skipping segments that involve the trailing ignore points.
func segmentCrossesPath(a, b core.Point, pts []core.Point, ignore int) bool {
	limit := len(pts) - 1 - ignore
	for i := 0; i < limit; i++ {
		if geometry.SegmentsIntersect(a, b, pts[i], pts[i+1]) {
			return true
		}
	}
	return false
}
