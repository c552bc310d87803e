// Package board holds the immutable target snapshot the engine
// hit-tests against. Layout changes replace the snapshot wholesale, so
// readers never observe a partially updated target list.
package board

import "tangle/core"

// Snapshot is a read-only view of the puzzle board: the canvas bounds
// plus every interactive target in layout order.
type Snapshot struct {
	bounds  core.Rect
	targets []core.Target
}

// NewSnapshot builds a snapshot from the canvas bounds and target list.
// The targets are copied, so the caller's slice stays independent.
func NewSnapshot(bounds core.Rect, targets []core.Target) Snapshot {
	ts := make([]core.Target, len(targets))
	copy(ts, targets)
	return Snapshot{bounds: bounds, targets: ts}
}

// Bounds returns the canvas rectangle.
func (s Snapshot) Bounds() core.Rect {
	return s.bounds
}

// Targets returns the targets in layout order. The returned slice is
// shared; callers must not modify it.
func (s Snapshot) Targets() []core.Target {
	return s.targets
}

// TargetAt returns the first target whose bounds contain p, inclusive
// of edges. The second return is false when no target is hit.
func (s Snapshot) TargetAt(p core.Point) (core.Target, bool) {
	for _, t := range s.targets {
		if t.Bounds.Contains(p) {
			return t, true
		}
	}
	return core.Target{}, false
}

// CategoryCount returns the number of distinct target categories on the
// board. A finished puzzle has exactly this many committed paths.
func (s Snapshot) CategoryCount() int {
	seen := make(map[core.Category]bool)
	for _, t := range s.targets {
		seen[t.Category] = true
	}
	return len(seen)
}
