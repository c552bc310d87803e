// Package layout places the puzzle's targets for a given canvas size.
// The engine treats target placement as external input; this package is
// the collaborator that supplies it.
package layout

import (
	"math/rand"
	"strings"

	"tangle/board"
	"tangle/core"
)

// Generate lays out two targets per category: a column along the left
// edge in fixed category order, and a column along the right whose
// vertical order is shuffled by seed so the connecting strokes have to
// weave. Box sizes scale with the canvas.
func Generate(w, h float64, seed int64) board.Snapshot {
	cats := core.Categories()
	n := float64(len(cats))

	boxW := w * 0.16
	if boxW < 3 {
		boxW = 3
	}
	boxH := h * 0.2
	if boxH > h/n-1 {
		boxH = h/n - 1
	}
	if boxH < 2 {
		boxH = 2
	}
	margin := w * 0.04

	// Vertical slot centers, one per category on each side.
	slotY := func(i int) float64 {
		return h*(2*float64(i)+1)/(2*n) - boxH/2
	}

	rng := rand.New(rand.NewSource(seed))
	rightOrder := rng.Perm(len(cats))

	targets := make([]core.Target, 0, 2*len(cats))
	for i, cat := range cats {
		targets = append(targets, core.Target{
			ID:       strings.ToLower(cat.String()) + "-l",
			Category: cat,
			Bounds:   core.Rect{X: margin, Y: slotY(i), W: boxW, H: boxH},
		})
	}
	for slot, ci := range rightOrder {
		cat := cats[ci]
		targets = append(targets, core.Target{
			ID:       strings.ToLower(cat.String()) + "-r",
			Category: cat,
			Bounds:   core.Rect{X: w - margin - boxW, Y: slotY(slot), W: boxW, H: boxH},
		})
	}

	return board.NewSnapshot(core.Rect{W: w, H: h}, targets)
}
