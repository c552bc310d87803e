// Package game owns the interactive session: the single in-progress
// stroke, the committed connections, and the win check. Collaborators
// feed it canonical pointer events and pull render snapshots; nothing
// else mutates its state.
package game

import (
	"sync"
	"time"

	"tangle/board"
	"tangle/core"
	"tangle/geometry"
	"tangle/validation"
)

// Config tunes the interaction engine.
type Config struct {
	// MinSpacing is the minimum distance between recorded stroke
	// points. Move events closer than this to the last recorded
	// point are dropped as pointer jitter, before any validation.
	MinSpacing float64

	// Window is the number of trailing points exempt from the
	// self-crossing check.
	Window int

	// WinDelay is how long after the final commit the win callback
	// fires, letting the last stroke's paint settle first.
	WinDelay time.Duration
}

// DefaultConfig returns the tuning the reference puzzle uses.
func DefaultConfig() Config {
	return Config{
		MinSpacing: 5,
		Window:     validation.DefaultWindow,
		WinDelay:   300 * time.Millisecond,
	}
}

// Session is the interaction state machine. It is either idle or
// drawing exactly one path; a rejected extension cancels the whole
// stroke rather than rolling back to the last good point. A mutex
// serializes the shell goroutine against the win timer.
type Session struct {
	mu        sync.Mutex
	cfg       Config
	snap      board.Snapshot
	validator validation.Validator
	committed []core.Path
	current   *core.Path // nil when idle
	complete  bool
	gen       uint64 // bumped on Reset; pending win timers go stale
	onWin     func()
}

// NewSession creates a session over the given board snapshot.
func NewSession(cfg Config, snap board.Snapshot) *Session {
	return &Session{
		cfg:       cfg,
		snap:      snap,
		validator: validation.Validator{Window: cfg.Window},
	}
}

// SetOnWin registers the completion callback. It fires at most once per
// completed session, WinDelay after the final commit, and never after a
// Reset that precedes it.
func (s *Session) SetOnWin(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onWin = fn
}

// SetBoard replaces the target snapshot wholesale. Existing paths are
// kept; callers that regenerate the layout (e.g. on terminal resize)
// should Reset as well, since old strokes reference the old geometry.
func (s *Session) SetBoard(snap board.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}

// PointerDown starts a stroke if p hits a target. Any committed path
// already touching that target is evicted, so redrawing from a
// connected box replaces its connection. A press while a stroke is
// somehow still active discards the old stroke first, keeping the
// one-stroke invariant structural.
func (s *Session) PointerDown(p core.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	hit, ok := s.snap.TargetAt(p)
	if !ok {
		return
	}

	s.evict(hit.ID)
	s.current = &core.Path{
		Category: hit.Category,
		Points:   []core.Point{p},
		StartID:  hit.ID,
	}
}

// PointerMove extends the stroke toward p. Points within MinSpacing of
// the last recorded point are ignored without validation; a rejected
// extension discards the whole stroke and returns the session to idle.
func (s *Session) PointerMove(p core.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}
	if geometry.Dist(s.current.Last(), p) < s.cfg.MinSpacing {
		return
	}
	if !s.validator.CanExtend(s.snap, *s.current, p, s.committed) {
		s.current = nil
		return
	}
	s.current.Points = append(s.current.Points, p)
}

// PointerUp resolves the stroke. Released over a same-category target
// other than the start box, the stroke commits (evicting any path
// already touching that box) and the win condition is re-checked.
// Anywhere else it is discarded. Either way the session is idle after.
func (s *Session) PointerUp(p core.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}
	path := *s.current
	s.current = nil

	hit, ok := s.snap.TargetAt(p)
	if !ok || !s.validator.CanTerminate(path, hit) {
		return
	}

	s.evict(hit.ID)
	path.EndID = hit.ID
	s.committed = append(s.committed, path)
	s.checkWin()
}

// PointerCancel discards the in-progress stroke unconditionally.
func (s *Session) PointerCancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Reset returns the session to idle with no committed paths and
// invalidates any pending win notification.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.committed = nil
	s.complete = false
	s.gen++
}

// Drawing checks if a stroke is currently in progress.
func (s *Session) Drawing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// CommittedCount returns the number of committed paths.
func (s *Session) CommittedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.committed)
}

// Complete checks if every category has been connected. The flag is
// one-way: only Reset clears it.
func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

// RenderState returns a copy of the current paths for painting. The
// caller may hold it across frames; it never aliases live state.
func (s *Session) RenderState() core.RenderState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := core.RenderState{
		Committed: make([]core.Path, len(s.committed)),
		Complete:  s.complete,
	}
	for i, p := range s.committed {
		st.Committed[i] = p.Clone()
	}
	if s.current != nil {
		cp := s.current.Clone()
		st.InProgress = &cp
	}
	return st
}

// evict removes every committed path touching the given target. The
// no-shared-endpoint invariant means there is at most one.
func (s *Session) evict(targetID string) {
	kept := s.committed[:0]
	for _, p := range s.committed {
		if !p.Touches(targetID) {
			kept = append(kept, p)
		}
	}
	s.committed = kept
}
