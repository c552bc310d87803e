package game

import "time"

// checkWin re-evaluates the completion condition after a commit: the
// puzzle is complete when every distinct target category has a
// committed path. Completion schedules the one-shot win notification;
// the timer captures the current generation so a Reset that lands
// before it fires turns the notification into a no-op.
//
// Callers must hold s.mu.
func (s *Session) checkWin() {
	if s.complete {
		return
	}
	want := s.snap.CategoryCount()
	if want == 0 || len(s.committed) != want {
		return
	}

	s.complete = true
	if s.onWin == nil {
		return
	}

	gen := s.gen
	time.AfterFunc(s.cfg.WinDelay, func() {
		s.mu.Lock()
		stale := s.gen != gen
		fn := s.onWin
		s.mu.Unlock()

		// The callback runs outside the lock so it may call back
		// into the session.
		if !stale && fn != nil {
			fn()
		}
	})
}
