// Package terminal runs the interactive tcell shell around a game
// session. It owns the screen, translates raw mouse and key events
// into the engine's canonical pointer events, and repaints on a fixed
// tick. The engine never sees tcell types.
package terminal

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"tangle/board"
	"tangle/core"
	"tangle/game"
	"tangle/layout"
	"tangle/render"
	"tangle/sound"
)

const frameInterval = 16 * time.Millisecond

// Shell wires a session to a tcell screen.
type Shell struct {
	cfg    game.Config
	seed   int64
	sounds *sound.Player

	screen  tcell.Screen
	session *game.Session
	snap    board.Snapshot
	frame   *render.Frame

	// dragging tracks whether Button1 was held on the previous mouse
	// event, which is what distinguishes down, move and up.
	dragging bool

	// won is set by the session's deferred win callback, which runs
	// on the timer goroutine.
	won atomic.Bool
}

// NewShell creates a shell. The screen is not touched until Run.
func NewShell(cfg game.Config, seed int64, sounds *sound.Player) *Shell {
	return &Shell{cfg: cfg, seed: seed, sounds: sounds}
}

// Run initializes the terminal and processes events until the player
// quits. Each input event is handled to completion before the next.
func (s *Shell) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.Clear()
	s.screen = screen
	s.relayout()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !s.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			s.draw()
		}
	}
}

// relayout regenerates the board for the current screen size and
// starts a fresh session over it. Strokes drawn against the old
// geometry are meaningless, so a resize is always a restart.
func (s *Shell) relayout() {
	w, h := s.screen.Size()
	// The footer row stays out of the playfield.
	s.snap = layout.Generate(float64(w-1), float64(h-2), s.seed)
	s.frame = render.NewFrame(w, h)

	if s.session == nil {
		s.session = game.NewSession(s.cfg, s.snap)
		s.session.SetOnWin(func() {
			s.won.Store(true)
			s.sounds.Win()
		})
	} else {
		s.session.SetBoard(s.snap)
		s.session.Reset()
	}
	s.won.Store(false)
	s.dragging = false
}

func (s *Shell) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyEscape:
			if s.session.Drawing() {
				s.session.PointerCancel()
				s.dragging = false
				return true
			}
			return false
		case ev.Rune() == 'r':
			s.seed++
			s.relayout()
		}
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		s.screen.Sync()
		s.relayout()
	}
	return true
}

// handleMouse translates tcell mouse state into pointer transitions.
func (s *Shell) handleMouse(ev *tcell.EventMouse) {
	if s.won.Load() {
		// The board is frozen until restart.
		return
	}

	x, y := ev.Position()
	p := core.Point{X: float64(x), Y: float64(y)}
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !s.dragging:
		s.dragging = true
		s.session.PointerDown(p)
	case pressed && s.dragging:
		s.session.PointerMove(p)
	case !pressed && s.dragging:
		s.dragging = false
		before := s.session.CommittedCount()
		s.session.PointerUp(p)
		if s.session.CommittedCount() > before {
			s.sounds.Commit()
		}
	}
}

func (s *Shell) draw() {
	render.Draw(s.frame, s.snap, s.session.RenderState(), s.won.Load())

	w, h := s.frame.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := s.frame.At(x, y)
			style := tcell.StyleDefault.Foreground(cell.Color)
			s.screen.SetContent(x, y, cell.Ch, nil, style)
		}
	}
	s.drawFooter(w, h)
	s.screen.Show()
}

func (s *Shell) drawFooter(w, h int) {
	msg := " drag matching boxes together · r: restart · esc: cancel stroke · q: quit "
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, ch := range msg {
		if i >= w {
			break
		}
		s.screen.SetContent(i, h-1, ch, nil, style)
	}
}
