// Package tty plays a wave in a terminal through tcell.
//
// Terminals deliver key presses and auto-repeats but no releases, so held
// keys are emulated: a key counts as held for a short window after each of
// its events.
package tty

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

// frameTime is the fixed step between session updates.
const frameTime = time.Second / 60

// Terminal drives a session from a tcell screen.
type Terminal struct {
	screen  tcell.Screen
	session *invaders.Session
	holds   *holdTracker
}

// New returns a Terminal playing session on screen. The screen must
// already be initialised.
func New(screen tcell.Screen, session *invaders.Session) *Terminal {
	return &Terminal{screen: screen, session: session, holds: newHoldTracker()}
}

// HandleEvent records a terminal event. It reports whether the player asked to quit.
func (t *Terminal) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return true
			}
		}
		t.holds.record(ev, now)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

// Tick advances the session one frame using the keys held at now.
func (t *Terminal) Tick(now time.Time, dt float64) error {
	return t.session.Step(t.holds.snapshot(now), dt)
}

// Draw renders the playfield, the status line and any session message.
func (t *Terminal) Draw() {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	if cols < 1 || rows < 3 {
		t.screen.Show()
		return
	}
	cfg := t.session.Config()
	r := &cellRenderer{
		screen: t.screen,
		cols:   cols,
		rows:   rows - 1,
		width:  cfg.GameWidth,
		height: cfg.GameHeight,
	}
	if w := t.session.Wave(); w != nil {
		r.exploding = w.Exploding()
	}
	t.session.Draw(r)

	drawText(t.screen, 0, rows-1, t.status(), textStyle)
	if msg := t.session.Message(); msg != "" {
		x := (cols - len(msg)) / 2
		if x < 0 {
			x = 0
		}
		drawText(t.screen, x, (rows-1)/2, msg, textStyle.Bold(true))
	}
	t.screen.Show()
}

func (t *Terminal) status() string {
	s := t.session
	w := s.Wave()
	if w == nil {
		return fmt.Sprintf("%s | lives %d | arrows/AD move, W/up/space fire, q quit", s.State(), s.Config().Lives)
	}
	return fmt.Sprintf("%s | lives %d | aliens %d | tick %d", s.State(), w.Lives(), w.Formation().Remaining(), w.Tick())
}

// Run plays until the player quits or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()
	last := time.Now()
	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if t.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := t.Tick(now, dt); err != nil {
				return fmt.Errorf("tty: step: %w", err)
			}
			t.Draw()
		}
	}
}
