package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

// holdDuration is how long a key counts as held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const holdDuration = 120 * time.Millisecond

// holdTracker turns terminal key events into held-key snapshots.
type holdTracker struct {
	last    map[invaders.Key]time.Time
	lastAny time.Time
}

func newHoldTracker() *holdTracker {
	return &holdTracker{last: make(map[invaders.Key]time.Time)}
}

// logicalKey maps a key event onto a wave key.
func logicalKey(ev *tcell.EventKey) (invaders.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return invaders.KeyLeft, true
	case tcell.KeyRight:
		return invaders.KeyRight, true
	case tcell.KeyUp:
		return invaders.KeyFire, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return invaders.KeyLeft, true
		case 'd', 'D':
			return invaders.KeyRight, true
		case 'w', 'W', ' ':
			return invaders.KeyFire, true
		}
	}
	return 0, false
}

// record notes a key event at now.
func (h *holdTracker) record(ev *tcell.EventKey, now time.Time) {
	h.lastAny = now
	if k, ok := logicalKey(ev); ok {
		h.last[k] = now
	}
}

// snapshot returns the keys still considered held at now.
func (h *holdTracker) snapshot(now time.Time) invaders.KeySet {
	ks := invaders.KeySet{Held: make(map[invaders.Key]bool, len(h.last))}
	for k, t := range h.last {
		if now.Sub(t) < holdDuration {
			ks.Held[k] = true
		}
	}
	if len(ks.Held) == 0 && now.Sub(h.lastAny) < holdDuration {
		ks.Extra = 1
	}
	return ks
}
