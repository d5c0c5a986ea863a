package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

// bindings maps physical keys onto the wave's logical keys.
var bindings = map[ebiten.Key]invaders.Key{
	ebiten.KeyArrowLeft:  invaders.KeyLeft,
	ebiten.KeyA:          invaders.KeyLeft,
	ebiten.KeyArrowRight: invaders.KeyRight,
	ebiten.KeyD:          invaders.KeyRight,
	ebiten.KeyArrowUp:    invaders.KeyFire,
	ebiten.KeyW:          invaders.KeyFire,
	ebiten.KeySpace:      invaders.KeyFire,
}

// keySnapshot is the keyboard state for one frame.
type keySnapshot struct {
	held  map[invaders.Key]bool
	count int
}

func snapshotKeys(pressed []ebiten.Key) keySnapshot {
	ks := keySnapshot{held: make(map[invaders.Key]bool, len(pressed)), count: len(pressed)}
	for _, k := range pressed {
		if lk, ok := bindings[k]; ok {
			ks.held[lk] = true
		}
	}
	return ks
}

// KeyDown implements invaders.Input.
func (ks keySnapshot) KeyDown(k invaders.Key) bool { return ks.held[k] }

// KeyCount implements invaders.Input. Every physical key counts, bound or not.
func (ks keySnapshot) KeyCount() int { return ks.count }

// pollKeys reads the keys held this frame into buf.
func pollKeys(buf []ebiten.Key) []ebiten.Key {
	return inpututil.AppendPressedKeys(buf[:0])
}
