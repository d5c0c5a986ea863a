package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

func TestSnapshotKeys_Bindings(t *testing.T) {
	ks := snapshotKeys([]ebiten.Key{ebiten.KeyA, ebiten.KeySpace, ebiten.KeyS})
	if !ks.KeyDown(invaders.KeyLeft) || !ks.KeyDown(invaders.KeyFire) {
		t.Fatal("A and Space should map to left and fire")
	}
	if ks.KeyDown(invaders.KeyRight) {
		t.Fatal("right is not held")
	}
	if ks.KeyCount() != 3 {
		t.Fatalf("expected 3 physical keys, got %d", ks.KeyCount())
	}
}

func TestSnapshotKeys_Empty(t *testing.T) {
	ks := snapshotKeys(nil)
	if ks.KeyCount() != 0 || ks.KeyDown(invaders.KeyFire) {
		t.Fatal("no keys held")
	}
}
