package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(invaders.DefaultConfig(), 42)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.copyText = func(string) error { return nil }
	return g
}

func TestNew_Layout(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(0, 0)
	if w != 24+800+24+panelWidth || h != 24+700+24 {
		t.Fatalf("unexpected layout %dx%d", w, h)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := invaders.DefaultConfig()
	cfg.GameWidth = 0
	if _, err := New(cfg, 1); !errors.Is(err, invaders.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestHandleInput_TogglesAreEdgeTriggered(t *testing.T) {
	g := newTestGame(t)
	held := []ebiten.Key{ebiten.KeyTab}
	g.handleInput(held)
	g.handleInput(held)
	if g.showPanel {
		t.Fatal("holding Tab should toggle the panel once")
	}
	g.handleInput(nil)
	g.handleInput(held)
	if !g.showPanel {
		t.Fatal("a second press should toggle it back")
	}
}

func TestHandleInput_CopyOnlyWhenComplete(t *testing.T) {
	cfg := invaders.DefaultConfig()
	cfg.AlienSpeed = 0.001 // march every other frame
	cfg.Lives = 0          // the first hit ends the wave
	g, err := New(cfg, 42)
	if err != nil {
		t.Fatal(err)
	}
	var copied []string
	g.copyText = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	g.handleInput([]ebiten.Key{ebiten.KeyC})
	if len(copied) != 0 {
		t.Fatal("report should not be copied before the wave is over")
	}
	g.handleInput(nil)

	if err := g.session.Step(snapshotKeys([]ebiten.Key{ebiten.KeyS}), 1.0/60); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10000 && g.session.State() != invaders.StateComplete; i++ {
		if err := g.session.Step(snapshotKeys(nil), 1.0/60); err != nil {
			t.Fatal(err)
		}
	}
	if g.session.State() != invaders.StateComplete {
		t.Fatalf("wave should be over, state %s", g.session.State())
	}

	g.handleInput([]ebiten.Key{ebiten.KeyC})
	g.handleInput([]ebiten.Key{ebiten.KeyC})
	if len(copied) != 1 {
		t.Fatalf("expected one copy per press, got %d", len(copied))
	}
	if !strings.Contains(copied[0], "state=complete") {
		t.Fatalf("copied report should describe the finished wave:\n%s", copied[0])
	}
	if g.notice != "report copied" {
		t.Fatalf("expected a notice, got %q", g.notice)
	}
}

func TestReport_ContainsSummary(t *testing.T) {
	g := newTestGame(t)
	out := g.report()
	for _, want := range []string{"seed=42", "state=inactive", "lives_left=3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestCopyReport_Failure(t *testing.T) {
	g := newTestGame(t)
	g.copyText = func(string) error { return errors.New("no clipboard") }
	g.copyReport()
	if g.notice != "copy failed" || g.noticeTicks != noticeDuration {
		t.Fatalf("expected failure notice, got %q", g.notice)
	}
}

func TestScreenRenderer_FlipsY(t *testing.T) {
	r := &screenRenderer{offX: 24, offY: 24, height: 700}
	x, y, w, h := r.rect(invaders.Rect{Left: 10, Bottom: 0, Width: 4, Height: 16})
	if x != 34 || y != 708 || w != 4 || h != 16 {
		t.Fatalf("expected (34,708,4,16), got (%.0f,%.0f,%.0f,%.0f)", x, y, w, h)
	}
}
