package game

import (
	"testing"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

func TestEventPanel_SyncCopiesOnlyNewEntries(t *testing.T) {
	log := invaders.NewEventLog(false)
	p := newEventPanel()
	log.Add(1, invaders.CatBolt, "player_fire", "a", 0)
	log.Add(2, invaders.CatBolt, "player_fire", "b", 0)
	p.sync(log)
	p.sync(log)
	if got := len(p.recent()); got != 2 {
		t.Fatalf("expected 2 entries after repeated sync, got %d", got)
	}
	log.Add(3, invaders.CatAlien, "destroyed", "c", 0)
	p.sync(log)
	r := p.recent()
	if len(r) != 3 || r[2].Value != "c" {
		t.Fatalf("expected newest entry last, got %+v", r)
	}
}

func TestEventPanel_RingKeepsNewest(t *testing.T) {
	p := newEventPanel()
	for i := 0; i < panelMaxEntries+10; i++ {
		p.add(invaders.Event{Tick: i})
	}
	r := p.recent()
	if len(r) != panelMaxEntries {
		t.Fatalf("expected %d entries, got %d", panelMaxEntries, len(r))
	}
	if r[0].Tick != 10 || r[len(r)-1].Tick != panelMaxEntries+9 {
		t.Fatalf("expected ticks 10..%d, got %d..%d", panelMaxEntries+9, r[0].Tick, r[len(r)-1].Tick)
	}
}
