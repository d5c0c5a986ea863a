package invaders

import (
	"strings"
	"testing"
)

func TestSummarize_BeforeFirstWave(t *testing.T) {
	log := NewEventLog(false)
	s, err := NewSession(DefaultConfig(), &scriptedRand{}, WithSessionLog(log))
	if err != nil {
		t.Fatal(err)
	}
	sm := Summarize(s, log)
	if sm.State != StateInactive || sm.AliensLeft != 60 || sm.LivesLeft != 3 {
		t.Fatalf("unexpected summary %+v", sm)
	}
	if sm.FirstKillTick != -1 || sm.Accuracy() != 0 {
		t.Fatal("no shots, no kills")
	}
}

func TestSummarize_CountsWaveEvents(t *testing.T) {
	sim, err := NewSim(WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sim.RunUntilComplete(maxWaveTicks); err != nil {
		t.Fatal(err)
	}
	sm := Summarize(sim.Session, sim.Log)
	if sm.State != StateComplete || sm.Outcome == OutcomeNone {
		t.Fatalf("expected a finished wave, got %s/%s", sm.State, sm.Outcome)
	}
	if sm.AliensDestroyed+sm.AliensLeft != 60 {
		t.Fatalf("destroyed %d + left %d should be 60", sm.AliensDestroyed, sm.AliensLeft)
	}
	if sm.AliensDestroyed > sm.PlayerShots {
		t.Fatal("cannot destroy more aliens than shots fired")
	}
	if sm.ShipsHit != 3-sm.LivesLeft {
		t.Fatalf("hits %d should match lives lost %d", sm.ShipsHit, 3-sm.LivesLeft)
	}
	out := sm.String()
	for _, want := range []string{"outcome=" + sm.Outcome.String(), "accuracy=", "lives_left="} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
