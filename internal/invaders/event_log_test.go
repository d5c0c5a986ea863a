package invaders

import (
	"strings"
	"testing"
)

func TestEventLog_VerboseGate(t *testing.T) {
	quiet := NewEventLog(false)
	quiet.AddVerbose(1, CatFormation, "step", "right", 8)
	quiet.Add(1, CatFormation, "descend", "now sweeping left", 355)
	if quiet.Count("", "") != 1 {
		t.Fatalf("quiet log should drop verbose events, got %d entries", quiet.Count("", ""))
	}

	loud := NewEventLog(true)
	loud.AddVerbose(1, CatFormation, "step", "right", 8)
	if loud.Count(CatFormation, "step") != 1 {
		t.Fatal("verbose log should keep verbose events")
	}
}

func TestEventLog_Queries(t *testing.T) {
	l := NewEventLog(false)
	l.Add(3, CatBolt, "player_fire", "from x=398.0", 398)
	l.Add(9, CatAlien, "destroyed", "r0c3 (variant 0)", 59)
	l.Add(12, CatBolt, "player_fire", "from x=420.0", 420)

	if l.Count(CatBolt, "") != 2 {
		t.Fatal("expected two bolt events")
	}
	if l.FirstTick(CatAlien, "destroyed") != 9 {
		t.Fatal("expected first destroyed at tick 9")
	}
	if l.FirstTick(CatShip, "hit") != -1 {
		t.Fatal("missing events should report -1")
	}
	last, ok := l.LastOf(CatBolt, "player_fire")
	if !ok || last.NumVal != 420 {
		t.Fatalf("expected last fire at 420, got %+v", last)
	}
	if !l.HasEntry(CatAlien, "", "r0c3") || l.HasEntry(CatAlien, "", "r1c3") {
		t.Fatal("HasEntry substring match failed")
	}
}

func TestEventLog_Format(t *testing.T) {
	l := NewEventLog(false)
	l.Add(42, CatAlien, "destroyed", "r0c3 (variant 0)", 0)
	got := l.Format()
	want := "[T=0042] alien     destroyed        r0c3 (variant 0)\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatal("every line should end with a newline")
	}
}
