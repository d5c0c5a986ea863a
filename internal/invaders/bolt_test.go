package invaders

import "testing"

func TestBolt_OwnershipFromVelocity(t *testing.T) {
	if !newBolt(0, 0, 4, 16, 10).IsPlayerOwned() {
		t.Fatal("positive velocity should be player owned")
	}
	if newBolt(0, 0, 4, 16, -10).IsPlayerOwned() {
		t.Fatal("negative velocity should be alien owned")
	}
}

func TestBolt_ZeroVelocityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero velocity")
		}
	}()
	newBolt(0, 0, 4, 16, 0)
}

func TestBolt_StepUsesOwnVelocity(t *testing.T) {
	up := newBolt(10, 100, 4, 16, 10)
	down := newBolt(10, 100, 4, 16, -7)
	up.step()
	down.step()
	if up.Bottom != 110 || down.Bottom != 93 {
		t.Fatalf("expected bottoms 110 and 93, got %.0f and %.0f", up.Bottom, down.Bottom)
	}
	if up.Velocity() != 10 || down.Velocity() != -7 {
		t.Fatal("velocity must not change when stepping")
	}
}

func TestBolt_Outside(t *testing.T) {
	const h = 700
	cases := []struct {
		bottom float64
		want   bool
	}{
		{700, false},
		{701, true},
		{-16, false},
		{-17, true},
		{300, false},
	}
	for _, c := range cases {
		b := newBolt(0, c.bottom, 4, 16, 10)
		if got := b.outside(h); got != c.want {
			t.Fatalf("bottom %.0f: expected outside=%v, got %v", c.bottom, c.want, got)
		}
	}
}
