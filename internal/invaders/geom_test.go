package invaders

import "testing"

func TestRectContains_InclusiveBounds(t *testing.T) {
	r := Rect{Left: 10, Bottom: 20, Width: 30, Height: 40}
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{10, 20}, true},
		{Point{40, 60}, true},
		{Point{25, 40}, true},
		{Point{9.999, 40}, false},
		{Point{25, 60.001}, false},
		{Point{41, 20}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Fatalf("Contains(%v): expected %v, got %v", c.p, c.want, got)
		}
	}
}

func TestRectCorners_Order(t *testing.T) {
	r := Rect{Left: 1, Bottom: 2, Width: 3, Height: 4}
	want := [4]Point{{1, 2}, {1, 6}, {4, 2}, {4, 6}}
	if got := r.Corners(); got != want {
		t.Fatalf("expected corners %v, got %v", want, got)
	}
}

func TestRectContainsAnyCorner(t *testing.T) {
	target := Rect{Left: 0, Bottom: 0, Width: 10, Height: 10}
	touching := Rect{Left: 10, Bottom: 10, Width: 4, Height: 4}
	if !target.containsAnyCorner(touching) {
		t.Fatal("a shared corner should count as contained")
	}
	apart := Rect{Left: 11, Bottom: 0, Width: 4, Height: 4}
	if target.containsAnyCorner(apart) {
		t.Fatal("disjoint rectangle should not be contained")
	}
	// A wide rectangle straddling the target has no corner inside it.
	straddle := Rect{Left: -5, Bottom: 4, Width: 20, Height: 2}
	if target.containsAnyCorner(straddle) {
		t.Fatal("corner test should ignore edges crossing without corners inside")
	}
}
