package invaders

import "testing"

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.AlienRows = 3
	cfg.AliensInRow = 4
	return cfg
}

func TestFormation_FullAtStart(t *testing.T) {
	f := newFormation(DefaultConfig())
	if f.Rows() != 5 || f.Cols() != 12 || f.Remaining() != 60 {
		t.Fatalf("expected 5x12 full grid, got %dx%d with %d aliens", f.Rows(), f.Cols(), f.Remaining())
	}
	if f.Empty() {
		t.Fatal("new formation should not be empty")
	}
	if f.At(5, 0) != nil || f.At(0, -1) != nil {
		t.Fatal("out of range slots should read as empty")
	}
}

func TestFormation_ExtremalTiesGoToLowestRow(t *testing.T) {
	f := newFormation(smallConfig())
	if f.leftmost() != f.At(0, 0) {
		t.Fatal("full grid: leftmost should be row 0 col 0")
	}
	if f.rightmost() != f.At(0, 3) {
		t.Fatal("full grid: rightmost should be row 0 col 3")
	}

	// Empty column 0 in row 0 only: row 1 now holds the leftmost alien.
	f.remove(0, 0)
	if f.leftmost() != f.At(1, 0) {
		t.Fatal("leftmost should move to row 1 col 0")
	}
	f.remove(1, 0)
	f.remove(2, 0)
	if f.leftmost() != f.At(0, 1) {
		t.Fatal("with column 0 gone, leftmost should be row 0 col 1")
	}
}

func TestFormation_RightmostSkipsEmptyTrailingSlots(t *testing.T) {
	f := newFormation(smallConfig())
	f.remove(0, 3)
	f.remove(0, 2)
	f.remove(1, 3)
	if f.rightmost() != f.At(2, 3) {
		t.Fatal("only row 2 still holds column 3")
	}
	f.remove(2, 3)
	if f.rightmost() != f.At(1, 2) {
		t.Fatal("column 2 first appears in row 1")
	}
}

func TestFormation_LowestInColumn(t *testing.T) {
	f := newFormation(smallConfig())
	f.remove(0, 1)
	if f.lowestInColumn(1) != f.At(1, 1) {
		t.Fatal("expected row 1 to be lowest in column 1")
	}
	f.remove(1, 1)
	f.remove(2, 1)
	if !f.columnEmpty(1) {
		t.Fatal("column 1 should be empty")
	}
}

func TestFormation_EmptyHasNoExtremes(t *testing.T) {
	f := newFormation(smallConfig())
	f.each(func(r, c int, _ *Alien) { f.remove(r, c) })
	if !f.Empty() || f.Remaining() != 0 {
		t.Fatal("every slot should be empty")
	}
	if f.AtLeft() || f.AtRight() || f.NearLeft() || f.NearRight() {
		t.Fatal("predicates on an empty formation should be false")
	}
	if _, ok := f.lowestEdge(); ok {
		t.Fatal("empty formation has no lowest edge")
	}
	if f.snapLeft() != 0 || f.snapRight() != 0 {
		t.Fatal("snapping an empty formation should not move anything")
	}
}

func TestFormation_SnapToMargins(t *testing.T) {
	f := newFormation(smallConfig())
	f.shift(-10)
	if dx := f.snapLeft(); dx != 10 {
		t.Fatalf("expected left snap of 10, got %.1f", dx)
	}
	if f.At(0, 0).Left != 16 {
		t.Fatalf("leftmost should sit on the margin, got %.1f", f.At(0, 0).Left)
	}

	f.snapRight()
	if got := f.At(0, 3).Left; got != 751 {
		t.Fatalf("rightmost should sit on the right margin at 751, got %.1f", got)
	}
	// Spacing is preserved.
	if f.At(0, 3).Left-f.At(0, 0).Left != 3*49 {
		t.Fatal("snapping must move the whole formation together")
	}
}

func TestFormation_DescendKeepsColumns(t *testing.T) {
	f := newFormation(smallConfig())
	before := f.At(2, 1).Left
	top := f.At(2, 1).Top
	f.descend(16)
	if f.At(2, 1).Left != before || f.At(2, 1).Top != top-16 {
		t.Fatal("descend should lower by exactly the step and keep x")
	}
}

func TestDirection_Reverse(t *testing.T) {
	if SweepRight.reverse() != SweepLeft || SweepLeft.reverse() != SweepRight {
		t.Fatal("reverse should flip direction")
	}
	if SweepRight.sign() != 1 || SweepLeft.sign() != -1 {
		t.Fatal("unexpected direction signs")
	}
}
