package invaders

// Direction is the formation's horizontal sweep direction.
type Direction int

const (
	SweepRight Direction = iota
	SweepLeft
)

func (d Direction) String() string {
	if d == SweepLeft {
		return "left"
	}
	return "right"
}

// reverse returns the opposite direction.
func (d Direction) reverse() Direction {
	if d == SweepLeft {
		return SweepRight
	}
	return SweepLeft
}

// sign is +1 for right, -1 for left.
func (d Direction) sign() float64 {
	if d == SweepLeft {
		return -1
	}
	return 1
}

// Formation is the fixed rows x columns grid of alien slots. Row 0 is the row
// nearest the ship. A slot is either occupied or permanently empty: aliens are
// removed when shot and never come back.
type Formation struct {
	cells     [][]*Alien // [row][col]; nil marks an empty slot
	gameWidth float64
	margin    float64
	width     float64 // alien width
}

func newFormation(cfg Config) *Formation {
	cells := make([][]*Alien, cfg.AlienRows)
	for r := range cells {
		cells[r] = make([]*Alien, cfg.AliensInRow)
		for c := range cells[r] {
			cells[r][c] = newAlien(cfg, r, c)
		}
	}
	return &Formation{
		cells:     cells,
		gameWidth: cfg.GameWidth,
		margin:    cfg.AlienHSep,
		width:     cfg.AlienWidth,
	}
}

// Rows returns the number of grid rows.
func (f *Formation) Rows() int { return len(f.cells) }

// Cols returns the number of grid columns.
func (f *Formation) Cols() int {
	if len(f.cells) == 0 {
		return 0
	}
	return len(f.cells[0])
}

// At returns the alien in the given slot, or nil if the slot is empty or out of range.
func (f *Formation) At(row, col int) *Alien {
	if row < 0 || row >= f.Rows() || col < 0 || col >= f.Cols() {
		return nil
	}
	return f.cells[row][col]
}

// Remaining returns how many aliens are still present.
func (f *Formation) Remaining() int {
	n := 0
	f.each(func(_, _ int, _ *Alien) { n++ })
	return n
}

// Empty reports whether every slot is empty.
func (f *Formation) Empty() bool {
	for _, row := range f.cells {
		for _, a := range row {
			if a != nil {
				return false
			}
		}
	}
	return true
}

// each calls fn for every present alien in row-major order.
func (f *Formation) each(fn func(row, col int, a *Alien)) {
	for r, row := range f.cells {
		for c, a := range row {
			if a != nil {
				fn(r, c, a)
			}
		}
	}
}

// remove empties a slot. Removing an empty slot is a no-op.
func (f *Formation) remove(row, col int) {
	if f.At(row, col) == nil {
		return
	}
	f.cells[row][col] = nil
}

// columnEmpty reports whether no alien remains in col.
func (f *Formation) columnEmpty(col int) bool {
	return f.lowestInColumn(col) == nil
}

// lowestInColumn returns the alien nearest the ship in col, or nil.
func (f *Formation) lowestInColumn(col int) *Alien {
	for r := 0; r < f.Rows(); r++ {
		if a := f.At(r, col); a != nil {
			return a
		}
	}
	return nil
}

// leftmost finds the present alien closest to the left edge. Rows are scanned
// in index order and each non-empty row contributes its first present column;
// the smallest column wins and ties go to the lower row index.
func (f *Formation) leftmost() *Alien {
	bestRow, bestCol := -1, 0
	for r, row := range f.cells {
		for c, a := range row {
			if a == nil {
				continue
			}
			if bestRow < 0 || c < bestCol {
				bestRow, bestCol = r, c
			}
			break
		}
	}
	if bestRow < 0 {
		return nil
	}
	return f.cells[bestRow][bestCol]
}

// rightmost is the mirror of leftmost: each row contributes its last present
// column, the largest wins, ties go to the lower row index.
func (f *Formation) rightmost() *Alien {
	bestRow, bestCol := -1, 0
	for r, row := range f.cells {
		for c := len(row) - 1; c >= 0; c-- {
			if row[c] == nil {
				continue
			}
			if bestRow < 0 || c > bestCol {
				bestRow, bestCol = r, c
			}
			break
		}
	}
	if bestRow < 0 {
		return nil
	}
	return f.cells[bestRow][bestCol]
}

// AtLeft reports whether the leftmost alien is on the left margin.
func (f *Formation) AtLeft() bool {
	a := f.leftmost()
	return a != nil && a.AtLeftEdge()
}

// AtRight reports whether the rightmost alien is on the right margin.
func (f *Formation) AtRight() bool {
	a := f.rightmost()
	return a != nil && a.AtRightEdge()
}

// NearLeft reports whether the leftmost alien is within one step of the left margin.
func (f *Formation) NearLeft() bool {
	a := f.leftmost()
	return a != nil && a.NearLeftEdge()
}

// NearRight reports whether the rightmost alien is within one step of the right margin.
func (f *Formation) NearRight() bool {
	a := f.rightmost()
	return a != nil && a.NearRightEdge()
}

// atEdge reports whether the formation touches the edge it is sweeping toward.
func (f *Formation) atEdge(d Direction) bool {
	if d == SweepLeft {
		return f.AtLeft()
	}
	return f.AtRight()
}

// shift moves every present alien horizontally.
func (f *Formation) shift(dx float64) {
	f.each(func(_, _ int, a *Alien) { a.MoveHorizontal(dx) })
}

// descend moves every present alien down by dy.
func (f *Formation) descend(dy float64) {
	f.each(func(_, _ int, a *Alien) { a.MoveVertical(-dy) })
}

// snapLeft shifts the formation so the leftmost alien sits exactly on the margin.
// It returns the distance moved.
func (f *Formation) snapLeft() float64 {
	a := f.leftmost()
	if a == nil {
		return 0
	}
	dx := f.margin - a.Left
	f.shift(dx)
	return dx
}

// snapRight shifts the formation so the rightmost alien sits exactly on the margin.
// It returns the distance moved.
func (f *Formation) snapRight() float64 {
	a := f.rightmost()
	if a == nil {
		return 0
	}
	dx := f.gameWidth - f.margin - f.width - a.Left
	f.shift(dx)
	return dx
}

// lowestEdge returns the y of the lowest alien edge, and false when empty.
func (f *Formation) lowestEdge() (float64, bool) {
	low, found := 0.0, false
	f.each(func(_, _ int, a *Alien) {
		if b := a.Bottom(); !found || b < low {
			low, found = b, true
		}
	})
	return low, found
}
