package invaders

// alienVariants is the number of distinct alien images.
const alienVariants = 3

// Alien occupies one cell of the formation. It is anchored by its top-left corner.
type Alien struct {
	Left    float64
	Top     float64
	Width   float64
	Height  float64
	Variant int // image index, changes every two rows

	gameWidth float64
	margin    float64 // side margin, the formation's horizontal separator
	walk      float64 // one formation step
}

func newAlien(cfg Config, row, col int) *Alien {
	return &Alien{
		Left:      cfg.AlienHSep + float64(col)*(cfg.AlienHSep+cfg.AlienWidth),
		Top:       cfg.gridTop() + float64(row)*(cfg.AlienVSep+cfg.AlienHeight),
		Width:     cfg.AlienWidth,
		Height:    cfg.AlienHeight,
		Variant:   (row / 2) % alienVariants,
		gameWidth: cfg.GameWidth,
		margin:    cfg.AlienHSep,
		walk:      cfg.AlienHWalk,
	}
}

// Bottom returns the y of the alien's lower edge.
func (a *Alien) Bottom() float64 { return a.Top - a.Height }

// Bounds returns the alien's rectangle.
func (a *Alien) Bounds() Rect {
	return Rect{Left: a.Left, Bottom: a.Bottom(), Width: a.Width, Height: a.Height}
}

// MoveHorizontal shifts the alien right by amount (left when negative).
func (a *Alien) MoveHorizontal(amount float64) {
	a.Left += amount
}

// MoveVertical shifts the alien up by amount (down when negative).
func (a *Alien) MoveVertical(amount float64) {
	a.Top += amount
}

// AtLeftEdge reports whether the alien sits on or past the left margin.
func (a *Alien) AtLeftEdge() bool {
	return a.Left <= a.margin
}

// AtRightEdge reports whether the alien sits on or past the right margin.
func (a *Alien) AtRightEdge() bool {
	return a.Left >= a.gameWidth-a.margin-a.Width
}

// NearLeftEdge reports whether one more step left would cross the margin
// while the alien is not yet on it.
func (a *Alien) NearLeftEdge() bool {
	return a.Left-a.walk < a.margin && !a.AtLeftEdge()
}

// NearRightEdge reports whether one more step right would cross the margin
// while the alien is not yet on it.
func (a *Alien) NearRightEdge() bool {
	return a.Left+a.Width+a.walk > a.gameWidth-a.margin && !a.AtRightEdge()
}

// CollidesWith reports whether a player bolt has a corner inside the alien.
// Alien bolts pass through other aliens.
func (a *Alien) CollidesWith(b *Bolt) bool {
	if !b.IsPlayerOwned() {
		return false
	}
	return a.Bounds().containsAnyCorner(b.Rect)
}
