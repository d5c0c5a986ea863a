package invaders

// Ship is the player's cannon. It is anchored by its bottom edge and
// horizontal centre and only ever moves horizontally.
type Ship struct {
	X      float64 // horizontal centre
	Bottom float64
	Width  float64
	Height float64
	Frame  int // destruction sprite frame, 0 while intact

	gameWidth float64
}

func newShip(cfg Config) *Ship {
	return &Ship{
		X:         cfg.GameWidth / 2,
		Bottom:    cfg.ShipBottom,
		Width:     cfg.ShipWidth,
		Height:    cfg.ShipHeight,
		gameWidth: cfg.GameWidth,
	}
}

// Bounds returns the ship's rectangle.
func (s *Ship) Bounds() Rect {
	return Rect{Left: s.X - s.Width/2, Bottom: s.Bottom, Width: s.Width, Height: s.Height}
}

// MoveHorizontal shifts the ship right by amount (left when negative).
// Callers are responsible for keeping it inside the playfield.
func (s *Ship) MoveHorizontal(amount float64) {
	s.X += amount
}

// AtLeftEdge reports whether the ship touches or passes the left boundary.
func (s *Ship) AtLeftEdge() bool {
	return s.X <= s.Width/2
}

// AtRightEdge reports whether the ship touches or passes the right boundary.
func (s *Ship) AtRightEdge() bool {
	return s.X >= s.gameWidth-s.Width/2
}

// ClampToEdge snaps the ship exactly onto whichever boundary it has reached.
func (s *Ship) ClampToEdge() {
	if s.AtLeftEdge() {
		s.X = s.Width / 2
	}
	if s.AtRightEdge() {
		s.X = s.gameWidth - s.Width/2
	}
}

// CollidesWith reports whether an alien bolt has a corner inside the ship.
// Player bolts never hit the ship.
func (s *Ship) CollidesWith(b *Bolt) bool {
	if b.IsPlayerOwned() {
		return false
	}
	return s.Bounds().containsAnyCorner(b.Rect)
}

// muzzle is where a player bolt's bottom-left corner starts.
func (s *Ship) muzzle(boltWidth float64) Point {
	return Point{X: s.X - boltWidth/2, Y: s.Bottom + s.Height}
}
