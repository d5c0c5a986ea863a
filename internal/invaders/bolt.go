package invaders

// Bolt is a laser bolt travelling straight up or down.
//
// The sign of the velocity encodes ownership and never changes: positive
// bolts were fired by the player and travel up, negative bolts were fired by
// an alien and travel down. A zero velocity is never constructed.
type Bolt struct {
	Rect
	velocity float64
}

func newBolt(left, bottom, width, height, velocity float64) *Bolt {
	if velocity == 0 {
		panic("invaders: bolt velocity must be non-zero")
	}
	return &Bolt{
		Rect:     Rect{Left: left, Bottom: bottom, Width: width, Height: height},
		velocity: velocity,
	}
}

// Velocity returns the signed vertical distance the bolt covers per frame.
func (b *Bolt) Velocity() float64 { return b.velocity }

// IsPlayerOwned reports whether the player fired this bolt.
func (b *Bolt) IsPlayerOwned() bool { return b.velocity > 0 }

// MoveVertical shifts the bolt up by amount (down when negative).
func (b *Bolt) MoveVertical(amount float64) {
	b.Bottom += amount
}

// step advances the bolt by its own velocity.
func (b *Bolt) step() {
	b.MoveVertical(b.velocity)
}

// outside reports whether the bolt has completely left the playfield vertically.
func (b *Bolt) outside(gameHeight float64) bool {
	return b.Bottom > gameHeight || b.Top() < 0
}
