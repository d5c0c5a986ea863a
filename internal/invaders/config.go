package invaders

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable a wave reads. A wave never mutates it.
// Distances are world units (y-up, origin at the bottom-left of the playfield);
// times are seconds.
type Config struct {
	// Playfield
	GameWidth  float64
	GameHeight float64

	// Ship
	ShipWidth    float64
	ShipHeight   float64
	ShipBottom   float64 // y of the ship's bottom edge
	ShipMovement float64 // horizontal distance per frame while a direction key is held

	// Alien grid
	AlienRows    int
	AliensInRow  int
	AlienWidth   float64
	AlienHeight  float64
	AlienHSep    float64 // gap between columns, also the side margin
	AlienVSep    float64 // gap between rows
	AlienCeiling float64 // gap between the top row and the top of the playfield
	AlienHWalk   float64 // horizontal distance per formation step
	AlienVWalk   float64 // vertical distance per descent
	AlienSpeed   float64 // seconds between formation steps

	// Bolts
	BoltWidth  float64
	BoltHeight float64
	BoltSpeed  float64 // distance per frame
	BoltRate   int     // max formation steps between alien shots

	DefenseLine float64 // y of the defense line
	Lives       int

	// Ship destruction animation
	ExplosionFrames int
	DeathSpeed      float64 // seconds for the whole sequence
}

// DefaultConfig returns the classic arcade layout: a 5x12 grid on an 800x700 field.
func DefaultConfig() Config {
	return Config{
		GameWidth:       800,
		GameHeight:      700,
		ShipWidth:       44,
		ShipHeight:      44,
		ShipBottom:      32,
		ShipMovement:    5,
		AlienRows:       5,
		AliensInRow:     12,
		AlienWidth:      33,
		AlienHeight:     33,
		AlienHSep:       16,
		AlienVSep:       16,
		AlienCeiling:    100,
		AlienHWalk:      8,
		AlienVWalk:      16,
		AlienSpeed:      1.0,
		BoltWidth:       4,
		BoltHeight:      16,
		BoltSpeed:       10,
		BoltRate:        5,
		DefenseLine:     100,
		Lives:           3,
		ExplosionFrames: 8,
		DeathSpeed:      0.3,
	}
}

// Validate reports the first problem found, wrapped around ErrInvalidConfig.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"game width", c.GameWidth},
		{"game height", c.GameHeight},
		{"ship width", c.ShipWidth},
		{"ship height", c.ShipHeight},
		{"ship movement", c.ShipMovement},
		{"alien width", c.AlienWidth},
		{"alien height", c.AlienHeight},
		{"alien horizontal walk", c.AlienHWalk},
		{"alien vertical walk", c.AlienVWalk},
		{"alien speed", c.AlienSpeed},
		{"bolt width", c.BoltWidth},
		{"bolt height", c.BoltHeight},
		{"bolt speed", c.BoltSpeed},
		{"death speed", c.DeathSpeed},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}
	if c.AlienHSep < 0 || c.AlienVSep < 0 || c.AlienCeiling < 0 || c.ShipBottom < 0 {
		return fmt.Errorf("%w: separators, ceiling and ship bottom must be >= 0", ErrInvalidConfig)
	}
	if c.AlienRows <= 0 || c.AliensInRow <= 0 {
		return fmt.Errorf("%w: alien grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.AlienRows, c.AliensInRow)
	}
	if c.BoltRate < 1 {
		return fmt.Errorf("%w: bolt rate must be >= 1, got %d", ErrInvalidConfig, c.BoltRate)
	}
	if c.Lives < 0 {
		return fmt.Errorf("%w: lives must be >= 0, got %d", ErrInvalidConfig, c.Lives)
	}
	if c.ExplosionFrames < 1 {
		return fmt.Errorf("%w: explosion needs at least one frame, got %d", ErrInvalidConfig, c.ExplosionFrames)
	}
	if w := c.formationWidth(); w > c.GameWidth {
		return fmt.Errorf("%w: formation is %.0f wide, playfield only %.0f", ErrInvalidConfig, w, c.GameWidth)
	}
	if c.gridBottom() <= c.DefenseLine {
		return fmt.Errorf("%w: formation starts at or below the defense line", ErrInvalidConfig)
	}
	if c.DefenseLine < 0 || c.DefenseLine > c.GameHeight {
		return fmt.Errorf("%w: defense line %.0f outside playfield", ErrInvalidConfig, c.DefenseLine)
	}
	if c.ShipWidth > c.GameWidth {
		return fmt.Errorf("%w: ship wider than playfield", ErrInvalidConfig)
	}
	return nil
}

// formationWidth is the full grid width including both side margins.
func (c Config) formationWidth() float64 {
	n := float64(c.AliensInRow)
	return n*c.AlienWidth + (n+1)*c.AlienHSep
}

// gridTop is the y of the top edge of row 0, the row nearest the ship.
func (c Config) gridTop() float64 {
	rows := float64(c.AlienRows - 1)
	return c.GameHeight - c.AlienCeiling - rows*c.AlienHeight - rows*c.AlienVSep
}

// gridBottom is the y of the lower edge of row 0.
func (c Config) gridBottom() float64 {
	return c.gridTop() - c.AlienHeight
}
