package invaders

import (
	"fmt"
)

// Rand is the source of randomness a wave draws from. *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Renderer receives the wave's drawable state in playfield coordinates.
type Renderer interface {
	DrawShip(s *Ship)
	DrawAlien(a *Alien)
	DrawDefenseLine(y, width float64)
	DrawBolt(b *Bolt)
}

// WaveOption configures optional Wave behaviour.
type WaveOption func(*Wave)

// WithEventLog records wave events into log.
func WithEventLog(log *EventLog) WaveOption {
	return func(w *Wave) { w.log = log }
}

// Wave is one wave of the game. It owns the ship, the alien formation, the
// bolts in flight and the player's remaining lives, and advances them one
// frame at a time.
//
// Wave is not safe for concurrent use.
type Wave struct {
	cfg  Config
	rng  Rand
	log  *EventLog
	tick int

	ship      *Ship // nil while the player has no ship
	explosion *Explosion
	aliens    *Formation
	bolts     []*Bolt
	lives     int

	stepTimer float64 // seconds since the last formation step
	direction Direction
	descended bool // the last formation step was a descent

	fireGap        int // formation steps between the last alien shot and the next
	stepsSinceShot int
}

// NewWave creates a wave with a full formation, a ship at the bottom centre
// and cfg.Lives lives. The formation starts sweeping right.
func NewWave(cfg Config, rng Rand, opts ...WaveOption) (*Wave, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new wave: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("new wave: %w: nil random source", ErrInvalidConfig)
	}
	w := &Wave{
		cfg:       cfg,
		rng:       rng,
		ship:      newShip(cfg),
		aliens:    newFormation(cfg),
		lives:     cfg.Lives,
		direction: SweepRight,
		descended: true,
		// The first formation step bumps the counter to 0 rather than 1.
		stepsSinceShot: -1,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.fireGap = w.drawFireGap()
	w.logf(CatWave, "start", float64(w.lives), "%dx%d aliens, %d lives", cfg.AlienRows, cfg.AliensInRow, w.lives)
	return w, nil
}

// Update advances the wave by one frame.
//
// shipStep is the ship's horizontal distance for this frame. alienStep and
// alienDescent are the formation's horizontal step and vertical drop;
// stepPeriod is the number of seconds between formation steps. dt is the time
// since the previous frame.
//
// The phases run in a fixed order: ship movement, formation movement, player
// fire, alien fire, bolt movement, alien hits, then ship hit and explosion.
func (w *Wave) Update(shipStep float64, in Input, alienStep, alienDescent, stepPeriod, dt float64) {
	w.tick++
	w.moveShip(shipStep, in)
	stepped := w.moveAliens(alienStep, alienDescent, stepPeriod, dt)
	w.firePlayerBolt(in)
	w.fireAlienBolt(stepped)
	w.moveBolts()
	w.resolveAlienHits()
	w.resolveShip(dt)
}

// moveShip applies the held direction keys. A key pointing at the edge the
// ship already touches is ignored, and a move that would overshoot an edge
// stops on it.
func (w *Wave) moveShip(step float64, in Input) {
	s := w.ship
	if s == nil || w.explosion != nil {
		return
	}
	var dx float64
	if in.KeyDown(KeyLeft) && !s.AtLeftEdge() {
		dx -= step
	}
	if in.KeyDown(KeyRight) && !s.AtRightEdge() {
		dx += step
	}
	s.MoveHorizontal(dx)
	s.ClampToEdge()
}

// moveAliens runs the formation timer and, when a step is due, performs one
// formation step. It reports whether a step was due.
func (w *Wave) moveAliens(step, descent, period, dt float64) bool {
	if w.stepTimer < period {
		w.stepTimer += dt
		return false
	}
	w.stepTimer = 0
	f := w.aliens
	if f.Empty() {
		return true
	}
	switch {
	case f.atEdge(w.direction) && !w.descended:
		f.descend(descent)
		w.direction = w.direction.reverse()
		w.descended = true
		low, _ := f.lowestEdge()
		w.logf(CatFormation, "descend", low, "now sweeping %s, lowest edge %.1f", w.direction, low)
	case f.NearRight():
		dx := f.snapRight()
		w.logVerbose(CatFormation, "snap", dx, "right by %.1f", dx)
	case f.NearLeft() && !w.descended:
		dx := f.snapLeft()
		w.logVerbose(CatFormation, "snap", dx, "left by %.1f", dx)
	default:
		f.shift(w.direction.sign() * step)
		w.descended = false
		w.logVerbose(CatFormation, "step", step, "%s", w.direction)
	}
	return true
}

// firePlayerBolt launches a bolt from the ship's muzzle when fire is held and
// no player bolt is in flight, then prunes bolts that have left the field.
// An exploding ship can still fire.
func (w *Wave) firePlayerBolt(in Input) {
	if w.ship != nil && in.KeyDown(KeyFire) && !w.playerBoltInFlight() {
		m := w.ship.muzzle(w.cfg.BoltWidth)
		w.bolts = append(w.bolts, newBolt(m.X, m.Y, w.cfg.BoltWidth, w.cfg.BoltHeight, w.cfg.BoltSpeed))
		w.logf(CatBolt, "player_fire", m.X, "from x=%.1f", m.X)
	}
	w.pruneBolts()
}

// fireAlienBolt counts formation steps and, once the randomly drawn gap has
// elapsed, has the lowest alien of a random non-empty column fire downward.
func (w *Wave) fireAlienBolt(stepped bool) {
	if stepped {
		w.stepsSinceShot++
	}
	if w.stepsSinceShot < w.fireGap || w.aliens.Empty() {
		return
	}
	col := w.firingColumn()
	a := w.aliens.lowestInColumn(col)
	w.bolts = append(w.bolts, newBolt(a.Left, a.Bottom()-w.cfg.BoltHeight, w.cfg.BoltWidth, w.cfg.BoltHeight, -w.cfg.BoltSpeed))
	w.logf(CatBolt, "alien_fire", float64(col), "column %d", col)
	w.fireGap = w.drawFireGap()
	w.stepsSinceShot = 0
}

// firingColumn draws columns until it finds one with an alien in it. The
// formation must not be empty.
func (w *Wave) firingColumn() int {
	for {
		c := w.rng.Intn(w.aliens.Cols())
		if !w.aliens.columnEmpty(c) {
			return c
		}
	}
}

func (w *Wave) drawFireGap() int {
	return w.rng.Intn(w.cfg.BoltRate) + 1
}

func (w *Wave) moveBolts() {
	for _, b := range w.bolts {
		b.step()
	}
}

// Draw hands every visible object to r: the ship, aliens, the defense line,
// then bolts.
func (w *Wave) Draw(r Renderer) {
	if w.ship != nil {
		r.DrawShip(w.ship)
	}
	w.aliens.each(func(_, _ int, a *Alien) { r.DrawAlien(a) })
	r.DrawDefenseLine(w.cfg.DefenseLine, w.cfg.GameWidth)
	for _, b := range w.bolts {
		r.DrawBolt(b)
	}
}

// ShipAbsent reports whether the player currently has no ship. A ship that is
// still exploding counts as present.
func (w *Wave) ShipAbsent() bool { return w.ship == nil }

// FormationEmpty reports whether every alien has been destroyed. When it
// returns true it also clears every bolt still in flight.
func (w *Wave) FormationEmpty() bool {
	if !w.aliens.Empty() {
		return false
	}
	w.ClearBolts()
	return true
}

// ClearBolts removes every bolt in flight.
func (w *Wave) ClearBolts() { w.bolts = nil }

// FormationBreached reports whether any alien's lower edge has reached the
// defense line.
func (w *Wave) FormationBreached() bool {
	low, ok := w.aliens.lowestEdge()
	return ok && low <= w.cfg.DefenseLine
}

// HasLives reports whether the player has any lives left.
func (w *Wave) HasLives() bool { return w.lives > 0 }

// Lives returns the number of lives left.
func (w *Wave) Lives() int { return w.lives }

// SpawnNewShip places a fresh ship at the bottom centre. It does nothing if a
// ship is already present.
func (w *Wave) SpawnNewShip() {
	if w.ship != nil {
		return
	}
	w.ship = newShip(w.cfg)
	w.logf(CatShip, "spawn", float64(w.lives), "%d lives left", w.lives)
}

// Ship returns the current ship, or nil.
func (w *Wave) Ship() *Ship { return w.ship }

// Exploding reports whether the ship's destruction sequence is playing.
func (w *Wave) Exploding() bool { return w.explosion != nil }

// Formation returns the alien grid.
func (w *Wave) Formation() *Formation { return w.aliens }

// Bolts returns the bolts in flight. The slice must not be modified.
func (w *Wave) Bolts() []*Bolt { return w.bolts }

// Direction returns the formation's current sweep direction.
func (w *Wave) Direction() Direction { return w.direction }

// Tick returns the number of frames processed.
func (w *Wave) Tick() int { return w.tick }

// Config returns the wave's configuration.
func (w *Wave) Config() Config { return w.cfg }

func (w *Wave) logf(category, key string, num float64, format string, args ...any) {
	if w.log == nil {
		return
	}
	w.log.Add(w.tick, category, key, fmt.Sprintf(format, args...), num)
}

func (w *Wave) logVerbose(category, key string, num float64, format string, args ...any) {
	if w.log == nil {
		return
	}
	w.log.AddVerbose(w.tick, category, key, fmt.Sprintf(format, args...), num)
}
