package invaders

import (
	"math"
	"math/rand"
)

// DefaultFrameTime is one frame at 60 ticks per second.
const DefaultFrameTime = 1.0 / 60

// Pilot chooses the keys to hold for the next frame.
type Pilot interface {
	Next(s *Session) Input
}

// PilotFunc adapts a function to a Pilot.
type PilotFunc func(s *Session) Input

// Next implements Pilot.
func (f PilotFunc) Next(s *Session) Input { return f(s) }

// AutoPilot plays without a human. It taps a key whenever the session waits
// for one, steers under the lowest alien of the nearest occupied column, dodges
// alien bolts dropping towards the ship and fires whenever it can.
type AutoPilot struct {
	tapped bool
}

// Next implements Pilot.
func (p *AutoPilot) Next(s *Session) Input {
	switch s.State() {
	case StateInactive, StatePaused:
		// Alternate press and release so every other frame is a fresh press.
		p.tapped = !p.tapped
		if p.tapped {
			return KeySet{Extra: 1}
		}
		return KeySet{}
	case StateActive:
		return p.steer(s.Wave())
	}
	return KeySet{}
}

func (p *AutoPilot) steer(w *Wave) Input {
	ship := w.Ship()
	if ship == nil || w.Exploding() {
		return KeySet{}
	}
	if dir, ok := p.dodge(w, ship); ok {
		return Keys(dir)
	}
	held := []Key{KeyFire}
	target, ok := p.target(w, ship)
	if ok {
		const deadband = 2.0
		switch {
		case target < ship.X-deadband:
			held = append(held, KeyLeft)
		case target > ship.X+deadband:
			held = append(held, KeyRight)
		}
	}
	return Keys(held...)
}

// dodge moves away from the nearest alien bolt that will land on the ship soon.
func (p *AutoPilot) dodge(w *Wave, ship *Ship) (Key, bool) {
	cfg := w.Config()
	danger := ship.Bounds()
	danger.Left -= cfg.BoltWidth
	danger.Width += 2 * cfg.BoltWidth
	horizon := ship.Bottom + ship.Height + 8*cfg.BoltSpeed
	for _, b := range w.Bolts() {
		if b.IsPlayerOwned() || b.Bottom > horizon {
			continue
		}
		if b.Right() < danger.Left || b.Left > danger.Right() {
			continue
		}
		mid := b.Left + b.Width/2
		if (mid < ship.X && !ship.AtRightEdge()) || ship.AtLeftEdge() {
			return KeyRight, true
		}
		return KeyLeft, true
	}
	return 0, false
}

// target is the x of the centre of the lowest alien in the occupied column
// nearest the ship.
func (p *AutoPilot) target(w *Wave, ship *Ship) (float64, bool) {
	f := w.Formation()
	best, found := 0.0, false
	for c := 0; c < f.Cols(); c++ {
		a := f.lowestInColumn(c)
		if a == nil {
			continue
		}
		x := a.Left + a.Width/2
		if !found || math.Abs(x-ship.X) < math.Abs(best-ship.X) {
			best, found = x, true
		}
	}
	return best, found
}

// Sim is a headless harness that runs a Session with a Pilot at a fixed frame
// time. It has no window or terminal dependency and is deterministic for a
// given seed, configuration and pilot.
type Sim struct {
	Session *Session
	Log     *EventLog
	Seed    int64

	cfg       Config
	pilot     Pilot
	frameTime float64
}

// SimOption is a builder function applied to a Sim during construction.
type SimOption func(*Sim)

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return func(s *Sim) { s.Seed = seed }
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) SimOption {
	return func(s *Sim) { s.cfg = cfg }
}

// WithVerbose enables per-step formation logging.
func WithVerbose(v bool) SimOption {
	return func(s *Sim) { s.Log = NewEventLog(v) }
}

// WithPilot replaces the default AutoPilot.
func WithPilot(p Pilot) SimOption {
	return func(s *Sim) { s.pilot = p }
}

// WithFrameTime sets the seconds fed to every frame.
func WithFrameTime(dt float64) SimOption {
	return func(s *Sim) { s.frameTime = dt }
}

// NewSim constructs a Sim from the given options. Without options it plays
// the default configuration with seed 1 and an AutoPilot.
func NewSim(opts ...SimOption) (*Sim, error) {
	s := &Sim{
		Log:       NewEventLog(false),
		Seed:      1,
		cfg:       DefaultConfig(),
		pilot:     &AutoPilot{},
		frameTime: DefaultFrameTime,
	}
	for _, o := range opts {
		o(s)
	}
	rng := rand.New(rand.NewSource(s.Seed)) // #nosec G404 -- deterministic gameplay, not security
	sess, err := NewSession(s.cfg, rng, WithSessionLog(s.Log))
	if err != nil {
		return nil, err
	}
	s.Session = sess
	return s, nil
}

// Step advances the simulation by one frame.
func (s *Sim) Step() error {
	return s.Session.Step(s.pilot.Next(s.Session), s.frameTime)
}

// RunTicks advances the simulation n frames, stopping early on error.
func (s *Sim) RunTicks(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunUntilComplete steps until the session reaches StateComplete or maxTicks
// frames have run. It reports whether the session completed.
func (s *Sim) RunUntilComplete(maxTicks int) (bool, error) {
	for i := 0; i < maxTicks; i++ {
		if s.Session.State() == StateComplete {
			return true, nil
		}
		if err := s.Step(); err != nil {
			return false, err
		}
	}
	return s.Session.State() == StateComplete, nil
}
