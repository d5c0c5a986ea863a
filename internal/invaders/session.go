package invaders

import "fmt"

// State is the top-level game state a Session is in.
type State int

const (
	StateInactive State = iota // waiting for the first key press
	StateNewWave               // building a wave; lasts one frame
	StateActive                // normal play
	StatePaused                // ship lost, waiting for a key press
	StateContinue              // respawning the ship; lasts one frame
	StateComplete              // wave won or lost
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateNewWave:
		return "new_wave"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateContinue:
		return "continue"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome says how a completed wave ended.
type Outcome int

const (
	OutcomeNone       Outcome = iota
	OutcomeCleared            // every alien destroyed
	OutcomeBreached           // the formation reached the defense line
	OutcomeOutOfLives         // the last ship was destroyed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCleared:
		return "cleared"
	case OutcomeBreached:
		return "breached"
	case OutcomeOutOfLives:
		return "out_of_lives"
	default:
		return "none"
	}
}

// Won reports whether the outcome is a victory.
func (o Outcome) Won() bool { return o == OutcomeCleared }

// Session sequences one game: it waits for a key press, plays a wave,
// pauses between lost ships and stops once the wave is won or lost.
// Frontends feed it one Input snapshot per frame and draw whatever it holds.
type Session struct {
	cfg     Config
	rng     Rand
	log     *EventLog
	state   State
	outcome Outcome
	wave    *Wave
	frame   int

	lastKeys int // held-key count on the previous frame
}

// SessionOption configures optional Session behaviour.
type SessionOption func(*Session)

// WithSessionLog records state changes, and the events of every wave the
// session creates, into log.
func WithSessionLog(log *EventLog) SessionOption {
	return func(s *Session) { s.log = log }
}

// NewSession validates cfg and returns a session in StateInactive.
func NewSession(cfg Config, rng Rand, opts ...SessionOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("new session: %w: nil random source", ErrInvalidConfig)
	}
	s := &Session{cfg: cfg, rng: rng, state: StateInactive}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Step advances the session by one frame. A fresh key press is a frame whose
// held-key count is positive after a frame with none held.
//
// The state handlers run in a fixed order within one frame, so a press in
// StateInactive builds the wave and plays its first frame immediately, and a
// press in StatePaused respawns the ship without playing a frame.
func (s *Session) Step(in Input, dt float64) error {
	s.frame++
	keys := in.KeyCount()
	pressed := keys > 0 && s.lastKeys == 0
	s.lastKeys = keys

	if s.state == StateInactive && pressed {
		s.setState(StateNewWave)
	}
	if s.state == StateNewWave {
		var opts []WaveOption
		if s.log != nil {
			opts = append(opts, WithEventLog(s.log))
		}
		w, err := NewWave(s.cfg, s.rng, opts...)
		if err != nil {
			return fmt.Errorf("step: %w", err)
		}
		s.wave = w
		s.setState(StateActive)
	}
	if s.state == StateActive {
		s.wave.Update(s.cfg.ShipMovement, in, s.cfg.AlienHWalk, s.cfg.AlienVWalk, s.cfg.AlienSpeed, dt)
		if s.wave.ShipAbsent() {
			s.setState(StatePaused)
		}
		if s.wave.FormationEmpty() {
			s.complete(OutcomeCleared)
		}
		if s.wave.FormationBreached() {
			s.complete(OutcomeBreached)
		}
	}
	if s.state == StatePaused {
		if !s.wave.HasLives() {
			s.wave.ClearBolts()
			s.complete(OutcomeOutOfLives)
		} else if pressed {
			s.setState(StateContinue)
		}
	}
	if s.state == StateContinue {
		s.wave.SpawnNewShip()
		s.setState(StateActive)
	}
	return nil
}

func (s *Session) setState(next State) {
	if next == s.state {
		return
	}
	if s.log != nil {
		s.log.Add(s.waveTick(), CatState, next.String(), fmt.Sprintf("%s -> %s (frame %d)", s.state, next, s.frame), float64(s.frame))
	}
	s.state = next
}

func (s *Session) complete(o Outcome) {
	s.outcome = o
	if s.log != nil {
		s.log.Add(s.waveTick(), CatWave, o.String(), fmt.Sprintf("%d lives left", s.wave.Lives()), float64(s.wave.Lives()))
	}
	s.setState(StateComplete)
}

func (s *Session) waveTick() int {
	if s.wave == nil {
		return 0
	}
	return s.wave.Tick()
}

// Message returns the text to show over the playfield, or "" during play.
func (s *Session) Message() string {
	switch s.state {
	case StateInactive:
		return "Press 'S' to Play"
	case StatePaused:
		if s.wave.HasLives() {
			return "Press 'S' to Continue Playing"
		}
	case StateComplete:
		if s.outcome.Won() {
			return "Nice Job!"
		}
		return "Better Luck Next Time"
	}
	return ""
}

// Draw draws the current wave, if any.
func (s *Session) Draw(r Renderer) {
	if s.wave != nil {
		s.wave.Draw(r)
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Outcome returns how the wave ended, or OutcomeNone before StateComplete.
func (s *Session) Outcome() Outcome { return s.outcome }

// Wave returns the current wave, or nil before the first key press.
func (s *Session) Wave() *Wave { return s.wave }

// Frame returns the number of frames stepped.
func (s *Session) Frame() int { return s.frame }

// Config returns the session's configuration.
func (s *Session) Config() Config { return s.cfg }
