package invaders

// Explosion plays a ship's destruction sequence. It is resumed once per frame
// with the elapsed time and keeps its accumulated time between calls.
type Explosion struct {
	ship    *Ship
	frames  int
	rate    float64 // frames per second
	elapsed float64
	done    bool
}

// Explode starts the destruction sequence for s. The sequence shows frames
// sprite frames over deathSpeed seconds.
func (s *Ship) Explode(frames int, deathSpeed float64) *Explosion {
	s.Frame = 0
	return &Explosion{
		ship:   s,
		frames: frames,
		rate:   float64(frames) / deathSpeed,
	}
}

// Advance feeds dt seconds into the animation and reports whether it has
// finished. Once finished, further calls are no-ops that keep returning true.
func (e *Explosion) Advance(dt float64) bool {
	if e.done {
		return true
	}
	e.elapsed += dt
	frame := int(e.elapsed * e.rate)
	if frame > e.frames-1 {
		e.done = true
		return true
	}
	e.ship.Frame = frame
	return false
}

// Done reports whether the last frame has been passed.
func (e *Explosion) Done() bool { return e.done }

// Elapsed returns the total time fed into the animation so far.
func (e *Explosion) Elapsed() float64 { return e.elapsed }
