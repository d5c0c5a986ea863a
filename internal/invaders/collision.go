package invaders

// playerBoltInFlight reports whether a player bolt is still on the field.
func (w *Wave) playerBoltInFlight() bool {
	for _, b := range w.bolts {
		if b.IsPlayerOwned() {
			return true
		}
	}
	return false
}

// pruneBolts drops bolts that have left the playfield through the top or the bottom.
func (w *Wave) pruneBolts() {
	kept := w.bolts[:0]
	for _, b := range w.bolts {
		if !b.outside(w.cfg.GameHeight) {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(w.bolts); i++ {
		w.bolts[i] = nil
	}
	w.bolts = kept
}

func (w *Wave) removeBolt(i int) {
	copy(w.bolts[i:], w.bolts[i+1:])
	w.bolts[len(w.bolts)-1] = nil
	w.bolts = w.bolts[:len(w.bolts)-1]
}

// resolveAlienHits removes every alien struck by a player bolt together with
// the bolt. Each alien consumes at most one bolt.
func (w *Wave) resolveAlienHits() {
	w.aliens.each(func(row, col int, a *Alien) {
		for i, b := range w.bolts {
			if !a.CollidesWith(b) {
				continue
			}
			w.removeBolt(i)
			w.aliens.remove(row, col)
			w.logf(CatAlien, "destroyed", float64(w.aliens.Remaining()), "r%dc%d (variant %d)", row, col, a.Variant)
			return
		}
	})
}

// resolveShip plays an explosion in progress, or checks the ship against the
// alien bolts and starts one. The frame that triggers the explosion does not
// advance it.
func (w *Wave) resolveShip(dt float64) {
	if w.explosion != nil {
		if w.explosion.Advance(dt) {
			w.explosion = nil
			w.ship = nil
			w.logf(CatShip, "lost", float64(w.lives), "%d lives left", w.lives)
		}
		return
	}
	if w.ship == nil {
		return
	}
	for i, b := range w.bolts {
		if !w.ship.CollidesWith(b) {
			continue
		}
		w.removeBolt(i)
		if w.lives > 0 {
			w.lives--
		}
		w.explosion = w.ship.Explode(w.cfg.ExplosionFrames, w.cfg.DeathSpeed)
		w.logf(CatShip, "hit", float64(w.lives), "at x=%.1f", w.ship.X)
		return
	}
}
