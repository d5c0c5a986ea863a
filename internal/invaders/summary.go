package invaders

import (
	"fmt"
	"strings"
)

// Summary condenses a session's event log into the numbers a report needs.
type Summary struct {
	State   State
	Outcome Outcome
	Ticks   int // wave frames played

	AliensDestroyed int
	AliensLeft      int
	PlayerShots     int
	AlienShots      int
	ShipsHit        int
	Descents        int
	LivesLeft       int

	FirstKillTick int // -1 if nothing was destroyed
	FirstHitTick  int // -1 if the ship was never hit
}

// Summarize builds a Summary from s and the log it recorded into.
func Summarize(s *Session, log *EventLog) Summary {
	sm := Summary{
		State:           s.State(),
		Outcome:         s.Outcome(),
		AliensDestroyed: log.Count(CatAlien, "destroyed"),
		PlayerShots:     log.Count(CatBolt, "player_fire"),
		AlienShots:      log.Count(CatBolt, "alien_fire"),
		ShipsHit:        log.Count(CatShip, "hit"),
		Descents:        log.Count(CatFormation, "descend"),
		FirstKillTick:   log.FirstTick(CatAlien, "destroyed"),
		FirstHitTick:    log.FirstTick(CatShip, "hit"),
	}
	if w := s.Wave(); w != nil {
		sm.Ticks = w.Tick()
		sm.AliensLeft = w.Formation().Remaining()
		sm.LivesLeft = w.Lives()
	} else {
		sm.LivesLeft = s.Config().Lives
		sm.AliensLeft = s.Config().AlienRows * s.Config().AliensInRow
	}
	return sm
}

// Accuracy is the share of player shots that destroyed an alien.
func (sm Summary) Accuracy() float64 {
	if sm.PlayerShots == 0 {
		return 0
	}
	return float64(sm.AliensDestroyed) / float64(sm.PlayerShots)
}

// String formats the summary as key=value lines.
func (sm Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "state=%s outcome=%s ticks=%d\n", sm.State, sm.Outcome, sm.Ticks)
	fmt.Fprintf(&b, "aliens: destroyed=%d left=%d first_kill=%d descents=%d\n",
		sm.AliensDestroyed, sm.AliensLeft, sm.FirstKillTick, sm.Descents)
	fmt.Fprintf(&b, "shots: player=%d alien=%d accuracy=%.0f%%\n",
		sm.PlayerShots, sm.AlienShots, sm.Accuracy()*100)
	fmt.Fprintf(&b, "ship: hits=%d first_hit=%d lives_left=%d\n",
		sm.ShipsHit, sm.FirstHitTick, sm.LivesLeft)
	return b.String()
}
