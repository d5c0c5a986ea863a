package main

import (
	"testing"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

func TestVerdict(t *testing.T) {
	cases := []struct {
		name string
		rs   runStats
		want string
	}{
		{"unfinished", runStats{finished: false}, "unfinished"},
		{"flawless", runStats{finished: true, summary: invaders.Summary{Outcome: invaders.OutcomeCleared, LivesLeft: 3}}, "flawless"},
		{"close call", runStats{finished: true, summary: invaders.Summary{Outcome: invaders.OutcomeCleared, ShipsHit: 2, LivesLeft: 1}}, "close_call"},
		{"cleared", runStats{finished: true, summary: invaders.Summary{Outcome: invaders.OutcomeCleared, ShipsHit: 1, LivesLeft: 2}}, "cleared"},
		{"near miss", runStats{finished: true, summary: invaders.Summary{Outcome: invaders.OutcomeBreached, AliensLeft: 2}}, "near_miss"},
		{"lost", runStats{finished: true, summary: invaders.Summary{Outcome: invaders.OutcomeOutOfLives, AliensLeft: 30}}, "lost"},
	}
	for _, tc := range cases {
		if got := verdict(tc.rs); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestWinRate(t *testing.T) {
	all := []runStats{
		{summary: invaders.Summary{Outcome: invaders.OutcomeCleared}},
		{summary: invaders.Summary{Outcome: invaders.OutcomeBreached}},
		{summary: invaders.Summary{Outcome: invaders.OutcomeCleared}},
		{summary: invaders.Summary{Outcome: invaders.OutcomeOutOfLives}},
	}
	if got := winRate(all); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
	if winRate(nil) != 0 {
		t.Fatal("no runs should give a zero win rate")
	}
}

func TestAvgTickString(t *testing.T) {
	if got := avgTickString(nil); got != "n/a" {
		t.Fatalf("expected n/a, got %s", got)
	}
	if got := avgTickString([]int{10, 20, 40}); got != "23.3" {
		t.Fatalf("expected 23.3, got %s", got)
	}
	if avg(5, 0) != 0 {
		t.Fatal("avg over zero runs should be 0")
	}
}

func TestJoinCounts_Sorted(t *testing.T) {
	got := joinCounts(map[string]int{"lost": 1, "cleared": 3})
	if got != "cleared=3,lost=1" {
		t.Fatalf("unexpected %q", got)
	}
	if joinCounts(nil) != "none" {
		t.Fatal("empty counts should print none")
	}
}

func TestRunWave_Finishes(t *testing.T) {
	rs, err := runWave(1, 42, 60*60*20)
	if err != nil {
		t.Fatal(err)
	}
	if !rs.finished || rs.summary.Outcome == invaders.OutcomeNone {
		t.Fatalf("expected a finished wave, got %+v", rs)
	}
	if rs.summary.PlayerShots == 0 {
		t.Fatal("the autopilot should fire")
	}
}
