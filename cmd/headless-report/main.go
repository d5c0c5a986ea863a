package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

type runStats struct {
	runIndex int
	seed     int64
	finished bool

	summary invaders.Summary
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless waves")
	flag.IntVar(&ticks, "ticks", 36000, "maximum frames per wave")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== Headless Wave Report ===\n")
	fmt.Printf("pilot=auto runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runWave(i+1, seed, ticks)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runWave(runIndex int, seed int64, ticks int) (runStats, error) {
	sim, err := invaders.NewSim(invaders.WithSeed(seed), invaders.WithVerbose(true))
	if err != nil {
		return runStats{}, err
	}
	finished, err := sim.RunUntilComplete(ticks)
	if err != nil {
		return runStats{}, err
	}
	return runStats{
		runIndex: runIndex,
		seed:     seed,
		finished: finished,
		summary:  invaders.Summarize(sim.Session, sim.Log),
	}, nil
}

// verdict labels how a wave went.
func verdict(rs runStats) string {
	sm := rs.summary
	switch {
	case !rs.finished:
		return "unfinished"
	case sm.Outcome == invaders.OutcomeCleared && sm.ShipsHit == 0:
		return "flawless"
	case sm.Outcome == invaders.OutcomeCleared && sm.LivesLeft <= 1:
		return "close_call"
	case sm.Outcome == invaders.OutcomeCleared:
		return "cleared"
	case sm.AliensLeft <= 3:
		return "near_miss"
	default:
		return "lost"
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) verdict=%s ---\n", rs.runIndex, rs.seed, verdict(rs))
	fmt.Print(rs.summary.String())
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalKills := 0
	totalShots := 0
	totalAlienShots := 0
	totalHits := 0
	totalDescents := 0
	totalTicks := 0

	killTicks := make([]int, 0, len(all))
	hitTicks := make([]int, 0, len(all))
	outcomes := map[string]int{}
	verdicts := map[string]int{}

	for _, rs := range all {
		sm := rs.summary
		totalKills += sm.AliensDestroyed
		totalShots += sm.PlayerShots
		totalAlienShots += sm.AlienShots
		totalHits += sm.ShipsHit
		totalDescents += sm.Descents
		totalTicks += sm.Ticks
		if sm.FirstKillTick >= 0 {
			killTicks = append(killTicks, sm.FirstKillTick)
		}
		if sm.FirstHitTick >= 0 {
			hitTicks = append(hitTicks, sm.FirstHitTick)
		}
		outcomes[sm.Outcome.String()]++
		verdicts[verdict(rs)]++
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d outcomes=[%s] verdicts=[%s]\n", len(all), joinCounts(outcomes), joinCounts(verdicts))
	fmt.Printf("win_rate=%.0f%%\n", winRate(all)*100)
	fmt.Printf("avg_per_run: ticks=%.1f destroyed=%.1f player_shots=%.1f alien_shots=%.1f ship_hits=%.1f descents=%.1f\n",
		avg(totalTicks, len(all)), avg(totalKills, len(all)), avg(totalShots, len(all)),
		avg(totalAlienShots, len(all)), avg(totalHits, len(all)), avg(totalDescents, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_kill=%s first_hit=%s\n", avgTickString(killTicks), avgTickString(hitTicks))
	if totalShots > 0 {
		fmt.Printf("overall_accuracy=%.0f%%\n", float64(totalKills)/float64(totalShots)*100)
	}
}

func winRate(all []runStats) float64 {
	if len(all) == 0 {
		return 0
	}
	wins := 0
	for _, rs := range all {
		if rs.summary.Outcome.Won() {
			wins++
		}
	}
	return float64(wins) / float64(len(all))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(counts))
	for k := range counts {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	parts := make([]string, 0, len(labels))
	for _, k := range labels {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, ",")
}
