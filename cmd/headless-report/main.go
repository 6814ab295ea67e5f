// Command headless-report runs batches of engine-only sessions with a
// random-walk player driver and prints per-run and aggregate behaviour
// statistics. It never opens a window or touches the speaker.
package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/derekchall/maze-pacman/internal/game"
	"github.com/derekchall/maze-pacman/internal/maze"
)

const tickRate = 60.0

type runStats struct {
	runIndex int
	seed     int64

	outcome     game.Phase
	ticks       int
	score       int
	livesLeft   int
	pelletsLeft int

	ghostsEaten    int
	deaths         int
	sirenAdvances  int
	frightenings   int
	firstDeathTick int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var mazePath string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 18000, "ticks per run (at 60/s)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&mazePath, "maze", "", "maze JSON to run (empty = built-in test maze)")
	flag.Parse()

	if runs <= 0 || ticks <= 0 {
		logrus.Fatal("-runs and -ticks must be > 0")
	}

	m, err := loadMaze(mazePath)
	if err != nil {
		logrus.Fatalf("cannot start: %v", err)
	}

	fmt.Printf("=== Headless Pursuit Report ===\n")
	fmt.Printf("maze=%dx%d runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		m.Grid.Size(), m.Grid.Size(), runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runOnce(m, i+1, seed, ticks)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

func loadMaze(path string) (*maze.Maze, error) {
	if path != "" {
		return maze.Load(path)
	}
	// Built-in 16x16 maze with a sparse wall pattern, enough to make
	// corridors without risking unreachable pockets.
	opts := []game.SimOption{
		game.WithGridSize(16),
		game.WithStart(15, 0),
		game.WithGoal(6, 7), game.WithGoal(7, 6), game.WithGoal(7, 8), game.WithGoal(8, 7),
	}
	for i := 2; i < 14; i += 3 {
		for j := 2; j < 14; j += 4 {
			opts = append(opts, game.WithHWall(i, j), game.WithVWall(i+1, j+1))
		}
	}
	return game.BuildTestMaze(opts...), nil
}

// runOnce drives one session to a terminal phase or the tick budget
// with a random-walk player.
func runOnce(m *maze.Maze, runIndex int, seed int64, maxTicks int) runStats {
	log := game.NewSimLog(false)
	s := game.NewSession(m, seed, log)
	driver := rand.New(rand.NewSource(seed * 7919)) // #nosec G404 -- report driver

	dt := 1.0 / tickRate
	var snap game.Snapshot
	tick := 0
	for ; tick < maxTicks; tick++ {
		snap = s.Snapshot()
		if snap.Phase.Terminal() {
			break
		}
		if !snap.Player.Moving {
			s.RequestDirection(pickDirection(m.Grid, snap, driver))
		}
		s.Advance(dt)
	}
	snap = s.Snapshot()

	stats := runStats{
		runIndex:       runIndex,
		seed:           seed,
		outcome:        snap.Phase,
		ticks:          tick,
		score:          snap.Player.Score,
		livesLeft:      snap.Player.Lives,
		pelletsLeft:    snap.PelletsLeft,
		ghostsEaten:    log.CountCategory("collision", "ghost_eaten"),
		deaths:         log.CountCategory("score", "life_lost"),
		sirenAdvances:  log.CountCategory("timer", "siren_tier"),
		frightenings:   log.CountCategory("marker", "power_pellet"),
		firstDeathTick: -1,
	}
	if caught := log.Filter("collision", "player_caught"); len(caught) > 0 {
		stats.firstDeathTick = caught[0].Tick
	}
	return stats
}

// pickDirection is the random-walk driver: a legal direction, avoiding
// the reverse of the current facing when any other move is open.
func pickDirection(g *maze.Grid, snap game.Snapshot, rng *rand.Rand) maze.Direction {
	cell := snap.Player.Cell
	rev := snap.Player.Dir.Opposite()
	open := make([]maze.Direction, 0, 4)
	for _, d := range []maze.Direction{maze.North, maze.East, maze.South, maze.West} {
		if !g.HasWall(cell.Row, cell.Col, d) && d != rev {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		return rev
	}
	return open[rng.Intn(len(open))]
}

func printRun(s runStats) {
	fmt.Printf("--- run %d (seed %d) ---\n", s.runIndex, s.seed)
	fmt.Printf("outcome=%s ticks=%d score=%d lives=%d pellets_left=%d\n",
		s.outcome, s.ticks, s.score, s.livesLeft, s.pelletsLeft)
	fmt.Printf("ghosts_eaten=%d deaths=%d power_pellets=%d siren_advances=%d",
		s.ghostsEaten, s.deaths, s.frightenings, s.sirenAdvances)
	if s.firstDeathTick >= 0 {
		fmt.Printf(" first_death_tick=%d", s.firstDeathTick)
	}
	fmt.Printf("\n\n")
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	var score, eaten, deaths int
	outcomes := map[game.Phase]int{}
	for _, s := range all {
		score += s.score
		eaten += s.ghostsEaten
		deaths += s.deaths
		outcomes[s.outcome]++
	}
	n := len(all)
	fmt.Printf("=== aggregate over %d runs ===\n", n)
	fmt.Printf("avg_score=%.1f avg_ghosts_eaten=%.2f avg_deaths=%.2f\n",
		float64(score)/float64(n), float64(eaten)/float64(n), float64(deaths)/float64(n))
	fmt.Printf("outcomes:")
	for _, p := range []game.Phase{game.PhaseWon, game.PhaseLost, game.PhasePlaying, game.PhaseReady} {
		if c := outcomes[p]; c > 0 {
			fmt.Printf(" %s=%d", p, c)
		}
	}
	fmt.Println()
}
