package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/derekchall/maze-pacman/internal/maze"
)

// Phase is the session's top-level state.
type Phase int

const (
	PhaseReady    Phase = iota // pre-play hold after start or life loss
	PhasePlaying               // normal tick processing
	PhaseDying                 // death sequence running, agents frozen
	PhaseWon                   // terminal: every pellet eaten
	PhaseLost                  // terminal: last life gone
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (p Phase) Terminal() bool { return p == PhaseWon || p == PhaseLost }

const (
	maxTickDelta       = 0.1 // seconds; larger host stalls are clamped
	readyDuration      = 4.0
	deathDuration      = 2.0
	eatPauseDuration   = 1.0
	frightenedDuration = 8.0
	releaseInterval    = 3.0 // seconds between successive ghost releases
	baseGhostBonus     = 200
	sirenTierCount     = 5
	sirenTierBoost     = 1.05 // ghost speed multiplier per tier advance

	// collisionRadius is a continuous-space proximity threshold, not a
	// cell-equality test: agents collide when their pixel positions are
	// within a fifth of a cell of each other.
	collisionRadius = cellSize * 0.2
)

// Session is the full decision-and-motion engine for one game. It owns
// all mutable state and is advanced exactly once per external tick;
// nothing in it runs concurrently or touches globals.
type Session struct {
	grid    *maze.Grid
	start   maze.Cell
	goals   []maze.Cell
	goalSet map[maze.Cell]bool

	homeField  *DistanceField // seeded from goal cells, drives eaten ghosts home
	reachField *DistanceField // seeded from the start cell, drives pellet placement

	player Player
	ghosts [4]*Ghost

	pellets        map[maze.Cell]bool
	powerPellets   map[maze.Cell]bool
	initialPellets int

	phase   Phase
	tick    int
	elapsed float64 // gameplay seconds since the last reset, gates ghost releases

	readyTimer      float64
	deathTimer      float64
	eatPause        float64 // score-popup hold after eating a ghost
	frightenedTimer float64 // shared by all frightened ghosts

	ghostBonus     int // next frightened-catch bonus, doubles per catch
	lastBonus      int // most recently awarded catch bonus, for the renderer
	lastEatenGhost int // id of the most recently eaten ghost, -1 if none

	ghostSpeedMult float64 // aggression ramp applied to pursuing ghosts
	sirenTier      int     // last observed ramp tier, -1 before gameplay

	cherry          *maze.Cell
	cherrySpawnIn   float64
	cherryDespawnIn float64

	rng *rand.Rand
	log *SimLog
}

// NewSession builds a session over a loaded maze. The seed drives every
// random decision (frightened moves, cherry schedule), so equal seeds
// give byte-identical runs. log may be nil.
func NewSession(m *maze.Maze, seed int64, log *SimLog) *Session {
	goals := m.Goals
	if len(goals) == 0 {
		goals = []maze.Cell{m.Grid.CenterCell()}
	}
	goalSet := make(map[maze.Cell]bool, len(goals))
	for _, g := range goals {
		goalSet[g] = true
	}

	s := &Session{
		grid:           m.Grid,
		start:          m.Start,
		goals:          goals,
		goalSet:        goalSet,
		homeField:      ComputeDistanceField(m.Grid, goals),
		lastEatenGhost: -1,
		rng:            rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay only
		log:            log,
	}
	s.reachField = ComputeDistanceField(m.Grid, []maze.Cell{m.Start})

	s.pellets = placePellets(m.Grid, s.reachField, goalSet)
	s.powerPellets = placePowerPellets(m.Grid, s.reachField, goalSet, s.pellets)
	s.initialPellets = len(s.pellets) + len(s.powerPellets)

	for i := range s.ghosts {
		s.ghosts[i] = newGhost(i, s.ghostSpawn(i))
	}

	s.player.lives = startingLives
	s.player.resetPosition(s.start)

	s.phase = PhaseReady
	s.readyTimer = readyDuration
	s.ghostBonus = baseGhostBonus
	s.ghostSpeedMult = 1.0
	s.sirenTier = -1
	s.cherrySpawnIn = s.uniform(10, 15)
	return s
}

// ghostSpawn returns ghost i's pen cell: its goal cell when the maze
// has enough, otherwise a ring around the grid centre.
func (s *Session) ghostSpawn(i int) maze.Cell {
	if i < len(s.goals) {
		return s.goals[i]
	}
	c := s.grid.Size() / 2
	defaults := [4]maze.Cell{
		{Row: c - 2, Col: c - 1},
		{Row: c - 1, Col: c - 2},
		{Row: c - 1, Col: c},
		{Row: c, Col: c - 1},
	}
	return defaults[i]
}

func (s *Session) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// RequestDirection buffers the player's next turn. It is consumed at
// the next cell-snapped decision point; renderers have no other way to
// mutate engine state.
func (s *Session) RequestDirection(d maze.Direction) {
	if s.phase.Terminal() || s.phase == PhaseDying {
		return
	}
	s.player.nextDir = d
}

// Advance runs one full engine tick: timers, state transitions,
// decisions, motion, collisions, then marker and ramp bookkeeping.
// dt is clamped so a stalled host cannot cause catch-up jumps.
func (s *Session) Advance(dt float64) {
	if s.phase.Terminal() {
		return
	}
	if dt > maxTickDelta {
		dt = maxTickDelta
	}
	if dt < 0 {
		dt = 0
	}
	s.tick++

	if s.eatPause > 0 {
		s.eatPause -= dt
		return
	}
	if s.phase == PhaseDying {
		s.deathTimer -= dt
		if s.deathTimer <= 0 {
			s.finishDeath()
		}
		return
	}
	if s.phase == PhaseReady {
		s.readyTimer -= dt
		if s.readyTimer <= 0 {
			s.phase = PhasePlaying
			s.log.Add(s.tick, "--", "phase", "change", "ready → playing", 0)
		}
		return
	}

	s.elapsed += dt

	s.updatePlayer(dt)
	if s.phase.Terminal() {
		return
	}
	s.updateGhosts(dt)
	s.updateFrightenedTimer(dt)
	if s.resolveCollisions() {
		return
	}
	s.updateCherry(dt)
	s.updateSirenTier()
}

// pelletFraction returns the fraction of all markers already consumed.
// A maze with zero markers ramps nothing rather than dividing by zero.
func (s *Session) pelletFraction() float64 {
	if s.initialPellets == 0 {
		return 0
	}
	eaten := s.initialPellets - len(s.pellets) - len(s.powerPellets)
	return float64(eaten) / float64(s.initialPellets)
}

func (s *Session) updatePlayer(dt float64) {
	p := &s.player
	if !p.moving {
		s.consumeMarkers()
		if s.phase.Terminal() {
			return
		}
		if p.nextDir != p.dir && !s.grid.HasWall(p.cell.Row, p.cell.Col, p.nextDir) {
			p.dir = p.nextDir
		}
		if !s.grid.HasWall(p.cell.Row, p.cell.Col, p.dir) {
			p.moving = true
		}
	}
	if p.moving {
		speed := playerBaseSpeed * (1 + math.Pow(s.pelletFraction(), 0.7)*playerMaxRampBonus)
		next := p.cell.Step(p.dir)
		var arrived bool
		p.x, p.y, arrived = advancePosition(p.x, p.y, p.dir, speed*cellSize*dt, next)
		if arrived {
			p.cell = next
			p.moving = false
			s.log.AddVerbose(s.tick, "P", "move", "arrive", next.String(), 0)
		}
	}
}

// consumeMarkers eats whatever sits on the player's current cell and
// checks the win condition. Runs only while the player is cell-snapped.
func (s *Session) consumeMarkers() {
	p := &s.player

	if s.pellets[p.cell] {
		delete(s.pellets, p.cell)
		p.score += pelletScore
		s.log.AddVerbose(s.tick, "P", "marker", "pellet", p.cell.String(), pelletScore)
	}
	if s.powerPellets[p.cell] {
		delete(s.powerPellets, p.cell)
		p.score += powerPelletScore
		s.frightenedTimer = frightenedDuration
		s.ghostBonus = baseGhostBonus
		s.log.Add(s.tick, "P", "marker", "power_pellet", p.cell.String(), powerPelletScore)
		for _, g := range s.ghosts {
			if g.state == GhostActive || g.state == GhostFrightened {
				if g.state == GhostActive {
					s.logGhostState(g, GhostFrightened)
				}
				g.state = GhostFrightened
				g.reversalPending = true
			}
		}
	}
	if s.cherry != nil && *s.cherry == p.cell {
		s.cherry = nil
		p.score += cherryScore
		s.cherrySpawnIn = s.uniform(10, 15)
		s.log.Add(s.tick, "P", "marker", "cherry", p.cell.String(), cherryScore)
	}

	if s.initialPellets > 0 && len(s.pellets) == 0 && len(s.powerPellets) == 0 {
		s.phase = PhaseWon
		s.log.Add(s.tick, "--", "phase", "change", "playing → won", 0)
	}
}

func (s *Session) updateGhosts(dt float64) {
	for _, g := range s.ghosts {
		if g.state == GhostWaiting {
			if s.elapsed < g.releaseDelay {
				continue
			}
			s.logGhostState(g, GhostActive)
			g.state = GhostActive
		}
		if !g.moving {
			s.decideGhost(g)
		}
		if g.moving {
			speed := g.speed * s.ghostSpeedFactor(g)
			next := g.cell.Step(g.dir)
			var arrived bool
			g.x, g.y, arrived = advancePosition(g.x, g.y, g.dir, speed*cellSize*dt, next)
			if arrived {
				g.cell = next
				g.moving = false
				s.log.AddVerbose(s.tick, s.ghostLabel(g), "move", "arrive", next.String(), 0)
			}
		}
	}
}

// decideGhost picks a direction for a cell-snapped ghost. A pending
// reversal is consumed exactly once here, taking precedence when legal;
// otherwise the state-appropriate planner runs. The ghost only starts
// moving when the chosen direction is actually open — a fully boxed-in
// ghost stays put and retries next tick.
func (s *Session) decideGhost(g *Ghost) {
	if g.reversalPending {
		g.reversalPending = false
		rev := g.dir.Opposite()
		if !s.grid.HasWall(g.cell.Row, g.cell.Col, rev) {
			g.dir = rev
		} else {
			g.dir = s.planGhost(g)
		}
	} else {
		if g.state == GhostEaten && s.goalSet[g.cell] {
			s.logGhostState(g, GhostActive)
			g.state = GhostActive
		}
		g.dir = s.planGhost(g)
	}
	if !s.grid.HasWall(g.cell.Row, g.cell.Col, g.dir) {
		g.moving = true
	}
}

func (s *Session) planGhost(g *Ghost) maze.Direction {
	switch g.state {
	case GhostEaten:
		return planHomeward(s.grid, g.cell, g.dir, s.homeField)
	case GhostFrightened:
		return planFrightened(s.grid, g.cell, g.dir, s.rng)
	default:
		tc := targetContext{
			grid:      s.grid,
			ghost:     g,
			player:    s.player.cell,
			playerDir: s.player.dir,
			chaser:    s.ghosts[PersonalityChase].cell,
		}
		target := targetStrategies[g.personality](tc)
		s.log.AddVerbose(s.tick, s.ghostLabel(g), "decide", "target", target.String(), 0)
		return planToward(s.grid, g.cell, g.dir, target)
	}
}

// ghostSpeedFactor returns the state-dependent speed multiplier: eaten
// eyes sprint home, frightened ghosts dawdle, pursuers ride the
// aggression ramp.
func (s *Session) ghostSpeedFactor(g *Ghost) float64 {
	switch g.state {
	case GhostEaten:
		return 2.0
	case GhostFrightened:
		return 0.8
	default:
		return s.ghostSpeedMult
	}
}

func (s *Session) updateFrightenedTimer(dt float64) {
	if s.frightenedTimer <= 0 {
		return
	}
	s.frightenedTimer -= dt
	if s.frightenedTimer > 0 {
		return
	}
	s.frightenedTimer = 0
	s.ghostBonus = baseGhostBonus
	for _, g := range s.ghosts {
		// Eaten ghosts keep returning home; only frightened ones revert.
		if g.state == GhostFrightened {
			s.logGhostState(g, GhostActive)
			g.state = GhostActive
		}
	}
	s.log.Add(s.tick, "--", "timer", "frightened_expired", "", 0)
}

// resolveCollisions runs the continuous-space proximity test between
// the player and every active or frightened ghost. Returns true when a
// death sequence started, ending the tick.
func (s *Session) resolveCollisions() bool {
	for _, g := range s.ghosts {
		if g.state != GhostActive && g.state != GhostFrightened {
			continue
		}
		dx := s.player.x - g.x
		dy := s.player.y - g.y
		if dx*dx+dy*dy >= collisionRadius*collisionRadius {
			continue
		}
		if g.state == GhostFrightened {
			s.logGhostState(g, GhostEaten)
			g.state = GhostEaten
			s.player.score += s.ghostBonus
			s.lastBonus = s.ghostBonus
			s.lastEatenGhost = g.id
			s.log.Add(s.tick, s.ghostLabel(g), "collision", "ghost_eaten", fmt.Sprintf("bonus=%d", s.ghostBonus), float64(s.ghostBonus))
			s.ghostBonus *= 2
			s.eatPause = eatPauseDuration
		} else {
			s.phase = PhaseDying
			s.deathTimer = deathDuration
			s.log.Add(s.tick, s.ghostLabel(g), "collision", "player_caught", g.cell.String(), 0)
			return true
		}
	}
	return false
}

// finishDeath ends the death sequence: last life loses the session,
// otherwise everyone resets and the ready hold restarts.
func (s *Session) finishDeath() {
	s.player.lives--
	s.log.Add(s.tick, "P", "score", "life_lost", fmt.Sprintf("lives=%d", s.player.lives), float64(s.player.lives))
	if s.player.lives <= 0 {
		s.phase = PhaseLost
		s.log.Add(s.tick, "--", "phase", "change", "dying → lost", 0)
		return
	}
	s.resetAfterDeath()
	s.phase = PhaseReady
	s.readyTimer = readyDuration
	s.log.Add(s.tick, "--", "phase", "change", "dying → ready", 0)
}

// resetAfterDeath restores start positions and the dormancy schedule.
// Pellets, score and the aggression ramp carry over.
func (s *Session) resetAfterDeath() {
	s.player.resetPosition(s.start)
	for _, g := range s.ghosts {
		g.reset()
	}
	s.elapsed = 0
	s.frightenedTimer = 0
	s.ghostBonus = baseGhostBonus
}

func (s *Session) updateCherry(dt float64) {
	if s.cherry != nil {
		s.cherryDespawnIn -= dt
		if s.cherryDespawnIn <= 0 {
			s.cherry = nil
			s.cherrySpawnIn = s.uniform(14, 18)
			s.log.AddVerbose(s.tick, "--", "marker", "cherry_despawn", "", 0)
		}
		return
	}
	s.cherrySpawnIn -= dt
	if s.cherrySpawnIn <= 0 {
		c := s.start
		s.cherry = &c
		s.cherryDespawnIn = s.uniform(9, 12)
		s.log.AddVerbose(s.tick, "--", "marker", "cherry_spawn", c.String(), 0)
	}
}

// updateSirenTier tracks the aggression ramp tier derived from the
// pellet fraction. Each advance past the first speeds every ghost up
// and queues a reversal on the pursuers, announcing the shift the way
// the arcade siren pitch did.
func (s *Session) updateSirenTier() {
	tier := int(s.pelletFraction() * sirenTierCount)
	if tier > sirenTierCount-1 {
		tier = sirenTierCount - 1
	}
	if tier == s.sirenTier {
		return
	}
	if s.sirenTier != -1 {
		s.ghostSpeedMult *= sirenTierBoost
		for _, g := range s.ghosts {
			if g.state == GhostActive {
				g.reversalPending = true
			}
		}
		s.log.Add(s.tick, "--", "timer", "siren_tier", fmt.Sprintf("%d → %d", s.sirenTier, tier), float64(tier))
	}
	s.sirenTier = tier
}

func (s *Session) ghostLabel(g *Ghost) string {
	return fmt.Sprintf("G%d", g.id)
}

func (s *Session) logGhostState(g *Ghost, to GhostState) {
	s.log.Add(s.tick, s.ghostLabel(g), "state", "change",
		fmt.Sprintf("%s → %s", g.state, to), 0)
}
