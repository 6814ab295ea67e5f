package game

import "github.com/derekchall/maze-pacman/internal/maze"

// AgentSnapshot is the per-tick view of one moving agent.
type AgentSnapshot struct {
	Cell   maze.Cell
	X, Y   float64 // continuous world-space position
	Dir    maze.Direction
	Moving bool
}

// GhostSnapshot extends AgentSnapshot with ghost identity and state.
type GhostSnapshot struct {
	AgentSnapshot
	ID          int
	Personality Personality
	State       GhostState
}

// Snapshot is the engine's per-tick output. Renderers and reporters
// consume it read-only; the buffered direction input is the only way
// back into the engine.
type Snapshot struct {
	Tick  int
	Phase Phase

	Player PlayerSnapshot
	Ghosts [4]GhostSnapshot

	FrightenedTimer float64
	ReadyTimer      float64
	DeathTimer      float64
	EatPause        float64

	SirenTier   int
	PelletsLeft int
	Cherry      *maze.Cell

	// LastBonus and LastEatenGhost describe the most recent frightened
	// catch, for the score popup.
	LastBonus      int
	LastEatenGhost int
}

// PlayerSnapshot is the player slice of a Snapshot.
type PlayerSnapshot struct {
	AgentSnapshot
	Score int
	Lives int
}

// Snapshot builds the current per-tick output.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  s.tick,
		Phase: s.phase,
		Player: PlayerSnapshot{
			AgentSnapshot: AgentSnapshot{
				Cell:   s.player.cell,
				X:      s.player.x,
				Y:      s.player.y,
				Dir:    s.player.dir,
				Moving: s.player.moving,
			},
			Score: s.player.score,
			Lives: s.player.lives,
		},
		FrightenedTimer: s.frightenedTimer,
		ReadyTimer:      s.readyTimer,
		DeathTimer:      s.deathTimer,
		EatPause:        s.eatPause,
		SirenTier:       s.sirenTier,
		PelletsLeft:     len(s.pellets) + len(s.powerPellets),
		LastBonus:       s.lastBonus,
		LastEatenGhost:  s.lastEatenGhost,
	}
	if s.cherry != nil {
		c := *s.cherry
		snap.Cherry = &c
	}
	for i, g := range s.ghosts {
		snap.Ghosts[i] = GhostSnapshot{
			AgentSnapshot: AgentSnapshot{
				Cell:   g.cell,
				X:      g.x,
				Y:      g.y,
				Dir:    g.dir,
				Moving: g.moving,
			},
			ID:          g.id,
			Personality: g.personality,
			State:       g.state,
		}
	}
	return snap
}
