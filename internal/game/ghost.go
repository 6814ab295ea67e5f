package game

import "github.com/derekchall/maze-pacman/internal/maze"

// Personality selects a ghost's targeting strategy. The four kinds
// reproduce the classic arcade behaviours.
type Personality int

const (
	PersonalityChase  Personality = iota // heads straight for the player
	PersonalityAmbush                    // aims four cells ahead of the player
	PersonalityFlank                     // mirrors the chaser about a point ahead of the player
	PersonalityShy                       // chases from afar, retreats to its corner up close
)

func (p Personality) String() string {
	switch p {
	case PersonalityChase:
		return "chase"
	case PersonalityAmbush:
		return "ambush"
	case PersonalityFlank:
		return "flank"
	case PersonalityShy:
		return "shy"
	default:
		return "unknown"
	}
}

// GhostState is a ghost's behavioural state.
type GhostState int

const (
	GhostWaiting    GhostState = iota // in the pen, release timer running
	GhostActive                       // pursuing the player
	GhostFrightened                   // vulnerable, moving at random
	GhostEaten                        // eyes only, returning to a home cell
)

func (gs GhostState) String() string {
	switch gs {
	case GhostWaiting:
		return "waiting"
	case GhostActive:
		return "active"
	case GhostFrightened:
		return "frightened"
	case GhostEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// ghostSpeeds is the base speed of each personality in cells per second.
var ghostSpeeds = [4]float64{
	PersonalityChase:  2.4,
	PersonalityAmbush: 2.3,
	PersonalityFlank:  2.6,
	PersonalityShy:    2.2,
}

// Ghost is one pursuit agent. Its discrete cell and continuous pixel
// position stay consistent: while moving, (x,y) lies between the cell
// centre and the centre of the cell it is heading into.
type Ghost struct {
	id          int
	personality Personality

	cell maze.Cell
	x, y float64
	dir  maze.Direction

	state           GhostState
	releaseDelay    float64 // seconds of gameplay before leaving the pen
	moving          bool
	reversalPending bool

	speed float64 // cells per second before state multipliers
	home  maze.Cell
}

func newGhost(id int, home maze.Cell) *Ghost {
	g := &Ghost{
		id:          id,
		personality: Personality(id),
		speed:       ghostSpeeds[id],
		home:        home,
	}
	g.reset()
	return g
}

// reset puts the ghost back in the pen with its dormancy timer rearmed.
func (g *Ghost) reset() {
	g.cell = g.home
	g.x, g.y = cellCenter(g.home)
	g.dir = maze.North
	g.state = GhostWaiting
	g.releaseDelay = float64(g.id) * releaseInterval
	g.moving = false
	g.reversalPending = false
}

// targetContext carries the world state a targeting strategy may read.
type targetContext struct {
	grid      *maze.Grid
	ghost     *Ghost
	player    maze.Cell
	playerDir maze.Direction
	chaser    maze.Cell // current cell of the chase-personality ghost
}

type targetFunc func(targetContext) maze.Cell

// targetStrategies dispatches target selection by personality. Adding a
// personality means adding a row here, not editing a shared branch.
var targetStrategies = [4]targetFunc{
	PersonalityChase:  chaseTarget,
	PersonalityAmbush: ambushTarget,
	PersonalityFlank:  flankTarget,
	PersonalityShy:    shyTarget,
}

func chaseTarget(tc targetContext) maze.Cell {
	return tc.player
}

// ambushTarget aims four cells ahead of the player's facing. When the
// player faces north the target is additionally shifted four columns
// west. That asymmetry reproduces the arcade original's overflow quirk
// and is deliberate, not a bug.
func ambushTarget(tc targetContext) maze.Cell {
	t := maze.Cell{
		Row: tc.player.Row + 4*tc.playerDir.DeltaRow(),
		Col: tc.player.Col + 4*tc.playerDir.DeltaCol(),
	}
	if tc.playerDir == maze.North {
		t.Col -= 4
	}
	return t
}

// flankTarget doubles the vector from the chaser to the point two cells
// ahead of the player: target = anchor + (anchor - chaser).
func flankTarget(tc targetContext) maze.Cell {
	anchor := maze.Cell{
		Row: tc.player.Row + 2*tc.playerDir.DeltaRow(),
		Col: tc.player.Col + 2*tc.playerDir.DeltaCol(),
	}
	return maze.Cell{
		Row: anchor.Row + (anchor.Row - tc.chaser.Row),
		Col: anchor.Col + (anchor.Col - tc.chaser.Col),
	}
}

// shyRetreatDistSq is the squared cell distance inside which the shy
// ghost gives up the chase and heads for its corner.
const shyRetreatDistSq = 64

func shyTarget(tc targetContext) maze.Cell {
	dr := tc.ghost.cell.Row - tc.player.Row
	dc := tc.ghost.cell.Col - tc.player.Col
	if dr*dr+dc*dc > shyRetreatDistSq {
		return tc.player
	}
	return maze.Cell{Row: tc.grid.Size() - 1, Col: 0}
}
