package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/derekchall/maze-pacman/internal/maze"
)

func targetCtx(size int, ghostCell, player maze.Cell, playerDir maze.Direction, chaser maze.Cell) targetContext {
	return targetContext{
		grid:      BuildTestMaze(WithGridSize(size)).Grid,
		ghost:     &Ghost{cell: ghostCell},
		player:    player,
		playerDir: playerDir,
		chaser:    chaser,
	}
}

func TestChaseTargetsPlayerCell(t *testing.T) {
	tc := targetCtx(10, maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 5, Col: 5}, maze.East, maze.Cell{})
	assert.Equal(t, maze.Cell{Row: 5, Col: 5}, chaseTarget(tc))
}

func TestAmbushTargetsFourAhead(t *testing.T) {
	player := maze.Cell{Row: 5, Col: 5}

	cases := []struct {
		dir  maze.Direction
		want maze.Cell
	}{
		{maze.East, maze.Cell{Row: 5, Col: 9}},
		{maze.South, maze.Cell{Row: 9, Col: 5}},
		{maze.West, maze.Cell{Row: 5, Col: 1}},
		// Facing north also shifts four columns west, reproducing the
		// arcade overflow quirk.
		{maze.North, maze.Cell{Row: 1, Col: 1}},
	}
	for _, c := range cases {
		tc := targetCtx(10, maze.Cell{}, player, c.dir, maze.Cell{})
		assert.Equal(t, c.want, ambushTarget(tc), "facing %s", c.dir)
	}
}

func TestAmbushTargetMayLeaveGrid(t *testing.T) {
	// Targets are aim points, not destinations; off-grid is fine.
	tc := targetCtx(10, maze.Cell{}, maze.Cell{Row: 9, Col: 9}, maze.South, maze.Cell{})
	assert.Equal(t, maze.Cell{Row: 13, Col: 9}, ambushTarget(tc))
}

func TestFlankDoublesChaserVector(t *testing.T) {
	// Anchor is two ahead of the player; the target mirrors the chaser
	// about the anchor.
	tc := targetCtx(12, maze.Cell{}, maze.Cell{Row: 5, Col: 5}, maze.East, maze.Cell{Row: 3, Col: 3})
	assert.Equal(t, maze.Cell{Row: 7, Col: 11}, flankTarget(tc))

	tc = targetCtx(12, maze.Cell{}, maze.Cell{Row: 5, Col: 5}, maze.North, maze.Cell{Row: 3, Col: 5})
	assert.Equal(t, maze.Cell{Row: 3, Col: 5}, flankTarget(tc))
}

func TestShyTargetSwitchesOnProximity(t *testing.T) {
	player := maze.Cell{Row: 0, Col: 0}

	// Far away (distance² > 64): chases the player directly.
	far := targetCtx(10, maze.Cell{Row: 9, Col: 9}, player, maze.East, maze.Cell{})
	assert.Equal(t, player, shyTarget(far))

	// Close (distance² ≤ 64): retreats to the bottom-left corner.
	near := targetCtx(10, maze.Cell{Row: 4, Col: 4}, player, maze.East, maze.Cell{})
	assert.Equal(t, maze.Cell{Row: 9, Col: 0}, shyTarget(near))

	// Exactly at the threshold counts as close.
	edge := targetCtx(10, maze.Cell{Row: 8, Col: 0}, player, maze.East, maze.Cell{})
	assert.Equal(t, maze.Cell{Row: 9, Col: 0}, shyTarget(edge))
}

func TestGhostResetRearmsDormancy(t *testing.T) {
	home := maze.Cell{Row: 3, Col: 4}
	g := newGhost(2, home)

	assert.Equal(t, PersonalityFlank, g.personality)
	assert.Equal(t, GhostWaiting, g.state)
	assert.InDelta(t, 2*releaseInterval, g.releaseDelay, 1e-9)

	g.state = GhostEaten
	g.cell = maze.Cell{Row: 0, Col: 0}
	g.moving = true
	g.reversalPending = true
	g.reset()

	assert.Equal(t, home, g.cell)
	assert.Equal(t, GhostWaiting, g.state)
	assert.Equal(t, maze.North, g.dir)
	assert.False(t, g.moving)
	assert.False(t, g.reversalPending)
	x, y := cellCenter(home)
	assert.Equal(t, x, g.x)
	assert.Equal(t, y, g.y)
}

func TestGhostSpeedsByPersonality(t *testing.T) {
	// Flank is the fastest, shy the slowest; the ordering is part of the
	// game feel and must not drift.
	assert.Greater(t, ghostSpeeds[PersonalityFlank], ghostSpeeds[PersonalityChase])
	assert.Greater(t, ghostSpeeds[PersonalityChase], ghostSpeeds[PersonalityAmbush])
	assert.Greater(t, ghostSpeeds[PersonalityAmbush], ghostSpeeds[PersonalityShy])
}
