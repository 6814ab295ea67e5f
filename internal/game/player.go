package game

import "github.com/derekchall/maze-pacman/internal/maze"

const (
	playerBaseSpeed    = 2.5 // cells per second
	playerMaxRampBonus = 1.5 // extra speed fraction at 100% pellets eaten
	startingLives      = 3
)

// Player is the player-controlled agent. Direction changes arrive as a
// buffered nextDir and are consumed at the next cell-snapped decision
// point, so a turn pressed mid-corridor takes effect at the corner.
type Player struct {
	cell    maze.Cell
	x, y    float64
	dir     maze.Direction
	nextDir maze.Direction
	moving  bool

	score int
	lives int
}

// resetPosition puts the player back at the start cell facing east.
// Score and lives survive a life-loss reset; only motion state clears.
func (p *Player) resetPosition(start maze.Cell) {
	p.cell = start
	p.x, p.y = cellCenter(start)
	p.dir = maze.East
	p.nextDir = maze.East
	p.moving = false
}
