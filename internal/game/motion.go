package game

import "github.com/derekchall/maze-pacman/internal/maze"

// cellSize is the engine's world-space cell width in pixels. Motion
// speeds and the collision radius are derived from it; the renderer
// rescales world space to the window independently.
const cellSize = 32.0

// cellCenter returns the world-space centre of a cell.
func cellCenter(c maze.Cell) (float64, float64) {
	return (float64(c.Col) + 0.5) * cellSize, (float64(c.Row) + 0.5) * cellSize
}

// advancePosition moves a continuous position dist pixels along dir and
// reports arrival at the centre of next. Arrival is a signed comparison
// on the axis of travel — reached or passed the centre — never a
// distance threshold, so a large step cannot tunnel past the snap
// point. On arrival the position snaps exactly to the centre.
func advancePosition(x, y float64, dir maze.Direction, dist float64, next maze.Cell) (nx, ny float64, arrived bool) {
	cx, cy := cellCenter(next)
	nx = x + float64(dir.DeltaCol())*dist
	ny = y + float64(dir.DeltaRow())*dist
	switch dir {
	case maze.East:
		arrived = nx >= cx
	case maze.West:
		arrived = nx <= cx
	case maze.South:
		arrived = ny >= cy
	case maze.North:
		arrived = ny <= cy
	}
	if arrived {
		nx, ny = cx, cy
	}
	return nx, ny, arrived
}
