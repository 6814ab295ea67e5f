package game

import (
	"math"
	"math/rand"

	"github.com/derekchall/maze-pacman/internal/maze"
)

// plannerOrder is the fixed priority in which directions are examined
// everywhere a tie can occur: north, west, south, east.
var plannerOrder = [4]maze.Direction{maze.North, maze.West, maze.South, maze.East}

// legalMoves returns the open directions out of cell in plannerOrder,
// with the reverse of facing removed unless it is the only way out.
func legalMoves(g *maze.Grid, cell maze.Cell, facing maze.Direction) []maze.Direction {
	moves := make([]maze.Direction, 0, 4)
	for _, d := range plannerOrder {
		if !g.HasWall(cell.Row, cell.Col, d) {
			moves = append(moves, d)
		}
	}
	if len(moves) > 1 {
		rev := facing.Opposite()
		for i, d := range moves {
			if d == rev {
				moves = append(moves[:i], moves[i+1:]...)
				break
			}
		}
	}
	return moves
}

// planToward picks the legal non-reversing move whose neighbouring cell
// has the smallest squared Euclidean distance to target. Ties resolve
// to the earliest direction in plannerOrder. When the cell has no open
// edge besides the reverse, the reverse is returned.
func planToward(g *maze.Grid, cell maze.Cell, facing maze.Direction, target maze.Cell) maze.Direction {
	best := facing.Opposite()
	bestDist := math.MaxInt
	for _, d := range legalMoves(g, cell, facing) {
		n := cell.Step(d)
		dr := target.Row - n.Row
		dc := target.Col - n.Col
		if dist := dr*dr + dc*dc; dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

// planFrightened picks uniformly at random among legal non-reversing
// moves, reversing only when the ghost is boxed in on three sides.
func planFrightened(g *maze.Grid, cell maze.Cell, facing maze.Direction, rng *rand.Rand) maze.Direction {
	moves := legalMoves(g, cell, facing)
	if len(moves) == 0 {
		return facing.Opposite()
	}
	return moves[rng.Intn(len(moves))]
}

// planHomeward follows the return field downhill: the first direction
// in plannerOrder whose neighbour has a strictly smaller distance. For
// any reachable non-home cell such a neighbour exists by the BFS
// invariant. From an unreachable cell the current facing is kept and
// the ghost stays put against whatever wall stopped it.
func planHomeward(g *maze.Grid, cell maze.Cell, facing maze.Direction, home *DistanceField) maze.Direction {
	cur := home.At(cell)
	for _, d := range plannerOrder {
		if g.HasWall(cell.Row, cell.Col, d) {
			continue
		}
		nd := home.At(cell.Step(d))
		if nd == unreachedDistance {
			continue
		}
		if cur == unreachedDistance || nd < cur {
			return d
		}
	}
	return facing
}
