package game

import "github.com/derekchall/maze-pacman/internal/maze"

// unreachedDistance marks cells no seed can reach.
const unreachedDistance = -1

// DistanceField holds the shortest hop count from every cell to a seed
// set, computed once by multi-source breadth-first flood over the maze
// walls. The session keeps two: the ghost return field seeded from the
// goal cells, and the reachability field seeded from the player start.
// Neither changes after construction.
type DistanceField struct {
	size int
	dist []int
}

// ComputeDistanceField floods outward from the seed cells. Every seed
// gets distance 0; each neighbour reachable through an open edge gets
// the distance of the cell it was first reached from, plus one. An
// empty seed set falls back to the grid's structural centre so the
// field is never degenerate.
func ComputeDistanceField(g *maze.Grid, seeds []maze.Cell) *DistanceField {
	size := g.Size()
	f := &DistanceField{size: size, dist: make([]int, size*size)}
	for i := range f.dist {
		f.dist[i] = unreachedDistance
	}

	if len(seeds) == 0 {
		seeds = []maze.Cell{g.CenterCell()}
	}

	queue := make([]maze.Cell, 0, size*size)
	for _, s := range seeds {
		if !g.Contains(s) || f.At(s) == 0 {
			continue
		}
		f.dist[s.Row*size+s.Col] = 0
		queue = append(queue, s)
	}

	for head := 0; head < len(queue); head++ {
		c := queue[head]
		d := f.At(c)
		for _, dir := range plannerOrder {
			if g.HasWall(c.Row, c.Col, dir) {
				continue
			}
			n := c.Step(dir)
			if f.At(n) != unreachedDistance {
				continue
			}
			f.dist[n.Row*size+n.Col] = d + 1
			queue = append(queue, n)
		}
	}
	return f
}

// At returns the hop distance of a cell, or unreachedDistance when the
// cell is outside the grid or cut off from every seed.
func (f *DistanceField) At(c maze.Cell) int {
	if c.Row < 0 || c.Row >= f.size || c.Col < 0 || c.Col >= f.size {
		return unreachedDistance
	}
	return f.dist[c.Row*f.size+c.Col]
}

// Reachable reports whether a cell was reached by the flood.
func (f *DistanceField) Reachable(c maze.Cell) bool {
	return f.At(c) != unreachedDistance
}

// MaxDistance returns the largest finite distance in the field: the
// flood's eccentricity, which bounds any gradient-descent walk.
func (f *DistanceField) MaxDistance() int {
	max := 0
	for _, d := range f.dist {
		if d > max {
			max = d
		}
	}
	return max
}
