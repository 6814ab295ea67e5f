package game

import (
	"testing"

	"github.com/derekchall/maze-pacman/internal/maze"
)

func TestDistanceFieldSingleSeed(t *testing.T) {
	g := BuildTestMaze(WithGridSize(4)).Grid
	f := ComputeDistanceField(g, []maze.Cell{{Row: 0, Col: 0}})

	if got := f.At(maze.Cell{Row: 0, Col: 0}); got != 0 {
		t.Fatalf("seed distance = %d, want 0", got)
	}
	// Open grid: the hop count is the Manhattan distance.
	if got := f.At(maze.Cell{Row: 3, Col: 3}); got != 6 {
		t.Errorf("far corner = %d, want 6", got)
	}
	if got := f.At(maze.Cell{Row: 1, Col: 2}); got != 3 {
		t.Errorf("(1,2) = %d, want 3", got)
	}
}

func TestDistanceFieldNeighbourProperty(t *testing.T) {
	// Any reached non-seed cell must have an open neighbour exactly one
	// hop closer; that is what a homeward gradient walk relies on.
	g := BuildTestMaze(
		WithGridSize(6),
		WithHWall(2, 1), WithHWall(2, 2), WithHWall(2, 3),
		WithVWall(4, 3), WithVWall(5, 3),
	).Grid
	f := ComputeDistanceField(g, []maze.Cell{{Row: 0, Col: 0}})

	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			cell := maze.Cell{Row: r, Col: c}
			d := f.At(cell)
			if d <= 0 {
				continue
			}
			found := false
			for _, dir := range []maze.Direction{maze.North, maze.East, maze.South, maze.West} {
				if g.HasWall(r, c, dir) {
					continue
				}
				if f.At(cell.Step(dir)) == d-1 {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("cell %s at distance %d has no neighbour at %d", cell, d, d-1)
			}
		}
	}
}

func TestDistanceFieldUnreachableCell(t *testing.T) {
	// Seal off (0,0) entirely: south and east walls, boundary closes the rest.
	g := BuildTestMaze(WithGridSize(3), WithHWall(1, 0), WithVWall(0, 1)).Grid
	f := ComputeDistanceField(g, []maze.Cell{{Row: 2, Col: 2}})

	if f.Reachable(maze.Cell{Row: 0, Col: 0}) {
		t.Error("sealed cell must stay unreached")
	}
	if got := f.At(maze.Cell{Row: 0, Col: 0}); got != unreachedDistance {
		t.Errorf("sealed cell distance = %d, want sentinel", got)
	}
	if !f.Reachable(maze.Cell{Row: 0, Col: 1}) {
		t.Error("open cell should be reached")
	}
}

func TestDistanceFieldOutsideGrid(t *testing.T) {
	g := BuildTestMaze(WithGridSize(3)).Grid
	f := ComputeDistanceField(g, []maze.Cell{{Row: 0, Col: 0}})

	for _, c := range []maze.Cell{{Row: -1, Col: 0}, {Row: 3, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 3}} {
		if got := f.At(c); got != unreachedDistance {
			t.Errorf("At(%s) = %d, want sentinel", c, got)
		}
	}
}

func TestDistanceFieldMultiSource(t *testing.T) {
	g := BuildTestMaze(WithGridSize(5)).Grid
	f := ComputeDistanceField(g, []maze.Cell{{Row: 0, Col: 0}, {Row: 4, Col: 4}})

	// Each cell takes the nearer seed.
	if got := f.At(maze.Cell{Row: 0, Col: 1}); got != 1 {
		t.Errorf("(0,1) = %d, want 1", got)
	}
	if got := f.At(maze.Cell{Row: 4, Col: 3}); got != 1 {
		t.Errorf("(4,3) = %d, want 1", got)
	}
	if got := f.At(maze.Cell{Row: 2, Col: 2}); got != 4 {
		t.Errorf("(2,2) = %d, want 4", got)
	}
}

func TestDistanceFieldEmptySeedsFallBackToCentre(t *testing.T) {
	g := BuildTestMaze(WithGridSize(8)).Grid
	f := ComputeDistanceField(g, nil)

	if got := f.At(g.CenterCell()); got != 0 {
		t.Fatalf("centre fallback distance = %d, want 0", got)
	}
	if f.MaxDistance() == 0 {
		t.Error("flood should reach beyond the centre")
	}
}
