package game

import (
	"testing"

	"github.com/derekchall/maze-pacman/internal/maze"
)

func TestAdvancePositionPartialStep(t *testing.T) {
	x, y := cellCenter(maze.Cell{Row: 0, Col: 0})
	next := maze.Cell{Row: 0, Col: 1}

	nx, ny, arrived := advancePosition(x, y, maze.East, 10, next)
	if arrived {
		t.Fatal("ten pixels east must not reach the next centre")
	}
	if nx != x+10 || ny != y {
		t.Fatalf("position = (%.1f,%.1f), want (%.1f,%.1f)", nx, ny, x+10, y)
	}
}

func TestAdvancePositionSnapsExactly(t *testing.T) {
	cases := []struct {
		dir  maze.Direction
		from maze.Cell
		next maze.Cell
	}{
		{maze.East, maze.Cell{Row: 2, Col: 1}, maze.Cell{Row: 2, Col: 2}},
		{maze.West, maze.Cell{Row: 2, Col: 1}, maze.Cell{Row: 2, Col: 0}},
		{maze.South, maze.Cell{Row: 1, Col: 2}, maze.Cell{Row: 2, Col: 2}},
		{maze.North, maze.Cell{Row: 1, Col: 2}, maze.Cell{Row: 0, Col: 2}},
	}
	for _, c := range cases {
		x, y := cellCenter(c.from)
		cx, cy := cellCenter(c.next)

		// A step past the centre arrives and snaps to it exactly; no
		// residual float drift may accumulate across cells.
		nx, ny, arrived := advancePosition(x, y, c.dir, cellSize*1.3, c.next)
		if !arrived {
			t.Fatalf("%s: overlong step did not arrive", c.dir)
		}
		if nx != cx || ny != cy {
			t.Fatalf("%s: snapped to (%v,%v), want exactly (%v,%v)", c.dir, nx, ny, cx, cy)
		}
	}
}

func TestAdvancePositionCannotTunnel(t *testing.T) {
	// Arrival is a signed axis comparison, so even an absurd step stops
	// at the next centre instead of jumping a cell.
	x, y := cellCenter(maze.Cell{Row: 0, Col: 0})
	next := maze.Cell{Row: 0, Col: 1}

	nx, ny, arrived := advancePosition(x, y, maze.East, 10*cellSize, next)
	cx, cy := cellCenter(next)
	if !arrived || nx != cx || ny != cy {
		t.Fatalf("got (%v,%v,%v), want snap to (%v,%v)", nx, ny, arrived, cx, cy)
	}
}

func TestAdvancePositionApproachesWithoutArriving(t *testing.T) {
	x, y := cellCenter(maze.Cell{Row: 3, Col: 3})
	next := maze.Cell{Row: 2, Col: 3}
	_, ty := cellCenter(next)

	// Many small steps: strictly monotonic approach, arrival only once
	// the centre line is crossed.
	for i := 0; i < 1000; i++ {
		var arrived bool
		px := y
		x, y, arrived = advancePosition(x, y, maze.North, 0.05, next)
		if y > px {
			t.Fatal("northbound step moved south")
		}
		if arrived {
			if y != ty {
				t.Fatalf("arrived off-centre at y=%v, want %v", y, ty)
			}
			return
		}
	}
	t.Fatal("never arrived")
}

func TestCellCenter(t *testing.T) {
	x, y := cellCenter(maze.Cell{Row: 0, Col: 0})
	if x != cellSize/2 || y != cellSize/2 {
		t.Fatalf("origin centre = (%v,%v)", x, y)
	}
	x, y = cellCenter(maze.Cell{Row: 2, Col: 5})
	if x != 5.5*cellSize || y != 2.5*cellSize {
		t.Fatalf("centre = (%v,%v)", x, y)
	}
}
