// Package maze holds the immutable wall topology of a loaded maze and
// the cell/direction primitives the engine navigates with.
package maze

import "fmt"

// Direction is one of the four cardinal grid directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var (
	deltaRow = [4]int{-1, 0, 1, 0}
	deltaCol = [4]int{0, 1, 0, -1}
)

// DeltaRow returns the row step of one move in this direction.
func (d Direction) DeltaRow() int { return deltaRow[d] }

// DeltaCol returns the column step of one move in this direction.
func (d Direction) DeltaCol() int { return deltaCol[d] }

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Cell addresses one grid square by row and column.
type Cell struct {
	Row int
	Col int
}

// Step returns the neighbouring cell in the given direction.
func (c Cell) Step(d Direction) Cell {
	return Cell{Row: c.Row + d.DeltaRow(), Col: c.Col + d.DeltaCol()}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is the wall topology of a maze. It is immutable after
// construction: the engine only ever queries it.
//
// hWalls[r][c] is the wall on the north edge of cell (r,c), sized
// (size+1)×size so hWalls[size][c] is the south boundary. vWalls[r][c]
// is the wall on the west edge of cell (r,c), sized size×(size+1) so
// vWalls[r][size] is the east boundary. A single matrix entry is shared
// by both cells adjacent to an edge, so wall adjacency is symmetric by
// construction.
type Grid struct {
	size   int
	hWalls [][]bool
	vWalls [][]bool
}

// NewGrid validates the wall matrices against size and wraps them.
func NewGrid(size int, hWalls, vWalls [][]bool) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", size)
	}
	if len(hWalls) != size+1 {
		return nil, fmt.Errorf("h_walls has %d rows, want %d", len(hWalls), size+1)
	}
	for r, row := range hWalls {
		if len(row) != size {
			return nil, fmt.Errorf("h_walls row %d has %d columns, want %d", r, len(row), size)
		}
	}
	if len(vWalls) != size {
		return nil, fmt.Errorf("v_walls has %d rows, want %d", len(vWalls), size)
	}
	for r, row := range vWalls {
		if len(row) != size+1 {
			return nil, fmt.Errorf("v_walls row %d has %d columns, want %d", r, len(row), size+1)
		}
	}
	return &Grid{size: size, hWalls: hWalls, vWalls: vWalls}, nil
}

// Size returns the grid edge length in cells.
func (g *Grid) Size() int { return g.size }

// Contains reports whether the cell lies inside the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// HasWall reports whether movement out of (row,col) in direction d is
// blocked. Queries from outside the grid, or whose neighbour would lie
// outside the grid, report a wall: the boundary fails closed and
// nothing can leave the maze even when the outer wall matrices are
// incomplete.
func (g *Grid) HasWall(row, col int, d Direction) bool {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return true
	}
	if !g.Contains(Cell{Row: row + d.DeltaRow(), Col: col + d.DeltaCol()}) {
		return true
	}
	switch d {
	case North:
		return g.hWalls[row][col]
	case East:
		return g.vWalls[row][col+1]
	case South:
		return g.hWalls[row+1][col]
	case West:
		return g.vWalls[row][col]
	}
	return true
}

// CenterCell returns the structural centre used as the fallback seed
// when a maze carries no goal cells.
func (g *Grid) CenterCell() Cell {
	return Cell{Row: g.size/2 - 1, Col: g.size/2 - 1}
}
