package maze

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Maze is a decoded maze editor export: the wall grid plus the player
// start cell and the ghost home cells.
type Maze struct {
	Grid  *Grid
	Start Cell
	Goals []Cell
}

// mazeFile mirrors the JSON layout written by the maze editor.
type mazeFile struct {
	GridSize  int      `json:"grid_size"`
	HWalls    [][]bool `json:"h_walls"`
	VWalls    [][]bool `json:"v_walls"`
	StartCell []int    `json:"start_cell"`
	GoalCells [][]int  `json:"goal_cells"`
}

// Load reads and decodes a maze JSON file. Any failure is fatal to the
// caller: no session may be constructed from a partial maze.
func Load(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read maze file: %w", err)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return m, nil
}

// Decode parses and validates a maze editor export.
func Decode(data []byte) (*Maze, error) {
	var mf mazeFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse maze JSON: %w", err)
	}

	grid, err := NewGrid(mf.GridSize, mf.HWalls, mf.VWalls)
	if err != nil {
		return nil, err
	}

	// The editor places the start in the bottom-left corner when the
	// field is absent.
	start := Cell{Row: mf.GridSize - 1, Col: 0}
	if mf.StartCell != nil {
		if len(mf.StartCell) != 2 {
			return nil, fmt.Errorf("start_cell must be [row, col], got %v", mf.StartCell)
		}
		start = Cell{Row: mf.StartCell[0], Col: mf.StartCell[1]}
		if !grid.Contains(start) {
			return nil, fmt.Errorf("start_cell %v outside %dx%d grid", start, mf.GridSize, mf.GridSize)
		}
	}

	goals := make([]Cell, 0, len(mf.GoalCells))
	for _, gc := range mf.GoalCells {
		if len(gc) != 2 {
			return nil, fmt.Errorf("goal cell must be [row, col], got %v", gc)
		}
		c := Cell{Row: gc[0], Col: gc[1]}
		if !grid.Contains(c) {
			logrus.Warnf("maze: ignoring goal cell %v outside grid", c)
			continue
		}
		goals = append(goals, c)
	}
	if len(mf.GoalCells) > 0 && len(goals) == 0 {
		logrus.Warn("maze: all goal cells were outside the grid, falling back to centre")
	}

	return &Maze{Grid: grid, Start: start, Goals: goals}, nil
}
