package game

import "github.com/derekchall/maze-pacman/internal/maze"

const (
	pelletScore      = 10
	powerPelletScore = 50
	cherryScore      = 100
)

// placePellets fills every cell the player can reach, except the goal
// cells, with a plain pellet. Reachability comes from the flood field
// seeded at the start cell, so walled-off pockets stay empty.
func placePellets(g *maze.Grid, reach *DistanceField, goalSet map[maze.Cell]bool) map[maze.Cell]bool {
	pellets := make(map[maze.Cell]bool)
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			cell := maze.Cell{Row: r, Col: c}
			if reach.Reachable(cell) && !goalSet[cell] {
				pellets[cell] = true
			}
		}
	}
	return pellets
}

// placePowerPellets puts one power pellet near each corner, searching
// inward over a size/4 window for the first reachable non-goal cell.
// Cells that win a power pellet lose their plain pellet.
func placePowerPellets(g *maze.Grid, reach *DistanceField, goalSet map[maze.Cell]bool, pellets map[maze.Cell]bool) map[maze.Cell]bool {
	gs := g.Size()
	power := make(map[maze.Cell]bool)
	corners := []maze.Cell{
		{Row: 1, Col: 1},
		{Row: 1, Col: gs - 2},
		{Row: gs - 2, Col: 1},
		{Row: gs - 2, Col: gs - 2},
	}

	for _, corner := range corners {
		placed := false
		for rOff := 0; rOff < gs/4 && !placed; rOff++ {
			for cOff := 0; cOff < gs/4; cOff++ {
				check := corner
				if corner.Row < gs/2 {
					check.Row += rOff
				} else {
					check.Row -= rOff
				}
				if corner.Col < gs/2 {
					check.Col += cOff
				} else {
					check.Col -= cOff
				}
				if reach.Reachable(check) && !goalSet[check] {
					power[check] = true
					placed = true
					break
				}
			}
		}
	}

	for cell := range power {
		delete(pellets, cell)
	}
	return power
}
