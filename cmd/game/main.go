package main

import (
	"flag"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/derekchall/maze-pacman/internal/game"
	"github.com/derekchall/maze-pacman/internal/maze"
)

func main() {
	var mazePath string
	var soundDir string
	var seed int64

	flag.StringVar(&mazePath, "maze", "maze_pacman_data.json", "maze editor JSON export to play")
	flag.StringVar(&soundDir, "sounds", "sounds", "directory of optional wav assets")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	flag.Parse()

	m, err := maze.Load(mazePath)
	if err != nil {
		logrus.Fatalf("cannot start: %v", err)
	}
	logrus.Infof("loaded %dx%d maze, start %s, %d goal cells",
		m.Grid.Size(), m.Grid.Size(), m.Start, len(m.Goals))

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sounds := game.NewSoundBank(soundDir)

	ebiten.SetWindowTitle("Pac-Man")
	ebiten.SetWindowSize(900, 940)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game.NewGame(m, seed, sounds)); err != nil {
		logrus.Fatal(err)
	}
}
