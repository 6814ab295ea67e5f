package game

import "github.com/derekchall/maze-pacman/internal/maze"

// simBuilder accumulates a synthetic maze for headless sessions. Tests
// and the headless reporter build small mazes directly instead of
// shipping JSON fixtures. The grid starts fully open inside a closed
// boundary (closure comes from the grid's fail-closed edge queries).
type simBuilder struct {
	size    int
	hWalls  []wallSpot
	vWalls  []wallSpot
	start   maze.Cell
	goals   []maze.Cell
	seed    int64
	verbose bool
	withLog bool
}

type wallSpot struct{ row, col int }

// SimOption configures a headless session under construction.
type SimOption func(*simBuilder)

// WithGridSize sets the maze edge length in cells.
func WithGridSize(n int) SimOption {
	return func(b *simBuilder) { b.size = n }
}

// WithHWall places a wall on the north edge of cell (row, col).
func WithHWall(row, col int) SimOption {
	return func(b *simBuilder) { b.hWalls = append(b.hWalls, wallSpot{row, col}) }
}

// WithVWall places a wall on the west edge of cell (row, col).
func WithVWall(row, col int) SimOption {
	return func(b *simBuilder) { b.vWalls = append(b.vWalls, wallSpot{row, col}) }
}

// WithStart sets the player start cell.
func WithStart(row, col int) SimOption {
	return func(b *simBuilder) { b.start = maze.Cell{Row: row, Col: col} }
}

// WithGoal adds a ghost home cell.
func WithGoal(row, col int) SimOption {
	return func(b *simBuilder) { b.goals = append(b.goals, maze.Cell{Row: row, Col: col}) }
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return func(b *simBuilder) { b.seed = seed }
}

// WithLog attaches a SimLog; verbose also records per-tick motion.
func WithLog(verbose bool) SimOption {
	return func(b *simBuilder) { b.withLog = true; b.verbose = verbose }
}

// NewTestSession builds a session over a synthetic maze described by
// the options. Defaults: 8×8 open grid, start bottom-left, goal at the
// structural centre, seed 1, no log.
func NewTestSession(opts ...SimOption) *Session {
	b := &simBuilder{size: 8, start: maze.Cell{Row: -1, Col: -1}, seed: 1}
	for _, o := range opts {
		o(b)
	}

	var log *SimLog
	if b.withLog {
		log = NewSimLog(b.verbose)
	}
	return NewSession(b.build(), b.seed, log)
}

// BuildTestMaze exposes the synthetic maze itself, for callers that
// need the grid without a session (the headless reporter's scenarios).
func BuildTestMaze(opts ...SimOption) *maze.Maze {
	b := &simBuilder{size: 8, start: maze.Cell{Row: -1, Col: -1}, seed: 1}
	for _, o := range opts {
		o(b)
	}
	return b.build()
}

func (b *simBuilder) build() *maze.Maze {
	h := make([][]bool, b.size+1)
	for i := range h {
		h[i] = make([]bool, b.size)
	}
	v := make([][]bool, b.size)
	for i := range v {
		v[i] = make([]bool, b.size+1)
	}
	for _, w := range b.hWalls {
		h[w.row][w.col] = true
	}
	for _, w := range b.vWalls {
		v[w.row][w.col] = true
	}

	grid, err := maze.NewGrid(b.size, h, v)
	if err != nil {
		panic(err) // builder dimensions are constructed to match
	}
	start := b.start
	if start.Row < 0 {
		start = maze.Cell{Row: b.size - 1, Col: 0}
	}
	return &maze.Maze{Grid: grid, Start: start, Goals: b.goals}
}
