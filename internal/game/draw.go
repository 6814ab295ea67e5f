package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/derekchall/maze-pacman/internal/maze"
)

// margin is the pixel gap between the window edge and the maze.
const margin = 25

// livesStripHeight reserves room under the maze for the lives display.
const livesStripHeight = 40

var (
	wallColor       = color.RGBA{B: 0xFF, A: 0xFF}
	playerColor     = color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}
	pelletColor     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	powerColor      = color.RGBA{R: 0xFF, G: 0xA5, A: 0xFF}
	cherryColor     = color.RGBA{R: 0xFF, A: 0xFF}
	frightenedColor = color.RGBA{B: 0x8B, A: 0xFF}
	flashColor      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	eyeWhite        = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	pupilBlue       = color.RGBA{B: 0xFF, A: 0xFF}

	ghostColors = [4]color.RGBA{
		{R: 0xFF, A: 0xFF},                   // chase: red
		{R: 0xFF, G: 0xB8, B: 0xFF, A: 0xFF}, // ambush: pink
		{G: 0xFF, B: 0xFF, A: 0xFF},          // flank: cyan
		{R: 0xFF, G: 0xB8, B: 0x52, A: 0xFF}, // shy: orange
	}
)

// whiteImage is the 1-colour texture used for triangle fills.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// Game is the windowed shell around a Session: it forwards input,
// advances the engine clock, renders snapshots and fires sounds off
// snapshot transitions. The engine itself never touches Ebiten.
type Game struct {
	session *Session
	m       *maze.Maze
	sounds  *SoundBank

	last time.Time
	prev Snapshot
	anim int

	// deathTween shrinks the player during the death sequence;
	// popupTween floats the catch bonus upward.
	deathTween *gween.Tween
	deathScale float32
	popupTween *gween.Tween
	popupRise  float32

	prevKeys map[ebiten.Key]bool
}

// NewGame wraps a freshly loaded maze in a windowed session.
func NewGame(m *maze.Maze, seed int64, sounds *SoundBank) *Game {
	g := &Game{
		session:  NewSession(m, seed, nil),
		m:        m,
		sounds:   sounds,
		last:     time.Now(),
		prevKeys: make(map[ebiten.Key]bool),
	}
	g.prev = g.session.Snapshot()
	g.sounds.Play(SoundStart)
	return g
}

// keyJustPressed is edge-triggered key detection over prevKeys.
func (g *Game) keyJustPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = down
	return down && !was
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		g.session.RequestDirection(maze.North)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		g.session.RequestDirection(maze.South)
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		g.session.RequestDirection(maze.West)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		g.session.RequestDirection(maze.East)
	}

	if g.keyJustPressed(ebiten.KeyR) && g.session.Snapshot().Phase.Terminal() {
		g.restart()
	}
	if g.keyJustPressed(ebiten.KeyF1) {
		if err := CopyDebugReport(g.session); err == nil {
			g.session.log.Add(g.session.tick, "--", "phase", "debug_report", "copied to clipboard", 0)
		}
	}

	g.session.Advance(dt)
	g.anim = (g.anim + 1) % 8

	cur := g.session.Snapshot()
	g.react(g.prev, cur)
	g.updateTweens(float32(dt))
	g.prev = cur
	return nil
}

func (g *Game) restart() {
	g.sounds.StopLoops()
	g.session = NewSession(g.m, time.Now().UnixNano(), nil)
	g.prev = g.session.Snapshot()
	g.deathTween = nil
	g.popupTween = nil
	g.sounds.Play(SoundStart)
}

// react fires sounds and starts tweens off snapshot transitions.
func (g *Game) react(prev, cur Snapshot) {
	if cur.Phase != prev.Phase {
		switch cur.Phase {
		case PhasePlaying:
			g.sounds.StartSiren(max(cur.SirenTier, 0))
		case PhaseDying:
			g.sounds.StopLoops()
			g.sounds.Play(SoundDeath)
			g.deathTween = gween.New(1, 0, float32(deathDuration), ease.InQuad)
		case PhaseWon, PhaseLost:
			g.sounds.StopLoops()
		}
	}

	switch cur.Player.Score - prev.Player.Score {
	case 0:
	case pelletScore:
		g.sounds.Play(SoundWaka)
	case cherryScore:
		g.sounds.Play(SoundEatFruit)
	}

	if prev.FrightenedTimer <= 0 && cur.FrightenedTimer > 0 {
		g.sounds.StartPowerLoop()
	}
	if prev.FrightenedTimer > 0 && cur.FrightenedTimer <= 0 && cur.Phase == PhasePlaying {
		g.sounds.StartSiren(max(cur.SirenTier, 0))
	}
	if cur.FrightenedTimer <= 0 && cur.SirenTier != prev.SirenTier && cur.Phase == PhasePlaying {
		g.sounds.StartSiren(max(cur.SirenTier, 0))
	}

	if prev.EatPause <= 0 && cur.EatPause > 0 {
		g.sounds.Play(SoundEatGhost)
		g.popupTween = gween.New(0, 1, float32(eatPauseDuration), ease.OutQuad)
	}

	eyes := false
	for _, gs := range cur.Ghosts {
		if gs.State == GhostEaten {
			eyes = true
		}
	}
	g.sounds.SetEyes(eyes && !cur.Phase.Terminal())
}

func (g *Game) updateTweens(dt float32) {
	g.deathScale = 1
	if g.deathTween != nil {
		v, done := g.deathTween.Update(dt)
		g.deathScale = v
		if done {
			g.deathTween = nil
		}
	}
	g.popupRise = 0
	if g.popupTween != nil {
		v, done := g.popupTween.Update(dt)
		g.popupRise = v
		if done {
			g.popupTween = nil
		}
	}
}

// layout maps world space to the current screen.
type layout struct {
	cellPx float64
	offX   float64
	offY   float64
}

func newLayout(screenW, screenH, gridSize int) layout {
	availW := float64(screenW) - 2*margin
	availH := float64(screenH) - 2*margin - livesStripHeight
	cellPx := max(5.0, min(availW/float64(gridSize), availH/float64(gridSize)))
	return layout{cellPx: cellPx, offX: margin, offY: margin}
}

// worldToScreen converts engine pixel coordinates.
func (l layout) worldToScreen(x, y float64) (float32, float32) {
	s := l.cellPx / cellSize
	return float32(l.offX + x*s), float32(l.offY + y*s)
}

// postToScreen converts a wall post (grid corner) position.
func (l layout) postToScreen(row, col int) (float32, float32) {
	return float32(l.offX + float64(col)*l.cellPx), float32(l.offY + float64(row)*l.cellPx)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	snap := g.prev
	gs := g.m.Grid.Size()
	l := newLayout(screen.Bounds().Dx(), screen.Bounds().Dy(), gs)

	g.drawWalls(screen, l)
	g.drawMarkers(screen, l, snap)
	if !snap.Phase.Terminal() {
		g.drawGhosts(screen, l, snap)
		g.drawPlayer(screen, l, snap)
	}
	g.drawHUD(screen, l, snap)
}

func (g *Game) drawWalls(screen *ebiten.Image, l layout) {
	gs := g.m.Grid.Size()
	width := float32(max(1.0, l.cellPx*0.05))
	// The fail-closed HasWall queries make every boundary edge render
	// walled regardless of the stored matrices.
	for r := 0; r <= gs; r++ {
		for c := 0; c < gs; c++ {
			if r == gs || g.m.Grid.HasWall(r, c, maze.North) {
				x0, y0 := l.postToScreen(r, c)
				x1, _ := l.postToScreen(r, c+1)
				vector.StrokeLine(screen, x0, y0, x1, y0, width, wallColor, true)
			}
		}
	}
	for r := 0; r < gs; r++ {
		for c := 0; c <= gs; c++ {
			if c == gs || g.m.Grid.HasWall(r, c, maze.West) {
				x0, y0 := l.postToScreen(r, c)
				_, y1 := l.postToScreen(r+1, c)
				vector.StrokeLine(screen, x0, y0, x0, y1, width, wallColor, true)
			}
		}
	}
}

func (g *Game) drawMarkers(screen *ebiten.Image, l layout, snap Snapshot) {
	for cell := range g.session.pellets {
		x, y := l.worldToScreen(cellCenter(cell))
		vector.DrawFilledCircle(screen, x, y, float32(l.cellPx*0.1), pelletColor, true)
	}
	for cell := range g.session.powerPellets {
		x, y := l.worldToScreen(cellCenter(cell))
		vector.DrawFilledCircle(screen, x, y, float32(l.cellPx*0.3), powerColor, true)
	}
	if snap.Cherry != nil {
		x, y := l.worldToScreen(cellCenter(*snap.Cherry))
		r := float32(l.cellPx * 0.15)
		vector.DrawFilledCircle(screen, x-r*0.6, y, r, cherryColor, true)
		vector.DrawFilledCircle(screen, x+r*0.6, y+r*0.3, r, cherryColor, true)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, l layout, snap Snapshot) {
	if snap.EatPause > 0 {
		// Catch bonus popup replaces the player sprite for the pause.
		x, y := l.worldToScreen(snap.Player.X, snap.Player.Y)
		y -= g.popupRise * float32(l.cellPx*0.5)
		text.Draw(screen, fmt.Sprintf("%d", snap.LastBonus), basicfont.Face7x13,
			int(x)-8, int(y), color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF})
		return
	}

	x, y := l.worldToScreen(snap.Player.X, snap.Player.Y)
	radius := float32(l.cellPx*0.35) * g.deathScale
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, x, y, radius, playerColor, true)

	// Mouth: a background-colour wedge that opens and shuts while moving.
	if snap.Phase != PhaseDying && (snap.Player.Moving && g.anim < 4) {
		dx := float32(snap.Player.Dir.DeltaCol())
		dy := float32(snap.Player.Dir.DeltaRow())
		// Perpendicular for the wedge's jaw spread.
		px, py := -dy, dx
		tipX, tipY := x+dx*radius*1.05, y+dy*radius*1.05
		fillTriangle(screen,
			x, y,
			tipX+px*radius*0.7, tipY+py*radius*0.7,
			tipX-px*radius*0.7, tipY-py*radius*0.7,
			color.RGBA{A: 0xFF})
	}
}

func (g *Game) drawGhosts(screen *ebiten.Image, l layout, snap Snapshot) {
	for _, gh := range snap.Ghosts {
		if snap.EatPause > 0 && gh.ID == snap.LastEatenGhost {
			continue
		}
		g.drawGhost(screen, l, snap, gh)
	}
}

func (g *Game) drawGhost(screen *ebiten.Image, l layout, snap Snapshot, gh GhostSnapshot) {
	x, y := l.worldToScreen(gh.X, gh.Y)
	size := float32(l.cellPx * 0.35)
	if size < 2 {
		return
	}

	if gh.State != GhostEaten {
		body := ghostColors[gh.ID]
		if gh.State == GhostFrightened {
			body = frightenedColor
			if snap.FrightenedTimer < 3 && g.anim/2 < 2 {
				body = flashColor
			}
		}
		vector.DrawFilledCircle(screen, x, y, size, body, true)
		vector.DrawFilledRect(screen, x-size, y, 2*size, size*0.8, body, true)
	}

	// Eyes track the travel direction; the eaten form is eyes only.
	eyeR := max(size*0.2, 1)
	pupilDX := float32(gh.Dir.DeltaCol()) * size * 0.1
	pupilDY := float32(gh.Dir.DeltaRow()) * size * 0.1
	for _, side := range [2]float32{-0.4, 0.4} {
		ex := x + side*size
		ey := y - size*0.1
		vector.DrawFilledCircle(screen, ex, ey, eyeR, eyeWhite, true)
		vector.DrawFilledCircle(screen, ex+pupilDX, ey+pupilDY, eyeR*0.5, pupilBlue, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, l layout, snap Snapshot) {
	text.Draw(screen, fmt.Sprintf("SCORE: %d", snap.Player.Score),
		basicfont.Face7x13, margin, margin/2+6, color.White)

	h := screen.Bounds().Dy()
	size := float32(l.cellPx * 0.35)
	for i := 0; i < snap.Player.Lives; i++ {
		x := float32(margin) + float32(i)*size*2.5
		vector.DrawFilledCircle(screen, x, float32(h-margin), size, playerColor, true)
	}

	if snap.Phase == PhaseReady {
		cx := screen.Bounds().Dx() / 2
		text.Draw(screen, "READY!", basicfont.Face7x13, cx-21, h/2, playerColor)
	}
	if snap.Phase.Terminal() {
		cx := screen.Bounds().Dx() / 2
		msg, clr := "YOU WIN!", playerColor
		if snap.Phase == PhaseLost {
			msg, clr = "GAME OVER", cherryColor
		}
		text.Draw(screen, msg, basicfont.Face7x13, cx-len(msg)*7/2, h/2, clr)
		text.Draw(screen, "press R to restart", basicfont.Face7x13, cx-63, h/2+16, color.White)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// fillTriangle renders one solid triangle through DrawTriangles.
func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, clr color.RGBA) {
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255
	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, whiteImage, &ebiten.DrawTrianglesOptions{})
}
