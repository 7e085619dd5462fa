package picman

import (
	"fmt"

	"github.com/vovakirdan/picman/internal/core"
	"github.com/vovakirdan/picman/internal/maze"
)

// Renderer receives draw requests once per frame.
type Renderer interface {
	Clear()
	DrawMaze(m *maze.Maze)
	DrawEnemies(positions []maze.Pos)
	DrawPlayer(pos maze.Pos)
	DrawScore(score int)
	DrawTerminalMessage(phase Phase)
	Present()
}

// Draw issues one frame of draw requests for s.
// Running: clear, maze, enemies, player, score, present.
// Won or Lost: clear, message, present.
func Draw(s *State, r Renderer) {
	r.Clear()
	if s.Phase.Terminal() {
		r.DrawTerminalMessage(s.Phase)
		r.Present()
		return
	}
	r.DrawMaze(s.Maze)
	r.DrawEnemies(s.EnemyPositions())
	r.DrawPlayer(s.Player)
	r.DrawScore(s.Score)
	r.Present()
}

const (
	hudHeight    = 2 // Title/score line plus separator
	footerHeight = 1
	cellWidth    = 2 // Terminal columns per maze cell
)

// Glyphs used by ScreenRenderer.
const (
	glyphWall   = '█'
	glyphItem   = '·'
	glyphPlayer = 'C'
	glyphEnemy  = 'M'
)

// RequiredSize returns the smallest screen that can hold m with HUD and footer.
func RequiredSize(m *maze.Maze) (w, h int) {
	return m.Width() * cellWidth, m.Height() + hudHeight + footerHeight
}

// ScreenRenderer paints frames into a core.Screen.
// The maze is centered horizontally below the HUD.
type ScreenRenderer struct {
	dst     *core.Screen
	originX int
	originY int
	mazeW   int // In terminal columns
}

// NewScreenRenderer lays out a maze of mazeW x mazeH cells on dst.
func NewScreenRenderer(dst *core.Screen, mazeW, mazeH int) *ScreenRenderer {
	w := mazeW * cellWidth
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-footerHeight)
	r := area.Centered(w, mazeH)
	return &ScreenRenderer{
		dst:     dst,
		originX: max(0, r.X),
		originY: max(hudHeight, r.Y),
		mazeW:   w,
	}
}

// Clear blanks the whole screen.
func (r *ScreenRenderer) Clear() {
	r.dst.Clear()
}

// DrawMaze paints walls and items. Floor cells stay blank.
func (r *ScreenRenderer) DrawMaze(m *maze.Maze) {
	for y := range m.Height() {
		for x := range m.Width() {
			sx, sy := r.cellOrigin(maze.P(x, y))
			switch m.CellAt(maze.P(x, y)) {
			case maze.Wall:
				r.dst.SetCell(sx, sy, glyphWall, core.ColorSlate)
				r.dst.SetCell(sx+1, sy, glyphWall, core.ColorSlate)
			case maze.Item:
				r.dst.SetCell(sx, sy, glyphItem, core.ColorYellow)
			}
		}
	}
}

// DrawEnemies paints one M per enemy.
func (r *ScreenRenderer) DrawEnemies(positions []maze.Pos) {
	for _, p := range positions {
		sx, sy := r.cellOrigin(p)
		r.dst.SetCell(sx, sy, glyphEnemy, core.ColorRed)
	}
}

// DrawPlayer paints the player glyph.
func (r *ScreenRenderer) DrawPlayer(pos maze.Pos) {
	sx, sy := r.cellOrigin(pos)
	r.dst.SetCell(sx, sy, glyphPlayer, core.ColorBrightYellow)
}

// DrawScore writes the title and points above the maze.
func (r *ScreenRenderer) DrawScore(score int) {
	r.dst.DrawTextColored(r.originX, 0, "PIC-MAN", core.ColorBrightYellow)

	points := fmt.Sprintf("Points: %d", score)
	r.dst.DrawTextColored(r.originX+r.mazeW-len(points), 0, points, core.ColorBrightWhite)
	r.dst.DrawHLine(r.originX, 1, r.mazeW, '─', core.ColorGray)
}

// DrawTerminalMessage draws the boxed WIN or GAME OVER message.
func (r *ScreenRenderer) DrawTerminalMessage(phase Phase) {
	text, color := "GAME OVER", core.ColorBrightRed
	if phase == Won {
		text, color = "WIN", core.ColorGreen
	}

	box := r.dst.Bounds().Centered(len(text)+8, 5)
	r.dst.DrawBox(box, color)
	r.dst.DrawTextColored(box.X+(box.W-len(text))/2, box.Y+2, text, color)
}

// Present is a no-op: the platform flushes the screen after Render.
func (r *ScreenRenderer) Present() {}

func (r *ScreenRenderer) cellOrigin(p maze.Pos) (int, int) {
	return r.originX + p.X*cellWidth, r.originY + p.Y
}
