package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/agent"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		grid := g.scene.Grid()
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", grid.Width()*2, grid.Height()+hudHeight))
		return
	}

	g.renderMaze(dst)
	for _, id := range agent.Roster() {
		v := g.scene.Visual(id)
		g.drawAgent(dst, g.scene.Pursuer(id).Bounds, v.Glyph, v.Color)
	}
	p := g.scene.Player()
	g.drawAgent(dst, p.Bounds, playerGlyph(p.Heading(), p.Phase()), core.ColorBrightYellow)

	switch {
	case g.scene.Terminal():
		g.renderOverlay(dst, g.scene.Message(), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Eaten: %d  Left: %d  Round %s",
		g.Title(), g.scene.Eaten(), g.scene.Remaining(), g.roundID.String()[:8])
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// renderMaze draws walls and the pickups still in place.
func (g *Game) renderMaze(dst *core.Screen) {
	grid := g.scene.Grid()
	for row := range grid.Height() {
		for col := range grid.Width() {
			cell, err := grid.CellAt(row, col)
			if err != nil {
				continue
			}
			x, y := g.offsetX+col*2, g.offsetY+row
			switch cell.Category {
			case maze.Wall:
				dst.SetColored(x, y, wallGlyph, core.ColorBlue)
				dst.SetColored(x+1, y, wallGlyph, core.ColorBlue)
			case maze.Pickup:
				dst.SetColored(x, y, pickupGlyph, core.ColorWhite)
			case maze.BonusPickup:
				dst.SetColored(x, y, bonusGlyph, core.ColorBrightWhite)
			}
		}
	}
}

// drawAgent places a glyph at the centre of an agent's bounds. Columns have
// half-cell resolution since each cell spans two of them.
func (g *Game) drawAgent(dst *core.Screen, b core.RectF, glyph rune, c core.Color) {
	cw, ch := g.scene.Grid().CellSize()
	center := b.Center()
	x := g.offsetX + int(center.X/cw*2)
	y := g.offsetY + int(center.Y/ch)
	dst.SetColored(x, y, glyph, c)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
