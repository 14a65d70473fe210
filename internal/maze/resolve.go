package maze

import (
	"math"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// ResolveMovement clamps a desired displacement so that old translated by
// the result overlaps no wall cell. Axes are clamped separately, so an agent
// pressed against a wall still slides along it. blocked is true when any
// component of desired was dropped.
//
// A zero displacement always resolves to zero and is never blocked.
func (g *Grid) ResolveMovement(old core.RectF, desired core.Vec) (actual core.Vec, blocked bool) {
	if desired.IsZero() {
		return core.Vec{}, false
	}
	if !g.HitsWall(old.Translate(desired)) {
		return desired, false
	}

	onlyX := core.Vec{X: desired.X}
	onlyY := core.Vec{Y: desired.Y}
	freeX := desired.X != 0 && !g.HitsWall(old.Translate(onlyX))
	freeY := desired.Y != 0 && !g.HitsWall(old.Translate(onlyY))

	switch {
	case freeX && freeY:
		// Only the diagonal corner is solid; keep the dominant axis.
		if math.Abs(desired.X) >= math.Abs(desired.Y) {
			return onlyX, true
		}
		return onlyY, true
	case freeX:
		return onlyX, true
	case freeY:
		return onlyY, true
	default:
		return core.Vec{}, true
	}
}

// HitsWall reports whether any wall cell intersects b. Bounds reaching past
// the grid edge count as a hit, the same way IsWall treats missing cells.
func (g *Grid) HitsWall(b core.RectF) bool {
	if b.X < 0 || b.Y < 0 || b.Right() > float64(g.width)*g.cellW || b.Bottom() > float64(g.height)*g.cellH {
		return true
	}
	r0, r1, c0, c1 := g.coveredRange(b)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cell := g.cells[g.index(row, col)]
			if cell.Category == Wall && cell.Bounds.Intersects(b) {
				return true
			}
		}
	}
	return false
}
