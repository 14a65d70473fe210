// Package agent implements the movers of a round: the player and the four
// pursuers. Both kinds share one movement contract; only the source of the
// intended direction differs.
package agent

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Agent is a box that moves through the maze.
type Agent struct {
	Bounds core.RectF
	Facing core.Direction
	Speed  float64 // maze units per second
}

// Step reports what one Advance did.
type Step struct {
	Moved   core.Vec
	Blocked bool
}

// SpawnBounds centres a square agent of the given size in the spawn cell.
func SpawnBounds(g *maze.Grid, s maze.Spawn, size float64) core.RectF {
	cw, ch := g.CellSize()
	return core.NewRectF(
		float64(s.Col)*cw+(cw-size)/2,
		float64(s.Row)*ch+(ch-size)/2,
		size, size,
	)
}

// Advance moves the agent toward intent for elapsed seconds, clamped by the
// maze walls.
//
// Facing after the move:
//   - moved: the direction of the movement actually applied
//   - blocked without moving: None
//   - nothing asked (None intent or zero elapsed): the intent
func (a *Agent) Advance(intent core.Direction, elapsed float64, g *maze.Grid) Step {
	desired := intent.Vec().Scale(a.Speed * elapsed)
	actual, blocked := g.ResolveMovement(a.Bounds, desired)
	a.Bounds = a.Bounds.Translate(actual)

	switch {
	case !actual.IsZero():
		a.Facing = core.DirectionOf(actual)
	case blocked:
		a.Facing = core.None
	default:
		a.Facing = intent
	}

	return Step{Moved: actual, Blocked: blocked}
}

// CanMove reports whether a full step toward dir is free of walls.
func (a *Agent) CanMove(dir core.Direction, elapsed float64, g *maze.Grid) bool {
	if dir == core.None {
		return false
	}
	_, blocked := g.ResolveMovement(a.Bounds, dir.Vec().Scale(a.Speed*elapsed))
	return !blocked
}
