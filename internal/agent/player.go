package agent

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Consumed counts the pickups eaten in one frame.
type Consumed struct {
	Total int
	Bonus int
}

// Player is the input-driven agent. It eats every pickup its bounds overlap.
type Player struct {
	Agent

	// Eaten only grows; remaining pickups are derived from it.
	Eaten int

	wanted  core.Direction // last direction asked for by input
	heading core.Direction // last non-None facing, used for drawing

	chomp   *gween.Tween
	closing bool
	phase   float64
}

// NewPlayer creates a player at rest. chompPeriod is the time in seconds for
// the mouth to open and close once.
func NewPlayer(bounds core.RectF, speed, chompPeriod float64) *Player {
	half := float32(chompPeriod / 2)
	if half <= 0 {
		half = 0.1
	}
	return &Player{
		Agent:   Agent{Bounds: bounds, Speed: speed},
		heading: core.Right,
		chomp:   gween.New(0, 1, half, ease.InOutSine),
	}
}

// Want buffers a turn request. None leaves the previous request in place.
func (p *Player) Want(d core.Direction) {
	if d != core.None {
		p.wanted = d
	}
}

// Wanted returns the buffered turn request.
func (p *Player) Wanted() core.Direction {
	return p.wanted
}

// Advance moves the player for one frame and eats what it ends up on.
// The buffered direction is taken as soon as the lane is open; until then
// the player keeps going the way it faces.
func (p *Player) Advance(elapsed float64, g *maze.Grid) (Step, Consumed) {
	intent := p.Facing
	if p.wanted != core.None && p.wanted != p.Facing && p.CanMove(p.wanted, elapsed, g) {
		intent = p.wanted
	}
	if intent == core.None {
		intent = p.wanted
	}

	step := p.Agent.Advance(intent, elapsed, g)
	if p.Facing != core.None {
		p.heading = p.Facing
	}
	if !step.Moved.IsZero() {
		p.animate(elapsed)
	}

	total, bonus := g.ConsumePickupsDetailed(p.Bounds)
	p.Eaten += total
	return step, Consumed{Total: total, Bonus: bonus}
}

// animate runs the mouth tween back and forth.
func (p *Player) animate(elapsed float64) {
	v, finished := p.chomp.Update(float32(elapsed))
	if p.closing {
		p.phase = 1 - float64(v)
	} else {
		p.phase = float64(v)
	}
	if finished {
		p.chomp.Reset()
		p.closing = !p.closing
	}
}

// Heading returns the direction the player last moved in.
func (p *Player) Heading() core.Direction {
	return p.heading
}

// Orientation returns the drawing rotation in degrees.
func (p *Player) Orientation() float64 {
	return p.heading.Degrees()
}

// Phase returns how far the mouth is open, from 0 (closed) to 1 (open).
func (p *Player) Phase() float64 {
	return core.ClampF(p.phase, 0, 1)
}
