package agent

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// PursuerID identifies one member of the fixed pursuer roster.
type PursuerID int

const (
	Blinky PursuerID = iota
	Pinky
	Inky
	Clyde
)

// PursuerCount is the size of the roster. It is part of the game, not a setting.
const PursuerCount = 4

// Roster returns every pursuer identity in evaluation order.
func Roster() [PursuerCount]PursuerID {
	return [PursuerCount]PursuerID{Blinky, Pinky, Inky, Clyde}
}

// String returns the identity's key, as used in layout files.
func (id PursuerID) String() string {
	switch id {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	case Clyde:
		return "clyde"
	default:
		return "unknown"
	}
}

// RosterNames returns the layout keys of the roster in order.
func RosterNames() []string {
	names := make([]string, 0, PursuerCount)
	for _, id := range Roster() {
		names = append(names, id.String())
	}
	return names
}

// Pursuer is an agent whose intent comes from a Steering.
type Pursuer struct {
	Agent
	ID PursuerID
}

// NewPursuer creates a pursuer at rest.
func NewPursuer(id PursuerID, bounds core.RectF, speed float64) *Pursuer {
	return &Pursuer{
		Agent: Agent{Bounds: bounds, Speed: speed},
		ID:    id,
	}
}

// Advance asks the steering for a direction and moves with it.
func (p *Pursuer) Advance(s Steering, view View, elapsed float64, g *maze.Grid) Step {
	intent := core.None
	if s != nil {
		intent = s.Steer(p, view)
	}
	return p.Agent.Advance(intent, elapsed, g)
}
