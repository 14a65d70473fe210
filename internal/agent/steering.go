package agent

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// View is what a steering may look at when choosing a direction.
// Agents are copies; Grid must only be queried, never consumed from.
type View struct {
	Grid     *maze.Grid
	Player   Agent
	Heading  core.Direction // the player's last movement direction
	Pursuers [PursuerCount]Agent
	Elapsed  float64 // length of the frame being simulated, in seconds
}

// Steering chooses a pursuer's intended direction each frame.
type Steering interface {
	Steer(self *Pursuer, view View) core.Direction
}

// SteeringFunc adapts a function to the Steering interface.
type SteeringFunc func(self *Pursuer, view View) core.Direction

// Steer calls f.
func (f SteeringFunc) Steer(self *Pursuer, view View) core.Direction {
	return f(self, view)
}

// Idle never moves.
var Idle = SteeringFunc(func(*Pursuer, View) core.Direction { return core.None })

// Scripted replays a fixed list of intents, one per frame, then repeats the
// last one. An empty script is Idle.
type Scripted struct {
	Intents []core.Direction
	next    int
}

// Steer returns the next scripted intent.
func (s *Scripted) Steer(*Pursuer, View) core.Direction {
	if len(s.Intents) == 0 {
		return core.None
	}
	d := s.Intents[min(s.next, len(s.Intents)-1)]
	s.next++
	return d
}
