// Package pacman is the maze chase game: a player collects every pickup in
// the maze while four pursuers hunt it down.
package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/agent"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
	"github.com/vovakirdan/tui-pacman/internal/round"
)

// Events observes what happens inside a scene. Both methods are called
// synchronously from Update.
type Events interface {
	// PickupsConsumed reports n pickups eaten this frame, bonus of them bonus pickups.
	PickupsConsumed(n, bonus int)
	// RoundEnded fires once, on the frame the round is decided.
	RoundEnded(outcome round.Outcome)
}

// SceneOptions configures a scene.
type SceneOptions struct {
	CellSize     float64
	AgentSize    float64
	PlayerSpeed  float64
	PursuerSpeed float64
	ChompPeriod  float64

	// Steering builds the intent source for each pursuer once the grid
	// exists. Nil, or a nil result, leaves that pursuer standing still.
	Steering func(id agent.PursuerID, g *maze.Grid) agent.Steering
	// Visuals per pursuer identity; the zero table means DefaultVisuals.
	Visuals Visuals
	Events  Events
}

// Scene owns one round: the maze, the agents and the outcome.
type Scene struct {
	grid     *maze.Grid
	player   *agent.Player
	pursuers [agent.PursuerCount]*agent.Pursuer
	steering [agent.PursuerCount]agent.Steering
	visuals  Visuals
	machine  *round.Machine
	events   Events
	total    int
}

// NewScene builds the grid from layout and places every agent on its spawn.
func NewScene(layout maze.Layout, opts SceneOptions) (*Scene, error) {
	g, err := layout.Build(opts.CellSize, opts.CellSize, agent.RosterNames()...)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		grid:    g,
		player:  agent.NewPlayer(agent.SpawnBounds(g, layout.Player, opts.AgentSize), opts.PlayerSpeed, opts.ChompPeriod),
		visuals: opts.Visuals,
		machine: round.NewMachine(),
		events:  opts.Events,
		total:   g.CountRemainingPickups(),
	}
	if s.visuals == (Visuals{}) {
		s.visuals = DefaultVisuals
	}
	for _, id := range agent.Roster() {
		spawn := layout.Pursuers[id.String()]
		s.pursuers[id] = agent.NewPursuer(id, agent.SpawnBounds(g, spawn, opts.AgentSize), opts.PursuerSpeed)
		if opts.Steering != nil {
			s.steering[id] = opts.Steering(id, g)
		}
	}
	if s.events != nil {
		s.machine.OnFinish(s.events.RoundEnded)
	}
	return s, nil
}

// Update simulates one frame: the player moves and eats, then each pursuer
// moves in roster order, then the round is evaluated on the final positions.
// Once the round has ended nothing moves any more.
func (s *Scene) Update(elapsed float64, intent core.Direction) round.Outcome {
	if s.machine.Terminal() {
		return s.machine.Outcome()
	}

	s.player.Want(intent)
	_, eaten := s.player.Advance(elapsed, s.grid)
	if eaten.Total > 0 && s.events != nil {
		s.events.PickupsConsumed(eaten.Total, eaten.Bonus)
	}

	for _, id := range agent.Roster() {
		s.pursuers[id].Advance(s.steering[id], s.view(elapsed), elapsed, s.grid)
	}

	var bounds [agent.PursuerCount]core.RectF
	for i, p := range s.pursuers {
		bounds[i] = p.Bounds
	}
	return s.machine.Evaluate(s.player.Bounds, bounds[:], s.Remaining())
}

// view snapshots the agents for steering.
func (s *Scene) view(elapsed float64) agent.View {
	v := agent.View{
		Grid:    s.grid,
		Player:  s.player.Agent,
		Heading: s.player.Heading(),
		Elapsed: elapsed,
	}
	for i, p := range s.pursuers {
		v.Pursuers[i] = p.Agent
	}
	return v
}

// SetPursuerSpeed changes how fast every pursuer moves from the next frame on.
func (s *Scene) SetPursuerSpeed(speed float64) {
	for _, p := range s.pursuers {
		p.Speed = speed
	}
}

// Remaining returns the number of pickups left in the maze.
func (s *Scene) Remaining() int {
	return s.total - s.player.Eaten
}

// Total returns the number of pickups the round started with.
func (s *Scene) Total() int {
	return s.total
}

// Eaten returns the number of pickups the player has eaten.
func (s *Scene) Eaten() int {
	return s.player.Eaten
}

// Outcome returns the round outcome.
func (s *Scene) Outcome() round.Outcome {
	return s.machine.Outcome()
}

// Message returns the end-of-round text, or "" while playing.
func (s *Scene) Message() string {
	return s.machine.Message()
}

// Terminal reports whether the round has ended.
func (s *Scene) Terminal() bool {
	return s.machine.Terminal()
}

// Grid returns the maze. Callers must not consume from it.
func (s *Scene) Grid() *maze.Grid {
	return s.grid
}

// Player returns the player agent.
func (s *Scene) Player() *agent.Player {
	return s.player
}

// Pursuer returns the pursuer with the given identity.
func (s *Scene) Pursuer(id agent.PursuerID) *agent.Pursuer {
	return s.pursuers[id]
}

// Visual returns how the pursuer with the given identity is drawn.
func (s *Scene) Visual(id agent.PursuerID) Visual {
	return s.visuals[id]
}
