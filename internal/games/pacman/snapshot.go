package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/agent"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/round"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Seed      int64
	RoundID   string
	Eaten     int
	Remaining int
	Player    core.RectF
	Facing    core.Direction
	Pursuers  [agent.PursuerCount]core.RectF
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.scene.Outcome() == round.Won:
		state = StateWon
	case g.scene.Terminal():
		state = StateLost
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:      g.tick,
		Seed:      g.seed,
		RoundID:   g.roundID.String(),
		Eaten:     g.scene.Eaten(),
		Remaining: g.scene.Remaining(),
		Player:    g.scene.Player().Bounds,
		Facing:    g.scene.Player().Facing,
		State:     state,
	}
	for _, id := range agent.Roster() {
		s.Pursuers[id] = g.scene.Pursuer(id).Bounds
	}
	return s
}
