// Package round decides how a round ends. After every agent has moved in a
// frame, the Machine is evaluated once; it moves from Playing to Won or Lost
// exactly once and never leaves a terminal outcome.
package round

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Outcome is the state of a round.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}

// Messages shown by the end-of-round overlay.
const (
	MessageLost = "Game Over! You lose."
	MessageWon  = "Congratulations, you won!"
)

// Machine holds the single outcome of a round.
type Machine struct {
	outcome  Outcome
	message  string
	onFinish func(Outcome)
}

// NewMachine returns a machine in the Playing state.
func NewMachine() *Machine {
	return &Machine{}
}

// OnFinish registers a callback fired once, on the terminal transition.
func (m *Machine) OnFinish(fn func(Outcome)) {
	m.onFinish = fn
}

// Outcome returns the current outcome.
func (m *Machine) Outcome() Outcome {
	return m.outcome
}

// Message returns the overlay text for a terminal outcome, or "" while playing.
func (m *Machine) Message() string {
	return m.message
}

// Terminal reports whether the round has ended.
func (m *Machine) Terminal() bool {
	return m.outcome.Terminal()
}

// Evaluate checks the end conditions against the frame's final positions.
// Pursuers are checked in the order given, before pickups, so a frame where
// the player is caught while eating the last pickup is a loss.
//
// Once the outcome is terminal Evaluate changes nothing. A negative
// remaining count means consumption was double counted; it panics.
func (m *Machine) Evaluate(player core.RectF, pursuers []core.RectF, remaining int) Outcome {
	if m.outcome.Terminal() {
		return m.outcome
	}
	if remaining < 0 {
		panic(fmt.Sprintf("round: remaining pickups is negative (%d)", remaining))
	}

	for _, p := range pursuers {
		if p.Intersects(player) {
			m.transition(Lost)
			return m.outcome
		}
	}

	if remaining == 0 {
		m.transition(Won)
	}
	return m.outcome
}

// Reset starts a new round.
func (m *Machine) Reset() {
	m.outcome = Playing
	m.message = ""
}

func (m *Machine) transition(to Outcome) {
	if m.outcome.Terminal() {
		panic(fmt.Sprintf("round: transition %s -> %s out of a finished round", m.outcome, to))
	}
	if !to.Terminal() {
		panic(fmt.Sprintf("round: transition %s -> %s is not an ending", m.outcome, to))
	}

	m.outcome = to
	switch to {
	case Won:
		m.message = MessageWon
	case Lost:
		m.message = MessageLost
	}
	if m.onFinish != nil {
		m.onFinish(to)
	}
}
