package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/agent"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Visual is how one agent is drawn.
type Visual struct {
	Glyph rune
	Color core.Color
}

// Visuals is indexed by pursuer identity.
type Visuals [agent.PursuerCount]Visual

// DefaultVisuals are the classic pursuer colours.
var DefaultVisuals = Visuals{
	agent.Blinky: {Glyph: 'ᗣ', Color: core.ColorRed},
	agent.Pinky:  {Glyph: 'ᗣ', Color: core.ColorPink},
	agent.Inky:   {Glyph: 'ᗣ', Color: core.ColorCyan},
	agent.Clyde:  {Glyph: 'ᗣ', Color: core.ColorOrange},
}

// Board glyphs. Each maze cell is two terminal columns wide.
const (
	wallGlyph   = '█'
	pickupGlyph = '·'
	bonusGlyph  = '●'
)

// playerGlyph picks the player's glyph: a mouth opening toward its heading
// while the chomp is past half open, a closed disc otherwise.
func playerGlyph(heading core.Direction, phase float64) rune {
	if phase < 0.5 {
		return 'O'
	}
	switch heading {
	case core.Left:
		return '>'
	case core.Up:
		return 'V'
	case core.Down:
		return '^'
	default:
		return '<'
	}
}
