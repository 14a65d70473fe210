package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func TestResolveMovement(t *testing.T) {
	g := newSmall(t)
	atTopLeft := core.NewRectF(10, 10, 10, 10) // exactly cell (1, 1)

	tests := []struct {
		name        string
		old         core.RectF
		desired     core.Vec
		expected    core.Vec
		wantBlocked bool
	}{
		{
			name:     "zero movement",
			old:      atTopLeft,
			desired:  core.Vec{},
			expected: core.Vec{},
		},
		{
			name:     "free corridor",
			old:      atTopLeft,
			desired:  core.Vec{X: 5},
			expected: core.Vec{X: 5},
		},
		{
			name:     "parallel to touching wall",
			old:      atTopLeft,
			desired:  core.Vec{Y: 4},
			expected: core.Vec{Y: 4},
		},
		{
			name:        "head-on into wall",
			old:         atTopLeft,
			desired:     core.Vec{Y: -3},
			expected:    core.Vec{},
			wantBlocked: true,
		},
		{
			name:        "sub-unit step into wall",
			old:         atTopLeft,
			desired:     core.Vec{X: -0.5},
			expected:    core.Vec{},
			wantBlocked: true,
		},
		{
			name:        "slides along top wall",
			old:         atTopLeft,
			desired:     core.Vec{X: 4, Y: -3},
			expected:    core.Vec{X: 4},
			wantBlocked: true,
		},
		{
			name:        "slides along left wall",
			old:         atTopLeft,
			desired:     core.Vec{X: -2, Y: 6},
			expected:    core.Vec{Y: 6},
			wantBlocked: true,
		},
		{
			name:        "corner only, horizontal dominant",
			old:         atTopLeft,
			desired:     core.Vec{X: 5, Y: 5},
			expected:    core.Vec{X: 5},
			wantBlocked: true,
		},
		{
			name:        "corner only, vertical dominant",
			old:         atTopLeft,
			desired:     core.Vec{X: 3, Y: 5},
			expected:    core.Vec{Y: 5},
			wantBlocked: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual, blocked := g.ResolveMovement(tc.old, tc.desired)
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, tc.wantBlocked, blocked)
			assert.False(t, g.HitsWall(tc.old.Translate(actual)))
		})
	}
}

// wallOverlap checks every wall cell directly instead of trusting the
// bounded scan used by HitsWall.
func wallOverlap(t *testing.T, g *Grid, b core.RectF) (int, int, bool) {
	t.Helper()
	for row := range g.Height() {
		for col := range g.Width() {
			cell, err := g.CellAt(row, col)
			require.NoError(t, err)
			if cell.Category == Wall && cell.Bounds.Intersects(b) {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

func TestResolveMovementNeverPenetratesWalls(t *testing.T) {
	layout := Classic()
	g, err := layout.Build(16, 16)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	start := core.NewRectF(float64(layout.Player.Col)*16+2, float64(layout.Player.Row)*16+2, 12, 12)

	for agent := range 20 {
		b := start
		for step := range 2000 {
			desired := core.Vec{
				X: (rng.Float64()*2 - 1) * 6,
				Y: (rng.Float64()*2 - 1) * 6,
			}
			// Mostly axis-aligned steps, like real agents.
			switch rng.Intn(3) {
			case 0:
				desired.Y = 0
			case 1:
				desired.X = 0
			}

			actual, blocked := g.ResolveMovement(b, desired)
			b = b.Translate(actual)

			if row, col, hit := wallOverlap(t, g, b); hit {
				t.Fatalf("agent %d step %d: bounds %+v penetrate wall (%d, %d)", agent, step, b, row, col)
			}
			if !blocked && actual != desired {
				t.Fatalf("agent %d step %d: unblocked movement was altered: %+v -> %+v", agent, step, desired, actual)
			}
		}
	}
}

func TestResolveMovementKeepsAgentInsideMaze(t *testing.T) {
	g := newSmall(t)
	b := core.NewRectF(11, 11, 8, 8)

	for range 100 {
		actual, _ := g.ResolveMovement(b, core.Vec{X: -3, Y: -3})
		b = b.Translate(actual)
	}
	assert.GreaterOrEqual(t, b.X, 10.0)
	assert.GreaterOrEqual(t, b.Y, 10.0)
}

func TestResolveMovementCannotLeaveGrid(t *testing.T) {
	g, err := New([]string{
		"#####",
		"#...#",
		"#####",
	}, 16, 16)
	require.NoError(t, err)
	b := core.NewRectF(18, 18, 12, 12)

	// One huge step would land the box past the right edge.
	actual, blocked := g.ResolveMovement(b, core.Vec{X: 80})
	assert.Equal(t, core.Vec{}, actual)
	assert.True(t, blocked)

	actual, blocked = g.ResolveMovement(b, core.Vec{X: -40, Y: 2})
	assert.Equal(t, core.Vec{Y: 2}, actual)
	assert.True(t, blocked)
}

func TestHitsWallOutsideGrid(t *testing.T) {
	g := newSmall(t)
	w, h := float64(g.Width())*10, float64(g.Height())*10

	assert.True(t, g.HitsWall(core.NewRectF(-1, 12, 5, 5)))
	assert.True(t, g.HitsWall(core.NewRectF(12, -1, 5, 5)))
	assert.True(t, g.HitsWall(core.NewRectF(w-2, 12, 5, 5)))
	assert.True(t, g.HitsWall(core.NewRectF(12, h-2, 5, 5)))
	assert.True(t, g.HitsWall(core.NewRectF(w+20, h+20, 5, 5)), "entirely outside")
}
