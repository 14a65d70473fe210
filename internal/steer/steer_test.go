package steer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/agent"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

var pillarRows = []string{
	"#######",
	"#.....#",
	"#.#.#.#",
	"#.....#",
	"#######",
}

func newGrid(t *testing.T, rows []string) *maze.Grid {
	t.Helper()
	g, err := maze.New(rows, 10, 10)
	require.NoError(t, err)
	return g
}

// openRows is a 12x12 room with no inner walls.
func openRows() []string {
	rows := []string{"############"}
	for range 10 {
		rows = append(rows, "#          #")
	}
	return append(rows, "############")
}

// centred returns a 6x6 box centred on (row, col) of a 10-unit grid.
func centred(row, col int) core.RectF {
	return core.NewRectF(float64(col)*10+2, float64(row)*10+2, 6, 6)
}

func TestFlowFieldDistances(t *testing.T) {
	g := newGrid(t, pillarRows)
	f := NewFlowField(g.Width(), g.Height())
	require.True(t, f.Compute(g, 1, 1))
	require.True(t, f.Valid())

	expected := map[[2]int]int{
		{1, 1}: 0,
		{1, 2}: 1,
		{2, 1}: 1,
		{3, 3}: 4,
		{1, 5}: 4,
		{3, 5}: 6,
		{2, 2}: Unreachable, // pillar
		{0, 0}: Unreachable, // border
		{9, 9}: Unreachable, // outside
	}
	for pos, want := range expected {
		assert.Equal(t, want, f.Distance(pos[0], pos[1]), "distance at %v", pos)
	}

	row, col := f.Target()
	assert.Equal(t, [2]int{1, 1}, [2]int{row, col})
}

func TestFlowFieldNext(t *testing.T) {
	g := newGrid(t, pillarRows)
	f := NewFlowField(g.Width(), g.Height())
	f.Compute(g, 1, 1)

	assert.Equal(t, core.Left, f.Next(1, 3, nil))
	assert.Equal(t, core.Up, f.Next(3, 1, nil))
	assert.Equal(t, core.None, f.Next(1, 1, nil), "already at target")

	// (3, 3) has two equally short ways out; nil rng takes Up first.
	assert.Equal(t, core.Up, f.Next(3, 3, nil))

	seen := map[core.Direction]bool{}
	rng := rand.New(rand.NewSource(3))
	for range 50 {
		seen[f.Next(3, 3, rng)] = true
	}
	assert.Equal(t, map[core.Direction]bool{core.Up: true, core.Left: true}, seen)

	// Following Next from anywhere reaches the target.
	row, col := 3, 5
	for steps := 0; f.Distance(row, col) > 0; steps++ {
		require.Less(t, steps, 20)
		dr, dc := f.Next(row, col, rng).Delta()
		row, col = row+dr, col+dc
	}
	assert.Equal(t, [2]int{1, 1}, [2]int{row, col})
}

func TestFlowFieldWallTarget(t *testing.T) {
	g := newGrid(t, pillarRows)
	f := NewFlowField(g.Width(), g.Height())

	assert.False(t, f.Compute(g, 2, 2))
	assert.False(t, f.Valid())
	assert.Equal(t, Unreachable, f.Distance(1, 1))
	assert.Equal(t, core.None, f.Next(1, 1, nil))
}

func TestChaserDecidesAtCellCentre(t *testing.T) {
	g := newGrid(t, pillarRows)
	c := NewChaser(agent.Blinky, g, nil)

	self := agent.NewPursuer(agent.Blinky, centred(3, 5), 60)
	view := agent.View{Grid: g, Player: agent.Agent{Bounds: centred(1, 1)}, Elapsed: 0.05}

	assert.Equal(t, core.Up, c.Steer(self, view))
}

func TestChaserKeepsLaneBetweenCentres(t *testing.T) {
	g := newGrid(t, pillarRows)
	c := NewChaser(agent.Blinky, g, nil)

	// Half way along the top corridor, moving right, away from the player.
	self := agent.NewPursuer(agent.Blinky, centred(1, 3).Translate(core.Vec{X: 4}), 20)
	self.Facing = core.Right
	view := agent.View{Grid: g, Player: agent.Agent{Bounds: centred(3, 1)}, Elapsed: 0.05}

	assert.Equal(t, core.Right, c.Steer(self, view))
}

func TestChaserRecentresWhenStoppedOffLane(t *testing.T) {
	g := newGrid(t, pillarRows)
	c := NewChaser(agent.Blinky, g, nil)

	self := agent.NewPursuer(agent.Blinky, centred(1, 3).Translate(core.Vec{X: 3}), 20)
	view := agent.View{Grid: g, Player: agent.Agent{Bounds: centred(1, 1)}, Elapsed: 0.05}

	assert.Equal(t, core.Left, c.Steer(self, view))
}

func TestChaserTargets(t *testing.T) {
	g := newGrid(t, openRows())
	player := agent.Agent{Bounds: centred(5, 5)}

	tests := []struct {
		name     string
		id       agent.PursuerID
		here     cell
		blinky   cell
		heading  core.Direction
		expected cell
	}{
		{"blinky chases the player", agent.Blinky, cell{8, 8}, cell{8, 8}, core.Right, cell{5, 5}},
		{"pinky leads the player", agent.Pinky, cell{8, 8}, cell{1, 1}, core.Right, cell{5, 9}},
		{"pinky leads upward", agent.Pinky, cell{8, 8}, cell{1, 1}, core.Up, cell{1, 5}},
		{"inky mirrors blinky", agent.Inky, cell{8, 8}, cell{3, 5}, core.Right, cell{7, 9}},
		{"inky falls back on walls", agent.Inky, cell{8, 8}, cell{5, 3}, core.Right, cell{5, 5}},
		{"clyde retreats when close", agent.Clyde, cell{5, 6}, cell{1, 1}, core.Right, cell{10, 1}},
		{"stopped player has no lead", agent.Pinky, cell{8, 8}, cell{1, 1}, core.None, cell{5, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewChaser(tc.id, g, nil)
			view := agent.View{Grid: g, Player: player, Heading: tc.heading}
			view.Pursuers[agent.Blinky] = agent.Agent{Bounds: centred(tc.blinky.row, tc.blinky.col)}
			assert.Equal(t, tc.expected, c.target(g, view, tc.here))
		})
	}

	far := NewChaser(agent.Clyde, g, nil)
	view := agent.View{Grid: g, Player: agent.Agent{Bounds: centred(1, 1)}}
	assert.Equal(t, cell{1, 1}, far.target(g, view, cell{10, 10}), "clyde chases from afar")
}

func TestHomeCorners(t *testing.T) {
	g := newGrid(t, openRows())
	assert.Equal(t, cell{1, 10}, homeCorner(g, agent.Blinky))
	assert.Equal(t, cell{1, 1}, homeCorner(g, agent.Pinky))
	assert.Equal(t, cell{10, 10}, homeCorner(g, agent.Inky))
	assert.Equal(t, cell{10, 1}, homeCorner(g, agent.Clyde))
}

const (
	cellSize  = 16.0
	agentSize = 12.0
	frame     = 1.0 / 60
)

func classicPursuers(t *testing.T, seed int64) (*maze.Grid, *agent.Player, [agent.PursuerCount]*agent.Pursuer, [agent.PursuerCount]*Chaser) {
	t.Helper()
	layout := maze.Classic()
	g, err := layout.Build(cellSize, cellSize, agent.RosterNames()...)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(seed))
	player := agent.NewPlayer(agent.SpawnBounds(g, layout.Player, agentSize), 0, 0.25)

	var pursuers [agent.PursuerCount]*agent.Pursuer
	var chasers [agent.PursuerCount]*Chaser
	for _, id := range agent.Roster() {
		spawn := layout.Pursuers[id.String()]
		pursuers[id] = agent.NewPursuer(id, agent.SpawnBounds(g, spawn, agentSize), 64)
		chasers[id] = NewChaser(id, g, rng)
	}
	return g, player, pursuers, chasers
}

func view(g *maze.Grid, player *agent.Player, pursuers [agent.PursuerCount]*agent.Pursuer) agent.View {
	v := agent.View{Grid: g, Player: player.Agent, Heading: player.Heading(), Elapsed: frame}
	for i, p := range pursuers {
		v.Pursuers[i] = p.Agent
	}
	return v
}

func TestBlinkyReachesStillPlayer(t *testing.T) {
	g, player, pursuers, chasers := classicPursuers(t, 1)
	blinky := pursuers[agent.Blinky]

	for range 3000 {
		blinky.Advance(chasers[agent.Blinky], view(g, player, pursuers), frame, g)
		require.False(t, g.HitsWall(blinky.Bounds))
		if blinky.Bounds.Intersects(player.Bounds) {
			return
		}
	}
	t.Fatalf("blinky never reached the player, ended at %+v", blinky.Bounds)
}

func TestPursuersRoamWithoutPenetratingWalls(t *testing.T) {
	g, player, pursuers, chasers := classicPursuers(t, 99)

	start := make(map[agent.PursuerID]core.RectF)
	for _, p := range pursuers {
		start[p.ID] = p.Bounds
	}

	for range 1500 {
		for _, id := range agent.Roster() {
			pursuers[id].Advance(chasers[id], view(g, player, pursuers), frame, g)
			require.False(t, g.HitsWall(pursuers[id].Bounds), "%s inside a wall", id)
		}
	}

	for _, p := range pursuers {
		assert.NotEqual(t, start[p.ID], p.Bounds, "%s never left its spawn", p.ID)
	}
}

func TestChasersAreDeterministic(t *testing.T) {
	run := func() [agent.PursuerCount]core.RectF {
		g, player, pursuers, chasers := classicPursuers(t, 42)
		for range 600 {
			for _, id := range agent.Roster() {
				pursuers[id].Advance(chasers[id], view(g, player, pursuers), frame, g)
			}
		}
		var out [agent.PursuerCount]core.RectF
		for i, p := range pursuers {
			out[i] = p.Bounds
		}
		return out
	}

	assert.Equal(t, run(), run())
}
