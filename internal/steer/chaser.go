package steer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/agent"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Personality constants, in cells.
const (
	pinkyLead   = 4
	inkyPivot   = 2
	clydeRadius = 8
)

type cell struct {
	row, col int
}

// Chaser steers one pursuer through the maze toward a target picked by its
// identity:
//   - Blinky: the player's cell
//   - Pinky: four cells ahead of the player
//   - Inky: Blinky's cell mirrored through the point two cells ahead of the player
//   - Clyde: the player while far away, its home corner once within eight cells
//
// Directions are only chosen near the middle of a cell, once per cell, so the
// pursuer always turns inside a lane.
type Chaser struct {
	id      agent.PursuerID
	field   *FlowField
	rng     *rand.Rand
	home    cell
	decided cell
	hasDec  bool
}

// NewChaser creates the steering for one pursuer identity.
// rng breaks ties between equally short paths.
func NewChaser(id agent.PursuerID, g *maze.Grid, rng *rand.Rand) *Chaser {
	return &Chaser{
		id:    id,
		field: NewFlowField(g.Width(), g.Height()),
		rng:   rng,
		home:  homeCorner(g, id),
	}
}

// Steer implements agent.Steering.
func (c *Chaser) Steer(self *agent.Pursuer, v agent.View) core.Direction {
	g := v.Grid
	center := self.Bounds.Center()
	row, col := g.CellOf(center)
	off := cellCenter(g, row, col).Sub(center)

	tol := math.Max(self.Speed*v.Elapsed, 1e-6)
	if math.Abs(off.X) > tol || math.Abs(off.Y) > tol {
		if inLane(self.Facing, off, tol) {
			return self.Facing
		}
		c.hasDec = false
		return recentre(self, off, tol, v)
	}

	here := cell{row, col}
	if c.hasDec && c.decided == here && self.Facing != core.None {
		return self.Facing
	}

	target := c.target(g, v, here)
	if tr, tc := c.field.Target(); !c.field.Valid() || tr != target.row || tc != target.col {
		c.field.Compute(g, target.row, target.col)
	}

	c.decided, c.hasDec = here, true
	if d := c.field.Next(row, col, c.rng); d != core.None {
		return d
	}
	return self.Facing
}

// target picks the cell this pursuer is heading for.
func (c *Chaser) target(g *maze.Grid, v agent.View, here cell) cell {
	pr, pc := g.CellOf(v.Player.Bounds.Center())
	player := cell{pr, pc}
	dr, dc := v.Heading.Delta()

	var t cell
	switch c.id {
	case agent.Pinky:
		t = cell{pr + pinkyLead*dr, pc + pinkyLead*dc}
	case agent.Inky:
		br, bc := g.CellOf(v.Pursuers[agent.Blinky].Bounds.Center())
		pivot := cell{pr + inkyPivot*dr, pc + inkyPivot*dc}
		t = cell{2*pivot.row - br, 2*pivot.col - bc}
	case agent.Clyde:
		if math.Hypot(float64(here.row-pr), float64(here.col-pc)) > clydeRadius {
			t = player
		} else {
			t = c.home
		}
	default:
		t = player
	}

	t.row = core.Clamp(t.row, 0, g.Height()-1)
	t.col = core.Clamp(t.col, 0, g.Width()-1)
	if g.IsWall(t.row, t.col) {
		return player
	}
	return t
}

// inLane reports whether moving along facing keeps the pursuer on the
// centre line of its lane.
func inLane(facing core.Direction, off core.Vec, tol float64) bool {
	switch facing {
	case core.Left, core.Right:
		return math.Abs(off.Y) <= tol
	case core.Up, core.Down:
		return math.Abs(off.X) <= tol
	default:
		return false
	}
}

// recentre moves a pursuer that stopped off its lane back toward the middle
// of its cell, larger offset first.
func recentre(self *agent.Pursuer, off core.Vec, tol float64, v agent.View) core.Direction {
	var dirs []core.Direction
	if math.Abs(off.X) > tol {
		dirs = append(dirs, core.DirectionOf(core.Vec{X: off.X}))
	}
	if math.Abs(off.Y) > tol {
		dirs = append(dirs, core.DirectionOf(core.Vec{Y: off.Y}))
	}
	if len(dirs) == 2 && math.Abs(off.Y) > math.Abs(off.X) {
		dirs[0], dirs[1] = dirs[1], dirs[0]
	}
	for _, d := range dirs {
		if self.CanMove(d, v.Elapsed, v.Grid) {
			return d
		}
	}
	return core.None
}

func cellCenter(g *maze.Grid, row, col int) core.Vec {
	cw, ch := g.CellSize()
	return core.Vec{X: (float64(col) + 0.5) * cw, Y: (float64(row) + 0.5) * ch}
}

// homeCorner returns the open cell nearest to the identity's maze corner.
func homeCorner(g *maze.Grid, id agent.PursuerID) cell {
	var corner cell
	switch id {
	case agent.Blinky:
		corner = cell{0, g.Width() - 1}
	case agent.Pinky:
		corner = cell{0, 0}
	case agent.Inky:
		corner = cell{g.Height() - 1, g.Width() - 1}
	default:
		corner = cell{g.Height() - 1, 0}
	}

	best, bestDist := corner, math.MaxInt
	for row := range g.Height() {
		for col := range g.Width() {
			if g.IsWall(row, col) {
				continue
			}
			d := abs(row-corner.row) + abs(col-corner.col)
			if d < bestDist {
				best, bestDist = cell{row, col}, d
			}
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
