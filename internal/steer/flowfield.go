// Package steer chooses pursuer directions. A FlowField gives the
// shortest-path step from any open cell toward a target cell; a Chaser
// picks that target according to the pursuer's identity.
package steer

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Unreachable marks cells with no path to the target.
const Unreachable = -1

// FlowField holds breadth-first distances from every cell to a target.
// All moves cost the same, so BFS gives exact shortest paths.
type FlowField struct {
	width, height int
	dist          []int
	queue         []int

	targetRow, targetCol int
	valid                bool
}

// NewFlowField allocates a field for a grid of the given size.
func NewFlowField(width, height int) *FlowField {
	return &FlowField{
		width:  width,
		height: height,
		dist:   make([]int, width*height),
		queue:  make([]int, 0, width*height),
	}
}

// Compute fills the distances toward (row, col). It returns false, and
// leaves the field invalid, when the target is not an open cell.
func (f *FlowField) Compute(g *maze.Grid, row, col int) bool {
	for i := range f.dist {
		f.dist[i] = Unreachable
	}
	f.targetRow, f.targetCol = row, col
	f.valid = false

	if g.IsWall(row, col) {
		return false
	}

	f.queue = f.queue[:0]
	start := row*f.width + col
	f.dist[start] = 0
	f.queue = append(f.queue, start)

	for head := 0; head < len(f.queue); head++ {
		idx := f.queue[head]
		r, c := idx/f.width, idx%f.width
		for _, d := range core.Directions {
			dr, dc := d.Delta()
			nr, nc := r+dr, c+dc
			if g.IsWall(nr, nc) {
				continue
			}
			n := nr*f.width + nc
			if f.dist[n] != Unreachable {
				continue
			}
			f.dist[n] = f.dist[idx] + 1
			f.queue = append(f.queue, n)
		}
	}

	f.valid = true
	return true
}

// Valid reports whether the last Compute succeeded.
func (f *FlowField) Valid() bool {
	return f.valid
}

// Target returns the cell the field flows toward.
func (f *FlowField) Target() (row, col int) {
	return f.targetRow, f.targetCol
}

// Distance returns the number of steps from (row, col) to the target,
// or Unreachable.
func (f *FlowField) Distance(row, col int) int {
	if !f.valid || row < 0 || row >= f.height || col < 0 || col >= f.width {
		return Unreachable
	}
	return f.dist[row*f.width+col]
}

// Next returns the direction of one step closer to the target. When several
// neighbours are equally close, rng breaks the tie; a nil rng takes the first
// in core.Directions order. At the target or without a path it returns None.
func (f *FlowField) Next(row, col int, rng *rand.Rand) core.Direction {
	d := f.Distance(row, col)
	if d <= 0 {
		return core.None
	}

	var best [4]core.Direction
	n := 0
	for _, dir := range core.Directions {
		dr, dc := dir.Delta()
		if f.Distance(row+dr, col+dc) == d-1 {
			best[n] = dir
			n++
		}
	}

	switch {
	case n == 0:
		return core.None
	case n == 1 || rng == nil:
		return best[0]
	default:
		return best[rng.Intn(n)]
	}
}
