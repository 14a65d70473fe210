// Package maze owns the fixed cell layout of a round. It answers wall
// collision queries, resolves agent movement against walls and consumes
// pickups under an agent's bounds.
package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

var (
	// ErrInvalidLayout is returned when a layout template cannot form a closed maze.
	ErrInvalidLayout = errors.New("maze: invalid layout")
	// ErrOutOfRange is returned for cell queries outside the grid.
	ErrOutOfRange = errors.New("maze: cell out of range")
)

// Category is what occupies a cell.
type Category uint8

const (
	Wall Category = iota
	Empty
	Pickup
	BonusPickup
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Wall:
		return "wall"
	case Empty:
		return "empty"
	case Pickup:
		return "pickup"
	case BonusPickup:
		return "bonus"
	default:
		return "unknown"
	}
}

// IsPickup reports whether the category counts toward the win condition.
func (c Category) IsPickup() bool {
	return c == Pickup || c == BonusPickup
}

// Layout symbols.
const (
	SymbolWall        = '#'
	SymbolEmpty       = ' '
	SymbolPickup      = '.'
	SymbolBonusPickup = 'o'
)

func categoryOf(r rune) (Category, bool) {
	switch r {
	case SymbolWall:
		return Wall, true
	case SymbolEmpty:
		return Empty, true
	case SymbolPickup:
		return Pickup, true
	case SymbolBonusPickup:
		return BonusPickup, true
	default:
		return Wall, false
	}
}

// Cell is one square of the maze. Bounds never change after construction;
// Category only ever moves from a pickup to Empty.
type Cell struct {
	Category Category
	Bounds   core.RectF
}

// Grid is a dense row-major array of cells.
type Grid struct {
	width, height int
	cellW, cellH  float64
	cells         []Cell
}

// New builds a grid from symbol rows. Cell (row, col) covers
// (col*cellW, row*cellH, cellW, cellH).
func New(rows []string, cellW, cellH float64) (*Grid, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("%w: cell size %gx%g must be positive", ErrInvalidLayout, cellW, cellH)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}

	width := len([]rune(rows[0]))
	height := len(rows)
	if width == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrInvalidLayout)
	}

	g := &Grid{
		width:  width,
		height: height,
		cellW:  cellW,
		cellH:  cellH,
		cells:  make([]Cell, width*height),
	}

	for row, line := range rows {
		symbols := []rune(line)
		if len(symbols) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidLayout, row, len(symbols), width)
		}
		for col, sym := range symbols {
			cat, ok := categoryOf(sym)
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol %q at (%d, %d)", ErrInvalidLayout, sym, row, col)
			}
			onBorder := row == 0 || row == height-1 || col == 0 || col == width-1
			if onBorder && cat != Wall {
				return nil, fmt.Errorf("%w: border cell (%d, %d) is %s", ErrInvalidLayout, row, col, cat)
			}
			g.cells[g.index(row, col)] = Cell{
				Category: cat,
				Bounds:   core.NewRectF(float64(col)*cellW, float64(row)*cellH, cellW, cellH),
			}
		}
	}

	return g, nil
}

func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// CellSize returns the size of one cell in maze units.
func (g *Grid) CellSize() (w, h float64) {
	return g.cellW, g.cellH
}

// InBounds returns true if (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// CellAt returns the cell at (row, col).
func (g *Grid) CellAt(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfRange, row, col, g.height, g.width)
	}
	return g.cells[g.index(row, col)], nil
}

// IsWall reports whether (row, col) blocks movement. Anything outside the
// grid counts as wall.
func (g *Grid) IsWall(row, col int) bool {
	if !g.InBounds(row, col) {
		return true
	}
	return g.cells[g.index(row, col)].Category == Wall
}

// CellOf returns the (row, col) containing point p, clamped to the grid.
func (g *Grid) CellOf(p core.Vec) (row, col int) {
	row = core.Clamp(int(math.Floor(p.Y/g.cellH)), 0, g.height-1)
	col = core.Clamp(int(math.Floor(p.X/g.cellW)), 0, g.width-1)
	return row, col
}

// CountRemainingPickups scans every cell and counts pickups of either kind.
func (g *Grid) CountRemainingPickups() int {
	n := 0
	for _, c := range g.cells {
		if c.Category.IsPickup() {
			n++
		}
	}
	return n
}

// ConsumePickupsOverlapping empties every pickup cell whose bounds intersect
// the query and returns how many were consumed.
func (g *Grid) ConsumePickupsOverlapping(bounds core.RectF) int {
	total, _ := g.ConsumePickupsDetailed(bounds)
	return total
}

// ConsumePickupsDetailed is ConsumePickupsOverlapping that also reports how
// many of the consumed cells were bonus pickups.
func (g *Grid) ConsumePickupsDetailed(bounds core.RectF) (total, bonus int) {
	r0, r1, c0, c1 := g.coveredRange(bounds)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cell := &g.cells[g.index(row, col)]
			if !cell.Category.IsPickup() || !cell.Bounds.Intersects(bounds) {
				continue
			}
			if cell.Category == BonusPickup {
				bonus++
			}
			cell.Category = Empty
			total++
		}
	}
	return total, bonus
}

// coveredRange returns the inclusive row and column ranges of cells that a
// rectangle can intersect. An empty range has r0 > r1 or c0 > c1.
func (g *Grid) coveredRange(b core.RectF) (r0, r1, c0, c1 int) {
	r0, r1 = span(b.Y, b.Bottom(), g.cellH, g.height)
	c0, c1 = span(b.X, b.Right(), g.cellW, g.width)
	return r0, r1, c0, c1
}

// span maps the half-open segment [lo, hi) onto indices of cells of the
// given size, clamped to [0, n). The float division is corrected on both
// ends so a cell is never skipped because of rounding.
func span(lo, hi, size float64, n int) (first, last int) {
	first = int(math.Floor(lo / size))
	if float64(first)*size > lo {
		first--
	}
	last = int(math.Floor(hi / size))
	if float64(last+1)*size < hi {
		last++
	}
	if float64(last)*size >= hi {
		last--
	}
	return max(first, 0), min(last, n-1)
}
