package core

import "math"

// Direction is the facing of an agent. None means standing still.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four movement directions in tie-break priority order.
var Directions = [4]Direction{Up, Left, Down, Right}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Vec returns the unit vector for the direction (zero for None).
func (d Direction) Vec() Vec {
	switch d {
	case Up:
		return Vec{Y: -1}
	case Down:
		return Vec{Y: 1}
	case Left:
		return Vec{X: -1}
	case Right:
		return Vec{X: 1}
	default:
		return Vec{}
	}
}

// Delta returns the (row, col) step of the direction on a grid.
func (d Direction) Delta() (dr, dc int) {
	v := d.Vec()
	return int(v.Y), int(v.X)
}

// Opposite returns the reverse direction. None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Degrees returns the screen rotation of the direction, with Right at 0
// and angles growing clockwise. None maps to 0.
func (d Direction) Degrees() float64 {
	switch d {
	case Down:
		return 90
	case Left:
		return 180
	case Up:
		return 270
	default:
		return 0
	}
}

// DirectionOf returns the dominant direction of a displacement.
// Horizontal wins ties; a zero vector yields None.
func DirectionOf(v Vec) Direction {
	if v.IsZero() {
		return None
	}
	if math.Abs(v.X) >= math.Abs(v.Y) {
		if v.X > 0 {
			return Right
		}
		return Left
	}
	if v.Y > 0 {
		return Down
	}
	return Up
}
