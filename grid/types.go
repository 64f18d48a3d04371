package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no columns or no rows was requested.
	ErrEmptyGrid = errors.New("grid: width and height must be at least one")
	// ErrOutOfBounds indicates a position outside the grid was addressed.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrTooLarge indicates width×height does not fit in an int.
	ErrTooLarge = errors.New("grid: width×height overflows")
	// ErrSizeMismatch indicates two grids of different dimensions were combined.
	ErrSizeMismatch = errors.New("grid: dimensions differ")
)

// Position is an integer cell coordinate. Two positions are equal iff
// both coordinates match; there is no ordering.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String formats p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Unit moves.
var (
	Right = Position{X: 1, Y: 0}
	Up    = Position{X: 0, Y: 1}
	Left  = Position{X: -1, Y: 0}
	Down  = Position{X: 0, Y: -1}
)

// Directions is the fixed neighbor order used by every search:
// right, up, left, down.
var Directions = [4]Position{Right, Up, Left, Down}

// Cell is a single board tile. Pos always equals the cell's index in its grid.
type Cell struct {
	Pos     Position
	Blocked bool
}

// Grid is an exclusively owned width×height array of Cells.
// Dimensions are fixed for the lifetime of the value.
type Grid struct {
	width, height int
	cells         []Cell // row-major: cells[y*width+x]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
