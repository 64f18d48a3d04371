package grid

import (
	"fmt"
	"math"
)

// New builds a width×height grid with every cell unblocked.
// Returns ErrEmptyGrid if either dimension is below one and ErrTooLarge if
// the cell count overflows an int.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %d×%d", ErrTooLarge, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.index(x, y)] = Cell{Pos: Position{X: x, Y: y}}
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns Width()*Height(), the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Blocked reports whether the cell at p is blocked.
// Callers must check InBounds first; an out-of-bounds p panics.
func (g *Grid) Blocked(p Position) bool {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.width, g.height))
	}

	return g.cells[g.index(p.X, p.Y)].Blocked
}

// SetBlocked sets the blocked flag of the cell at p and nothing else.
func (g *Grid) SetBlocked(p Position, blocked bool) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.width, g.height)
	}
	g.cells[g.index(p.X, p.Y)].Blocked = blocked

	return nil
}

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.width, g.height)
	}

	return g.cells[g.index(p.X, p.Y)], nil
}

// BlockedCount returns how many cells are currently blocked.
func (g *Grid) BlockedCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Blocked {
			n++
		}
	}

	return n
}

// Reset unblocks every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Blocked = false
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Restore copies the blocked state of src into g. Both grids must have the
// same dimensions.
func (g *Grid) Restore(src *Grid) error {
	if src.width != g.width || src.height != g.height {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrSizeMismatch, src.width, src.height, g.width, g.height)
	}
	copy(g.cells, src.cells)

	return nil
}

// Index maps p to its row-major index y*Width + x.
// The result is only meaningful when InBounds(p).
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return g.index(p.X, p.Y)
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}
