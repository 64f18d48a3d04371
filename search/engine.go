package search

import (
	"fmt"

	"github.com/katalvlaran/flowgrid/grid"
)

// Engine runs searches against a grid it does not own. It reads blocked
// state at call time, so changes made between calls are always observed.
type Engine struct {
	grid *grid.Grid
}

// New returns an Engine over g.
func New(g *grid.Grid) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	return &Engine{grid: g}, nil
}

// Grid returns the grid the engine searches.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// Solve dispatches to SolveDFS, SolveBFS or SolveAStar.
func (e *Engine) Solve(m Method, start, end grid.Position, opts ...Option) (grid.Path, error) {
	switch m {
	case MethodDFS:
		return e.SolveDFS(start, end, opts...)
	case MethodBFS:
		return e.SolveBFS(start, end, opts...)
	case MethodAStar:
		return e.SolveAStar(start, end, opts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}

// checkEndpoints fails fast on out-of-bounds endpoints instead of clamping.
func (e *Engine) checkEndpoints(start, end grid.Position) error {
	if !e.grid.InBounds(start) {
		return fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !e.grid.InBounds(end) {
		return fmt.Errorf("%w: end %v", ErrOutOfBounds, end)
	}

	return nil
}

// reconstruct walks prev from end back to start and reverses the result.
// prev holds row-major predecessor indices, -1 for none.
func reconstruct(g *grid.Grid, prev []int, start, end grid.Position) grid.Path {
	path := grid.Path{end}
	for at := g.Index(end); at != g.Index(start); {
		at = prev[at]
		path = append(path, g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// newPrev returns a predecessor array of size n filled with -1.
func newPrev(n int) []int {
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}

	return prev
}
