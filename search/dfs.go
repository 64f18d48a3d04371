package search

import "github.com/katalvlaran/flowgrid/grid"

// dfsWalker encapsulates state during a single SolveDFS call.
type dfsWalker struct {
	grid       *grid.Grid
	start, end grid.Position
	visited    []bool
	path       grid.Path
	opts       Options
}

// SolveDFS finds some simple path from start to end by recursive depth-first
// search with backtracking. Directions are tried right, up, left, down and the
// first one whose subtree reaches end is committed. Both start and end may be
// entered even when blocked.
//
// The result is deterministic but not necessarily shortest.
// Returns ErrNoPath when every branch is exhausted.
// Complexity: O(W×H) time and memory; each cell is visited at most once.
func (e *Engine) SolveDFS(start, end grid.Position, opts ...Option) (grid.Path, error) {
	if err := e.checkEndpoints(start, end); err != nil {
		return nil, err
	}
	w := &dfsWalker{
		grid:    e.grid,
		start:   start,
		end:     end,
		visited: make([]bool, e.grid.Size()),
		opts:    buildOptions(opts),
	}
	if !w.walk(start) {
		return nil, ErrNoPath
	}

	return w.path, nil
}

// walk visits cur and recurses into its neighbors. It returns true once end
// is reached, leaving the committed route in w.path.
func (w *dfsWalker) walk(cur grid.Position) bool {
	if !w.grid.InBounds(cur) {
		return false
	}
	idx := w.grid.Index(cur)
	if w.visited[idx] {
		return false
	}
	if w.grid.Blocked(cur) && cur != w.start && cur != w.end {
		return false
	}

	w.visited[idx] = true
	w.opts.visit(cur)
	w.path = append(w.path, cur)

	if cur == w.end {
		return true
	}
	for _, d := range grid.Directions {
		if w.walk(cur.Add(d)) {
			return true
		}
	}

	// backtrack
	w.path = w.path[:len(w.path)-1]

	return false
}
