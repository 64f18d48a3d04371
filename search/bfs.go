package search

import "github.com/katalvlaran/flowgrid/grid"

// bfsWalker encapsulates mutable state for one breadth-first call.
type bfsWalker struct {
	grid    *grid.Grid
	queue   []int // row-major indices
	visited []bool
	prev    []int
}

func newBFSWalker(g *grid.Grid) *bfsWalker {
	n := g.Size()

	return &bfsWalker{
		grid:    g,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		prev:    newPrev(n),
	}
}

// seed marks start visited and enqueues it.
func (w *bfsWalker) seed(start grid.Position) {
	i := w.grid.Index(start)
	w.visited[i] = true
	w.queue = append(w.queue, i)
}

// dequeue pops the head of the FIFO frontier.
func (w *bfsWalker) dequeue() grid.Position {
	i := w.queue[0]
	w.queue = w.queue[1:]

	return w.grid.Coordinate(i)
}

// SolveBFS returns a shortest path from start to end by edge count.
// Neighbors are enqueued right, up, left, down; the first discoverer of a
// cell becomes its predecessor and is never replaced. A blocked cell may be
// entered only if it is end.
//
// Returns ErrNoPath if end is never reached.
// Complexity: O(W×H) time and memory.
func (e *Engine) SolveBFS(start, end grid.Position, opts ...Option) (grid.Path, error) {
	if err := e.checkEndpoints(start, end); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	w := newBFSWalker(e.grid)

	w.seed(start)
	o.visit(start)

	for len(w.queue) > 0 {
		cur := w.dequeue()
		o.visit(cur)
		if cur == end {
			break
		}
		ci := e.grid.Index(cur)
		for _, d := range grid.Directions {
			next := cur.Add(d)
			if !e.grid.InBounds(next) {
				continue
			}
			ni := e.grid.Index(next)
			if w.visited[ni] {
				continue
			}
			if e.grid.Blocked(next) && next != end {
				continue
			}
			w.visited[ni] = true
			w.prev[ni] = ci
			w.queue = append(w.queue, ni)
			o.visit(next)
		}
	}

	if !w.visited[e.grid.Index(end)] {
		return nil, ErrNoPath
	}

	return reconstruct(e.grid, w.prev, start, end), nil
}

// IsReachable reports whether end can be reached from start through
// unblocked cells only. Unlike SolveBFS there is no exception for end: a
// blocked end is unreachable unless it equals start. It records no trace and
// reconstructs no path.
//
// Complexity: O(W×H) time and memory.
func (e *Engine) IsReachable(start, end grid.Position) (bool, error) {
	if err := e.checkEndpoints(start, end); err != nil {
		return false, err
	}
	w := newBFSWalker(e.grid)
	w.seed(start)

	for len(w.queue) > 0 {
		cur := w.dequeue()
		if cur == end {
			return true, nil
		}
		for _, d := range grid.Directions {
			next := cur.Add(d)
			if !e.grid.InBounds(next) {
				continue
			}
			ni := e.grid.Index(next)
			if w.visited[ni] || e.grid.Blocked(next) {
				continue
			}
			w.visited[ni] = true
			w.queue = append(w.queue, ni)
		}
	}

	return false, nil
}
