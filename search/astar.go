package search

import (
	"fmt"

	"github.com/katalvlaran/flowgrid/grid"
	"github.com/katalvlaran/flowgrid/pqueue"
)

// SolveAStar returns a shortest path from start to end using A* with the
// Manhattan heuristic, which is admissible and consistent for unit-cost
// four-way movement.
//
// The open set is a pqueue.Queue keyed by f = g + h. When a queued cell gets
// a better g it keeps its original queue entry and priority: only cells not
// already in the open set are pushed. The closed set is filled on pop and a
// closed cell is never relaxed again. A blocked cell may be entered only if
// it is end.
//
// Returns ErrNoPath if the open set empties before end is popped.
// Complexity: O(W×H · log(W×H)) time, O(W×H) memory.
func (e *Engine) SolveAStar(start, end grid.Position, opts ...Option) (grid.Path, error) {
	if err := e.checkEndpoints(start, end); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	g := e.grid
	n := g.Size()

	open := pqueue.New[grid.Position]()
	closed := make([]bool, n)
	prev := newPrev(n)
	gScore := make([]int, n)
	for i := range gScore {
		gScore[i] = -1 // unknown
	}

	open.Enqueue(start, 0)
	gScore[g.Index(start)] = 0
	o.visit(start)

	for open.Len() > 0 {
		cur, err := open.Dequeue()
		if err != nil {
			return nil, fmt.Errorf("search: astar open set: %w", err)
		}
		o.visit(cur)
		if cur == end {
			return reconstruct(g, prev, start, end), nil
		}
		ci := g.Index(cur)
		if closed[ci] {
			continue
		}
		closed[ci] = true

		for _, d := range grid.Directions {
			nb := cur.Add(d)
			if !g.InBounds(nb) {
				continue
			}
			ni := g.Index(nb)
			if closed[ni] {
				continue
			}
			if g.Blocked(nb) && nb != end {
				continue
			}
			tentative := gScore[ci] + 1
			if gScore[ni] >= 0 && tentative >= gScore[ni] {
				continue
			}
			prev[ni] = ci
			gScore[ni] = tentative
			if !open.Contains(nb) {
				open.Enqueue(nb, float64(tentative)+heuristic(nb, end))
				o.visit(nb)
			}
		}
	}

	return nil, ErrNoPath
}

// heuristic is the Manhattan distance between a and b.
func heuristic(a, b grid.Position) float64 {
	return float64(a.Manhattan(b))
}
