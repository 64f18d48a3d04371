package router

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/flowgrid/grid"
	"github.com/katalvlaran/flowgrid/search"
)

// Router owns a grid for the duration of a run and routes its pairs one at
// a time. Solvability is order dependent: the router never reorders pairs,
// never retries a pair with another method and never rolls back a committed
// path.
type Router struct {
	grid    *grid.Grid
	initial *grid.Grid // blocked state before endpoints were placed
	engine  *search.Engine
	pairs  []Pair
	opts   Options
}

// New validates pairs against g and pre-blocks every endpoint so that no
// other pair's path can cross it.
//
// Errors: ErrNilGrid, ErrNoPairs, ErrOutOfBounds, ErrDuplicateEndpoint,
// or search.ErrUnknownMethod for an unsupported WithMethod value.
func New(g *grid.Grid, pairs []Pair, opts ...Option) (*Router, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := o.Method.MarshalText(); err != nil {
		return nil, err
	}
	if err := validatePairs(g, pairs); err != nil {
		return nil, err
	}
	engine, err := search.New(g)
	if err != nil {
		return nil, err
	}

	r := &Router{
		grid:    g,
		initial: g.Clone(),
		engine:  engine,
		pairs:   append([]Pair(nil), pairs...),
		opts:    o,
	}
	r.placeEndpoints()

	return r, nil
}

func validatePairs(g *grid.Grid, pairs []Pair) error {
	seen := make(map[grid.Position]int, 2*len(pairs))
	for i, p := range pairs {
		for _, q := range [2]grid.Position{p.Start, p.End} {
			if !g.InBounds(q) {
				return fmt.Errorf("%w: pair %d (%s) at %v", ErrOutOfBounds, i, p.Label, q)
			}
			if j, dup := seen[q]; dup {
				return fmt.Errorf("%w: pair %d and pair %d at %v", ErrDuplicateEndpoint, j, i, q)
			}
			seen[q] = i
		}
	}

	return nil
}

// placeEndpoints marks both endpoints of every pair blocked.
func (r *Router) placeEndpoints() {
	for _, p := range r.pairs {
		_ = r.grid.SetBlocked(p.Start, true)
		_ = r.grid.SetBlocked(p.End, true)
	}
}

// Grid returns the routed grid.
func (r *Router) Grid() *grid.Grid { return r.grid }

// Engine returns the search engine bound to the grid.
func (r *Router) Engine() *search.Engine { return r.engine }

// Method returns the configured solver.
func (r *Router) Method() search.Method { return r.opts.Method }

// Pairs returns a copy of the pairs in routing order.
func (r *Router) Pairs() []Pair { return append([]Pair(nil), r.pairs...) }

// Reset clears every reservation and re-places the endpoints, returning the
// grid to its state right after New. Cells the caller blocked before New
// stay blocked.
func (r *Router) Reset() {
	_ = r.grid.Restore(r.initial)
	r.placeEndpoints()
}

// Run routes every pair in order. For each pair it searches the current grid
// and, on success, reserves the whole path before moving on.
//
// The first pair without a path aborts the run with an *UnsolvableError
// wrapping search.ErrNoPath; later pairs are not attempted and paths already
// committed stay reserved. ctx is checked between pairs only. The returned
// Result is non-nil in every case and holds the committed solutions.
func (r *Router) Run(ctx context.Context) (*Result, error) {
	started := time.Now()
	res := &Result{Method: r.opts.Method}
	log := r.opts.Logger.WithFields(logrus.Fields{
		"method": r.opts.Method.String(),
		"pairs":  len(r.pairs),
	})

	for i, p := range r.pairs {
		if err := ctx.Err(); err != nil {
			res.Elapsed = time.Since(started)
			log.WithError(err).Warn("run cancelled")

			return res, err
		}
		plog := log.WithFields(logrus.Fields{"pair": i, "label": p.Label})
		plog.Debug("searching")

		var trace search.Trace
		path, err := r.engine.Solve(r.opts.Method, p.Start, p.End, search.WithTrace(&trace))
		if err != nil {
			res.Elapsed = time.Since(started)
			uerr := &UnsolvableError{Index: i, Pair: p, Method: r.opts.Method, Err: err}
			plog.WithField("visited", len(trace)).Warnf("no path for %s using %s, aborting", p.Label, r.opts.Method)
			r.opts.Sink.Aborted(i, p, trace, uerr)

			return res, uerr
		}
		r.opts.Sink.Searched(i, p, trace)

		r.reserve(path)
		r.opts.Sink.Committed(i, p, path)
		res.Solutions = append(res.Solutions, Solution{Pair: p, Path: path, Trace: trace})
		plog.WithFields(logrus.Fields{
			"length":  len(path),
			"visited": len(trace),
		}).Debug("committed")
	}

	res.Elapsed = time.Since(started)
	log.WithField("elapsed", res.Elapsed).Info("all pairs solved")

	return res, nil
}

// reserve blocks every cell of path. Endpoints are already blocked.
func (r *Router) reserve(path grid.Path) {
	for _, q := range path {
		_ = r.grid.SetBlocked(q, true)
	}
}
