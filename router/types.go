// Package router defines the sequential multi-pair routing policy: endpoint
// pairs are solved one at a time, in input order, and every committed path
// is reserved on the shared grid before the next pair is searched.
package router

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/flowgrid/grid"
	"github.com/katalvlaran/flowgrid/search"
)

// Sentinel errors for router construction and runs.
var (
	// ErrNilGrid is returned when New is given a nil grid.
	ErrNilGrid = errors.New("router: grid is nil")

	// ErrNoPairs is returned when New is given no endpoint pairs.
	ErrNoPairs = errors.New("router: at least one endpoint pair is required")

	// ErrOutOfBounds is returned when an endpoint lies outside the grid.
	ErrOutOfBounds = errors.New("router: endpoint out of bounds")

	// ErrDuplicateEndpoint is returned when two endpoints share a cell.
	ErrDuplicateEndpoint = errors.New("router: endpoints must not coincide")
)

// Pair is one endpoint pair to connect. Label is opaque to routing.
type Pair struct {
	Start grid.Position `json:"start"`
	End   grid.Position `json:"end"`
	Label string        `json:"label"`
}

// String formats the pair as "label (x,y)→(x,y)".
func (p Pair) String() string {
	return fmt.Sprintf("%s %v→%v", p.Label, p.Start, p.End)
}

// Solution is a committed pair: its path and the trace of the search that
// produced it.
type Solution struct {
	Pair  Pair
	Path  grid.Path
	Trace search.Trace
}

// Result summarizes a run. On abort it holds the solutions committed before
// the failing pair.
type Result struct {
	Method    search.Method
	Solutions []Solution
	Elapsed   time.Duration
}

// UnsolvableError reports the pair that aborted a run.
type UnsolvableError struct {
	Index  int
	Pair   Pair
	Method search.Method
	Err    error
}

func (e *UnsolvableError) Error() string {
	return fmt.Sprintf("router: no path for pair %d (%s) using %s: %v", e.Index, e.Pair, e.Method, e.Err)
}

// Unwrap returns the underlying search error, normally search.ErrNoPath.
func (e *UnsolvableError) Unwrap() error { return e.Err }

// Sink receives per-pair progress. Implementations must not call back into
// the Router; they may buffer and drain at their own pace.
type Sink interface {
	// Searched is called after a successful search, before the path is reserved.
	Searched(index int, p Pair, trace search.Trace)
	// Committed is called once the path has been reserved on the grid.
	Committed(index int, p Pair, path grid.Path)
	// Aborted is called for the pair that ended the run.
	Aborted(index int, p Pair, trace search.Trace, err error)
}

// SinkFuncs adapts plain functions to Sink. Nil fields are skipped.
type SinkFuncs struct {
	OnSearched  func(index int, p Pair, trace search.Trace)
	OnCommitted func(index int, p Pair, path grid.Path)
	OnAborted   func(index int, p Pair, trace search.Trace, err error)
}

func (s SinkFuncs) Searched(index int, p Pair, trace search.Trace) {
	if s.OnSearched != nil {
		s.OnSearched(index, p, trace)
	}
}

func (s SinkFuncs) Committed(index int, p Pair, path grid.Path) {
	if s.OnCommitted != nil {
		s.OnCommitted(index, p, path)
	}
}

func (s SinkFuncs) Aborted(index int, p Pair, trace search.Trace, err error) {
	if s.OnAborted != nil {
		s.OnAborted(index, p, trace, err)
	}
}

// NopSink discards everything.
var NopSink Sink = SinkFuncs{}
