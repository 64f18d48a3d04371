package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/flowgrid/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNoPath is returned when end cannot be reached from start.
	ErrNoPath = errors.New("search: no path found")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrNilGrid is returned when New is given a nil grid.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownMethod is returned for an unsupported Method.
	ErrUnknownMethod = errors.New("search: unknown method")
)

// Method selects one of the path-producing solvers.
type Method int

const (
	// MethodDFS selects depth-first search with backtracking.
	MethodDFS Method = iota
	// MethodBFS selects breadth-first shortest path.
	MethodBFS
	// MethodAStar selects A* shortest path.
	MethodAStar
)

// Methods lists every supported Method in declaration order.
var Methods = []Method{MethodDFS, MethodBFS, MethodAStar}

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case MethodDFS:
		return "dfs"
	case MethodBFS:
		return "bfs"
	case MethodAStar:
		return "astar"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod accepts "dfs", "bfs", "astar" or "a*", case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs":
		return MethodDFS, nil
	case "bfs":
		return MethodBFS, nil
	case "astar", "a*", "a-star":
		return MethodAStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	switch m {
	case MethodDFS, MethodBFS, MethodAStar:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Trace is the ordered log of cells a solver examined.
type Trace []grid.Position

// Option configures a single solver call.
type Option func(*Options)

// Options holds per-call hooks.
type Options struct {
	// OnVisit is invoked for every trace event, in order.
	OnVisit func(p grid.Position)

	// trace, if non-nil, receives every trace event.
	trace *Trace
}

// DefaultOptions returns Options with a no-op OnVisit and no trace sink.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(grid.Position) {},
	}
}

// WithTrace appends every visited cell to *dst.
func WithTrace(dst *Trace) Option {
	return func(o *Options) {
		o.trace = dst
	}
}

// WithOnVisit registers a callback run for every visited cell.
func WithOnVisit(fn func(p grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// visit records p in the trace and fires OnVisit.
func (o *Options) visit(p grid.Position) {
	if o.trace != nil {
		*o.trace = append(*o.trace, p)
	}
	o.OnVisit(p)
}
