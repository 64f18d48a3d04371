package router

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/flowgrid/search"
)

// Option configures a Router.
type Option func(*Options)

// Options holds Router configuration.
type Options struct {
	// Method is the solver used for every pair. Defaults to BFS.
	Method search.Method

	// Logger receives per-pair progress. Defaults to a discarding logger.
	Logger logrus.FieldLogger

	// Sink receives traces and paths. Defaults to NopSink.
	Sink Sink
}

// DefaultOptions returns BFS, a silent logger and NopSink.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Method: search.MethodBFS,
		Logger: l,
		Sink:   NopSink,
	}
}

// WithMethod selects the solver.
func WithMethod(m search.Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSink sets the progress sink; nil is ignored.
func WithSink(s Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}
