package enumerate

import (
	"context"
	"log/slog"
)

// Option configures a single Enumerate / Each / EnumerateParallel call.
type Option func(*Options)

// Options holds per-call execution settings. Search bounds live in
// Restrictions; Options only controls how the search runs.
type Options struct {
	// Ctx carries cancellation and the parent trace span. Default: Background.
	Ctx context.Context

	// Logger receives Debug records about the search. Default: discards.
	Logger *slog.Logger

	// Workers caps concurrent branches in EnumerateParallel.
	// 0 means one worker per mutation set. Ignored by the sequential calls.
	Workers int
}

// discardLogger is the silent default.
var discardLogger = slog.New(slog.DiscardHandler)

// DefaultOptions returns Options with a Background context, a discarding
// logger and Workers = 0.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Logger:  discardLogger,
		Workers: 0,
	}
}

// WithContext sets the context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes Debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("enumerate: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithWorkers caps the parallel pool at n goroutines; 0 restores the default
// of one per mutation set. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("enumerate: WithWorkers(n<0)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// newOptions applies opts over DefaultOptions, last wins.
func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
