package shortcut

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridroute/gridgraph"
)

var (
	// ErrEmptyRoute indicates a route with no points.
	ErrEmptyRoute = errors.New("shortcut: route is empty")
	// ErrNotARoute indicates a point sequence with a repeated point or a
	// non-unit step.
	ErrNotARoute = errors.New("shortcut: not a simple unit-step route")
	// ErrBadJump indicates maxJump < 1.
	ErrBadJump = errors.New("shortcut: max jump must be ≥ 1")
	// ErrBadMinSaved indicates minSaved < 1.
	ErrBadMinSaved = errors.New("shortcut: min saved must be ≥ 1")
	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("shortcut: workers must be ≥ 0")
)

// Shortcut is a jump from one route cell to a later one, ignoring walls.
type Shortcut struct {
	From, To gridgraph.Point
}

// String renders the shortcut as "(r,c)->(r,c)".
func (s Shortcut) String() string {
	return s.From.String() + "->" + s.To.String()
}

// Options configures Find.
type Options struct {
	Ctx     context.Context
	Workers int
	Logger  *slog.Logger

	err error
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// DefaultOptions returns a background context, sequential execution and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers splits the scan over n goroutines; 0 or 1 scans sequentially.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes debug output to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
