package bytefall

import (
	"context"
	"errors"
	"log/slog"
)

var (
	// ErrBadCoordinate indicates an input line that is not "x,y" with two
	// non-negative integers.
	ErrBadCoordinate = errors.New("bytefall: bad coordinate")
	// ErrBadSize indicates a memory space with size < 1.
	ErrBadSize = errors.New("bytefall: size must be ≥ 1")
	// ErrBadCount indicates a byte count outside [0, len(coords)].
	ErrBadCount = errors.New("bytefall: byte count out of range")
	// ErrOutsideSpace indicates a byte that lands outside the size×size space.
	ErrOutsideSpace = errors.New("bytefall: byte lands outside the memory space")
	// ErrNeverBlocked indicates that the exit stays reachable after every byte.
	ErrNeverBlocked = errors.New("bytefall: exit is never cut off")
)

// Options configures FirstBlocking.
type Options struct {
	Ctx    context.Context
	Logger *slog.Logger
}

// Option represents a functional option for configuring FirstBlocking.
type Option func(*Options)

// DefaultOptions returns a background context and a discarding logger.
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

// WithLogger routes debug output to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
