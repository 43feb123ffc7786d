package route

import "github.com/katalvlaran/gridroute/gridgraph"

// WithDirectionOrder overrides the order in which neighbours are relaxed.
func WithDirectionOrder(order [4]gridgraph.Direction) Option {
	return func(o *Options) {
		o.order = order
	}
}
