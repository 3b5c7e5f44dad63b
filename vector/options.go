package vector

import "log/slog"

type options struct {
	logger   *slog.Logger
	onResize func(from, to int)
}

// Option configures a Vector.
type Option func(*options)

// WithLogger sets the logger used for capacity changes and disposal.
// Records are emitted at debug level. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithResizeHook registers fn to be called after every reallocation with the
// old and new capacity.
func WithResizeHook(fn func(from, to int)) Option {
	return func(o *options) {
		o.onResize = fn
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
