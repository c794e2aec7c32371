package kozue

import "log/slog"

// LogFunc is the optional diagnostic sink. It is invoked synchronously
// with a human-readable message and never affects control flow.
type LogFunc func(msg string)

// SlogSink adapts a slog.Logger to a LogFunc, emitting traversal
// summaries at debug level.
func SlogSink(logger *slog.Logger) LogFunc {
	return func(msg string) {
		logger.Debug(msg)
	}
}

type options struct {
	log              LogFunc
	ancestorFallback bool
}

// Option configures a single Propagate or Request pass.
type Option func(*options)

// WithLog attaches a diagnostic sink to the pass.
func WithLog(fn LogFunc) Option {
	return func(o *options) {
		o.log = fn
	}
}

// WithAncestorFallback lets Request accept an ancestor whose underlying
// object is itself usable as the requested type, when no Injector for
// the type exists in the ancestor chain. Propagate ignores this option.
func WithAncestorFallback() Option {
	return func(o *options) {
		o.ancestorFallback = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
