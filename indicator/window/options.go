package window

import "github.com/evdnx/movavg/indicator/core"

// Option configures how a SlidingAverage validates its capacity.
type Option func(*options)

type options struct {
	strictCapacity bool
	maxCapacity    int
}

func defaultOptions() options {
	return options{maxCapacity: core.DefaultMaxCapacity}
}

// WithStrictCapacity makes a requested capacity of 0 an error instead of
// silently using 1.
func WithStrictCapacity(enabled bool) Option {
	return func(o *options) { o.strictCapacity = enabled }
}

// WithMaxCapacity overrides core.DefaultMaxCapacity. Non-positive values are
// ignored.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxCapacity = n
		}
	}
}
