package app

import "time"

const defaultListWorkers = 4

// Option configures the application services.
type Option func(*options)

type options struct {
	now         func() time.Time
	listWorkers int
}

// WithClock overrides the time source used to stamp created/updated.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithListWorkers bounds how many task collections are loaded concurrently
// when listing task lists. Values below 1 keep the default.
func WithListWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.listWorkers = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		now:         systemNow,
		listWorkers: defaultListWorkers,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// systemNow truncates to microseconds, the resolution postgres stores.
func systemNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
