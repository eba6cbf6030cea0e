package hint

import "fmt"

// DefaultWorkers is the number of annotation goroutines when no option is
// given; 1 means fully serial.
const DefaultWorkers = 1

// options carries gathered configuration; fields stay unexported so the
// only mutation path is a validated WithX constructor.
type options struct {
	workers int
}

// Option configures Annotate.
type Option func(*options)

// WithWorkers splits annotation across n goroutines. Each entity is written
// by exactly one worker; board reads are lock-free because the grid shape
// is immutable after construction. Panics if n < 1 (programmer error).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("hint: WithWorkers(%d): worker count must be at least 1", n))
	}
	return func(o *options) { o.workers = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
