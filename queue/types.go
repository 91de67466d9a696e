package queue

import (
	"errors"
	"fmt"
)

// Sentinel errors for queue construction.
var (
	// ErrBadCapacity indicates a negative capacity hint was supplied.
	ErrBadCapacity = errors.New("queue: capacity must be non-negative")
)

// Options configures a Queue before creation.
//
// Capacity - number of arena slots to preallocate (0 = grow on demand).
type Options struct {
	Capacity int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a Queue.
type Option func(*Options)

// WithCapacity preallocates room for n entries.
// A negative n is recorded and surfaced as ErrBadCapacity by New.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadCapacity, n)
			return
		}
		o.Capacity = n
	}
}

// DefaultOptions returns Options with no preallocation.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}
