package routing

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance reported for locations the search cannot reach.
const Unreachable int64 = math.MaxInt64

// Sentinel errors for graph construction and routing.
var (
	// ErrEmptyLabel indicates an edge endpoint or query location is the empty string.
	ErrEmptyLabel = errors.New("routing: location label is empty")

	// ErrNegativeWeight indicates AddEdge was given a weight below zero.
	ErrNegativeWeight = errors.New("routing: negative edge weight")

	// ErrNodeNotFound indicates Route was asked about a location that has no edges.
	ErrNodeNotFound = errors.New("routing: location not found")

	// ErrUnreachable indicates no route connects the requested locations.
	ErrUnreachable = errors.New("routing: destination unreachable")

	// ErrOptionViolation indicates an invalid Option was supplied to Route.
	ErrOptionViolation = errors.New("routing: invalid option supplied")
)

// Edge is one outgoing connection from a location.
type Edge struct {
	// To is the neighbouring location.
	To string

	// Weight is the travel cost, always ≥ 0.
	Weight int64
}

// Route is a resolved path together with its total weight.
type Route struct {
	// Path lists locations from start to end inclusive.
	Path []string

	// Distance is the sum of edge weights along Path.
	Distance int64
}

// Options tunes a single Route query.
type Options struct {
	// MaxDistance stops the search at locations farther than this
	// (default Unreachable, no cap).
	MaxDistance int64

	// BlockedThreshold makes edges with weight ≥ this impassable
	// (default Unreachable, nothing blocked).
	BlockedThreshold int64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for Route.
type Option func(*Options)

// WithMaxDistance stops the search beyond distance d. Negative d is an ErrOptionViolation.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max distance %d must be non-negative", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithBlockedThreshold marks every edge with weight ≥ t as closed, e.g. an aisle
// under maintenance modelled with a very large weight. t must be positive.
func WithBlockedThreshold(t int64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: blocked threshold %d must be positive", ErrOptionViolation, t)
			return
		}
		o.BlockedThreshold = t
	}
}

// DefaultOptions returns Options that explore the whole graph with every edge open.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Unreachable,
		BlockedThreshold: Unreachable,
	}
}
