package index

import (
	"errors"

	"github.com/katalvlaran/warehouse/product"
)

// Sentinel errors for index operations.
var (
	// ErrNilProduct indicates Insert was called with a nil record.
	ErrNilProduct = errors.New("index: product is nil")
)

// DuplicatePolicy selects what Insert does when the key is already present.
type DuplicatePolicy int

const (
	// DiscardDuplicates keeps the stored record and drops the new one.
	DiscardDuplicates DuplicatePolicy = iota

	// OverwriteDuplicates replaces the stored record with the new one.
	OverwriteDuplicates
)

// String returns the policy name as used in configuration files.
func (p DuplicatePolicy) String() string {
	switch p {
	case DiscardDuplicates:
		return "discard"
	case OverwriteDuplicates:
		return "overwrite"
	default:
		return "unknown"
	}
}

// Options configures a Tree.
type Options struct {
	// Duplicates selects the duplicate-key policy (default DiscardDuplicates).
	Duplicates DuplicatePolicy

	// OnDuplicate is called on every key collision with the stored record and
	// the record passed to Insert, before the policy is applied.
	OnDuplicate func(existing, incoming *product.Product)
}

// Option represents a functional option for configuring a Tree.
type Option func(*Options)

// WithDuplicatePolicy sets the duplicate-key policy.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *Options) { o.Duplicates = p }
}

// WithOnDuplicate installs a hook observing key collisions.
func WithOnDuplicate(fn func(existing, incoming *product.Product)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDuplicate = fn
		}
	}
}

// DefaultOptions returns Options with the discard policy and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Duplicates:  DiscardDuplicates,
		OnDuplicate: func(_, _ *product.Product) {},
	}
}
