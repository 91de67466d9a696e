// Package product defines the immutable product record stored by the
// warehouse index and carried on the conveyor belt.
package product

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidProduct indicates that constructor arguments failed validation.
var ErrInvalidProduct = errors.New("product: invalid product")

var validate = validator.New(validator.WithRequiredStructEnabled())

// fields mirrors the constructor arguments for tag-based validation.
type fields struct {
	ID       string `validate:"required"`
	Name     string `validate:"required"`
	Category string
	Weight   float64 `validate:"gte=0"`
}

// Options configures product construction.
type Options struct {
	// Clock supplies the creation timestamp. Defaults to time.Now.
	Clock func() time.Time
}

// Option represents a functional option for New.
type Option func(*Options)

// WithClock overrides the clock used to stamp CreatedAt.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

// Product is a read-only record. Construct it with New; the zero value is not meaningful.
type Product struct {
	id        string
	name      string
	category  string
	weight    float64
	createdAt time.Time
}

// New builds a Product and stamps its creation time.
// It returns ErrInvalidProduct if id or name is empty or weight is negative.
func New(id, name, category string, weight float64, opts ...Option) (*Product, error) {
	o := Options{Clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate.Struct(fields{ID: id, Name: name, Category: category, Weight: weight}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}

	return &Product{
		id:        id,
		name:      name,
		category:  category,
		weight:    weight,
		createdAt: o.Clock(),
	}, nil
}

// ID returns the unique identifier the index is keyed by.
func (p *Product) ID() string { return p.id }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Category returns the product category.
func (p *Product) Category() string { return p.category }

// Weight returns the weight in kilograms.
func (p *Product) Weight() float64 { return p.weight }

// CreatedAt returns the construction timestamp.
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// String renders the product as "[id] name (category) - 0.00kg".
func (p *Product) String() string {
	return fmt.Sprintf("[%s] %s (%s) - %.2fkg", p.id, p.name, p.category, p.weight)
}
