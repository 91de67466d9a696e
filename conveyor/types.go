package conveyor

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/warehouse/product"
	"github.com/katalvlaran/warehouse/routing"
)

// Sentinel errors for conveyor operations.
var (
	// ErrNilProduct indicates Receive was called with a nil product.
	ErrNilProduct = errors.New("conveyor: product is nil")

	// ErrNoRoute indicates the shelf for a dispatched order cannot be reached from the dock.
	ErrNoRoute = errors.New("conveyor: no route to shelf")

	// ErrBadLayout indicates the configured layout could not be turned into a floor graph.
	ErrBadLayout = errors.New("conveyor: bad layout")
)

// Default values for orders created by AddOrder.
const (
	DefaultCategory = "General"
	orderPrefix     = "ORD-"
)

// Dispatch records one processed order.
type Dispatch struct {
	// Product is the order taken off the belt.
	Product *product.Product

	// Stored reports whether the index kept this product (false when an
	// earlier product with the same id was kept instead).
	Stored bool

	// Shelf is the destination location for the product's category.
	Shelf string

	// Route is the dock→shelf route; empty when the shelf is unreachable.
	Route routing.Route
}

// Options configures a Warehouse.
type Options struct {
	Logger     zerolog.Logger
	Registerer prometheus.Registerer
	NewID      func() string
	ProductOps []product.Option
}

// Option represents a functional option for New.
type Option func(*Options)

// WithLogger sets the logger (default: discard).
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRegisterer registers the warehouse metrics on reg (default: unregistered).
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = reg }
}

// WithIDGenerator overrides how AddOrder names new orders.
func WithIDGenerator(fn func() string) Option {
	return func(o *Options) {
		if fn != nil {
			o.NewID = fn
		}
	}
}

// WithProductOptions passes opts to every product.New call made by AddOrder.
func WithProductOptions(opts ...product.Option) Option {
	return func(o *Options) { o.ProductOps = append(o.ProductOps, opts...) }
}

// DefaultOptions returns Options with a discarding logger and uuid-based order ids.
func DefaultOptions() Options {
	return Options{
		Logger: zerolog.Nop(),
		NewID:  newOrderID,
	}
}

// newOrderID returns ids such as "ORD-1F3A9C02".
func newOrderID() string {
	return orderPrefix + strings.ToUpper(uuid.NewString()[:8])
}
