package conveyor

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/warehouse/config"
	"github.com/katalvlaran/warehouse/index"
	"github.com/katalvlaran/warehouse/product"
	"github.com/katalvlaran/warehouse/queue"
	"github.com/katalvlaran/warehouse/routing"
)

// Warehouse ties the belt, the product index and the floor graph together.
// It is not safe for concurrent use.
type Warehouse struct {
	log     zerolog.Logger
	metrics *Metrics
	opts    Options

	belt  *queue.Queue[*product.Product]
	stock *index.Tree
	floor *routing.Graph

	layout  config.Layout
	recent  []Dispatch // newest first
	history int
}

// New builds a Warehouse from cfg. The layout edges are loaded into the floor
// graph; ErrBadLayout is returned if any of them is rejected.
func New(cfg config.Config, opts ...Option) (*Warehouse, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, err := NewMetrics(o.Registerer)
	if err != nil {
		return nil, fmt.Errorf("conveyor: metrics: %w", err)
	}
	belt, err := queue.New[*product.Product](queue.WithCapacity(cfg.Simulation.Orders))
	if err != nil {
		return nil, fmt.Errorf("conveyor: belt: %w", err)
	}

	floor := routing.NewGraph()
	for _, e := range cfg.Layout.Edges {
		if err := floor.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadLayout, err)
		}
	}

	w := &Warehouse{
		log:     o.Logger.With().Str("component", "conveyor").Logger(),
		metrics: m,
		opts:    o,
		belt:    belt,
		floor:   floor,
		layout:  cfg.Layout,
		history: max(cfg.Simulation.History, 1),
	}
	w.stock = index.New(
		index.WithDuplicatePolicy(cfg.Simulation.Duplicates()),
		index.WithOnDuplicate(w.onDuplicate),
	)
	w.log.Debug().
		Int("locations", floor.NodeCount()).
		Int("aisles", floor.EdgeCount()).
		Str("dock", cfg.Layout.Dock).
		Msg("floor loaded")

	return w, nil
}

// AddOrder creates a product with a generated id and places it on the belt.
// An empty name becomes "Package <id>", an empty category DefaultCategory.
func (w *Warehouse) AddOrder(name, category string, weight float64) (*product.Product, error) {
	id := w.opts.NewID()
	if name == "" {
		name = "Package " + id
	}
	if category == "" {
		category = DefaultCategory
	}
	p, err := product.New(id, name, category, weight, w.opts.ProductOps...)
	if err != nil {
		return nil, err
	}
	if err := w.Receive(p); err != nil {
		return nil, err
	}

	return p, nil
}

// Receive places p at the end of the belt.
func (w *Warehouse) Receive(p *product.Product) error {
	if p == nil {
		return ErrNilProduct
	}
	w.belt.Enqueue(p)
	w.metrics.Enqueued.Inc()
	w.log.Info().Str("id", p.ID()).Int("belt", w.belt.Len()).Msg("enqueued")

	return nil
}

// ProcessNext takes the oldest order off the belt, indexes it and routes it
// to its shelf.
//
// ok is false when the belt was empty; that is not an error. When the shelf
// cannot be reached the order is still indexed and the returned Dispatch has
// an empty Route, alongside an error wrapping ErrNoRoute.
func (w *Warehouse) ProcessNext() (d Dispatch, ok bool, err error) {
	p, ok := w.belt.Dequeue()
	if !ok {
		w.metrics.EmptyPolls.Inc()
		w.log.Warn().Msg("belt is empty")
		return Dispatch{}, false, nil
	}

	stored, err := w.stock.Insert(p)
	if err != nil {
		return Dispatch{}, true, err
	}
	d = Dispatch{Product: p, Stored: stored, Shelf: w.ShelfFor(p.Category())}

	d.Route, err = w.floor.Route(w.layout.Dock, d.Shelf)
	if err != nil {
		w.metrics.RouteFailures.Inc()
		w.log.Error().Err(err).Str("id", p.ID()).Str("shelf", d.Shelf).Msg("dispatch failed")
		w.remember(d)
		return d, true, fmt.Errorf("%w: %s: %w", ErrNoRoute, p.ID(), err)
	}

	w.metrics.Dispatched.Inc()
	w.metrics.RouteDistance.Observe(float64(d.Route.Distance))
	w.log.Info().
		Str("id", p.ID()).
		Str("shelf", d.Shelf).
		Strs("path", d.Route.Path).
		Int64("distance", d.Route.Distance).
		Bool("stored", stored).
		Msg("dispatched")
	w.remember(d)

	return d, true, nil
}

// Drain processes the belt until it is empty and returns every dispatch in
// processing order. Routing failures do not stop the run; they are joined
// into the returned error.
func (w *Warehouse) Drain() ([]Dispatch, error) {
	out := make([]Dispatch, 0, w.belt.Len())
	var errs []error
	for {
		d, ok, err := w.ProcessNext()
		if !ok {
			break
		}
		if err != nil {
			errs = append(errs, err)
		}
		if d.Product != nil {
			out = append(out, d)
		}
	}

	return out, errors.Join(errs...)
}

// ShelfFor returns the shelf location for category, or the default shelf.
func (w *Warehouse) ShelfFor(category string) string {
	if loc, ok := w.layout.Shelves[category]; ok {
		return loc
	}

	return w.layout.DefaultShelf
}

// Belt returns the orders waiting on the belt, oldest first.
func (w *Warehouse) Belt() []*product.Product { return w.belt.Snapshot() }

// Pending returns the number of orders waiting on the belt.
func (w *Warehouse) Pending() int { return w.belt.Len() }

// Recent returns the latest dispatches, newest first.
func (w *Warehouse) Recent() []Dispatch { return slices.Clone(w.recent) }

// Lookup finds an indexed product by id.
func (w *Warehouse) Lookup(id string) (*product.Product, bool) { return w.stock.Search(id) }

// Inventory lists indexed products in id order.
func (w *Warehouse) Inventory() iter.Seq[*product.Product] { return w.stock.InOrder() }

// Floor exposes the floor graph for ad-hoc route queries.
func (w *Warehouse) Floor() *routing.Graph { return w.floor }

func (w *Warehouse) remember(d Dispatch) {
	w.recent = slices.Insert(w.recent, 0, d)
	if len(w.recent) > w.history {
		w.recent = w.recent[:w.history]
	}
}

func (w *Warehouse) onDuplicate(existing, incoming *product.Product) {
	w.metrics.Duplicates.Inc()
	w.log.Warn().
		Str("id", incoming.ID()).
		Str("kept", existing.Name()).
		Str("incoming", incoming.Name()).
		Str("policy", w.stock.Policy().String()).
		Msg("duplicate product id")
}
