package conveyor

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors updated by a Warehouse.
type Metrics struct {
	Enqueued      prometheus.Counter
	Dispatched    prometheus.Counter
	EmptyPolls    prometheus.Counter
	Duplicates    prometheus.Counter
	RouteFailures prometheus.Counter
	RouteDistance prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered. Collectors that are already registered
// (a second Warehouse on the same registry) are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Enqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_orders_enqueued_total", Help: "Orders placed on the belt",
		}),
		Dispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_orders_dispatched_total", Help: "Orders taken off the belt and routed",
		}),
		EmptyPolls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_belt_empty_polls_total", Help: "Process attempts on an empty belt",
		}),
		Duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_index_duplicates_total", Help: "Inserts that hit an existing product id",
		}),
		RouteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_route_failures_total", Help: "Orders whose shelf could not be reached",
		}),
		RouteDistance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "warehouse_route_distance", Help: "Total weight of dispatch routes",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.Enqueued, err = register(reg, m.Enqueued); err != nil {
		return nil, err
	}
	if m.Dispatched, err = register(reg, m.Dispatched); err != nil {
		return nil, err
	}
	if m.EmptyPolls, err = register(reg, m.EmptyPolls); err != nil {
		return nil, err
	}
	if m.Duplicates, err = register(reg, m.Duplicates); err != nil {
		return nil, err
	}
	if m.RouteFailures, err = register(reg, m.RouteFailures); err != nil {
		return nil, err
	}
	if m.RouteDistance, err = register(reg, m.RouteDistance); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, returning the already registered collector of the
// same type when there is one.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, err
}
