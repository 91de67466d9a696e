// Command warehouse loads a floor layout, pushes a batch of orders through the
// conveyor and prints where each one was routed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/warehouse/config"
	"github.com/katalvlaran/warehouse/conveyor"
	"github.com/katalvlaran/warehouse/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "warehouse:", err)
		os.Exit(1)
	}
}

// sampleCategories cycles through the categories given to generated orders.
var sampleCategories = []string{"Tools", "Frozen", conveyor.DefaultCategory}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("warehouse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", os.Getenv("WAREHOUSE_CONFIG"), "path to YAML layout file")
	orders := fs.Int("orders", -1, "number of orders to simulate (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *orders >= 0 {
		cfg.Simulation.Orders = *orders
	}

	logger := logging.New(cfg.Logging, stderr)
	reg := prometheus.NewRegistry()
	wh, err := conveyor.New(cfg, conveyor.WithLogger(logger), conveyor.WithRegisterer(reg))
	if err != nil {
		return err
	}
	logger.Info().Str("config", *cfgPath).Int("orders", cfg.Simulation.Orders).Msg("simulation started")

	for i := 0; i < cfg.Simulation.Orders; i++ {
		cat := sampleCategories[i%len(sampleCategories)]
		if _, err := wh.AddOrder("", cat, float64(i%5)+0.5); err != nil {
			return err
		}
	}

	dispatches, runErr := wh.Drain()
	for _, d := range dispatches {
		if len(d.Route.Path) == 0 {
			fmt.Fprintf(stdout, "%s -> %s: no route\n", d.Product, d.Shelf)
			continue
		}
		fmt.Fprintf(stdout, "%s -> %s via %v (%d)\n", d.Product, d.Shelf, d.Route.Path, d.Route.Distance)
	}

	fmt.Fprintln(stdout, "inventory:")
	for p := range wh.Inventory() {
		fmt.Fprintln(stdout, " ", p)
	}

	logMetrics(logger, reg)
	if runErr != nil {
		logger.Warn().Err(runErr).Msg("some orders could not be routed")
	}

	return nil
}

// logMetrics writes the final value of every counter in reg.
func logMetrics(logger logging.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		logger.Error().Err(err).Msg("gather metrics")
		return
	}
	ev := logger.Info()
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				ev = ev.Float64(mf.GetName(), c.GetValue())
			}
		}
	}
	ev.Msg("simulation finished")
}
