// Package config loads the warehouse layout and simulation settings from a
// YAML file, applies defaults and environment overrides, and validates the
// result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/warehouse/index"
)

// Environment variables consulted by Load after the file is read.
const (
	EnvLogLevel  = "WAREHOUSE_LOG_LEVEL"
	EnvLogPretty = "WAREHOUSE_LOG_PRETTY"
	EnvOrders    = "WAREHOUSE_ORDERS"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the full application configuration.
type Config struct {
	Logging    Logging    `yaml:"logging"`
	Layout     Layout     `yaml:"layout"`
	Simulation Simulation `yaml:"simulation"`
}

// Logging selects the log level and output format.
type Logging struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error disabled"`
	Pretty bool   `yaml:"pretty"`
}

// Layout describes the warehouse floor: where goods arrive, where each
// category is shelved, and the aisles connecting locations.
type Layout struct {
	Dock         string            `yaml:"dock" validate:"required"`
	DefaultShelf string            `yaml:"default_shelf" validate:"required"`
	Shelves      map[string]string `yaml:"shelves" validate:"dive,keys,required,endkeys,required"`
	Edges        []Edge            `yaml:"edges" validate:"min=1,dive"`
}

// Edge is one undirected aisle between two locations.
type Edge struct {
	From   string `yaml:"from" validate:"required"`
	To     string `yaml:"to" validate:"required"`
	Weight int64  `yaml:"weight" validate:"gte=0"`
}

// Simulation tunes the conveyor run.
type Simulation struct {
	Orders          int    `yaml:"orders" validate:"gte=0"`
	History         int    `yaml:"history" validate:"gte=1"`
	DuplicatePolicy string `yaml:"duplicate_policy" validate:"oneof=discard overwrite"`
}

// Duplicates maps the configured policy name onto the index policy.
func (s Simulation) Duplicates() index.DuplicatePolicy {
	if s.DuplicatePolicy == index.OverwriteDuplicates.String() {
		return index.OverwriteDuplicates
	}

	return index.DiscardDuplicates
}

// Default returns the built-in sample warehouse.
//
//	Gate ──5── A1 ──2── Shelf
//	  └──4── B1 ──3── Cold
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Layout.Dock = "Gate"
	c.Layout.DefaultShelf = "Shelf"
	c.Layout.Shelves = map[string]string{
		"Tools":  "Shelf",
		"Frozen": "Cold",
	}
	c.Layout.Edges = []Edge{
		{From: "Gate", To: "A1", Weight: 5},
		{From: "A1", To: "Shelf", Weight: 2},
		{From: "Gate", To: "B1", Weight: 4},
		{From: "B1", To: "Cold", Weight: 3},
	}
	c.Simulation.Orders = 3
	c.Simulation.History = 5
	c.Simulation.DuplicatePolicy = index.DiscardDuplicates.String()

	return c
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decodeOver(b, &c); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := applyEnv(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Parse decodes YAML over the defaults and validates it. No environment is read.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := decodeOver(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// decodeOver unmarshals data onto c. A shelves mapping in data replaces the
// default one instead of being merged into it.
func decodeOver(data []byte, c *Config) error {
	shelves := c.Layout.Shelves
	c.Layout.Shelves = nil
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	if c.Layout.Shelves == nil {
		c.Layout.Shelves = shelves
	}

	return nil
}

func applyEnv(c *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogPretty); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvLogPretty, v, err)
		}
		c.Logging.Pretty = b
	}
	if v := os.Getenv(EnvOrders); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvOrders, v, err)
		}
		c.Simulation.Orders = n
	}

	return nil
}

// Validate checks field constraints and that every named location is an
// endpoint of at least one edge.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	known := make(map[string]bool, 2*len(c.Layout.Edges))
	for _, e := range c.Layout.Edges {
		known[e.From] = true
		known[e.To] = true
	}
	if !known[c.Layout.Dock] {
		return fmt.Errorf("%w: dock %q is not connected", ErrInvalidConfig, c.Layout.Dock)
	}
	if !known[c.Layout.DefaultShelf] {
		return fmt.Errorf("%w: default shelf %q is not connected", ErrInvalidConfig, c.Layout.DefaultShelf)
	}
	for cat, loc := range c.Layout.Shelves {
		if !known[loc] {
			return fmt.Errorf("%w: shelf %q for category %q is not connected", ErrInvalidConfig, loc, cat)
		}
	}

	return nil
}
