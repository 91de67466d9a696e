package routing

import (
	"fmt"
	"slices"
)

// Graph is a weighted undirected graph of warehouse locations.
// The zero value is not usable; call NewGraph.
type Graph struct {
	adj   map[string][]Edge // location → outgoing edges in insertion order
	edges int               // undirected edges added
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]Edge)}
}

// AddEdge connects a and b in both directions with weight w, creating either
// location if it is new. Parallel edges are kept.
// Returns ErrEmptyLabel or ErrNegativeWeight without modifying the graph.
func (g *Graph) AddEdge(a, b string, w int64) error {
	if a == "" || b == "" {
		return ErrEmptyLabel
	}
	if w < 0 {
		return fmt.Errorf("%w: %s-%s weight=%d", ErrNegativeWeight, a, b, w)
	}

	g.adj[a] = append(g.adj[a], Edge{To: b, Weight: w})
	g.adj[b] = append(g.adj[b], Edge{To: a, Weight: w})
	g.edges++

	return nil
}

// HasNode reports whether label has appeared in any edge.
func (g *Graph) HasNode(label string) bool {
	_, ok := g.adj[label]
	return ok
}

// Nodes returns all location labels in ascending order.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.adj))
	for label := range g.adj {
		out = append(out, label)
	}
	slices.Sort(out)

	return out
}

// Edges returns a copy of the edges leaving label, in insertion order.
// Unknown labels yield nil.
func (g *Graph) Edges(label string) []Edge {
	return slices.Clone(g.adj[label])
}

// NodeCount returns the number of locations.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges added.
func (g *Graph) EdgeCount() int { return g.edges }
