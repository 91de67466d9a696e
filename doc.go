// Package warehouse is a small in-memory toolkit for warehouse simulations:
// a work queue for the inbound belt, an ordered product index, and a floor
// graph that routes pickers between locations.
//
// 🚀 What is in the box?
//
//   - queue/     generic FIFO queue with O(1) Enqueue/Dequeue over an owned arena
//   - index/     binary search tree of products keyed by ID, in-order iteration
//   - routing/   weighted undirected floor graph + Dijkstra shortest routes
//   - product/   the immutable product record the index stores
//   - conveyor/  belt simulation tying the three together, with logs & metrics
//   - config/    YAML layout and simulation settings
//
// ✨ Guarantees
//
//   - Empty results are values, not errors: an empty queue, a missing key
//     and an unreachable shelf are all reported through return values.
//   - Invalid input fails fast: negative aisle weights are rejected when the
//     edge is added, never discovered mid-search.
//   - Single-threaded by design: no structure locks internally; synchronize
//     externally if you share one between goroutines.
//
// Quick ASCII example:
//
//	Gate ──5── A1 ──2── Shelf
//
//	g := routing.NewGraph()
//	_ = g.AddEdge("Gate", "A1", 5)
//	_ = g.AddEdge("A1", "Shelf", 2)
//	g.ShortestPath("Gate", "Shelf") // [Gate A1 Shelf]
//
// Run the sample simulation:
//
//	go run ./cmd/warehouse -orders 5
package warehouse
