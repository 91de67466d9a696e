// Package routing stores a warehouse floor plan as a weighted undirected
// graph and answers shortest-route queries between locations.
//
// Graph model:
//
//   - Locations are string labels, created implicitly the first time they
//     appear in AddEdge; there is no separate "add location" call.
//   - AddEdge(a, b, w) inserts a→b and b→a with the same weight.
//   - Parallel edges are kept as given and all of them are considered by the
//     search; the cheapest one wins.
//   - Weights must be non-negative. AddEdge rejects a negative weight with
//     ErrNegativeWeight and leaves the graph untouched, so the search never
//     has to deal with them.
//
// Shortest path:
//
//	ShortestPath and Route run Dijkstra's algorithm from the start location.
//	The frontier is a binary min-heap ordered by tentative distance. When a
//	distance improves the location is pushed again instead of being
//	decreased in place; stale heap entries are skipped when popped. The
//	search stops as soon as the destination is settled and the path is
//	rebuilt by following predecessor links back to the start.
//
//	  Gate ──5── A1 ──2── Shelf     ShortestPath("Gate", "Shelf")
//	                                 == [Gate A1 Shelf], distance 7
//
//	Result contract:
//
//	  - start == end          → [start]
//	  - end not reachable     → nil (ShortestPath) / ErrUnreachable (Route)
//	  - otherwise             → a path that begins with start and ends with end
//
//	Ties between equally distant frontier entries are broken arbitrarily.
//	When several minimum-weight routes exist, any one of them may be
//	returned; only the total weight is guaranteed to be minimal.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold up to E stale entries.
//
// Thread safety:
//
//	A Graph is not safe for concurrent use. Queries do not mutate the graph,
//	but they must not run concurrently with AddEdge.
package routing
