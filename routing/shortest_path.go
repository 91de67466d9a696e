package routing

import (
	"container/heap"
	"fmt"
	"slices"
)

// ShortestPath returns the minimum-weight path from start to end.
//
// The result is [start] when start == end, nil when end cannot be reached
// from start (including unknown locations), and otherwise a path beginning
// with start and ending with end. Callers must treat an empty result as
// "no path"; a partial chain is never returned.
func (g *Graph) ShortestPath(start, end string) []string {
	if start == end {
		return []string{start}
	}
	r := g.newRunner(start, end, DefaultOptions())
	r.run()

	return r.path()
}

// Route is like ShortestPath but also reports the total distance and accepts
// per-query options.
//
// Errors (in order of checking):
//   - ErrOptionViolation for an invalid option.
//   - ErrEmptyLabel if start or end is empty.
//   - ErrNodeNotFound if start or end has no edges.
//   - ErrUnreachable if no path within the options' limits exists.
func (g *Graph) Route(start, end string, opts ...Option) (Route, error) {
	// 1) Build options; a bad option was recorded while applying it.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Route{}, o.err
	}

	// 2) Both endpoints must be known locations.
	if start == "" || end == "" {
		return Route{}, ErrEmptyLabel
	}
	for _, label := range []string{start, end} {
		if !g.HasNode(label) {
			return Route{}, fmt.Errorf("%w: %q", ErrNodeNotFound, label)
		}
	}
	if start == end {
		return Route{Path: []string{start}, Distance: 0}, nil
	}

	// 3) Search, stopping once end is settled, and walk predecessors back.
	r := g.newRunner(start, end, o)
	r.run()
	p := r.path()
	if p == nil {
		return Route{}, fmt.Errorf("%w: %s → %s", ErrUnreachable, start, end)
	}

	return Route{Path: p, Distance: r.dist[end]}, nil
}

// Distances returns the shortest distance from start to every location.
// Locations that cannot be reached report Unreachable. If start is not a
// location of the graph it is still reported, at distance 0.
func (g *Graph) Distances(start string) map[string]int64 {
	r := g.newRunner(start, "", DefaultOptions())
	r.run()

	return r.dist
}

// runner holds the mutable state of one search.
type runner struct {
	g       *Graph
	opts    Options
	start   string
	target  string            // "" explores everything reachable
	dist    map[string]int64  // location → best known distance
	prev    map[string]string // location → predecessor on that best path
	visited map[string]bool   // settled locations
	pq      nodePQ
}

func (g *Graph) newRunner(start, target string, o Options) *runner {
	n := len(g.adj)
	r := &runner{
		g:       g,
		opts:    o,
		start:   start,
		target:  target,
		dist:    make(map[string]int64, n+1),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for label := range g.adj {
		r.dist[label] = Unreachable
	}
	r.dist[start] = 0
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	return r
}

// run settles locations in order of distance until the frontier is empty,
// the target is settled, or the next distance exceeds MaxDistance.
func (r *runner) run() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.opts.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.target {
			break
		}
		r.relax(u)
	}
}

// relax tries to improve every neighbour of the settled location u.
func (r *runner) relax(u string) {
	du := r.dist[u]
	for _, e := range r.g.adj[u] {
		if e.Weight >= r.opts.BlockedThreshold {
			continue
		}
		if e.Weight > Unreachable-du {
			continue // would overflow; cannot be shorter than anything known
		}
		nd := du + e.Weight
		if nd > r.opts.MaxDistance || nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}
}

// path follows predecessors from the target back to the start.
// It returns nil if the chain does not reach the start.
func (r *runner) path() []string {
	if !r.visited[r.target] {
		return nil
	}
	out := []string{r.target}
	for at := r.target; at != r.start; {
		p, ok := r.prev[at]
		if !ok {
			return nil
		}
		out = append(out, p)
		at = p
	}
	slices.Reverse(out)

	return out
}

// nodeItem is a frontier entry: a location and the distance it was pushed with.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
