// Package wcc computes weakly connected components directly over the
// disjoint-set structure (internal/dsu), without going through a Pregel
// superstep loop: WCC is exactly "union every edge's endpoints", which the
// union-find substrate already does wait-free and concurrently.
package wcc

import (
	"sync"

	"github.com/vanderheijden86/hugegraph/graph"
	"github.com/vanderheijden86/hugegraph/internal/dsu"
)

// Components maps every node to its component id (the minimum node id in
// its component) and reports the number of distinct components found.
type Components struct {
	set *dsu.DisjointSetStruct
}

// ComponentOf returns node's component id.
func (c *Components) ComponentOf(node int) int { return c.set.SetIDOf(node) }

// SameComponent reports whether a and b are in the same component.
func (c *Components) SameComponent(a, b int) bool { return c.set.SameSet(a, b) }

// Count returns the number of distinct components.
func (c *Components) Count() int {
	seen := make(map[int]struct{})
	n := c.set.Size()
	for i := 0; i < n; i++ {
		seen[c.set.SetIDOf(i)] = struct{}{}
	}
	return len(seen)
}

// Run unions every relationship's endpoints concurrently across
// concurrency workers, partitioning the node range, then returns the
// resulting Components view. Seed, when non-nil, assigns an external
// community id to a node (negative means unseeded) so existing labels
// survive a component that merges seeded and unseeded nodes.
func Run(g graph.Graph, concurrency int, seed func(node int) int64) *Components {
	n := g.NodeCount()
	var set *dsu.DisjointSetStruct
	if seed != nil {
		set = dsu.NewSeeded(n, seed)
	} else {
		set = dsu.New(n)
	}

	if concurrency < 1 {
		concurrency = 1
	}
	if n == 0 {
		return &Components{set: set}
	}

	chunk := (n + concurrency - 1) / concurrency
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for node := start; node < end; node++ {
				g.ForEachRelationship(node, func(source, target int, _ float64) bool {
					set.Union(source, target)
					return true
				})
			}
		}(start, end)
	}
	wg.Wait()

	return &Components{set: set}
}
