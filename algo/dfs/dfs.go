// Package dfs implements a depth-first traversal from a single source,
// recording each node's discovery order and depth. Grounded on
// DfsComputationRuntime (rust-gds dfs/computation.rs). The traversal
// frontier is an internal/boundedqueue.LongArrayStack, reusing the core's
// own paged stack rather than a plain Go slice.
package dfs

import (
	"github.com/vanderheijden86/hugegraph/graph"
	"github.com/vanderheijden86/hugegraph/internal/boundedqueue"
)

// Result records, for every visited node, its discovery order (0-based,
// source is always 0) and depth from source. Unvisited nodes have
// DiscoveryOrder -1.
type Result struct {
	DiscoveryOrder []int
	Depth          []int
}

// Run performs a depth-first traversal of g starting at source, stopping
// branches once they exceed maxDepth (a negative maxDepth means
// unbounded).
func Run(g graph.Graph, source int, maxDepth int) Result {
	n := g.NodeCount()
	res := Result{
		DiscoveryOrder: make([]int, n),
		Depth:          make([]int, n),
	}
	for i := range res.DiscoveryOrder {
		res.DiscoveryOrder[i] = -1
	}
	if n == 0 {
		return res
	}

	// Every directed adjacency entry can push its target onto the frontier
	// at most once before that target is marked visited, plus the source
	// itself.
	capacity := 1
	for v := 0; v < n; v++ {
		capacity += g.Degree(v)
	}
	frontierNodes := boundedqueue.NewLongArrayStack(capacity)
	frontierDepths := boundedqueue.NewLongArrayStack(capacity)

	frontierNodes.Push(int64(source))
	frontierDepths.Push(0)

	order := 0
	for !frontierNodes.IsEmpty() {
		v := int(frontierNodes.Pop())
		depth := int(frontierDepths.Pop())
		if res.DiscoveryOrder[v] != -1 {
			continue
		}
		res.DiscoveryOrder[v] = order
		res.Depth[v] = depth
		order++

		if maxDepth >= 0 && depth >= maxDepth {
			continue
		}

		g.ForEachRelationship(v, func(_, u int, _ float64) bool {
			if res.DiscoveryOrder[u] == -1 {
				frontierNodes.Push(int64(u))
				frontierDepths.Push(int64(depth + 1))
			}
			return true
		})
	}

	return res
}
