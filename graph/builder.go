package graph

import "sort"

// Builder accumulates edges and produces an immutable CSRGraph. It mirrors
// the teacher's newUndirectedAdjacency construction (pkg/analysis/graph.go):
// collect edges per node, freeze into flat slices. Duplicate edges are kept
// (see Build).
type Builder struct {
	nodeCount  int
	directed   bool
	hasWeights bool
	pending    [][]edge
}

// NewBuilder returns a Builder for a graph of nodeCount nodes. If directed
// is false, every added edge is also recorded in the reverse direction.
func NewBuilder(nodeCount int, directed bool) *Builder {
	return &Builder{
		nodeCount: nodeCount,
		directed:  directed,
		pending:   make([][]edge, nodeCount),
	}
}

// AddEdge records an unweighted (weight 1.0) relationship source -> target.
func (b *Builder) AddEdge(source, target int) {
	b.AddWeightedEdge(source, target, 1.0)
}

// AddWeightedEdge records a weighted relationship source -> target.
func (b *Builder) AddWeightedEdge(source, target int, weight float64) {
	if weight != 1.0 {
		b.hasWeights = true
	}
	b.pending[source] = append(b.pending[source], edge{target: target, weight: weight})
	if !b.directed && source != target {
		b.pending[target] = append(b.pending[target], edge{target: source, weight: weight})
	}
}

// Build freezes the accumulated edges into a CSRGraph. Duplicate
// (target, weight) pairs for the same source are not merged — callers that
// need a simple graph should de-duplicate before calling AddEdge.
func (b *Builder) Build() *CSRGraph {
	adjacency := make([][]edge, b.nodeCount)
	relCount := 0
	for i, edges := range b.pending {
		sort.Slice(edges, func(a, c int) bool { return edges[a].target < edges[c].target })
		adjacency[i] = edges
		relCount += len(edges)
	}
	if !b.directed {
		relCount /= 2
	}
	return &CSRGraph{
		nodeCount:  b.nodeCount,
		relCount:   relCount,
		adjacency:  adjacency,
		hasWeights: b.hasWeights,
		directed:   b.directed,
		hasInverse: !b.directed,
	}
}
