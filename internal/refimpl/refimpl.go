// Package refimpl builds gonum fixture graphs mirroring a graph.Graph and
// exposes gonum's independent implementations
// (gonum.org/v1/gonum/graph/network.PageRank, gonum/graph/topo.Sort) as
// oracles; this package's tests cross-check algo/pagerank's output against
// the PageRank oracle. It
// exists only for tests: a ground truth distinct from the code under test,
// the same role gonum plays for the teacher's own Analyzer
// (pkg/analysis/graph.go).
package refimpl

import (
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	hgraph "github.com/vanderheijden86/hugegraph/graph"
)

// ToGonumDirected copies g (treated as directed) into a gonum
// simple.DirectedGraph.
func ToGonumDirected(g hgraph.Graph) *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	n := g.NodeCount()
	for i := 0; i < n; i++ {
		dg.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < n; i++ {
		g.ForEachRelationship(i, func(source, target int, weight float64) bool {
			dg.SetEdge(simple.Edge{F: simple.Node(int64(source)), T: simple.Node(int64(target))})
			return true
		})
	}
	return dg
}

// PageRank runs gonum's PageRank over g as an oracle, returning a plain
// node-indexed slice for easy comparison against algo/pagerank's output.
func PageRank(g hgraph.Graph, damping, tolerance float64) []float64 {
	dg := ToGonumDirected(g)
	ranks := network.PageRank(dg, damping, tolerance)

	n := g.NodeCount()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = ranks[int64(i)]
	}
	return out
}

// TopologicalOrder runs gonum's topo.Sort over g as an oracle. It returns
// the node order and any cycle error, mirroring topo.Sort's own signature
// so callers can assert on graph.Unorderable the same way gonum callers
// would.
func TopologicalOrder(g hgraph.Graph) ([]int, error) {
	dg := ToGonumDirected(g)
	nodes, err := topo.Sort(dg)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = int(n.ID())
	}
	return out, nil
}
