package refimpl

import (
	"context"
	"math"
	"testing"

	"github.com/vanderheijden86/hugegraph/algo/pagerank"
	"github.com/vanderheijden86/hugegraph/graph"
	"github.com/vanderheijden86/hugegraph/pregel"
)

func TestPageRankMatchesGonumOracle(t *testing.T) {
	b := graph.NewBuilder(4, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 0)
	g := b.Build()

	const damping = 0.85
	const tolerance = 1e-8

	oracle := PageRank(g, damping, tolerance)

	comp := pagerank.New(pagerank.Config{DampingFactor: damping, Tolerance: tolerance, NodeCount: g.NodeCount()})
	res := pregel.Run(context.Background(), g, comp, pregel.Config{MaxIterations: 100, Concurrency: 2}, nil)
	if res.Status != pregel.Converged {
		t.Fatalf("pagerank did not converge: %v", res.Status)
	}
	rankOf := res.Values.PublicDoubleAccessor("rank")

	for i := 0; i < g.NodeCount(); i++ {
		if math.Abs(rankOf(i)-oracle[i]) > 1e-3 {
			t.Errorf("node %d rank = %v, gonum oracle = %v", i, rankOf(i), oracle[i])
		}
	}
}

func TestTopologicalOrderDetectsCycle(t *testing.T) {
	b := graph.NewBuilder(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 0)
	g := b.Build()

	if _, err := TopologicalOrder(g); err == nil {
		t.Error("expected a cycle error, got nil")
	}
}

func TestTopologicalOrderOnDAG(t *testing.T) {
	b := graph.NewBuilder(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	g := b.Build()

	order, err := TopologicalOrder(g)
	if err != nil {
		t.Fatalf("TopologicalOrder() error = %v", err)
	}
	pos := map[int]int{}
	for i, n := range order {
		pos[n] = i
	}
	if pos[0] > pos[1] || pos[1] > pos[2] {
		t.Errorf("order = %v, want 0 before 1 before 2", order)
	}
}
