package pagerank

import (
	"context"
	"math"
	"testing"

	"github.com/vanderheijden86/hugegraph/graph"
	"github.com/vanderheijden86/hugegraph/pregel"
)

func cycle(n int) graph.Graph {
	b := graph.NewBuilder(n, true)
	for i := 0; i < n; i++ {
		b.AddEdge(i, (i+1)%n)
	}
	return b.Build()
}

func TestPageRankOnFourNodeCycleConvergesUniform(t *testing.T) {
	g := cycle(4)
	comp := New(Config{DampingFactor: 0.85, Tolerance: 1e-6, NodeCount: 4})
	res := pregel.Run(context.Background(), g, comp, pregel.Config{MaxIterations: 100, Concurrency: 2}, nil)

	if res.Status != pregel.Converged {
		t.Fatalf("status = %v, want Converged", res.Status)
	}
	if res.Iterations <= 1 || res.Iterations > 100 {
		t.Fatalf("iterations = %d, want in (1, 100]", res.Iterations)
	}

	get := res.Values.PublicDoubleAccessor("rank")
	first := get(0)
	for n := 1; n < 4; n++ {
		if math.Abs(get(n)-first) > 1e-6 {
			t.Errorf("node %d rank = %v, want within 1e-6 of node 0's %v", n, get(n), first)
		}
	}

	var sum float64
	for n := 0; n < 4; n++ {
		sum += get(n)
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("rank sum = %v, want ~1.0", sum)
	}
}

func TestPageRankDanglingNodeDoesNotPanicOrLeakMass(t *testing.T) {
	b := graph.NewBuilder(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 0)
	g := b.Build() // node 2 has out-degree 0

	comp := New(Config{DampingFactor: 0.85, Tolerance: 1e-9, NodeCount: 3})
	res := pregel.Run(context.Background(), g, comp, pregel.Config{MaxIterations: 50, Concurrency: 2}, nil)

	if res.Status != pregel.Converged && res.Status != pregel.MaxIterationsReached {
		t.Fatalf("status = %v, want Converged or MaxIterationsReached", res.Status)
	}
	get := res.Values.PublicDoubleAccessor("rank")
	if get(2) <= 0 {
		t.Errorf("dangling node rank = %v, want positive (base rank always present)", get(2))
	}
}
