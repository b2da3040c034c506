package trianglecount

import (
	"context"
	"testing"

	"github.com/vanderheijden86/hugegraph/graph"
	"github.com/vanderheijden86/hugegraph/pregel"
)

func k4() graph.Graph {
	b := graph.NewBuilder(4, false)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			b.AddEdge(i, j)
		}
	}
	return b.Build()
}

func TestTriangleCountOnK4(t *testing.T) {
	g := k4()
	res := pregel.Run(context.Background(), g, New(), pregel.Config{MaxIterations: 2, Concurrency: 2}, nil)
	if res.Status != pregel.Converged {
		t.Fatalf("status = %v, want Converged", res.Status)
	}
	if res.Iterations != 2 {
		t.Fatalf("iterations = %d, want 2", res.Iterations)
	}

	get := res.Values.PublicLongAccessor("triangles")
	for n := 0; n < 4; n++ {
		if got := get(n); got != 3 {
			t.Errorf("node %d triangles = %d, want 3", n, got)
		}
	}

	if got := Global(res.Values, 4); got != 4 {
		t.Errorf("Global() = %d, want 4", got)
	}
}
