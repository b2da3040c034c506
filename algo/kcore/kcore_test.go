package kcore

import (
	"testing"

	"github.com/vanderheijden86/hugegraph/graph"
)

func TestKCoreLinearChain(t *testing.T) {
	b := graph.NewBuilder(4, false)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	core := Compute(b.Build())
	for n, c := range core {
		if c != 1 {
			t.Errorf("node %d: core = %d, want 1", n, c)
		}
	}
}

func TestKCoreTriangle(t *testing.T) {
	b := graph.NewBuilder(3, false)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 0)
	core := Compute(b.Build())
	for n, c := range core {
		if c != 2 {
			t.Errorf("node %d: core = %d, want 2", n, c)
		}
	}
}

func TestKCoreDisconnectedNodes(t *testing.T) {
	b := graph.NewBuilder(3, false)
	core := Compute(b.Build())
	for n, c := range core {
		if c != 0 {
			t.Errorf("isolated node %d: core = %d, want 0", n, c)
		}
	}
}

func TestKCoreSquareWithLeaf(t *testing.T) {
	// Square 0-1-2-3-0 with leaf 4 attached to 2.
	b := graph.NewBuilder(5, false)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 0)
	b.AddEdge(2, 4)
	core := Compute(b.Build())
	for _, n := range []int{0, 1, 2, 3} {
		if core[n] < 2 {
			t.Errorf("node %d: core = %d, want >= 2", n, core[n])
		}
	}
	if core[4] >= core[0] {
		t.Errorf("leaf node core = %d, want lower than cycle node core %d", core[4], core[0])
	}
}
