package dfs

import (
	"testing"

	"github.com/vanderheijden86/hugegraph/graph"
)

func TestDFSVisitsAllReachableNodes(t *testing.T) {
	b := graph.NewBuilder(5, false)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	g := b.Build()
	res := Run(g, 0, -1)

	for _, n := range []int{0, 1, 2, 3} {
		if res.DiscoveryOrder[n] == -1 {
			t.Errorf("node %d should be visited", n)
		}
	}
	if res.DiscoveryOrder[4] != -1 {
		t.Errorf("node 4 is disconnected, should not be visited")
	}
	if res.DiscoveryOrder[0] != 0 {
		t.Errorf("source discovery order = %d, want 0", res.DiscoveryOrder[0])
	}
	if res.Depth[0] != 0 {
		t.Errorf("source depth = %d, want 0", res.Depth[0])
	}
}

func TestDFSRespectsMaxDepth(t *testing.T) {
	b := graph.NewBuilder(4, false)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	g := b.Build()
	res := Run(g, 0, 1)

	if res.DiscoveryOrder[0] == -1 || res.DiscoveryOrder[1] == -1 {
		t.Error("nodes within depth 1 should be visited")
	}
	if res.DiscoveryOrder[2] != -1 {
		t.Error("node 2 is at depth 2, should not be visited when maxDepth=1")
	}
}
