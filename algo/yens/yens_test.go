package yens

import (
	"context"
	"math"
	"testing"

	"github.com/vanderheijden86/hugegraph/graph"
)

func weightedDiamond() graph.Graph {
	b := graph.NewBuilder(4, false)
	b.AddWeightedEdge(0, 1, 1)
	b.AddWeightedEdge(0, 2, 2)
	b.AddWeightedEdge(1, 3, 2)
	b.AddWeightedEdge(2, 3, 1)
	return b.Build()
}

func TestKShortestPathsFindsFirstShortestPath(t *testing.T) {
	g := weightedDiamond()
	paths := KShortestPaths(context.Background(), g, 0, 3, 1, 2)
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d, want 1", len(paths))
	}
	if math.Abs(paths[0].Weight-3) > 1e-9 {
		t.Errorf("weight = %v, want 3", paths[0].Weight)
	}
}

func TestKShortestPathsFindsTwoLooplessPaths(t *testing.T) {
	g := weightedDiamond()
	paths := KShortestPaths(context.Background(), g, 0, 3, 2, 2)
	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d, want 2", len(paths))
	}
	if paths[0].Weight > paths[1].Weight {
		t.Errorf("paths not ascending by weight: %v, %v", paths[0].Weight, paths[1].Weight)
	}
	seen := map[string]bool{}
	for _, p := range paths {
		k := pathKey(p.Nodes)
		if seen[k] {
			t.Errorf("duplicate path returned: %v", p.Nodes)
		}
		seen[k] = true
	}
}

func TestKShortestPathsStopsWhenExhausted(t *testing.T) {
	g := weightedDiamond()
	paths := KShortestPaths(context.Background(), g, 0, 3, 10, 2)
	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d, want 2 (diamond only has 2 loopless paths)", len(paths))
	}
}

func TestKShortestPathsNoPathReturnsNil(t *testing.T) {
	b := graph.NewBuilder(3, false)
	b.AddEdge(0, 1)
	g := b.Build()
	paths := KShortestPaths(context.Background(), g, 0, 2, 3, 2)
	if paths != nil {
		t.Errorf("paths = %v, want nil", paths)
	}
}
