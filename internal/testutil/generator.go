// Package testutil provides deterministic synthetic graph generators and
// test assertions for algorithm packages. Grounded on the teacher's
// pkg/testutil/{generator,assertions}.go, retargeted from issue-dependency
// fixtures to graph.Graph topologies.
package testutil

import (
	"math/rand"

	"github.com/vanderheijden86/hugegraph/graph"
)

// PathGraph builds a directed chain 0 -> 1 -> ... -> (size-1).
func PathGraph(size int) graph.Graph {
	b := graph.NewBuilder(size, true)
	for i := 0; i+1 < size; i++ {
		b.AddEdge(i, i+1)
	}
	return b.Build()
}

// CycleGraph builds a directed cycle 0 -> 1 -> ... -> (size-1) -> 0.
func CycleGraph(size int) graph.Graph {
	b := graph.NewBuilder(size, true)
	for i := 0; i < size; i++ {
		b.AddEdge(i, (i+1)%size)
	}
	return b.Build()
}

// CliqueGraph builds an undirected complete graph on size nodes.
func CliqueGraph(size int) graph.Graph {
	b := graph.NewBuilder(size, false)
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			b.AddEdge(i, j)
		}
	}
	return b.Build()
}

// StarGraph builds an undirected star with one hub (node 0) and the given
// number of spokes.
func StarGraph(spokes int) graph.Graph {
	b := graph.NewBuilder(spokes+1, false)
	for i := 1; i <= spokes; i++ {
		b.AddEdge(0, i)
	}
	return b.Build()
}

// TwoComponentGraph builds two disjoint cliques of the given sizes, with no
// edges between them — the canonical WCC/Louvain fixture.
func TwoComponentGraph(sizeA, sizeB int) graph.Graph {
	total := sizeA + sizeB
	b := graph.NewBuilder(total, false)
	for i := 0; i < sizeA; i++ {
		for j := i + 1; j < sizeA; j++ {
			b.AddEdge(i, j)
		}
	}
	for i := sizeA; i < total; i++ {
		for j := i + 1; j < total; j++ {
			b.AddEdge(i, j)
		}
	}
	return b.Build()
}

// RandomGraph builds a directed Erdős–Rényi graph on n nodes where every
// ordered pair is an edge independently with probability p, seeded for
// reproducibility.
func RandomGraph(n int, p float64, seed int64) graph.Graph {
	rng := rand.New(rand.NewSource(seed))
	b := graph.NewBuilder(n, true)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < p {
				b.AddEdge(i, j)
			}
		}
	}
	return b.Build()
}
