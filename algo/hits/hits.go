// Package hits implements the HITS (Hyperlink-Induced Topic Search)
// algorithm: authority(v) is the sum of hub scores of v's in-neighbors,
// hub(v) is the sum of authority scores of v's out-neighbors, each
// re-normalized to unit L2 norm every iteration. Grounded on
// HitsComputationRuntime from rust-gds's hits/computation.rs.
//
// HITS needs a global L2-norm reduction every iteration — a barrier
// across all nodes, not a per-node vertex function — so it runs as a
// direct array-based iteration rather than a pregel.Computation, the way
// the core's own wcc package runs union-find directly instead of through
// supersteps.
package hits

import (
	"math"

	"github.com/vanderheijden86/hugegraph/graph"
)

// Result holds the converged (or iteration-capped) hub and authority
// vectors.
type Result struct {
	Hub        []float64
	Authority  []float64
	Iterations int
	Converged  bool
}

// Graph is the minimal adjacency view HITS needs: out-neighbors (for hub
// computation) and in-neighbors (for authority computation).
type Graph interface {
	NodeCount() int
	OutNeighbors(node int) []int
	InNeighbors(node int) []int
}

// adjacencyGraph is a Graph built by inverting a graph.Graph's out-edges
// once up front, so Compute's per-iteration passes are pure array scans.
type adjacencyGraph struct {
	out, in [][]int
}

func (a *adjacencyGraph) NodeCount() int           { return len(a.out) }
func (a *adjacencyGraph) OutNeighbors(v int) []int { return a.out[v] }
func (a *adjacencyGraph) InNeighbors(v int) []int  { return a.in[v] }

// FromGraph adapts a graph.Graph into the Graph view Compute needs,
// materializing the in-neighbor lists that graph.Graph does not expose
// directly.
func FromGraph(g graph.Graph) Graph {
	n := g.NodeCount()
	a := &adjacencyGraph{out: make([][]int, n), in: make([][]int, n)}
	for v := 0; v < n; v++ {
		g.ForEachRelationship(v, func(source, target int, _ float64) bool {
			a.out[source] = append(a.out[source], target)
			a.in[target] = append(a.in[target], source)
			return true
		})
	}
	return a
}

// Compute runs HITS until the max change in any hub or authority score
// between iterations falls below tolerance, or maxIterations is reached.
func Compute(g Graph, tolerance float64, maxIterations int) Result {
	n := g.NodeCount()
	hub := make([]float64, n)
	authority := make([]float64, n)
	for i := range hub {
		hub[i] = 1.0
		authority[i] = 1.0
	}

	iterations := 0
	converged := false

	for ; iterations < maxIterations; iterations++ {
		newAuthority := make([]float64, n)
		for v := 0; v < n; v++ {
			var sum float64
			for _, u := range g.InNeighbors(v) {
				sum += hub[u]
			}
			newAuthority[v] = sum
		}
		normalize(newAuthority)

		newHub := make([]float64, n)
		for v := 0; v < n; v++ {
			var sum float64
			for _, u := range g.OutNeighbors(v) {
				sum += newAuthority[u]
			}
			newHub[v] = sum
		}
		normalize(newHub)

		delta := maxDelta(hub, newHub)
		if d := maxDelta(authority, newAuthority); d > delta {
			delta = d
		}

		hub, authority = newHub, newAuthority

		if delta < tolerance {
			converged = true
			iterations++
			break
		}
	}

	return Result{Hub: hub, Authority: authority, Iterations: iterations, Converged: converged}
}

func normalize(v []float64) {
	var sumSquares float64
	for _, x := range v {
		sumSquares += x * x
	}
	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] /= norm
	}
}

func maxDelta(a, b []float64) float64 {
	var max float64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}
