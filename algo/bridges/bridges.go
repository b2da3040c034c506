// Package bridges finds cut vertices (articulation points) and cut edges
// (bridges) in an undirected graph via a single Tarjan low-link DFS,
// adapted from the teacher's findArticulationPoints (which ran the same
// low-link recurrence over a gonum undirected adjacency) to run directly
// over a graph.Graph and to also report bridge edges.
package bridges

import "github.com/vanderheijden86/hugegraph/graph"

// Edge is an undirected bridge, reported once with Source < Target.
type Edge struct {
	Source, Target int
}

// Result holds the cut vertices and cut edges of one DFS pass.
type Result struct {
	ArticulationPoints []bool
	Bridges            []Edge
}

const noParent = -1

// Compute runs Tarjan's low-link DFS over g (treated as undirected) and
// returns every articulation point and bridge.
func Compute(g graph.Graph) Result {
	n := g.NodeCount()
	res := Result{ArticulationPoints: make([]bool, n)}
	if n == 0 {
		return res
	}

	disc := make([]int, n)
	low := make([]int, n)
	parent := make([]int, n)
	timeIdx := 0

	var dfs func(v int)
	dfs = func(v int) {
		timeIdx++
		disc[v] = timeIdx
		low[v] = timeIdx
		childCount := 0

		g.ForEachRelationship(v, func(_, u int, _ float64) bool {
			if disc[u] == 0 {
				parent[u] = v
				childCount++
				dfs(u)
				if low[u] < low[v] {
					low[v] = low[u]
				}

				if parent[v] == noParent && childCount > 1 {
					res.ArticulationPoints[v] = true
				}
				if parent[v] != noParent && low[u] >= disc[v] {
					res.ArticulationPoints[v] = true
				}
				if low[u] > disc[v] {
					source, target := v, u
					if target < source {
						source, target = target, source
					}
					res.Bridges = append(res.Bridges, Edge{Source: source, Target: target})
				}
			} else if u != parent[v] {
				if disc[u] < low[v] {
					low[v] = disc[u]
				}
			}
			return true
		})
	}

	for v := 0; v < n; v++ {
		if disc[v] == 0 {
			parent[v] = noParent
			dfs(v)
		}
	}

	return res
}
