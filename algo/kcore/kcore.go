// Package kcore computes per-node k-core numbers with the linear-time
// Batagelj-Zaversnik bin-sort decomposition, adapted from the teacher's
// computeKCore (which ran it over a gonum undirected adjacency) to run
// directly over a graph.Graph with densely-allocated 0..n-1 node ids.
package kcore

import "github.com/vanderheijden86/hugegraph/graph"

// Compute returns the core number of every node: the largest k such that
// the node belongs to a k-core (a maximal subgraph where every vertex has
// degree >= k within that subgraph).
func Compute(g graph.Graph) []int {
	n := g.NodeCount()
	if n == 0 {
		return nil
	}

	deg := make([]int, n)
	pos := make([]int, n)
	maxDeg := 0
	for v := 0; v < n; v++ {
		d := g.Degree(v)
		deg[v] = d
		if d > maxDeg {
			maxDeg = d
		}
	}

	bin := make([]int, maxDeg+2)
	for v := 0; v < n; v++ {
		bin[deg[v]]++
	}
	start := 0
	for d := 0; d <= maxDeg; d++ {
		num := bin[d]
		bin[d] = start
		start += num
	}

	vert := make([]int, n)
	binCursor := append([]int(nil), bin...)
	for v := 0; v < n; v++ {
		d := deg[v]
		i := binCursor[d]
		pos[v] = i
		vert[i] = v
		binCursor[d]++
	}

	for i := 0; i < n; i++ {
		v := vert[i]
		g.ForEachRelationship(v, func(_, u int, _ float64) bool {
			if deg[u] > deg[v] {
				du := deg[u]
				pu := pos[u]
				pw := bin[du]
				w := vert[pw]
				if u != w {
					vert[pu] = w
					vert[pw] = u
					pos[u] = pw
					pos[w] = pu
				}
				bin[du]++
				deg[u]--
			}
			return true
		})
	}

	return deg
}
