// Package yens implements Yen's algorithm for the K loopless shortest
// paths between a source and target: the shortest path by Dijkstra, then
// K-1 further paths found by deviating from a "spur" node on each
// previously found path while excluding already-used root-path edges —
// the blocking-neighbor exclusion grounded on RelationshipFilterer
// (rust-gds yens/relationship_filterer.rs). Candidate spur searches run
// concurrently, bounded by a semaphore.
package yens

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/semaphore"

	"github.com/vanderheijden86/hugegraph/graph"
)

// Path is one shortest-path candidate: the node sequence and its total
// weight.
type Path struct {
	Nodes  []int
	Weight float64
}

// blockedEdges tracks, per source node, the target ids forbidden on the
// current spur search — the RelationshipFilterer's blocking-neighbor set.
type blockedEdges map[int]map[int]bool

func (b blockedEdges) blocks(source, target int) bool {
	targets, ok := b[source]
	if !ok {
		return false
	}
	return targets[target]
}

func (b blockedEdges) block(source, target int) {
	if b[source] == nil {
		b[source] = map[int]bool{}
	}
	b[source][target] = true
}

// KShortestPaths returns up to k loopless shortest paths from source to
// target, ordered by ascending weight.
func KShortestPaths(ctx context.Context, g graph.Graph, source, target, k, concurrency int) []Path {
	if k < 1 {
		return nil
	}

	first, ok := shortestPath(g, source, target, nil, nil)
	if !ok {
		return nil
	}
	found := []Path{first}

	type candidate struct {
		path    Path
		rootLen int
	}
	var candidates []candidate
	seen := map[string]bool{pathKey(first.Nodes): true}

	if concurrency < 1 {
		concurrency = 1
	}
	sem := semaphore.NewWeighted(int64(concurrency))

	for len(found) < k {
		prev := found[len(found)-1]

		type spurResult struct {
			path Path
			ok   bool
		}
		results := make([]spurResult, len(prev.Nodes)-1)

		for i := 0; i < len(prev.Nodes)-1; i++ {
			i := i
			sem.Acquire(ctx, 1)
			go func() {
				defer sem.Release(1)

				spurNode := prev.Nodes[i]
				rootPath := append([]int(nil), prev.Nodes[:i+1]...)

				excluded := blockedEdges{}
				excludedNodes := map[int]bool{}
				for _, p := range found {
					if len(p.Nodes) > i && samePrefix(p.Nodes[:i+1], rootPath) {
						excluded.block(p.Nodes[i], p.Nodes[i+1])
					}
				}
				for _, n := range rootPath[:len(rootPath)-1] {
					excludedNodes[n] = true
				}

				spurPath, ok := shortestPath(g, spurNode, target, excluded, excludedNodes)
				if !ok {
					return
				}

				totalNodes := append(append([]int(nil), rootPath[:len(rootPath)-1]...), spurPath.Nodes...)
				rootWeight := pathWeight(g, rootPath)
				total := Path{Nodes: totalNodes, Weight: rootWeight + spurPath.Weight}
				results[i] = spurResult{path: total, ok: true}
			}()
		}
		// Wait for every spur search started this round.
		sem.Acquire(ctx, int64(concurrency))
		sem.Release(int64(concurrency))

		for _, r := range results {
			if !r.ok {
				continue
			}
			key := pathKey(r.path.Nodes)
			if seen[key] {
				continue
			}
			seen[key] = true
			candidates = append(candidates, candidate{path: r.path})
		}

		if len(candidates) == 0 {
			break
		}
		sort.Slice(candidates, func(a, b int) bool { return candidates[a].path.Weight < candidates[b].path.Weight })
		best := candidates[0].path
		candidates = candidates[1:]
		found = append(found, best)
	}

	return found
}

func samePrefix(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func pathKey(nodes []int) string {
	b := make([]byte, 0, len(nodes)*4)
	for _, n := range nodes {
		b = append(b, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
	}
	return string(b)
}

func pathWeight(g graph.Graph, nodes []int) float64 {
	var total float64
	for i := 0; i+1 < len(nodes); i++ {
		total += edgeWeight(g, nodes[i], nodes[i+1])
	}
	return total
}

func edgeWeight(g graph.Graph, source, target int) float64 {
	weight := math.Inf(1)
	g.ForEachRelationship(source, func(_, t int, w float64) bool {
		if t == target && w < weight {
			weight = w
		}
		return true
	})
	return weight
}

// shortestPath runs Dijkstra from source to target over g, skipping
// excludedNodes entirely and edges forbidden by blocked. Vertex selection
// is a linear scan rather than a priority queue: K-shortest-path graphs
// are small relative to the full store, and this keeps the spur search
// simple to reason about under concurrent invocation.
func shortestPath(g graph.Graph, source, target int, blocked blockedEdges, excludedNodes map[int]bool) (Path, bool) {
	n := g.NodeCount()
	dist := make([]float64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[source] = 0

	for {
		u := -1
		best := math.Inf(1)
		for v := 0; v < n; v++ {
			if !visited[v] && dist[v] < best {
				best = dist[v]
				u = v
			}
		}
		if u == -1 {
			break
		}
		visited[u] = true
		if u == target {
			break
		}

		g.ForEachRelationship(u, func(_, v int, w float64) bool {
			if excludedNodes[v] || blocked.blocks(u, v) {
				return true
			}
			nd := dist[u] + w
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
			}
			return true
		})
	}

	if math.IsInf(dist[target], 1) {
		return Path{}, false
	}

	var nodes []int
	for at := target; at != -1; at = prev[at] {
		nodes = append([]int{at}, nodes...)
		if at == source {
			break
		}
	}
	return Path{Nodes: nodes, Weight: dist[target]}, true
}
