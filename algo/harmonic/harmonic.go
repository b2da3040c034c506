// Package harmonic computes harmonic centrality: for every node v,
// sum(1/dist(u,v)) over every other reachable node u, via one BFS per
// source run concurrently. Grounded on HarmonicComputationRuntime
// (rust-gds harmonic/integration_tests.rs).
package harmonic

import (
	"sync"

	"github.com/vanderheijden86/hugegraph/graph"
)

// Compute returns the harmonic centrality of every node.
func Compute(g graph.Graph, concurrency int) []float64 {
	n := g.NodeCount()
	centrality := make([]float64, n)
	if n == 0 {
		return centrality
	}
	if concurrency < 1 {
		concurrency = 1
	}

	jobs := make(chan int, n)
	for v := 0; v < n; v++ {
		jobs <- v
	}
	close(jobs)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for source := range jobs {
				dist := bfsDistances(g, source)
				var sum float64
				for _, d := range dist {
					if d > 0 {
						sum += 1.0 / float64(d)
					}
				}
				mu.Lock()
				centrality[source] = sum
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return centrality
}

// bfsDistances returns, for every node, its hop distance from source, or
// -1 if unreachable. dist[source] is 0.
func bfsDistances(g graph.Graph, source int) []int {
	n := g.NodeCount()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[source] = 0

	queue := []int{source}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		g.ForEachRelationship(v, func(_, u int, _ float64) bool {
			if dist[u] == -1 {
				dist[u] = dist[v] + 1
				queue = append(queue, u)
			}
			return true
		})
	}
	return dist
}
