package dsu_test

import (
	"sync"
	"testing"

	"github.com/vanderheijden86/hugegraph/internal/dsu"
	"pgregory.net/rapid"
)

// TestDSUUnionOrderCommutes is a property test: for any edge multiset,
// applying the unions through several concurrent goroutines in an
// arbitrary order yields the same partition (up to relabeling by
// SetIDOf) as applying them sequentially in list order.
func TestDSUUnionOrderCommutes(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 64).Draw(rt, "n")
		edgeCount := rapid.IntRange(0, 3*n).Draw(rt, "edgeCount")

		edges := make([][2]int, edgeCount)
		for i := range edges {
			edges[i] = [2]int{
				rapid.IntRange(0, n-1).Draw(rt, "p"),
				rapid.IntRange(0, n-1).Draw(rt, "q"),
			}
		}
		workers := rapid.IntRange(1, 6).Draw(rt, "workers")

		want := sequentialSetIDs(n, edges)

		d := dsu.New(n)
		var wg sync.WaitGroup
		chunkSize := (len(edges) + workers - 1)
		if chunkSize == 0 {
			chunkSize = 1
		} else {
			chunkSize /= workers
			if chunkSize == 0 {
				chunkSize = 1
			}
		}
		for start := 0; start < len(edges); start += chunkSize {
			end := start + chunkSize
			if end > len(edges) {
				end = len(edges)
			}
			wg.Add(1)
			go func(chunk [][2]int) {
				defer wg.Done()
				for _, e := range chunk {
					d.Union(e[0], e[1])
				}
			}(edges[start:end])
		}
		wg.Wait()

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if (want[i] == want[j]) != d.SameSet(i, j) {
					rt.Fatalf("partition mismatch at (%d,%d) with edges=%v", i, j, edges)
				}
			}
		}
	})
}
