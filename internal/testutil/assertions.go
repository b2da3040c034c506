package testutil

import (
	"testing"

	"github.com/vanderheijden86/hugegraph/pregel"
)

// AssertConverged verifies a scheduler Result reached Converged status.
func AssertConverged(t *testing.T, res pregel.Result) {
	t.Helper()
	if res.Status != pregel.Converged {
		t.Errorf("status = %v, want Converged", res.Status)
	}
}

// AssertIterationsWithin verifies a scheduler Result converged within
// [min, max] supersteps inclusive.
func AssertIterationsWithin(t *testing.T, res pregel.Result, min, max int) {
	t.Helper()
	if res.Iterations < min || res.Iterations > max {
		t.Errorf("iterations = %d, want within [%d, %d]", res.Iterations, min, max)
	}
}

// AssertSetIDsEqual verifies every node in nodes shares the same set id
// under idOf.
func AssertSetIDsEqual(t *testing.T, idOf func(node int) int, nodes []int) {
	t.Helper()
	if len(nodes) == 0 {
		return
	}
	want := idOf(nodes[0])
	for _, n := range nodes[1:] {
		if got := idOf(n); got != want {
			t.Errorf("node %d set id = %d, want %d (same as node %d)", n, got, want, nodes[0])
		}
	}
}

// AssertSetIDsDistinct verifies no two nodes in nodes share a set id under
// idOf.
func AssertSetIDsDistinct(t *testing.T, idOf func(node int) int, nodes []int) {
	t.Helper()
	seen := make(map[int]int)
	for _, n := range nodes {
		id := idOf(n)
		if other, ok := seen[id]; ok {
			t.Errorf("nodes %d and %d share set id %d, want distinct", other, n, id)
			continue
		}
		seen[id] = n
	}
}
