// Package trianglecount counts triangles through a Pregel front-end
// reduced to a simple two-superstep enumeration: superstep 0 has every
// node publish its neighbor-id set; superstep 1 has every node look at
// every unordered pair of its own neighbors and check whether that pair
// is itself an edge, using the other neighbor's published set. The result
// is the number of triangles each node participates in; summing over all
// nodes and dividing by three (every triangle is counted once at each of
// its three vertices) gives the global count.
package trianglecount

import "github.com/vanderheijden86/hugegraph/pregel"

const (
	localProperty = "triangles"
	idsProperty   = "neighborIDs"
)

// Computation is the triangle-count pregel.Computation.
type Computation struct{}

// New returns a triangle-count Computation.
func New() *Computation { return &Computation{} }

func (c *Computation) Schema() pregel.Schema {
	return pregel.Schema{
		{Name: localProperty, Type: pregel.Long, Visibility: pregel.Public},
		{Name: idsProperty, Type: pregel.LongArray, Visibility: pregel.Private},
	}
}

func (c *Computation) Compute(ctx *pregel.ComputeContext) {
	switch ctx.Iteration() {
	case 0:
		ids := make([]int64, 0, ctx.Degree(ctx.NodeID))
		ctx.ForEachNeighbor(func(neighbor int, _ float64) {
			ids = append(ids, int64(neighbor))
		})
		ctx.SetNodeValueLongArray(idsProperty, ids)
	case 1:
		neighbors := ctx.NodeValueLongArray(idsProperty)
		var count int64
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				u, v := neighbors[i], neighbors[j]
				if u > v {
					u, v = v, u
				}
				if adjacent(v, ctx.NodeValueLongArrayOf(idsProperty, int(u))) {
					count++
				}
			}
		}
		ctx.SetNodeValueLong(localProperty, count)
		ctx.VoteToHalt()
	default:
		ctx.VoteToHalt()
	}
}

func adjacent(target int64, ids []int64) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

// Global sums every node's local triangle count and divides by three: each
// triangle is counted once at each of its three member nodes.
func Global(values *pregel.NodeValueStore, nodeCount int) int64 {
	get := values.PublicLongAccessor(localProperty)
	var sum int64
	for n := 0; n < nodeCount; n++ {
		sum += get(n)
	}
	return sum / 3
}
