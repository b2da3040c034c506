// Package labelprop implements weighted label propagation as a
// pregel.Computation: every node starts labeled with its own id, and on
// each subsequent superstep adopts the label with the greatest summed
// edge weight among its neighbors' current labels (a tie goes to the
// smallest of the tied labels), voting to halt once its label stops
// changing.
// Grounded on LabelPropComputationRuntime
// (rust-gds label_propagation/integration_tests.rs). Neighbor labels are
// read directly via the value store's (key, node) contract rather than
// through messages, since every superstep's reads already observe a
// stable prior-superstep snapshot.
package labelprop

import "github.com/vanderheijden86/hugegraph/pregel"

const labelProperty = "label"

// Computation is the label-propagation pregel.Computation.
type Computation struct{}

// New returns a label-propagation Computation.
func New() *Computation { return &Computation{} }

func (c *Computation) Schema() pregel.Schema {
	return pregel.Schema{{Name: labelProperty, Type: pregel.Long, Visibility: pregel.Public}}
}

func (c *Computation) Compute(ctx *pregel.ComputeContext) {
	if ctx.Iteration() == 0 {
		ctx.SetNodeValueLong(labelProperty, int64(ctx.NodeID))
		return
	}

	votes := map[int64]float64{}
	ctx.ForEachNeighbor(func(neighbor int, weight float64) {
		votes[ctx.NodeValueLongOf(labelProperty, neighbor)] += weight
	})

	current := ctx.NodeValueLong(labelProperty)
	best := current
	bestWeight := votes[current]
	for label, weight := range votes {
		if weight > bestWeight || (weight == bestWeight && label < best) {
			best = label
			bestWeight = weight
		}
	}

	if best == current {
		ctx.VoteToHalt()
		return
	}
	ctx.SetNodeValueLong(labelProperty, best)
	// A label change can flip a neighbor's majority vote next superstep, so
	// wake every neighbor even though the payload itself is unused — reads
	// go through NodeValueLongOf, not Messages().
	ctx.SendToNeighbors(0)
}
