// Package pagerank implements the PageRank centrality algorithm as a
// pregel.Computation: each node starts at 1/N, distributes its rank
// divided by out-degree to its neighbors every superstep, and votes to
// halt once its own rank changes by less than the configured tolerance.
package pagerank

import (
	"github.com/vanderheijden86/hugegraph/pregel"
)

const (
	rankProperty = "rank"
	prevProperty = "prevRank"
)

// Config controls damping, convergence tolerance, and the graph's node
// count (needed to seed the uniform initial rank 1/N).
type Config struct {
	DampingFactor float64
	Tolerance     float64
	NodeCount     int
}

// Computation is the PageRank pregel.Computation.
type Computation struct {
	cfg Config
}

// New returns a PageRank Computation for the given config.
func New(cfg Config) *Computation {
	return &Computation{cfg: cfg}
}

// Schema declares the public "rank" property and a private "prevRank"
// scratch property used to detect convergence.
func (c *Computation) Schema() pregel.Schema {
	return pregel.Schema{
		{Name: rankProperty, Type: pregel.Double, Visibility: pregel.Public},
		{Name: prevProperty, Type: pregel.Double, Visibility: pregel.Private},
	}
}

// Compute runs one PageRank superstep for a node: on the first superstep it
// seeds the uniform rank and broadcasts it; on later supersteps it sums
// incoming contributions into the damped rank formula, compares against
// the previous value, and votes to halt once the delta is within
// tolerance.
func (c *Computation) Compute(ctx *pregel.ComputeContext) {
	n := float64(c.cfg.NodeCount)
	if n <= 0 {
		n = 1
	}

	if ctx.Iteration() == 0 {
		initial := 1.0 / n
		ctx.SetNodeValueDouble(rankProperty, initial)
		ctx.SetNodeValueDouble(prevProperty, initial)
		if deg := ctx.Degree(ctx.NodeID); deg > 0 {
			ctx.SendToNeighbors(initial / float64(deg))
		}
		return
	}

	var sum float64
	for _, m := range ctx.Messages() {
		sum += m
	}

	rank := (1-c.cfg.DampingFactor)/n + c.cfg.DampingFactor*sum
	prev := ctx.NodeValueDouble(rankProperty)

	ctx.SetNodeValueDouble(prevProperty, prev)
	ctx.SetNodeValueDouble(rankProperty, rank)

	delta := rank - prev
	if delta < 0 {
		delta = -delta
	}
	if delta < c.cfg.Tolerance {
		ctx.VoteToHalt()
		return
	}

	if deg := ctx.Degree(ctx.NodeID); deg > 0 {
		ctx.SendToNeighbors(rank / float64(deg))
	}
}
