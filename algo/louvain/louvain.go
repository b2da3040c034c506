// Package louvain finds communities by greedy modularity optimization:
// repeated rounds of local node-moving followed by community aggregation
// into a coarser graph, in the style of Blondel et al. Run directly over
// internal node/community bookkeeping rather than as a pregel.Computation —
// each local move needs the up-to-date total volume of every candidate
// community, a piece of shared mutable state that a vertex-centric
// superstep has no clean way to keep linearizable across concurrent
// partitions, the same reasoning that keeps wcc and hits off the Pregel
// runtime. Community volumes live in a plain per-community slice that each
// local move updates in place.
package louvain

import (
	"github.com/vanderheijden86/hugegraph/graph"
)

// Config controls the local-moving and aggregation loop.
type Config struct {
	// MaxLevels bounds the number of aggregation rounds. Zero means 10.
	MaxLevels int
	// MaxPasses bounds local-moving passes within a single level before
	// forcing aggregation. Zero means 20.
	MaxPasses int
	// MinGain is the smallest modularity gain that counts as an
	// improvement; below it a move is not worth the churn. Zero means
	// 1e-9.
	MinGain float64
}

func (c Config) withDefaults() Config {
	if c.MaxLevels <= 0 {
		c.MaxLevels = 10
	}
	if c.MaxPasses <= 0 {
		c.MaxPasses = 20
	}
	if c.MinGain <= 0 {
		c.MinGain = 1e-9
	}
	return c
}

// Result is the outcome of a Louvain run.
type Result struct {
	// Communities maps every original node to its final community id.
	Communities []int
	Levels      int
	Modularity  float64
}

// Run partitions g into communities.
func Run(g graph.Graph, cfg Config) Result {
	cfg = cfg.withDefaults()
	n := g.NodeCount()

	levelMapping := make([]int, n)
	for i := range levelMapping {
		levelMapping[i] = i
	}

	var level graph.Graph = g
	levels := 0
	for levels < cfg.MaxLevels {
		ln := level.NodeCount()
		if ln <= 1 {
			break
		}
		m := totalWeight(level)
		if m == 0 {
			break
		}

		communityOf := make([]int, ln)
		volume := make([]float64, ln)
		for i := 0; i < ln; i++ {
			communityOf[i] = i
			volume[i] = weightedDegree(level, i)
		}

		if !localMove(level, communityOf, volume, m, cfg.MinGain, cfg.MaxPasses) {
			break
		}

		coarse, renumbered := aggregate(level, communityOf)
		for i := 0; i < n; i++ {
			levelMapping[i] = renumbered[levelMapping[i]]
		}

		levels++
		if coarse.NodeCount() == ln {
			break
		}
		level = coarse
	}

	return Result{
		Communities: levelMapping,
		Levels:      levels,
		Modularity:  modularity(g, levelMapping),
	}
}

// localMove repeatedly tries to move each node into the neighbor community
// that yields the largest modularity gain, until a full pass makes no
// move or maxPasses is reached. It reports whether any move happened.
func localMove(g graph.Graph, communityOf []int, volume []float64, m, minGain float64, maxPasses int) bool {
	n := g.NodeCount()
	anyImprovement := false

	for pass := 0; pass < maxPasses; pass++ {
		passImproved := false

		for i := 0; i < n; i++ {
			deg := weightedDegree(g, i)
			old := communityOf[i]
			volume[old] -= deg

			neighborWeight := map[int]float64{}
			g.ForEachRelationship(i, func(_, t int, w float64) bool {
				if t == i {
					return true
				}
				neighborWeight[communityOf[t]] += w
				return true
			})

			best := old
			bestGain := neighborWeight[old] - volume[old]*deg/(2*m)
			for c, w := range neighborWeight {
				gain := w - volume[c]*deg/(2*m)
				if gain > bestGain+minGain {
					bestGain = gain
					best = c
				}
			}

			volume[best] += deg
			if best != old {
				communityOf[i] = best
				passImproved = true
			}
		}

		if !passImproved {
			break
		}
		anyImprovement = true
	}

	return anyImprovement
}

// aggregate collapses g's nodes into one super-node per distinct community
// and returns the coarse graph plus the renumbering from old node id to
// new (dense, zero-based) community id.
func aggregate(g graph.Graph, communityOf []int) (graph.Graph, []int) {
	n := g.NodeCount()
	renumbered := make([]int, n)
	assigned := map[int]int{}
	next := 0
	for i := 0; i < n; i++ {
		c := communityOf[i]
		id, ok := assigned[c]
		if !ok {
			id = next
			assigned[c] = id
			next++
		}
		renumbered[i] = id
	}

	type pair struct{ a, b int }
	accum := map[pair]float64{}
	for i := 0; i < n; i++ {
		ci := renumbered[i]
		g.ForEachRelationship(i, func(_, t int, w float64) bool {
			if t == i {
				accum[pair{ci, ci}] += w
				return true
			}
			ct := renumbered[t]
			a, b := ci, ct
			if a > b {
				a, b = b, a
			}
			accum[pair{a, b}] += w / 2
			return true
		})
	}

	b := graph.NewBuilder(next, false)
	for k, w := range accum {
		b.AddWeightedEdge(k.a, k.b, w)
	}
	return b.Build(), renumbered
}

// weightedDegree returns node's total relationship weight, counting a
// self-loop twice as modularity bookkeeping requires.
func weightedDegree(g graph.Graph, node int) float64 {
	var deg float64
	g.ForEachRelationship(node, func(_, t int, w float64) bool {
		if t == node {
			deg += 2 * w
		} else {
			deg += w
		}
		return true
	})
	return deg
}

func totalWeight(g graph.Graph) float64 {
	var sum float64
	n := g.NodeCount()
	for i := 0; i < n; i++ {
		sum += weightedDegree(g, i)
	}
	return sum / 2
}

// modularity computes Newman's Q for the given community assignment over
// the original graph g.
func modularity(g graph.Graph, communities []int) float64 {
	n := g.NodeCount()
	m := totalWeight(g)
	if m == 0 {
		return 0
	}

	internal := map[int]float64{}
	tot := map[int]float64{}
	for i := 0; i < n; i++ {
		ci := communities[i]
		tot[ci] += weightedDegree(g, i)
		g.ForEachRelationship(i, func(_, t int, w float64) bool {
			if communities[t] != ci {
				return true
			}
			if t == i {
				internal[ci] += w
			} else {
				internal[ci] += w / 2
			}
			return true
		})
	}

	var q float64
	for c, in := range internal {
		frac := tot[c] / (2 * m)
		q += in/m - frac*frac
	}
	return q
}
