package graph

// edge is one outgoing relationship packed into a CSR adjacency list.
type edge struct {
	target int
	weight float64
}

// CSRGraph is a concrete, in-memory Graph backed by a compressed
// sparse-row adjacency list. It is built once via Builder and is immutable
// thereafter, making it safe to share across goroutines without locking.
type CSRGraph struct {
	nodeCount    int
	relCount     int
	adjacency    [][]edge
	hasWeights   bool
	directed     bool
	hasInverse   bool
}

// NodeCount implements Graph.
func (g *CSRGraph) NodeCount() int { return g.nodeCount }

// RelationshipCount implements Graph.
func (g *CSRGraph) RelationshipCount() int { return g.relCount }

// Degree implements Graph.
func (g *CSRGraph) Degree(node int) int { return len(g.adjacency[node]) }

// ForEachRelationship implements Graph.
func (g *CSRGraph) ForEachRelationship(node int, fn func(source, target int, weight float64) bool) {
	for _, e := range g.adjacency[node] {
		if !fn(node, e.target, e.weight) {
			return
		}
	}
}

// ConcurrentCopy implements Graph. CSRGraph holds no mutable per-call
// state, so it is already safe to share; ConcurrentCopy is the identity.
func (g *CSRGraph) ConcurrentCopy() Graph { return g }

// HasRelationshipProperty implements Graph.
func (g *CSRGraph) HasRelationshipProperty() bool { return g.hasWeights }

// Characteristics implements Graph.
func (g *CSRGraph) Characteristics() Characteristics {
	return Characteristics{Directed: g.directed, HasInverseIndex: g.hasInverse}
}
