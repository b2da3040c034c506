// Package graph defines the read-only adjacency + property view that the
// Pregel runtime (and every algorithm built on it) consumes. It standardizes
// the boundary described in spec.md §4.5; the actual GraphStore/loader that
// produces a Graph is an out-of-scope collaborator — this package also ships
// one concrete, in-memory CSR-backed implementation for tests and the CLI.
package graph

// Characteristics describes static properties of a Graph that algorithms
// may branch on (e.g. whether they need to build their own reverse index).
type Characteristics struct {
	Directed       bool
	HasInverseIndex bool
}

// Graph is the read-only view every core component is handed. It is
// immutable for the duration of a computation and safely shareable across
// goroutines — ConcurrentCopy exists only because some graph
// implementations keep per-copy scratch state (e.g. a relationship
// iteration cursor) that is not itself safe to share.
type Graph interface {
	// NodeCount returns the number of nodes, i.e. the exclusive upper bound
	// on internal node ids.
	NodeCount() int

	// RelationshipCount returns the total number of relationships.
	RelationshipCount() int

	// Degree returns the out-degree of node.
	Degree(node int) int

	// ForEachRelationship invokes fn once per outgoing relationship of
	// node, in unspecified order, passing source, target and the
	// relationship's weight (1.0 if the graph has no relationship
	// property).
	ForEachRelationship(node int, fn func(source, target int, weight float64) bool)

	// ConcurrentCopy returns a handle usable from another goroutine. Cheap:
	// implementations that need no per-copy scratch state may return
	// themselves.
	ConcurrentCopy() Graph

	// HasRelationshipProperty reports whether ForEachRelationship yields
	// meaningful (non-default) weights.
	HasRelationshipProperty() bool

	// Characteristics reports static graph properties.
	Characteristics() Characteristics
}
