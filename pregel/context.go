package pregel

import (
	"github.com/vanderheijden86/hugegraph/graph"
	"github.com/vanderheijden86/hugegraph/internal/atomics"
)

// ComputeContext is the API a computation's vertex function sees for one
// (node, superstep) pair (C9). A single instance is reused across the
// nodes of one partition task; NodeID changes between calls.
type ComputeContext struct {
	NodeID int

	g          graph.Graph
	values     *NodeValueStore
	messenger  *Messenger
	voteToHalt *atomics.BitSet
	iteration  int
}

// NodeCount returns the total number of nodes in the graph.
func (c *ComputeContext) NodeCount() int { return c.g.NodeCount() }

// Iteration returns the current (0-based) superstep number.
func (c *ComputeContext) Iteration() int { return c.iteration }

// Degree returns the out-degree of node.
func (c *ComputeContext) Degree(node int) int { return c.g.Degree(node) }

// ForEachNeighbor invokes fn once per outgoing neighbor of the current
// node, passing the neighbor id and relationship weight.
func (c *ComputeContext) ForEachNeighbor(fn func(neighbor int, weight float64)) {
	c.g.ForEachRelationship(c.NodeID, func(_, target int, weight float64) bool {
		fn(target, weight)
		return true
	})
}

// NodeValueLong reads a Long property for the current node.
func (c *ComputeContext) NodeValueLong(key string) int64 {
	return c.values.NodeValueLong(key, c.NodeID)
}

// SetNodeValueLong writes a Long property for the current node.
func (c *ComputeContext) SetNodeValueLong(key string, v int64) {
	c.values.SetNodeValueLong(key, c.NodeID, v)
}

// NodeValueDouble reads a Double property for the current node.
func (c *ComputeContext) NodeValueDouble(key string) float64 {
	return c.values.NodeValueDouble(key, c.NodeID)
}

// SetNodeValueDouble writes a Double property for the current node.
func (c *ComputeContext) SetNodeValueDouble(key string, v float64) {
	c.values.SetNodeValueDouble(key, c.NodeID, v)
}

// NodeValueLongArray reads a LongArray property for the current node.
func (c *ComputeContext) NodeValueLongArray(key string) []int64 {
	return c.values.NodeValueLongArray(key, c.NodeID)
}

// SetNodeValueLongArray writes a LongArray property for the current node.
func (c *ComputeContext) SetNodeValueLongArray(key string, v []int64) {
	c.values.SetNodeValueLongArray(key, c.NodeID, v)
}

// NodeValueDoubleArray reads a DoubleArray property for the current node.
func (c *ComputeContext) NodeValueDoubleArray(key string) []float64 {
	return c.values.NodeValueDoubleArray(key, c.NodeID)
}

// SetNodeValueDoubleArray writes a DoubleArray property for the current
// node.
func (c *ComputeContext) SetNodeValueDoubleArray(key string, v []float64) {
	c.values.SetNodeValueDoubleArray(key, c.NodeID, v)
}

// NodeValueLongArrayOf reads a LongArray property for an arbitrary node,
// not just the current one. The value store's public contract is keyed by
// (key, node) rather than implicitly "self", so this is a direct read of
// the current superstep's stable snapshot — safe because synchronous-mode
// writes land in the next buffer and only become visible after the
// barrier swap.
func (c *ComputeContext) NodeValueLongArrayOf(key string, node int) []int64 {
	return c.values.NodeValueLongArray(key, node)
}

// NodeValueLongOf reads a Long property for an arbitrary node.
func (c *ComputeContext) NodeValueLongOf(key string, node int) int64 {
	return c.values.NodeValueLong(key, node)
}

// NodeValueDoubleOf reads a Double property for an arbitrary node.
func (c *ComputeContext) NodeValueDoubleOf(key string, node int) float64 {
	return c.values.NodeValueDouble(key, node)
}

// Messages returns the payloads delivered to the current node this
// superstep.
func (c *ComputeContext) Messages() []float64 {
	return c.messenger.Messages(c.NodeID)
}

// SendTo enqueues payload for target, observable by target's compute
// function next superstep (or later, in asynchronous mode). Sending to any
// node clears that node's vote-to-halt bit.
func (c *ComputeContext) SendTo(target int, payload float64) {
	c.messenger.SendTo(target, payload)
	c.voteToHalt.Clear(target)
}

// SendToNeighbors sends payload to every outgoing neighbor of the current
// node.
func (c *ComputeContext) SendToNeighbors(payload float64) {
	c.ForEachNeighbor(func(neighbor int, _ float64) {
		c.SendTo(neighbor, payload)
	})
}

// SendToNeighborsWithWeight calls fn for each outgoing neighbor's weight
// and sends fn's result to that neighbor.
func (c *ComputeContext) SendToNeighborsWithWeight(fn func(weight float64) float64) {
	c.ForEachNeighbor(func(neighbor int, weight float64) {
		c.SendTo(neighbor, fn(weight))
	})
}

// VoteToHalt marks the current node as having nothing more to do. It is
// automatically un-done the next time any message is delivered to the node.
func (c *ComputeContext) VoteToHalt() {
	c.voteToHalt.Set(c.NodeID)
}
