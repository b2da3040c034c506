package pregel

import (
	"fmt"

	"github.com/vanderheijden86/hugegraph/internal/pagedarray"
)

// longSlot holds current/next paged arrays for one Long-typed property.
type longSlot struct {
	current, next *pagedarray.LongArray
}

type doubleSlot struct {
	current, next *pagedarray.DoubleArray
}

type longArraySlot struct {
	current, next *pagedarray.ObjectArray[[]int64]
}

type doubleArraySlot struct {
	current, next *pagedarray.ObjectArray[[]float64]
}

// NodeValueStore is the Pregel value store (C6): for each declared
// property key, a paged huge array of size nodeCount. In synchronous mode
// writes during superstep s land in a "next" slot, invisible until the
// barrier swaps it into "current" for superstep s+1 — so a superstep's
// reads always observe a stable snapshot. In asynchronous mode there is a
// single slot and writes are visible immediately.
type NodeValueStore struct {
	schema    Schema
	nodeCount int
	sync      bool

	longs        map[string]*longSlot
	doubles      map[string]*doubleSlot
	longArrays   map[string]*longArraySlot
	doubleArrays map[string]*doubleArraySlot
}

// NewNodeValueStore allocates one paged array per declared property,
// initialized to its type's zero value.
func NewNodeValueStore(schema Schema, nodeCount int, synchronous bool) *NodeValueStore {
	s := &NodeValueStore{
		schema:       schema,
		nodeCount:    nodeCount,
		sync:         synchronous,
		longs:        map[string]*longSlot{},
		doubles:      map[string]*doubleSlot{},
		longArrays:   map[string]*longArraySlot{},
		doubleArrays: map[string]*doubleArraySlot{},
	}
	for _, d := range schema {
		switch d.Type {
		case Long:
			slot := &longSlot{current: pagedarray.NewLongArray(nodeCount)}
			if synchronous {
				slot.next = pagedarray.NewLongArray(nodeCount)
			}
			s.longs[d.Name] = slot
		case Double:
			slot := &doubleSlot{current: pagedarray.NewDoubleArray(nodeCount)}
			if synchronous {
				slot.next = pagedarray.NewDoubleArray(nodeCount)
			}
			s.doubles[d.Name] = slot
		case LongArray:
			slot := &longArraySlot{current: pagedarray.NewObjectArray[[]int64](nodeCount)}
			if synchronous {
				slot.next = pagedarray.NewObjectArray[[]int64](nodeCount)
			}
			s.longArrays[d.Name] = slot
		case DoubleArray:
			slot := &doubleArraySlot{current: pagedarray.NewObjectArray[[]float64](nodeCount)}
			if synchronous {
				slot.next = pagedarray.NewObjectArray[[]float64](nodeCount)
			}
			s.doubleArrays[d.Name] = slot
		}
	}
	return s
}

// validate returns ErrInvalidSchema if key was not declared with the given
// type.
func (s *NodeValueStore) validate(key string, want ValueType) error {
	d, ok := s.schema.find(key)
	if !ok || d.Type != want {
		return fmt.Errorf("%w: %q (%s)", ErrInvalidSchema, key, want)
	}
	return nil
}

// NodeValueLong returns the current-superstep value of a Long property.
func (s *NodeValueStore) NodeValueLong(key string, node int) int64 {
	return s.longs[key].current.Get(node)
}

// SetNodeValueLong writes v for a Long property. In synchronous mode the
// write lands in the next-superstep buffer.
func (s *NodeValueStore) SetNodeValueLong(key string, node int, v int64) {
	slot := s.longs[key]
	if s.sync {
		slot.next.Set(node, v)
	} else {
		slot.current.Set(node, v)
	}
}

// NodeValueDouble returns the current-superstep value of a Double property.
func (s *NodeValueStore) NodeValueDouble(key string, node int) float64 {
	return s.doubles[key].current.Get(node)
}

// SetNodeValueDouble writes v for a Double property.
func (s *NodeValueStore) SetNodeValueDouble(key string, node int, v float64) {
	slot := s.doubles[key]
	if s.sync {
		slot.next.Set(node, v)
	} else {
		slot.current.Set(node, v)
	}
}

// NodeValueLongArray returns the current-superstep value of a LongArray
// property.
func (s *NodeValueStore) NodeValueLongArray(key string, node int) []int64 {
	return s.longArrays[key].current.Get(node)
}

// SetNodeValueLongArray writes v for a LongArray property.
func (s *NodeValueStore) SetNodeValueLongArray(key string, node int, v []int64) {
	slot := s.longArrays[key]
	if s.sync {
		slot.next.Set(node, v)
	} else {
		slot.current.Set(node, v)
	}
}

// NodeValueDoubleArray returns the current-superstep value of a
// DoubleArray property.
func (s *NodeValueStore) NodeValueDoubleArray(key string, node int) []float64 {
	return s.doubleArrays[key].current.Get(node)
}

// SetNodeValueDoubleArray writes v for a DoubleArray property.
func (s *NodeValueStore) SetNodeValueDoubleArray(key string, node int, v []float64) {
	slot := s.doubleArrays[key]
	if s.sync {
		slot.next.Set(node, v)
	} else {
		slot.current.Set(node, v)
	}
}

// Swap promotes every property's next buffer into current — invoked by the
// scheduler at the barrier between supersteps in synchronous mode. It is a
// no-op in asynchronous mode (there is no next buffer).
//
// A node that doesn't call SetNodeValue* during a superstep (the normal case
// once it votes to halt while others keep running) must still see its last
// written value on every later read — current and next are two independent
// backing arrays, so a bare pointer exchange would make that node's value
// revert to whatever next held two supersteps ago and then flap between its
// last two distinct writes for as long as the run continues. So after
// promoting next to current, the new next is seeded with current's contents
// before the next superstep's writes land on top of it.
func (s *NodeValueStore) Swap() {
	if !s.sync {
		return
	}
	for _, slot := range s.longs {
		slot.current, slot.next = slot.next, slot.current
		slot.next.SetAll(func(i int) int64 { return slot.current.Get(i) })
	}
	for _, slot := range s.doubles {
		slot.current, slot.next = slot.next, slot.current
		slot.next.SetAll(func(i int) float64 { return slot.current.Get(i) })
	}
	for _, slot := range s.longArrays {
		slot.current, slot.next = slot.next, slot.current
		for i := 0; i < s.nodeCount; i++ {
			slot.next.Set(i, slot.current.Get(i))
		}
	}
	for _, slot := range s.doubleArrays {
		slot.current, slot.next = slot.next, slot.current
		for i := 0; i < s.nodeCount; i++ {
			slot.next.Set(i, slot.current.Get(i))
		}
	}
}

// PublicLongAccessor returns a node-id-indexed accessor for a declared
// Public Long property, part of the result surface (spec.md §6).
func (s *NodeValueStore) PublicLongAccessor(key string) func(node int) int64 {
	d, ok := s.schema.find(key)
	if !ok || d.Visibility != Public || d.Type != Long {
		return nil
	}
	slot := s.longs[key]
	return func(node int) int64 { return slot.current.Get(node) }
}

// PublicDoubleAccessor returns a node-id-indexed accessor for a declared
// Public Double property.
func (s *NodeValueStore) PublicDoubleAccessor(key string) func(node int) float64 {
	d, ok := s.schema.find(key)
	if !ok || d.Visibility != Public || d.Type != Double {
		return nil
	}
	slot := s.doubles[key]
	return func(node int) float64 { return slot.current.Get(node) }
}
