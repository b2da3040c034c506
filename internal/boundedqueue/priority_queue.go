// Package boundedqueue provides fixed-capacity top-K priority queues and
// huge-array-backed LIFO stacks, grounded on rust-gds's
// core/utils/queue/bounded_long_priority_queue.rs and
// core/utils/paged/huge_long_array_stack.rs.
package boundedqueue

import "sort"

// Orientation selects whether a bounded queue keeps the smallest (Min) or
// largest (Max) k priorities offered to it.
type Orientation int

const (
	Min Orientation = iota
	Max
)

// LongPriorityQueue keeps the best k (element, priority) pairs offered to
// it, sorted by priority. For Min orientation, lower priorities are
// preferred; Max is modeled internally as Min over negated priorities.
type LongPriorityQueue struct {
	capacity    int
	orientation Orientation
	elements    []int64
	priorities  []float64
}

// NewLongPriorityQueue returns an empty bounded queue with the given
// capacity and orientation.
func NewLongPriorityQueue(capacity int, orientation Orientation) *LongPriorityQueue {
	return &LongPriorityQueue{
		capacity:    capacity,
		orientation: orientation,
		elements:    make([]int64, 0, capacity),
		priorities:  make([]float64, 0, capacity),
	}
}

func (q *LongPriorityQueue) key(p float64) float64 {
	if q.orientation == Max {
		return -p
	}
	return p
}

// Len returns the number of elements currently held (<= capacity).
func (q *LongPriorityQueue) Len() int { return len(q.elements) }

// Offer proposes (element, priority) for inclusion. It returns true if the
// element was accepted (the queue had room, or priority beat the current
// worst held element). Accepting when the queue is full evicts the worst
// element in O(k) via a single shift.
func (q *LongPriorityQueue) Offer(element int64, priority float64) bool {
	k := q.key(priority)
	n := len(q.elements)

	if n == q.capacity {
		if k >= q.priorities[n-1] {
			return false
		}
		q.elements = q.elements[:n-1]
		q.priorities = q.priorities[:n-1]
		n--
	}

	pos := sort.SearchFloat64s(q.priorities, k)
	q.elements = append(q.elements, 0)
	q.priorities = append(q.priorities, 0)
	copy(q.elements[pos+1:], q.elements[pos:n])
	copy(q.priorities[pos+1:], q.priorities[pos:n])
	q.elements[pos] = element
	q.priorities[pos] = k
	return true
}

// Contains reports whether element is currently held.
func (q *LongPriorityQueue) Contains(element int64) bool {
	for _, e := range q.elements {
		if e == element {
			return true
		}
	}
	return false
}

// UpdateElementAt replaces the priority of the element currently at
// position idx (in sorted order) and re-sorts it into place — used by
// algorithms like Yen's K-shortest-paths that update a candidate in place.
func (q *LongPriorityQueue) UpdateElementAt(idx int, newPriority float64) {
	element := q.elements[idx]
	q.elements = append(q.elements[:idx], q.elements[idx+1:]...)
	q.priorities = append(q.priorities[:idx], q.priorities[idx+1:]...)
	q.Offer(element, newPriority)
}

// Elements returns the held elements in priority order (best first).
func (q *LongPriorityQueue) Elements() []int64 {
	out := make([]int64, len(q.elements))
	copy(out, q.elements)
	return out
}

// Priorities returns the held priorities in the same order as Elements,
// restoring the original sign for Max orientation.
func (q *LongPriorityQueue) Priorities() []float64 {
	out := make([]float64, len(q.priorities))
	for i, p := range q.priorities {
		if q.orientation == Max {
			out[i] = -p
		} else {
			out[i] = p
		}
	}
	return out
}
