package boundedqueue

import "sort"

// LongLongPriorityQueue is the pair-keyed counterpart of LongPriorityQueue:
// each held entry carries two element ids (e.g. an edge's source and
// target) alongside one priority.
type LongLongPriorityQueue struct {
	capacity    int
	orientation Orientation
	firsts      []int64
	seconds     []int64
	priorities  []float64
}

// NewLongLongPriorityQueue returns an empty bounded pair queue.
func NewLongLongPriorityQueue(capacity int, orientation Orientation) *LongLongPriorityQueue {
	return &LongLongPriorityQueue{
		capacity:    capacity,
		orientation: orientation,
		firsts:      make([]int64, 0, capacity),
		seconds:     make([]int64, 0, capacity),
		priorities:  make([]float64, 0, capacity),
	}
}

func (q *LongLongPriorityQueue) key(p float64) float64 {
	if q.orientation == Max {
		return -p
	}
	return p
}

// Len returns the number of entries currently held (<= capacity).
func (q *LongLongPriorityQueue) Len() int { return len(q.firsts) }

// Offer proposes (first, second, priority) for inclusion, with the same
// eviction semantics as LongPriorityQueue.Offer.
func (q *LongLongPriorityQueue) Offer(first, second int64, priority float64) bool {
	k := q.key(priority)
	n := len(q.firsts)

	if n == q.capacity {
		if k >= q.priorities[n-1] {
			return false
		}
		q.firsts = q.firsts[:n-1]
		q.seconds = q.seconds[:n-1]
		q.priorities = q.priorities[:n-1]
		n--
	}

	pos := sort.SearchFloat64s(q.priorities, k)
	q.firsts = append(q.firsts, 0)
	q.seconds = append(q.seconds, 0)
	q.priorities = append(q.priorities, 0)
	copy(q.firsts[pos+1:], q.firsts[pos:n])
	copy(q.seconds[pos+1:], q.seconds[pos:n])
	copy(q.priorities[pos+1:], q.priorities[pos:n])
	q.firsts[pos] = first
	q.seconds[pos] = second
	q.priorities[pos] = k
	return true
}

// Firsts returns the first element of each held entry, in priority order.
func (q *LongLongPriorityQueue) Firsts() []int64 {
	out := make([]int64, len(q.firsts))
	copy(out, q.firsts)
	return out
}

// Seconds returns the second element of each held entry, in priority order.
func (q *LongLongPriorityQueue) Seconds() []int64 {
	out := make([]int64, len(q.seconds))
	copy(out, q.seconds)
	return out
}

// Priorities returns the held priorities, sign-restored for Max orientation.
func (q *LongLongPriorityQueue) Priorities() []float64 {
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
