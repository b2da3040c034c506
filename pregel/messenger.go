package pregel

import "sync"

// Reducer is an optional associative-commutative merge function an
// algorithm may declare over its message payload (sum, min, max, ...).
// When present, SendTo folds each payload into the target's single queued
// value under that target's lock stripe, collapsing messages to one value
// per (target, step). Messages() then delivers the reduced value as the
// sole element of that target's message list.
type Reducer func(a, b float64) float64

const lockStripes = 256

// Messenger is the per-node message-passing substrate between supersteps.
// Synchronous mode double-buffers: Send appends to the "next" queue, and
// Swap (called once per barrier) promotes next into the queue Messages
// reads. Asynchronous mode has a single queue appended and drained
// concurrently.
type Messenger struct {
	nodeCount int
	sync      bool
	reducer   Reducer

	locks []sync.Mutex

	// Synchronous mode.
	qIn, qNext [][]float64
	reducedNext []bool // whether qNext[i] holds a single reduced value

	// Asynchronous mode: a single queue, appended under the same striped
	// locks and drained in place (no swap).
	qAsync [][]float64
}

// NewMessenger allocates a Messenger for nodeCount nodes. reducer may be
// nil.
func NewMessenger(nodeCount int, synchronous bool, reducer Reducer) *Messenger {
	m := &Messenger{
		nodeCount: nodeCount,
		sync:      synchronous,
		reducer:   reducer,
		locks:     make([]sync.Mutex, lockStripes),
	}
	if synchronous {
		m.qIn = make([][]float64, nodeCount)
		m.qNext = make([][]float64, nodeCount)
		m.reducedNext = make([]bool, nodeCount)
	} else {
		m.qAsync = make([][]float64, nodeCount)
	}
	return m
}

func (m *Messenger) stripe(target int) *sync.Mutex {
	return &m.locks[target%len(m.locks)]
}

// SendTo enqueues payload for target, to be observed by target's compute
// function in the next superstep (synchronous) or at some later point in
// asynchronous mode.
func (m *Messenger) SendTo(target int, payload float64) {
	lock := m.stripe(target)
	lock.Lock()
	defer lock.Unlock()

	if m.sync {
		if m.reducer != nil {
			if len(m.qNext[target]) == 0 {
				m.qNext[target] = []float64{payload}
				m.reducedNext[target] = true
			} else {
				m.qNext[target][0] = m.reducer(m.qNext[target][0], payload)
			}
		} else {
			m.qNext[target] = append(m.qNext[target], payload)
		}
	} else {
		if m.reducer != nil && len(m.qAsync[target]) > 0 {
			m.qAsync[target][0] = m.reducer(m.qAsync[target][0], payload)
		} else {
			m.qAsync[target] = append(m.qAsync[target], payload)
		}
	}
}

// Messages returns the payloads delivered to node for the current
// superstep. Synchronous mode reads qIn (filled by the prior barrier's
// Swap); asynchronous mode reads and drains qAsync directly.
func (m *Messenger) Messages(node int) []float64 {
	if m.sync {
		return m.qIn[node]
	}
	lock := m.stripe(node)
	lock.Lock()
	defer lock.Unlock()
	msgs := m.qAsync[node]
	m.qAsync[node] = nil
	return msgs
}

// HasMessage reports whether node has at least one message waiting,
// without draining it.
func (m *Messenger) HasMessage(node int) bool {
	if m.sync {
		return len(m.qIn[node]) > 0
	}
	lock := m.stripe(node)
	lock.Lock()
	defer lock.Unlock()
	return len(m.qAsync[node]) > 0
}

// Swap promotes qNext into qIn and clears qNext, the barrier operation for
// synchronous mode. It is a no-op in asynchronous mode.
func (m *Messenger) Swap() {
	if !m.sync {
		return
	}
	m.qIn, m.qNext = m.qNext, m.qIn
	for i := range m.qNext {
		m.qNext[i] = nil
		m.reducedNext[i] = false
	}
}

// PendingCount returns the total number of messages currently queued for
// the next superstep (synchronous) or outstanding (asynchronous) — used by
// the scheduler's termination check.
func (m *Messenger) PendingCount() int64 {
	var n int64
	if m.sync {
		for _, q := range m.qIn {
			n += int64(len(q))
		}
	} else {
		for _, q := range m.qAsync {
			n += int64(len(q))
		}
	}
	return n
}
