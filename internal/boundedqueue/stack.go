package boundedqueue

import (
	"errors"

	"github.com/vanderheijden86/hugegraph/internal/pagedarray"
)

// ErrCapacityExceeded is returned when a push would exceed a stack's fixed
// capacity.
var ErrCapacityExceeded = errors.New("boundedqueue: capacity exceeded")

// ErrEmptyUnderflow is returned by Pop/Peek on an empty stack.
var ErrEmptyUnderflow = errors.New("boundedqueue: empty stack underflow")

// LongArrayStack is a fixed-capacity LIFO stack of int64 backed by a paged
// huge array.
type LongArrayStack struct {
	data     *pagedarray.LongArray
	size     int
	capacity int
}

// NewLongArrayStack allocates a stack with room for capacity elements.
func NewLongArrayStack(capacity int) *LongArrayStack {
	return &LongArrayStack{
		data:     pagedarray.NewLongArray(capacity),
		capacity: capacity,
	}
}

// Size returns the number of elements currently on the stack.
func (s *LongArrayStack) Size() int { return s.size }

// IsEmpty reports whether the stack holds no elements.
func (s *LongArrayStack) IsEmpty() bool { return s.size == 0 }

// Push adds v to the top of the stack. It panics with ErrCapacityExceeded
// if the stack is already full — pushing beyond capacity is a programming
// error, not a recoverable condition, per spec.
func (s *LongArrayStack) Push(v int64) {
	if s.size >= s.capacity {
		panic(ErrCapacityExceeded)
	}
	s.data.Set(s.size, v)
	s.size++
}

// Pop removes and returns the top element. It panics with ErrEmptyUnderflow
// if the stack is empty.
func (s *LongArrayStack) Pop() int64 {
	if s.size == 0 {
		panic(ErrEmptyUnderflow)
	}
	s.size--
	return s.data.Get(s.size)
}

// Peek returns the top element without removing it.
func (s *LongArrayStack) Peek() int64 {
	if s.size == 0 {
		panic(ErrEmptyUnderflow)
	}
	return s.data.Get(s.size - 1)
}

// Clear empties the stack without releasing its backing storage.
func (s *LongArrayStack) Clear() { s.size = 0 }

// ToSlice returns the stack's contents bottom-to-top.
func (s *LongArrayStack) ToSlice() []int64 {
	out := make([]int64, s.size)
	for i := 0; i < s.size; i++ {
		out[i] = s.data.Get(i)
	}
	return out
}

// PushAll pushes each value in vs, in order.
func (s *LongArrayStack) PushAll(vs []int64) {
	for _, v := range vs {
		s.Push(v)
	}
}

// PopAll pops up to n elements, most-recent-first.
func (s *LongArrayStack) PopAll(n int) []int64 {
	if n > s.size {
		n = s.size
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = s.Pop()
	}
	return out
}

// Drain pops every element, most-recent-first.
func (s *LongArrayStack) Drain() []int64 {
	return s.PopAll(s.size)
}

// DoubleArrayStack is a fixed-capacity LIFO stack of float64 backed by a
// paged huge array.
type DoubleArrayStack struct {
	data     *pagedarray.DoubleArray
	size     int
	capacity int
}

// NewDoubleArrayStack allocates a stack with room for capacity elements.
func NewDoubleArrayStack(capacity int) *DoubleArrayStack {
	return &DoubleArrayStack{
		data:     pagedarray.NewDoubleArray(capacity),
		capacity: capacity,
	}
}

// Size returns the number of elements currently on the stack.
func (s *DoubleArrayStack) Size() int { return s.size }

// IsEmpty reports whether the stack holds no elements.
func (s *DoubleArrayStack) IsEmpty() bool { return s.size == 0 }

// Push adds v to the top of the stack.
func (s *DoubleArrayStack) Push(v float64) {
	if s.size >= s.capacity {
		panic(ErrCapacityExceeded)
	}
	s.data.Set(s.size, v)
	s.size++
}

// Pop removes and returns the top element.
func (s *DoubleArrayStack) Pop() float64 {
	if s.size == 0 {
		panic(ErrEmptyUnderflow)
	}
	s.size--
	return s.data.Get(s.size)
}

// Peek returns the top element without removing it.
func (s *DoubleArrayStack) Peek() float64 {
	if s.size == 0 {
		panic(ErrEmptyUnderflow)
	}
	return s.data.Get(s.size - 1)
}

// Clear empties the stack without releasing its backing storage.
func (s *DoubleArrayStack) Clear() { s.size = 0 }

// ToSlice returns the stack's contents bottom-to-top.
func (s *DoubleArrayStack) ToSlice() []float64 {
	out := make([]float64, s.size)
	for i := 0; i < s.size; i++ {
		out[i] = s.data.Get(i)
	}
	return out
}

// PushAll pushes each value in vs, in order.
func (s *DoubleArrayStack) PushAll(vs []float64) {
	for _, v := range vs {
		s.Push(v)
	}
}

// PopAll pops up to n elements, most-recent-first.
func (s *DoubleArrayStack) PopAll(n int) []float64 {
	if n > s.size {
		n = s.size
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = s.Pop()
	}
	return out
}

// Drain pops every element, most-recent-first.
func (s *DoubleArrayStack) Drain() []float64 {
	return s.PopAll(s.size)
}
