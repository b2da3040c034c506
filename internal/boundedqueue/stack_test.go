package boundedqueue_test

import (
	"testing"

	"github.com/vanderheijden86/hugegraph/internal/boundedqueue"
)

func TestLongArrayStackPushPop(t *testing.T) {
	s := boundedqueue.NewLongArrayStack(3)
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if s.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}
	if got := s.Pop(); got != 3 {
		t.Fatalf("Pop() = %d, want 3", got)
	}
	if got := s.Peek(); got != 2 {
		t.Fatalf("Peek() = %d, want 2", got)
	}
}

func TestLongArrayStackCapacityExceeded(t *testing.T) {
	s := boundedqueue.NewLongArrayStack(1)
	s.Push(1)
	defer func() {
		if r := recover(); r != boundedqueue.ErrCapacityExceeded {
			t.Fatalf("expected panic ErrCapacityExceeded, got %v", r)
		}
	}()
	s.Push(2)
}

func TestLongArrayStackEmptyUnderflow(t *testing.T) {
	s := boundedqueue.NewLongArrayStack(1)
	defer func() {
		if r := recover(); r != boundedqueue.ErrEmptyUnderflow {
			t.Fatalf("expected panic ErrEmptyUnderflow, got %v", r)
		}
	}()
	s.Pop()
}

func TestLongArrayStackPopAllMostRecentFirst(t *testing.T) {
	s := boundedqueue.NewLongArrayStack(5)
	s.PushAll([]int64{1, 2, 3, 4, 5})
	got := s.PopAll(3)
	want := []int64{5, 4, 3}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("PopAll(3) = %v, want %v", got, want)
		}
	}
	if s.Size() != 2 {
		t.Fatalf("Size() after PopAll = %d, want 2", s.Size())
	}
}

func TestLongArrayStackDrainEqualsPopAllSize(t *testing.T) {
	s := boundedqueue.NewLongArrayStack(4)
	s.PushAll([]int64{10, 20, 30})
	got := s.Drain()
	want := []int64{30, 20, 10}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("Drain() = %v, want %v", got, want)
		}
	}
	if !s.IsEmpty() {
		t.Fatal("stack should be empty after Drain")
	}
}

func TestDoubleArrayStackBasics(t *testing.T) {
	s := boundedqueue.NewDoubleArrayStack(2)
	s.Push(1.5)
	s.Push(2.5)
	if got := s.Pop(); got != 2.5 {
		t.Fatalf("Pop() = %v, want 2.5", got)
	}
	s.Clear()
	if !s.IsEmpty() {
		t.Fatal("stack should be empty after Clear")
	}
}
