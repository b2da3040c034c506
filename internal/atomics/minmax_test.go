package atomics_test

import (
	"sync"
	"testing"

	"github.com/vanderheijden86/hugegraph/internal/atomics"
)

func TestAtomicMinSequential(t *testing.T) {
	m := atomics.NewAtomicMin()
	m.Update(10)
	m.Update(5)
	m.Update(7)
	if got := m.Get(); got != 5 {
		t.Fatalf("Get() = %d, want 5", got)
	}
}

func TestAtomicMinConcurrent(t *testing.T) {
	const workers = 16
	m := atomics.NewAtomicMinWithInit(1000)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(v int64) {
			defer wg.Done()
			m.Update(v)
		}(int64(i))
	}
	wg.Wait()
	if got := m.Get(); got != 0 {
		t.Fatalf("Get() = %d, want 0", got)
	}
}

func TestAtomicMaxConcurrent(t *testing.T) {
	const workers = 16
	m := atomics.NewAtomicMaxWithInit(-1000)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(v int64) {
			defer wg.Done()
			m.Update(v)
		}(int64(i))
	}
	wg.Wait()
	if got := m.Get(); got != workers-1 {
		t.Fatalf("Get() = %d, want %d", got, workers-1)
	}
}
