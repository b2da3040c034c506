package pagedarray_test

import (
	"sync"
	"testing"

	"github.com/vanderheijden86/hugegraph/internal/pagedarray"
)

func TestAtomicLongArrayConcurrentAdd(t *testing.T) {
	const size = 1000
	const workers = 8
	const perWorker = 1000

	a := pagedarray.NewAtomicLongArray(size)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				a.GetAndAdd(i%size, 1)
			}
		}()
	}
	wg.Wait()

	var sum int64
	for i := 0; i < size; i++ {
		sum += a.Get(i)
	}
	if want := int64(workers * perWorker); sum != want {
		t.Fatalf("sum of atomic adds = %d, want %d", sum, want)
	}
}

func TestAtomicLongArrayCompareAndSet(t *testing.T) {
	a := pagedarray.NewAtomicLongArray(10)
	if !a.CompareAndSet(0, 0, 42) {
		t.Fatal("CompareAndSet should succeed when old value matches")
	}
	if a.CompareAndSet(0, 0, 99) {
		t.Fatal("CompareAndSet should fail when old value no longer matches")
	}
	if got := a.Get(0); got != 42 {
		t.Fatalf("Get(0) = %d, want 42", got)
	}
}

func TestAtomicLongArrayGetAndSet(t *testing.T) {
	a := pagedarray.NewAtomicLongArray(10)
	a.Set(3, 7)
	if prev := a.GetAndSet(3, 21); prev != 7 {
		t.Fatalf("GetAndSet returned %d, want 7", prev)
	}
	if got := a.Get(3); got != 21 {
		t.Fatalf("Get(3) = %d, want 21", got)
	}
}
