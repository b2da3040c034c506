package boundedqueue_test

import (
	"testing"

	"github.com/vanderheijden86/hugegraph/internal/boundedqueue"
)

func TestBoundedMinPriorityQueueScenario(t *testing.T) {
	q := boundedqueue.NewLongPriorityQueue(3, boundedqueue.Min)

	if !q.Offer(1, 0.9) {
		t.Fatal("offer(1, 0.9) should be accepted (room available)")
	}
	if !q.Offer(2, 0.1) {
		t.Fatal("offer(2, 0.1) should be accepted")
	}
	if !q.Offer(3, 0.5) {
		t.Fatal("offer(3, 0.5) should be accepted")
	}

	wantElems := []int64{2, 3, 1}
	wantPrios := []float64{0.1, 0.5, 0.9}
	assertQueue(t, q, wantElems, wantPrios)

	if !q.Offer(4, 0.3) {
		t.Fatal("offer(4, 0.3) should be accepted, evicting the worst (1, 0.9)")
	}
	assertQueue(t, q, []int64{2, 4, 3}, []float64{0.1, 0.3, 0.5})
}

func assertQueue(t *testing.T, q *boundedqueue.LongPriorityQueue, wantElems []int64, wantPrios []float64) {
	t.Helper()
	gotElems := q.Elements()
	gotPrios := q.Priorities()
	if len(gotElems) != len(wantElems) {
		t.Fatalf("elements = %v, want %v", gotElems, wantElems)
	}
	for i := range wantElems {
		if gotElems[i] != wantElems[i] {
			t.Fatalf("elements = %v, want %v", gotElems, wantElems)
		}
		if gotPrios[i] != wantPrios[i] {
			t.Fatalf("priorities = %v, want %v", gotPrios, wantPrios)
		}
	}
}

func TestBoundedMaxPriorityQueueRejectsWorseThanFull(t *testing.T) {
	q := boundedqueue.NewLongPriorityQueue(2, boundedqueue.Max)
	q.Offer(1, 10)
	q.Offer(2, 20)

	if q.Offer(3, 5) {
		t.Fatal("offer of a worse-than-worst element into a full max-queue should be rejected")
	}
	if !q.Offer(4, 15) {
		t.Fatal("offer of a better-than-worst element should be accepted")
	}

	gotPrios := q.Priorities()
	if gotPrios[0] != 20 || gotPrios[1] != 15 {
		t.Fatalf("priorities = %v, want [20 15]", gotPrios)
	}
}

func TestBoundedQueueContains(t *testing.T) {
	q := boundedqueue.NewLongPriorityQueue(3, boundedqueue.Min)
	q.Offer(7, 1.0)
	if !q.Contains(7) {
		t.Fatal("queue should contain 7")
	}
	if q.Contains(8) {
		t.Fatal("queue should not contain 8")
	}
}

func TestLongLongPriorityQueue(t *testing.T) {
	q := boundedqueue.NewLongLongPriorityQueue(2, boundedqueue.Min)
	q.Offer(0, 1, 5.0)
	q.Offer(1, 2, 1.0)
	q.Offer(2, 3, 9.0) // rejected, worse than current worst (5.0)

	if got := q.Firsts(); len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Fatalf("Firsts() = %v, want [1 0]", got)
	}
	if got := q.Seconds(); len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Fatalf("Seconds() = %v, want [2 1]", got)
	}
}
