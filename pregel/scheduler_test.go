package pregel

import (
	"context"
	"testing"
	"time"

	"github.com/vanderheijden86/hugegraph/graph"
)

// haltImmediately is a Computation whose every node votes to halt on its
// very first call and never sends a message; a Run over it must converge
// after exactly one superstep.
type haltImmediately struct{}

func (haltImmediately) Schema() Schema { return nil }

func (haltImmediately) Compute(ctx *ComputeContext) {
	ctx.VoteToHalt()
}

func buildCycle(n int) graph.Graph {
	b := graph.NewBuilder(n, true)
	for i := 0; i < n; i++ {
		b.AddEdge(i, (i+1)%n)
	}
	return b.Build()
}

func TestRunConvergesAfterOneSuperstepWithNoMessages(t *testing.T) {
	g := buildCycle(5)
	res := Run(context.Background(), g, haltImmediately{}, Config{MaxIterations: 100, Concurrency: 2}, nil)
	if res.Status != Converged {
		t.Fatalf("status = %v, want Converged", res.Status)
	}
	if res.Iterations != 1 {
		t.Fatalf("iterations = %d, want 1", res.Iterations)
	}
}

// echoOnce declares a Long scratch property, starts every node at 0, and on
// superstep 0 sends its id to all neighbors, then votes to halt. A node
// that receives a message resumes (vote-to-halt is cleared) and records
// the sum of its received messages into the property before halting again.
type echoOnce struct{}

func (echoOnce) Schema() Schema {
	return Schema{{Name: "sum", Type: Long, Visibility: Public}}
}

func (echoOnce) Compute(ctx *ComputeContext) {
	if ctx.Iteration() == 0 {
		ctx.SendToNeighbors(float64(ctx.NodeID))
		ctx.VoteToHalt()
		return
	}
	var sum int64
	for _, m := range ctx.Messages() {
		sum += int64(m)
	}
	ctx.SetNodeValueLong("sum", ctx.NodeValueLong("sum")+sum)
	ctx.VoteToHalt()
}

func TestRunDeliversMessagesExactlyOnceNextSuperstep(t *testing.T) {
	g := buildCycle(4)
	res := Run(context.Background(), g, echoOnce{}, Config{MaxIterations: 100, Concurrency: 2}, nil)
	if res.Status != Converged {
		t.Fatalf("status = %v, want Converged", res.Status)
	}
	if res.Iterations != 2 {
		t.Fatalf("iterations = %d, want 2 (send step + receive step)", res.Iterations)
	}
	get := res.Values.PublicLongAccessor("sum")
	for n := 0; n < 4; n++ {
		prev := (n + 4 - 1) % 4
		if got, want := get(n), int64(prev); got != want {
			t.Errorf("node %d sum = %d, want %d (from predecessor %d)", n, got, want, prev)
		}
	}
}

// countingToMax runs until iteration reaches a fixed bound without ever
// voting to halt, to exercise MaxIterationsReached.
type countingToMax struct{}

func (countingToMax) Schema() Schema { return nil }
func (countingToMax) Compute(ctx *ComputeContext) {
	ctx.SendTo(ctx.NodeID, 1) // keep itself active forever
}

func TestRunStopsExactlyAtMaxIterations(t *testing.T) {
	g := buildCycle(3)
	res := Run(context.Background(), g, countingToMax{}, Config{MaxIterations: 7, Concurrency: 3}, nil)
	if res.Status != MaxIterationsReached {
		t.Fatalf("status = %v, want MaxIterationsReached", res.Status)
	}
	if res.Iterations != 7 {
		t.Fatalf("iterations = %d, want 7", res.Iterations)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	g := buildCycle(1000)
	flag := &TerminationFlag{}
	flag.Cancel()
	res := Run(context.Background(), g, countingToMax{}, Config{MaxIterations: 1000, Concurrency: 4}, flag)
	if res.Status != Cancelled {
		t.Fatalf("status = %v, want Cancelled", res.Status)
	}
}

func TestRunAsynchronousDeliversWithoutSwap(t *testing.T) {
	g := buildCycle(4)
	res := Run(context.Background(), g, echoOnce{}, Config{MaxIterations: 100, Concurrency: 2, Asynchronous: true}, nil)
	if res.Status != Converged {
		t.Fatalf("status = %v, want Converged", res.Status)
	}
}

func TestRunDegreePartitioningMatchesRangeResult(t *testing.T) {
	g := buildCycle(4)
	res := Run(context.Background(), g, echoOnce{}, Config{MaxIterations: 100, Concurrency: 2, Partitioning: Degree}, nil)
	get := res.Values.PublicLongAccessor("sum")
	for n := 0; n < 4; n++ {
		prev := (n + 4 - 1) % 4
		if got, want := get(n), int64(prev); got != want {
			t.Errorf("node %d sum = %d, want %d", n, got, want)
		}
	}
}

func TestRunDeadlineRespected(t *testing.T) {
	g := buildCycle(100)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	res := Run(ctx, g, countingToMax{}, Config{MaxIterations: 1 << 30, Concurrency: 4}, nil)
	if res.Status == Converged {
		t.Fatalf("status = Converged, want a non-converged stop from context deadline")
	}
}
