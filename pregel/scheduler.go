package pregel

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/hugegraph/graph"
	"github.com/vanderheijden86/hugegraph/internal/atomics"
	"github.com/vanderheijden86/hugegraph/internal/telemetry"
)

// Computation is the algorithm contract a Pregel run executes: a property
// schema fixing the value store's layout, and a per-(node,superstep)
// vertex function.
type Computation interface {
	Schema() Schema
	Compute(ctx *ComputeContext)
}

// Config controls one Run of a Computation over a Graph.
type Config struct {
	MaxIterations int
	Concurrency   int
	Partitioning  Partitioning
	Asynchronous  bool
	TrackSender   bool
	Reducer       Reducer
}

// Status classifies how a Run ended.
type Status int

const (
	Converged Status = iota
	Cancelled
	MaxIterationsReached
	PanicInWorker
	InvalidSchema
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Cancelled:
		return "cancelled"
	case MaxIterationsReached:
		return "max_iterations_reached"
	case PanicInWorker:
		return "panic_in_worker"
	case InvalidSchema:
		return "invalid_schema"
	default:
		return "unknown"
	}
}

// Result is what a Run returns: how it ended, how many supersteps ran, and
// the value store holding the computation's output properties.
type Result struct {
	Status     Status
	Iterations int
	Values     *NodeValueStore
	Err        error
}

// TerminationFlag is a run-scoped cancellation switch. Setting it causes
// the scheduler to stop dispatching new partition tasks and to stop
// in-flight partition loops at their next cancellation check (every
// pageCheckInterval node ids).
type TerminationFlag struct {
	flag atomic.Bool
}

// Cancel requests the run stop as soon as possible.
func (f *TerminationFlag) Cancel() { f.flag.Store(true) }

// Cancelled reports whether Cancel has been called.
func (f *TerminationFlag) Cancelled() bool { return f.flag.Load() }

// Run executes comp over g under cfg until every node votes to halt, no
// messages remain pending, MaxIterations supersteps have run, or flag is
// cancelled. flag may be nil.
func Run(ctx context.Context, g graph.Graph, comp Computation, cfg Config, flag *TerminationFlag) Result {
	if flag == nil {
		flag = &TerminationFlag{}
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.MaxIterations < 1 {
		cfg.MaxIterations = 1
	}

	nodeCount := g.NodeCount()
	values := NewNodeValueStore(comp.Schema(), nodeCount, !cfg.Asynchronous)
	messenger := NewMessenger(nodeCount, !cfg.Asynchronous, cfg.Reducer)
	voteToHalt := atomics.NewBitSet(nodeCount)

	partitioning := cfg.Partitioning
	parts := computePartitions(g, partitioning, cfg.Concurrency)

	iteration := 0
	status := MaxIterationsReached

	for iteration < cfg.MaxIterations {
		if flag.Cancelled() {
			status = Cancelled
			break
		}

		start := time.Now()
		durations := make([]time.Duration, len(parts))
		err := runSuperstep(ctx, g, comp, values, messenger, voteToHalt, iteration, parts, flag, durations)
		telemetry.Debugf("pregel: superstep %d over %d partitions took %s", iteration, len(parts), time.Since(start))

		if err != nil {
			if ctx.Err() != nil {
				return Result{Status: Cancelled, Iterations: iteration, Values: values, Err: err}
			}
			return Result{Status: PanicInWorker, Iterations: iteration, Values: values, Err: err}
		}

		messenger.Swap()
		values.Swap()
		iteration++

		if flag.Cancelled() {
			status = Cancelled
			break
		}

		converged := voteToHalt.Cardinality() == nodeCount && messenger.PendingCount() == 0
		if converged {
			status = Converged
			break
		}

		if partitioning == Auto {
			parts = maybeRebalance(g, parts, durations, cfg.Concurrency)
		}
	}

	var err error
	if status == Cancelled {
		err = fmt.Errorf("%w at iteration %d", ErrScheduleCancelled, iteration)
	}
	return Result{Status: status, Iterations: iteration, Values: values, Err: err}
}

func computePartitions(g graph.Graph, partitioning Partitioning, concurrency int) []Partition {
	switch partitioning {
	case Degree:
		return degreePartition(g, concurrency)
	default:
		return rangePartition(g.NodeCount(), concurrency)
	}
}

// maybeRebalance switches Auto mode from range to degree partitioning once
// the slowest partition's duration exceeds autoImbalanceThreshold times the
// fastest — a skewed degree distribution under range partitioning shows up
// as exactly this symptom.
func maybeRebalance(g graph.Graph, parts []Partition, durations []time.Duration, concurrency int) []Partition {
	if len(durations) < 2 {
		return parts
	}
	min, max := durations[0], durations[0]
	for _, d := range durations[1:] {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	if min <= 0 || float64(max)/float64(min) < autoImbalanceThreshold {
		return parts
	}
	return degreePartition(g, concurrency)
}

// runSuperstep dispatches one partition-task per partition, each walking
// its node range and invoking comp.Compute for every node that has a
// pending message or hasn't voted to halt. A panic inside any partition
// task is recovered and surfaced as the superstep's error.
func runSuperstep(
	ctx context.Context,
	g graph.Graph,
	comp Computation,
	values *NodeValueStore,
	messenger *Messenger,
	voteToHalt *atomics.BitSet,
	iteration int,
	parts []Partition,
	flag *TerminationFlag,
	durations []time.Duration,
) error {
	group, gctx := errgroup.WithContext(ctx)

	for i, part := range parts {
		i, part := i, part
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("pregel: panic in partition %d: %v", i, r)
				}
			}()

			started := time.Now()
			defer func() { durations[i] = time.Since(started) }()

			computeCtx := &ComputeContext{
				g:          g,
				values:     values,
				messenger:  messenger,
				voteToHalt: voteToHalt,
				iteration:  iteration,
			}

			for n := part.Start; n < part.End(); n++ {
				if n == part.Start || n%pageCheckInterval == 0 {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
					if flag.Cancelled() {
						return nil
					}
				}

				active := iteration == 0 || messenger.HasMessage(n) || !voteToHalt.Get(n)
				if !active {
					continue
				}

				computeCtx.NodeID = n
				comp.Compute(computeCtx)
			}
			return nil
		})
	}

	return group.Wait()
}

// pageCheckInterval bounds how many nodes a partition processes between
// cancellation checks, keeping Cancel latency low without paying the
// atomic-load cost per node.
const pageCheckInterval = 4096
