package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vanderheijden86/hugegraph/internal/dsu"
	"github.com/vanderheijden86/hugegraph/internal/pagedarray"
)

var (
	benchSize        int
	benchConcurrency int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Micro-benchmark the paged-array and union-find primitives",
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVarP(&benchSize, "size", "n", 1_000_000, "element count")
	benchCmd.Flags().IntVarP(&benchConcurrency, "concurrency", "c", 4, "goroutines for the concurrent benchmarks")
}

func runBench(cmd *cobra.Command, args []string) error {
	fmt.Println(resultStyle.Render(fmt.Sprintf("benchmarking with n=%d, concurrency=%d", benchSize, benchConcurrency)))

	benchSequentialLongArray(benchSize)
	benchAtomicLongArrayContended(benchSize, benchConcurrency)
	benchDSUUnion(benchSize, benchConcurrency)

	return nil
}

func report(name string, n int, d time.Duration) {
	perOp := d / time.Duration(n)
	fmt.Printf("%-28s n=%-10d total=%-12s per-op=%s\n", name, n, d.Round(time.Microsecond), perOp)
}

// benchSequentialLongArray measures plain Set/Get throughput over a
// LongArray, establishing the baseline a paged array pays over a flat
// Go slice of the same size.
func benchSequentialLongArray(n int) {
	a := pagedarray.NewLongArray(n)

	start := time.Now()
	for i := 0; i < n; i++ {
		a.Set(i, int64(i))
	}
	report("LongArray.Set (sequential)", n, time.Since(start))

	start = time.Now()
	var sum int64
	for i := 0; i < n; i++ {
		sum += a.Get(i)
	}
	report("LongArray.Get (sequential)", n, time.Since(start))
	_ = sum
}

// benchAtomicLongArrayContended measures CompareAndSet throughput under
// concurrent writers, each incrementing its own disjoint index range in the
// CAS-loop style used throughout internal/atomics and internal/dsu.
func benchAtomicLongArrayContended(n, concurrency int) {
	a := pagedarray.NewAtomicLongArray(n)

	start := time.Now()
	done := make(chan struct{}, concurrency)
	perWorker := n / concurrency
	for w := 0; w < concurrency; w++ {
		go func(lo int) {
			for i := lo; i < lo+perWorker; i++ {
				for {
					old := a.Get(i)
					if a.CompareAndSet(i, old, old+1) {
						break
					}
				}
			}
			done <- struct{}{}
		}(w * perWorker)
	}
	for w := 0; w < concurrency; w++ {
		<-done
	}
	report("AtomicLongArray.CAS (concurrent)", perWorker*concurrency, time.Since(start))
}

// benchDSUUnion measures union-by-minimum-root throughput when concurrent
// goroutines race to union n random node pairs, the
// access pattern algo/wcc exercises the disjoint-set structure with.
func benchDSUUnion(n, concurrency int) {
	d := dsu.New(n)
	rng := rand.New(rand.NewSource(1))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}

	start := time.Now()
	done := make(chan struct{}, concurrency)
	perWorker := n / concurrency
	for w := 0; w < concurrency; w++ {
		go func(lo int) {
			for i := lo; i < lo+perWorker; i++ {
				d.Union(pairs[i][0], pairs[i][1])
			}
			done <- struct{}{}
		}(w * perWorker)
	}
	for w := 0; w < concurrency; w++ {
		<-done
	}
	report("DisjointSetStruct.Union (concurrent)", perWorker*concurrency, time.Since(start))
}
