package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/vanderheijden86/hugegraph/algo/bridges"
	"github.com/vanderheijden86/hugegraph/algo/dfs"
	"github.com/vanderheijden86/hugegraph/algo/harmonic"
	"github.com/vanderheijden86/hugegraph/algo/hits"
	"github.com/vanderheijden86/hugegraph/algo/kcore"
	"github.com/vanderheijden86/hugegraph/algo/labelprop"
	"github.com/vanderheijden86/hugegraph/algo/louvain"
	"github.com/vanderheijden86/hugegraph/algo/pagerank"
	"github.com/vanderheijden86/hugegraph/algo/trianglecount"
	"github.com/vanderheijden86/hugegraph/algo/wcc"
	"github.com/vanderheijden86/hugegraph/config"
	"github.com/vanderheijden86/hugegraph/graph"
	"github.com/vanderheijden86/hugegraph/internal/testutil"
	"github.com/vanderheijden86/hugegraph/pregel"
)

var (
	runAlgorithm    string
	runTopology     string
	runSize         int
	runConcurrency  int
	runMaxIter      int
	runPartitioning string
	runWatch        string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build a synthetic graph and run one algorithm over it",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runAlgorithm, "algorithm", "a", "pagerank",
		"algorithm to run: pagerank, wcc, louvain, trianglecount, kcore, hits, labelprop, harmonic, dfs, bridges")
	runCmd.Flags().StringVarP(&runTopology, "topology", "t", "cycle",
		"synthetic graph topology: cycle, path, clique, star, two-component, random")
	runCmd.Flags().IntVarP(&runSize, "size", "n", 16, "node count of the synthetic graph")
	runCmd.Flags().IntVarP(&runConcurrency, "concurrency", "c", 4, "scheduler concurrency")
	runCmd.Flags().IntVar(&runMaxIter, "max-iterations", 100, "maximum Pregel supersteps")
	runCmd.Flags().StringVar(&runPartitioning, "partitioning", "range", "range, degree, or auto")
	runCmd.Flags().StringVar(&runWatch, "watch", "", "re-run whenever this file changes")
}

func buildGraph(topology string, size int) (graph.Graph, error) {
	switch topology {
	case "cycle":
		return testutil.CycleGraph(size), nil
	case "path":
		return testutil.PathGraph(size), nil
	case "clique":
		return testutil.CliqueGraph(size), nil
	case "star":
		return testutil.StarGraph(size - 1), nil
	case "two-component":
		return testutil.TwoComponentGraph(size/2, size-size/2), nil
	case "random":
		return testutil.RandomGraph(size, 0.2, 1), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", topology)
	}
}

var resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

func runRun(cmd *cobra.Command, args []string) error {
	execute := func() error {
		g, err := buildGraph(runTopology, runSize)
		if err != nil {
			return err
		}

		cfg := config.RunConfig{
			MaxIterations: runMaxIter,
			Concurrency:   runConcurrency,
			Partitioning:  runPartitioning,
		}.SchedulerConfig()

		return runAlgorithmOn(g, cfg)
	}

	if runWatch == "" {
		return execute()
	}
	return watchAndRun(runWatch, execute)
}

func runAlgorithmOn(g graph.Graph, cfg pregel.Config) error {
	switch runAlgorithm {
	case "pagerank":
		comp := pagerank.New(pagerank.Config{DampingFactor: 0.85, Tolerance: 1e-6, NodeCount: g.NodeCount()})
		res := pregel.Run(context.Background(), g, comp, cfg, nil)
		printSchedulerResult(res)
	case "trianglecount":
		comp := trianglecount.New()
		res := pregel.Run(context.Background(), g, comp, cfg, nil)
		printSchedulerResult(res)
		fmt.Println(resultStyle.Render(fmt.Sprintf("global triangles: %d", trianglecount.Global(res.Values, g.NodeCount()))))
	case "labelprop":
		comp := labelprop.New()
		res := pregel.Run(context.Background(), g, comp, cfg, nil)
		printSchedulerResult(res)
	case "wcc":
		components := wcc.Run(g, cfg.Concurrency, nil)
		fmt.Println(resultStyle.Render(fmt.Sprintf("components: %d", components.Count())))
	case "louvain":
		res := louvain.Run(g, louvain.Config{})
		fmt.Println(resultStyle.Render(fmt.Sprintf("levels: %d, modularity: %.4f", res.Levels, res.Modularity)))
	case "kcore":
		cores := kcore.Compute(g)
		fmt.Println(resultStyle.Render(fmt.Sprintf("computed core numbers for %d nodes", len(cores))))
	case "hits":
		res := hits.Compute(hits.FromGraph(g), 1e-6, 100)
		fmt.Println(resultStyle.Render(fmt.Sprintf("hits converged=%v in %d iterations", res.Converged, res.Iterations)))
	case "harmonic":
		values := harmonic.Compute(g, cfg.Concurrency)
		fmt.Println(resultStyle.Render(fmt.Sprintf("computed harmonic centrality for %d nodes", len(values))))
	case "dfs":
		res := dfs.Run(g, 0, -1)
		fmt.Println(resultStyle.Render(fmt.Sprintf("visited %d nodes from source 0", countVisited(res.DiscoveryOrder))))
	case "bridges":
		res := bridges.Compute(g)
		fmt.Println(resultStyle.Render(fmt.Sprintf("found %d bridge edges", len(res.Bridges))))
	default:
		return fmt.Errorf("unknown algorithm %q", runAlgorithm)
	}
	return nil
}

func countVisited(discoveryOrder []int) int {
	n := 0
	for _, d := range discoveryOrder {
		if d != -1 {
			n++
		}
	}
	return n
}

func printSchedulerResult(res pregel.Result) {
	fmt.Println(resultStyle.Render(fmt.Sprintf("status=%s iterations=%d", res.Status, res.Iterations)))
}

// watchAndRun runs fn immediately, then again every time path changes on
// disk, debounced the way pkg/watcher/watcher.go debounces fsnotify events.
func watchAndRun(path string, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	const debounce = 200 * time.Millisecond
	var timer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				if err := fn(); err != nil {
					fmt.Println("rerun failed:", err)
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println("watch error:", err)
		}
	}
}
