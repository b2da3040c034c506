// Command huged is the CLI driver for the hugegraph core: it builds a
// synthetic input graph, runs one named algorithm over it, and prints a
// short summary of the result, optionally re-running whenever a watched
// file changes. Grounded on the three-entry-point shape
// of cmd/bv, cmd/bw, cmd/b9s, collapsed into one cobra-driven binary the
// way junjiewwang-perf-analysis's cmd/cli structures its own analyze/serve
// subcommands.
package main

import "github.com/vanderheijden86/hugegraph/cmd/huged/cmd"

func main() {
	cmd.Execute()
}
