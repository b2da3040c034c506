// Package telemetry provides conditional debug logging for hugegraph.
//
// Debug logging is enabled by setting the HUGEGRAPH_DEBUG environment
// variable:
//
//	HUGEGRAPH_DEBUG=1 huged run --algorithm pagerank
//
// When enabled, messages are written to stderr with microsecond timestamps.
// When disabled (default), all functions are no-ops with zero overhead.
package telemetry

import (
	"log"
	"os"
	"time"
)

var (
	enabled bool
	logger  *log.Logger
)

func init() {
	if os.Getenv("HUGEGRAPH_DEBUG") != "" {
		enabled = true
		logger = log.New(os.Stderr, "[hugegraph] ", log.Ltime|log.Lmicroseconds)
	}
}

// Enabled reports whether debug logging is turned on.
func Enabled() bool { return enabled }

// SetEnabled allows programmatic control, for tests and the CLI's --verbose
// flag.
func SetEnabled(e bool) {
	enabled = e
	if e && logger == nil {
		logger = log.New(os.Stderr, "[hugegraph] ", log.Ltime|log.Lmicroseconds)
	}
}

// Debugf writes a printf-style debug message if logging is enabled.
func Debugf(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// Timing writes a named duration if logging is enabled.
func Timing(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Printf("%s took %v", name, d)
}

// Trace logs function entry and returns a closure that logs exit with
// elapsed time; call it with defer.
func Trace(name string) func() {
	if !enabled {
		return func() {}
	}
	logger.Printf("-> %s", name)
	start := time.Now()
	return func() {
		logger.Printf("<- %s (%v)", name, time.Since(start))
	}
}
