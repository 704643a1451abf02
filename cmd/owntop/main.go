// Command owntop runs a synthetic ownership workload and inspects it
// through a live registry: families created, cloned, weakly observed,
// locked, and dropped across goroutines, with every allocation charged to
// a tracking allocator.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ownkit/ownkit/alloc"
	"github.com/ownkit/ownkit/own"
	"github.com/ownkit/ownkit/registry"
)

func main() {
	var (
		workers     = flag.Int("workers", 4, "Concurrent workload goroutines")
		churn       = flag.Duration("churn", 5*time.Millisecond, "Delay between workload steps")
		duration    = flag.Duration("duration", 3*time.Second, "How long to run (headless mode)")
		trace       = flag.Bool("trace", false, "Log every lifecycle event (headless mode)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	table := registry.NewTable()
	tracking := alloc.NewTracking()
	own.SetTracker(table)

	if *interactive {
		if err := runInteractive(table, tracking, *workers, *churn); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(table, tracking, *workers, *churn, *duration, *trace); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(table *registry.Table, tracking *alloc.Tracking, workers int, churn, duration time.Duration, trace bool) error {
	if trace {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer logger.Sync()
		own.SetLogger(logger)
		table.Subscribe(registry.NewZapObserver(logger))
	}

	w := newWorkload(tracking, workers, churn)
	w.start()

	deadline := time.After(duration)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			live := 0
			for _, f := range table.Snapshot() {
				if !f.Freed {
					live++
				}
			}
			fmt.Printf("families=%d live=%d allocs=%d frees=%d bytes=%d\n",
				len(table.Snapshot()), live, tracking.Allocs(), tracking.Frees(), tracking.LiveBytes())

		case <-deadline:
			w.stop()
			table.Sweep()

			fmt.Printf("\nFinal: allocs=%d frees=%d outstanding=%d bytes=%d families=%d\n",
				tracking.Allocs(), tracking.Frees(), tracking.Live(), tracking.LiveBytes(), table.Len())
			if tracking.Live() != 0 {
				return fmt.Errorf("workload leaked %d grants", tracking.Live())
			}
			return nil
		}
	}
}
