// Package registry provides a live table of ownership families with
// lifecycle events and observer support.
//
// The own package does its bookkeeping with bare atomics and reports
// nothing by default. Installing a registry Table as the tracker makes
// the bookkeeping visible:
//
//	table := registry.NewTable()
//	own.SetTracker(table)
//
//	s := own.NewShared(h, rel)   // now tracked
//	c := s.Clone()
//	...
//	for _, f := range table.Snapshot() {
//	    fmt.Printf("%d %s strong=%d weak=%d\n", f.Handle, f.Kind, f.Strong, f.Weak)
//	}
//
// # Observers
//
// Register observers to follow lifecycle events as they happen:
//
//	table.Subscribe(registry.NewZapObserver(logger))
//
// Observers are called synchronously on the goroutine performing the
// ownership operation; keep them fast.
//
// # Accuracy
//
// Counts in snapshots and events are advisory. They are reported after
// the atomic transition they describe, so under concurrency two reports
// can arrive out of order; the table stores the latest arrival. Use the
// registry for inspection and diagnostics, never for correctness
// decisions.
//
// # Weak Counts
//
// The weak count shown includes one implicit unit held by the strong side
// while the resource is live; a family with one owner and no observers
// shows strong=1 weak=1. Recording that implicit unit at creation emits
// no event, so the first EventObserved a family produces corresponds to
// its first Downgrade.
package registry
