// Package ownkit provides deterministic, ownership-based release of
// resource handles.
//
// Go's garbage collector reclaims memory, but it makes no promise about
// when, and resources such as file descriptors, arena grants, or handles
// into foreign runtimes need release at a known point. ownkit tracks that
// point with a small family of ownership types, each composing over a
// pluggable release action that runs exactly once per owned handle.
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct
// responsibilities:
//
//	ownkit/          Root package with the cross-cutting Dropper interface
//	├── own/         Core ownership types: Unique, Shared, Weak, and their
//	│                array variants, plus combined allocation (MakeShared)
//	├── alloc/       Allocator contract with heap and tracking allocators
//	├── registry/    Live table of ownership families with lifecycle events
//	├── errors/      Structured error types
//	└── cmd/owntop/  Terminal inspector for a registry under load
//
// # Quick Start
//
// Wrap an acquired handle in a unique owner, transfer it to shared
// ownership, and observe it weakly:
//
//	f, _ := os.Open(path)
//	u := own.NewUnique(f, own.ReleaseCloser[*os.File]())
//
//	s, err := own.FromUnique(u)   // u is now empty
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w := s.Downgrade()
//	defer w.Drop()
//	defer s.Drop()                // file closed when the last owner drops
//
//	if live, ok := w.Lock(); ok {
//	    use(live.Get())
//	    live.Drop()
//	}
//
// # Caller Invariants
//
// Exactly one ownership family may wrap a given raw handle. Wrapping the
// same handle in two independent families releases it twice; the library
// cannot detect this.
//
// A single owner instance is not safe for concurrent use. Independent
// Shared and Weak instances referencing the same family are safe across
// goroutines.
package ownkit
