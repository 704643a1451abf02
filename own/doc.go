// Package own provides the core ownership types: unique owners, shared
// owners with atomic reference counting, weak observers, and combined
// allocation.
//
// # Ownership Model
//
// A raw resource handle is acquired outside this package and handed to
// exactly one ownership family:
//
//	Unique[H]       exclusive, move-only ownership of one handle
//	Shared[H]       joint ownership, atomic strong count
//	Weak[H]         non-owning observation of a Shared family
//	UniqueArray[E]  exclusive ownership of a []E allocation
//	SharedArray[E]  joint ownership of a []E allocation
//
// Every owning type composes over a ReleaseFunc, invoked exactly once per
// owned handle: when a Unique owner is dropped or reset, or when a Shared
// family's strong count falls from one to zero.
//
// # Ownership Transfer
//
// A Unique owner can hand its handle onward in two ways:
//
//	raw := u.Release()        // caller owns the raw handle again
//	s, err := FromUnique(u)   // handle moves into a new Shared family
//
// Both leave the source empty. There is deliberately no path in the other
// direction: a Shared owner cannot become Unique (the type cannot verify
// that every other holder has cooperated), and no constructor accepts a
// handle implicitly: wrapping a raw handle is always a named call, so a
// second wrap of the same handle is visible in the code that does it.
//
// # Weak Observation
//
// Weak.Lock is the only safe way to reach the resource from an observer.
// It checks and increments the strong count in one atomic step, so it
// never yields an owner over a released resource. Expired is advisory:
// its answer can be stale by the time the caller acts on it.
//
// # Array Variants
//
// Array owners expose indexed access (At, SetAt, Each) and no
// single-object access; single-object owners expose Get and no indexing.
// Picking the wrong variant is a missing method, caught at compile time.
// Element-type mismatches between acquisition and release (the classic
// derived-array-through-base-pointer hazard) cannot be written in Go at
// all: []E instantiates exactly.
//
// # Concurrency
//
// Strong and weak counts are single atomic integers; Clone, Drop, and
// Lock on independent instances of one family are safe from any number of
// goroutines. Mutating one instance from several goroutines is not
// supported, and Unique owners have no internal synchronization.
//
// # Drop Discipline
//
// Go has no destructors, so every owner has an explicit Drop. Drop is
// idempotent per instance, which makes defer-based cleanup safe:
//
//	s := own.NewShared(h, rel)
//	defer s.Drop()
package own
