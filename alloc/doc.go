// Package alloc defines the allocator contract used by shared-ownership
// construction in the own package.
//
// Go's runtime allocates and reclaims struct memory on its own; what an
// allocator grants here is the *accounting* lifetime of a block: a control
// block or a combined value+control allocation is charged on Alloc and
// returned on Free at the exact point ownership bookkeeping dictates. This
// makes allocation counts and retention windows observable, which is how
// the combined-allocation trade-off (see own.MakeSharedIn) can be measured
// rather than guessed at.
//
// Two implementations are provided:
//
//   - Heap: the default. Never fails, costs one atomic increment.
//   - Tracking: counts every grant and return, reports live bytes, and can
//     inject failures for testing error paths.
//
// Custom allocators (quota enforcement, arena accounting) implement the
// two-method Allocator interface.
package alloc
