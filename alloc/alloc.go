package alloc

import "sync/atomic"

// Ref is an opaque grant ticket issued by an Allocator.
// Ref 0 is reserved and always invalid.
type Ref uint64

// Allocator grants and reclaims accounting for blocks of storage.
// Alloc charges size bytes and returns a ticket; Free returns the grant
// identified by that ticket. Every successful Alloc must be paired with
// exactly one Free.
type Allocator interface {
	Alloc(size int) (Ref, error)
	Free(Ref)
}

// Heap is the default allocator. It never fails and keeps no records;
// the Go runtime owns the actual memory.
type Heap struct {
	next atomic.Uint64
}

// NewHeap creates a heap allocator.
func NewHeap() *Heap {
	return &Heap{}
}

// Alloc issues the next ticket.
func (h *Heap) Alloc(size int) (Ref, error) {
	return Ref(h.next.Add(1)), nil
}

// Free is a no-op.
func (h *Heap) Free(Ref) {}

// Default is the process-wide heap allocator used when no allocator is
// supplied explicitly.
var Default Allocator = NewHeap()
