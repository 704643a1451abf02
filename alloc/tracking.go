package alloc

import (
	"fmt"
	"sync"

	"github.com/ownkit/ownkit/errors"
)

// Tracking is an allocator that records every grant and return. It is the
// observation point for allocation-count and retention properties, and it
// can inject failures to exercise error paths.
type Tracking struct {
	mu        sync.Mutex
	live      map[Ref]int
	next      Ref
	allocs    int
	frees     int
	liveBytes int
	failAfter int // fail every Alloc once allocs reaches this; <0 disables
}

// NewTracking creates a tracking allocator.
func NewTracking() *Tracking {
	return &Tracking{
		live:      make(map[Ref]int),
		failAfter: -1,
	}
}

// FailAfter makes every Alloc after n successes return an error.
// FailAfter(0) fails the next Alloc. A negative n disables injection.
func (t *Tracking) FailAfter(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failAfter = n
}

// Alloc charges size bytes and returns a ticket. A negative size is a
// caller bug and is rejected without charging anything.
func (t *Tracking) Alloc(size int) (Ref, error) {
	if size < 0 {
		return 0, errors.InvalidInput(errors.OpAlloc, fmt.Sprintf("negative allocation size %d", size))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failAfter >= 0 && t.allocs >= t.failAfter {
		return 0, errors.Exhausted(t.failAfter)
	}

	t.next++
	t.allocs++
	t.liveBytes += size
	t.live[t.next] = size
	return t.next, nil
}

// Free returns the grant identified by ref. Freeing an unknown or already
// freed ticket panics: it means ownership bookkeeping ran a release twice.
func (t *Tracking) Free(ref Ref) {
	t.mu.Lock()
	defer t.mu.Unlock()

	size, ok := t.live[ref]
	if !ok {
		panic(fmt.Sprintf("alloc: double free of ref %d", ref))
	}
	delete(t.live, ref)
	t.frees++
	t.liveBytes -= size
}

// Allocs returns the number of successful grants so far.
func (t *Tracking) Allocs() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allocs
}

// Frees returns the number of returned grants so far.
func (t *Tracking) Frees() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frees
}

// Live returns the number of outstanding grants.
func (t *Tracking) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// LiveBytes returns the total bytes currently charged.
func (t *Tracking) LiveBytes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.liveBytes
}
