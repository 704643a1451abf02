package own

import (
	"sync/atomic"
	"unsafe"

	"github.com/ownkit/ownkit/alloc"
	"github.com/ownkit/ownkit/errors"
)

// control is the shared bookkeeping block for one ownership family: the
// handle, its release action, the atomic counts, and the allocator grant
// for the block's own storage.
//
// Invariants: the resource is released exactly once, on the strong 1→0
// transition, observed by a single decrementer. The weak count carries one
// implicit unit while strong > 0, so the grant is returned exactly once,
// when both counts have reached zero.
type control[H any] struct {
	handle  H
	release ReleaseFunc[H]
	a       alloc.Allocator
	grant   alloc.Ref
	trk     Tracker
	id      uint64
	strong  atomic.Int64
	weak    atomic.Int64
}

func newControl[H any](a alloc.Allocator, h H, rel ReleaseFunc[H], size int, op errors.Op, kind string) (*control[H], error) {
	if a == nil {
		a = alloc.Default
	}
	if rel == nil {
		rel = ReleaseNone[H]()
	}

	grant, err := a.Alloc(size)
	if err != nil {
		return nil, errors.AllocationFailed(op, size, err)
	}

	c := &control[H]{
		handle:  h,
		release: rel,
		a:       a,
		grant:   grant,
	}
	c.strong.Store(1)
	c.weak.Store(1) // implicit unit held while strong > 0

	if trk := tracker; trk != nil {
		c.trk = trk
		c.id = trk.TrackCreate(kind)
		trk.TrackStrong(c.id, 1)
		trk.TrackWeak(c.id, 1)
	}
	return c, nil
}

// retain increments the strong count. Only reachable through a live owner
// or a successful lock, so a non-positive count here means the family's
// bookkeeping was corrupted by an owner copied by value.
func (c *control[H]) retain() {
	n := c.strong.Add(1)
	if n <= 1 {
		panic("own: retain on a released family")
	}
	c.trackStrong(n)
}

// dropStrong decrements the strong count and, on the 1→0 transition,
// releases the resource and returns the implicit weak unit.
func (c *control[H]) dropStrong() {
	n := c.strong.Add(-1)
	if n < 0 {
		panic("own: family dropped more often than retained")
	}
	c.trackStrong(n)
	if n == 0 {
		c.release(c.handle)
		if c.trk != nil {
			c.trk.TrackRelease(c.id)
		}
		c.dropWeak()
	}
}

// lock attempts to turn observation into ownership: it increments the
// strong count only if it is still positive, checked and incremented as
// one atomic step.
func (c *control[H]) lock() bool {
	for {
		n := c.strong.Load()
		if n == 0 {
			return false
		}
		if c.strong.CompareAndSwap(n, n+1) {
			c.trackStrong(n + 1)
			return true
		}
	}
}

func (c *control[H]) retainWeak() {
	n := c.weak.Add(1)
	if c.trk != nil {
		c.trk.TrackWeak(c.id, n)
	}
}

// dropWeak decrements the weak count; the last unit out returns the
// block's grant to the allocator.
func (c *control[H]) dropWeak() {
	n := c.weak.Add(-1)
	if n < 0 {
		panic("own: observer dropped more often than created")
	}
	if c.trk != nil {
		c.trk.TrackWeak(c.id, n)
	}
	if n == 0 {
		c.a.Free(c.grant)
		if c.trk != nil {
			c.trk.TrackFree(c.id)
		}
	}
}

func (c *control[H]) trackStrong(n int64) {
	if c.trk != nil {
		c.trk.TrackStrong(c.id, n)
	}
}

// Shared is a joint owner of one resource handle. Copies are made with
// Clone, never by value; independent instances of one family may be used
// concurrently from any number of goroutines.
//
// The zero value is an empty owner.
type Shared[H any] struct {
	ctl    *control[H]
	noCopy noCopy
}

// NewShared constructs a new family over h with strong count 1, charging
// the control block to the default allocator (which cannot fail).
// The handle must not be owned by any other family.
func NewShared[H any](h H, rel ReleaseFunc[H]) *Shared[H] {
	s, err := NewSharedIn(alloc.Default, h, rel)
	if err != nil {
		// The default allocator never fails.
		panic("own: default allocator failed: " + err.Error())
	}
	return s
}

// NewSharedIn constructs a new family over h, charging the control block
// to a. On allocation failure no release action runs and the caller still
// owns h raw.
func NewSharedIn[H any](a alloc.Allocator, h H, rel ReleaseFunc[H]) (*Shared[H], error) {
	c, err := newControl(a, h, rel, int(unsafe.Sizeof(control[H]{})), errors.OpAcquire, "shared")
	if err != nil {
		return nil, err
	}
	return &Shared[H]{ctl: c}, nil
}

// FromUnique transfers ownership out of u into a new Shared family with
// strong count 1, leaving u empty.
func FromUnique[H any](u *Unique[H]) (*Shared[H], error) {
	return FromUniqueIn(alloc.Default, u)
}

// FromUniqueIn is FromUnique with an explicit allocator. On allocation
// failure u is left untouched and still owns its handle.
func FromUniqueIn[H any](a alloc.Allocator, u *Unique[H]) (*Shared[H], error) {
	if !u.Ok() {
		return nil, errors.EmptyOwner(errors.OpTransfer)
	}
	c, err := newControl(a, u.handle, u.release, int(unsafe.Sizeof(control[H]{})), errors.OpTransfer, "shared")
	if err != nil {
		return nil, err
	}
	u.clear()
	return &Shared[H]{ctl: c}, nil
}

// Ok reports whether the owner holds a handle.
func (s *Shared[H]) Ok() bool {
	return s != nil && s.ctl != nil
}

// Get returns the owned handle without transferring ownership.
// It returns the zero handle when the owner is empty.
func (s *Shared[H]) Get() H {
	if !s.Ok() {
		var zero H
		return zero
	}
	return s.ctl.handle
}

// Clone creates another owner of the same family, incrementing the strong
// count. Cloning an empty owner yields an empty owner.
func (s *Shared[H]) Clone() *Shared[H] {
	if !s.Ok() {
		return &Shared[H]{}
	}
	s.ctl.retain()
	return &Shared[H]{ctl: s.ctl}
}

// UseCount returns the family's strong count. The value is advisory: it
// can change the instant it is read and must not be used for correctness
// decisions under concurrency.
func (s *Shared[H]) UseCount() int64 {
	if !s.Ok() {
		return 0
	}
	return s.ctl.strong.Load()
}

// Unique reports whether this is the only owner. Advisory, like UseCount.
func (s *Shared[H]) Unique() bool {
	return s.UseCount() == 1
}

// Drop gives up this instance's share of ownership and empties it. The
// last owner out releases the resource. Dropping an empty instance is a
// no-op, so deferred Drops are safe.
func (s *Shared[H]) Drop() {
	if !s.Ok() {
		return
	}
	c := s.ctl
	s.ctl = nil
	c.dropStrong()
}

// Downgrade creates a weak observer of this family, incrementing the weak
// count. Downgrading an empty owner yields an empty observer.
func (s *Shared[H]) Downgrade() *Weak[H] {
	if !s.Ok() {
		return &Weak[H]{}
	}
	s.ctl.retainWeak()
	return &Weak[H]{ctl: s.ctl}
}
