package own

import (
	"unsafe"

	"github.com/ownkit/ownkit/alloc"
	"github.com/ownkit/ownkit/errors"
)

// SharedArray is a joint owner of a contiguous []E allocation. Like
// UniqueArray it exposes indexed access only; like Shared it tracks
// ownership with an atomic strong count and releases the allocation in
// array form when the last owner drops.
//
// The zero value is an empty owner.
type SharedArray[E any] struct {
	ctl    *control[[]E]
	noCopy noCopy
}

// NewSharedArray constructs a new family over elems with strong count 1,
// charging the control block to the default allocator.
func NewSharedArray[E any](elems []E, rel ReleaseFunc[[]E]) *SharedArray[E] {
	s, err := NewSharedArrayIn(alloc.Default, elems, rel)
	if err != nil {
		panic("own: default allocator failed: " + err.Error())
	}
	return s
}

// NewSharedArrayIn constructs a new family over elems, charging the
// control block to a. On allocation failure no release action runs and
// the caller still owns the slice raw.
func NewSharedArrayIn[E any](a alloc.Allocator, elems []E, rel ReleaseFunc[[]E]) (*SharedArray[E], error) {
	c, err := newControl(a, elems, rel, int(unsafe.Sizeof(control[[]E]{})), errors.OpAcquire, "shared-array")
	if err != nil {
		return nil, err
	}
	return &SharedArray[E]{ctl: c}, nil
}

// FromUniqueArray transfers ownership out of u into a new shared family
// with strong count 1, leaving u empty.
func FromUniqueArray[E any](u *UniqueArray[E]) (*SharedArray[E], error) {
	return FromUniqueArrayIn(alloc.Default, u)
}

// FromUniqueArrayIn is FromUniqueArray with an explicit allocator. On
// allocation failure u is left untouched and still owns its allocation.
func FromUniqueArrayIn[E any](a alloc.Allocator, u *UniqueArray[E]) (*SharedArray[E], error) {
	if !u.Ok() {
		return nil, errors.EmptyOwner(errors.OpTransfer)
	}
	c, err := newControl(a, u.elems, u.release, int(unsafe.Sizeof(control[[]E]{})), errors.OpTransfer, "shared-array")
	if err != nil {
		return nil, err
	}
	u.clear()
	return &SharedArray[E]{ctl: c}, nil
}

// Ok reports whether the owner holds an allocation.
func (s *SharedArray[E]) Ok() bool {
	return s != nil && s.ctl != nil
}

// Len returns the number of owned elements, zero when empty.
func (s *SharedArray[E]) Len() int {
	if !s.Ok() {
		return 0
	}
	return len(s.ctl.handle)
}

// At returns the element at index i.
func (s *SharedArray[E]) At(i int) E {
	return s.ctl.handle[i]
}

// SetAt stores v at index i.
func (s *SharedArray[E]) SetAt(i int, v E) {
	s.ctl.handle[i] = v
}

// Each iterates over the owned elements until fn returns false.
func (s *SharedArray[E]) Each(fn func(int, E) bool) {
	if !s.Ok() {
		return
	}
	for i := range s.ctl.handle {
		if !fn(i, s.ctl.handle[i]) {
			return
		}
	}
}

// Clone creates another owner of the same family, incrementing the strong
// count.
func (s *SharedArray[E]) Clone() *SharedArray[E] {
	if !s.Ok() {
		return &SharedArray[E]{}
	}
	s.ctl.retain()
	return &SharedArray[E]{ctl: s.ctl}
}

// UseCount returns the family's strong count. Advisory under concurrency.
func (s *SharedArray[E]) UseCount() int64 {
	if !s.Ok() {
		return 0
	}
	return s.ctl.strong.Load()
}

// Unique reports whether this is the only owner. Advisory, like UseCount.
func (s *SharedArray[E]) Unique() bool {
	return s.UseCount() == 1
}

// Drop gives up this instance's share of ownership and empties it. The
// last owner out releases the allocation in array form.
func (s *SharedArray[E]) Drop() {
	if !s.Ok() {
		return
	}
	c := s.ctl
	s.ctl = nil
	c.dropStrong()
}

// Downgrade creates a weak observer of this family.
func (s *SharedArray[E]) Downgrade() *WeakArray[E] {
	if !s.Ok() {
		return &WeakArray[E]{}
	}
	s.ctl.retainWeak()
	return &WeakArray[E]{ctl: s.ctl}
}

// WeakArray is the non-owning observer counterpart of SharedArray, with
// the same contract as Weak.
type WeakArray[E any] struct {
	ctl    *control[[]E]
	noCopy noCopy
}

// Ok reports whether the observer references a family.
func (w *WeakArray[E]) Ok() bool {
	return w != nil && w.ctl != nil
}

// Expired reports whether the observed allocation has been released.
// Advisory; check the result of Lock instead.
func (w *WeakArray[E]) Expired() bool {
	if !w.Ok() {
		return true
	}
	return w.ctl.strong.Load() == 0
}

// Lock atomically promotes observation into ownership, with the same
// guarantee as Weak.Lock.
func (w *WeakArray[E]) Lock() (*SharedArray[E], bool) {
	if !w.Ok() || !w.ctl.lock() {
		return nil, false
	}
	return &SharedArray[E]{ctl: w.ctl}, true
}

// Drop gives up observation and empties the observer.
func (w *WeakArray[E]) Drop() {
	if !w.Ok() {
		return
	}
	c := w.ctl
	w.ctl = nil
	c.dropWeak()
}
