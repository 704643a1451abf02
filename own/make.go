package own

import (
	"unsafe"

	"github.com/ownkit/ownkit"
	"github.com/ownkit/ownkit/alloc"
	"github.com/ownkit/ownkit/errors"
)

// box colocates a value with its family's control block: one allocation,
// one grant, for both.
type box[T any] struct {
	ctl control[*T]
	val T
}

// MakeShared constructs v in place and returns a Shared owner whose
// control block shares the value's allocation. Compared with NewShared
// over a separately acquired handle this halves the allocation count and
// keeps the value and its bookkeeping adjacent.
//
// There is deliberately no release-action parameter: the combined layout
// is only compatible with the natural single-object release, which calls
// Drop if *T implements ownkit.Dropper and otherwise does nothing.
//
// Retention trade-off: the combined grant can only be returned once BOTH
// counts reach zero, so an outstanding Weak observer keeps the whole
// block charged, including the released value's footprint, until the
// observer drops. The two-allocation path returns the resource's own
// storage as soon as the strong count hits zero. This is inherent to the
// layout, not a leak.
func MakeShared[T any](v T) *Shared[*T] {
	s, err := MakeSharedIn[T](alloc.Default, v)
	if err != nil {
		panic("own: default allocator failed: " + err.Error())
	}
	return s
}

// MakeSharedIn is MakeShared with an explicit allocator charged for the
// combined block.
func MakeSharedIn[T any](a alloc.Allocator, v T) (*Shared[*T], error) {
	if a == nil {
		a = alloc.Default
	}

	b := &box[T]{val: v}
	size := int(unsafe.Sizeof(*b))
	grant, err := a.Alloc(size)
	if err != nil {
		return nil, errors.AllocationFailed(errors.OpMake, size, err)
	}

	c := &b.ctl
	c.handle = &b.val
	c.release = dropRelease[T]()
	c.a = a
	c.grant = grant
	c.strong.Store(1)
	c.weak.Store(1)

	if trk := tracker; trk != nil {
		c.trk = trk
		c.id = trk.TrackCreate("combined")
		trk.TrackStrong(c.id, 1)
		trk.TrackWeak(c.id, 1)
	}
	return &Shared[*T]{ctl: c}, nil
}

// dropRelease is the natural single-object release for in-place
// constructed values.
func dropRelease[T any]() ReleaseFunc[*T] {
	return func(p *T) {
		if d, ok := any(p).(ownkit.Dropper); ok {
			d.Drop()
		}
	}
}
