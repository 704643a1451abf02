package own

import "github.com/ownkit/ownkit"

// UniqueArray is a move-only exclusive owner of a contiguous []E
// allocation. It exposes indexed access only; there is no single-object
// Get, so using an array acquisition through a single-object owner (or
// vice versa) does not compile.
//
// The release action takes the whole slice. Use ReleaseEach to build the
// array form from an element action, matching how the allocation was
// acquired.
type UniqueArray[E any] struct {
	elems   []E
	release ReleaseFunc[[]E]
	ok      bool
	noCopy  noCopy
}

// NewUniqueArray constructs a live owner over elems. The slice must not be
// owned by any other family. A nil release action is treated as a no-op
// action.
func NewUniqueArray[E any](elems []E, rel ReleaseFunc[[]E]) *UniqueArray[E] {
	if rel == nil {
		rel = ReleaseNone[[]E]()
	}
	return &UniqueArray[E]{elems: elems, release: rel, ok: true}
}

// NewUniqueArrayOf constructs a live owner with the natural array-form
// release action: every element's Drop method, applied by ReleaseEach.
// This matches an acquisition that constructed each element; never pair
// it with an allocation acquired another way.
func NewUniqueArrayOf[E ownkit.Dropper](elems []E) *UniqueArray[E] {
	return NewUniqueArray(elems, ReleaseEach(ReleaseDropper[E]()))
}

// Ok reports whether the owner holds an allocation.
func (u *UniqueArray[E]) Ok() bool {
	return u != nil && u.ok
}

// Len returns the number of owned elements, zero when empty.
func (u *UniqueArray[E]) Len() int {
	if !u.Ok() {
		return 0
	}
	return len(u.elems)
}

// At returns the element at index i.
func (u *UniqueArray[E]) At(i int) E {
	return u.elems[i]
}

// SetAt stores v at index i.
func (u *UniqueArray[E]) SetAt(i int, v E) {
	u.elems[i] = v
}

// Each iterates over the owned elements until fn returns false.
func (u *UniqueArray[E]) Each(fn func(int, E) bool) {
	if !u.Ok() {
		return
	}
	for i := range u.elems {
		if !fn(i, u.elems[i]) {
			return
		}
	}
}

// Release hands the raw slice back to the caller and empties the owner.
// The release action is NOT invoked.
func (u *UniqueArray[E]) Release() []E {
	elems := u.elems
	u.clear()
	return elems
}

// Reset releases the current allocation, if any, and takes ownership of
// elems. The release action is kept.
func (u *UniqueArray[E]) Reset(elems []E) {
	rel := u.release
	if u.ok {
		rel(u.elems)
	}
	if rel == nil {
		rel = ReleaseNone[[]E]()
	}
	u.elems = elems
	u.ok = true
	u.release = rel
}

// Drop releases the current allocation, if any, and empties the owner.
// Dropping an empty owner is a no-op.
func (u *UniqueArray[E]) Drop() {
	if !u.Ok() {
		return
	}
	rel, elems := u.release, u.elems
	u.clear()
	rel(elems)
}

// Move transfers the allocation and release action into a fresh owner and
// empties u.
func (u *UniqueArray[E]) Move() *UniqueArray[E] {
	if !u.Ok() {
		return &UniqueArray[E]{}
	}
	moved := &UniqueArray[E]{elems: u.elems, release: u.release, ok: true}
	u.clear()
	return moved
}

func (u *UniqueArray[E]) clear() {
	u.elems = nil
	u.release = nil
	u.ok = false
}
