package own

import "github.com/ownkit/ownkit"

// Unique is a move-only exclusive owner of one resource handle. At most
// one live Unique instance references a given handle; the API enforces
// this with transfer semantics (Move, Release, FromUnique), not runtime
// checks.
//
// The zero value is an empty owner. A single instance is not safe for
// concurrent use.
type Unique[H any] struct {
	handle  H
	release ReleaseFunc[H]
	ok      bool
	noCopy  noCopy
}

// NewUnique constructs a live owner over h. The handle must not be empty
// and must not be owned by any other family; both are caller preconditions.
// A nil release action is treated as a no-op action.
func NewUnique[H any](h H, rel ReleaseFunc[H]) *Unique[H] {
	if rel == nil {
		rel = ReleaseNone[H]()
	}
	return &Unique[H]{handle: h, release: rel, ok: true}
}

// NewUniqueOf constructs a live owner with the natural single-object
// release action: the handle's own Drop method.
func NewUniqueOf[H ownkit.Dropper](h H) *Unique[H] {
	return NewUnique(h, ReleaseDropper[H]())
}

// Ok reports whether the owner holds a handle.
func (u *Unique[H]) Ok() bool {
	return u != nil && u.ok
}

// Get returns the owned handle without transferring ownership.
// It returns the zero handle when the owner is empty.
func (u *Unique[H]) Get() H {
	if !u.Ok() {
		var zero H
		return zero
	}
	return u.handle
}

// Release hands the raw handle back to the caller and empties the owner.
// The release action is NOT invoked; the caller owns the handle raw from
// this point on.
func (u *Unique[H]) Release() H {
	h := u.handle
	u.clear()
	return h
}

// Reset releases the current handle, if any, and takes ownership of h.
// The release action is kept.
func (u *Unique[H]) Reset(h H) {
	rel := u.release
	if u.ok {
		rel(u.handle)
	}
	if rel == nil {
		rel = ReleaseNone[H]()
	}
	u.handle = h
	u.release = rel
	u.ok = true
}

// Drop releases the current handle, if any, and empties the owner.
// Dropping an empty owner is a no-op.
func (u *Unique[H]) Drop() {
	if !u.Ok() {
		return
	}
	rel, h := u.release, u.handle
	u.clear()
	rel(h)
}

// Move transfers the handle and release action into a fresh owner and
// empties u. Dropping u afterwards is a no-op.
func (u *Unique[H]) Move() *Unique[H] {
	if !u.Ok() {
		return &Unique[H]{}
	}
	moved := &Unique[H]{handle: u.handle, release: u.release, ok: true}
	u.clear()
	return moved
}

func (u *Unique[H]) clear() {
	var zero H
	u.handle = zero
	u.release = nil
	u.ok = false
}
