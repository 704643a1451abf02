package own

// Weak is a non-owning, revocable observer of a Shared family. It extends
// the life of the family's control block, never the resource's.
//
// The zero value is an empty observer. Independent Weak instances of one
// family are safe to use concurrently.
type Weak[H any] struct {
	ctl    *control[H]
	noCopy noCopy
}

// Ok reports whether the observer references a family.
func (w *Weak[H]) Ok() bool {
	return w != nil && w.ctl != nil
}

// Expired reports whether the observed resource has been released. The
// answer is advisory: it can become stale the instant it is read. Correct
// code calls Lock and checks its result instead of testing Expired first.
func (w *Weak[H]) Expired() bool {
	if !w.Ok() {
		return true
	}
	return w.ctl.strong.Load() == 0
}

// Lock atomically promotes observation into ownership: if the resource is
// still alive it returns a new live Shared owner and true; otherwise it
// returns nil and false. The check and the strong-count increment happen
// as one atomic step, so a successful Lock never references a released
// resource, even while the last owner is being dropped on another
// goroutine.
func (w *Weak[H]) Lock() (*Shared[H], bool) {
	if !w.Ok() || !w.ctl.lock() {
		return nil, false
	}
	return &Shared[H]{ctl: w.ctl}, true
}

// Drop gives up observation and empties the observer. The last weak unit
// out, after the resource itself is gone, returns the control block's
// storage. Dropping an empty observer is a no-op.
func (w *Weak[H]) Drop() {
	if !w.Ok() {
		return
	}
	c := w.ctl
	w.ctl = nil
	c.dropWeak()
}
