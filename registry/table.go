package registry

import (
	"sort"
	"sync"

	"github.com/ownkit/ownkit/errors"
)

// Table tracks live ownership families and fans lifecycle events out to
// observers. It implements own.Tracker; install it with own.SetTracker.
//
// Freed families stay in the table (marked Freed) until Sweep removes
// them, so short-lived families remain visible to inspection tools.
type Table struct {
	entries   map[Handle]*entry
	next      Handle
	mu        sync.RWMutex
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
}

type entry struct {
	kind     string
	strong   int64
	weak     int64
	released bool
	freed    bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries: make(map[Handle]*entry, 64),
	}
}

// TrackCreate registers a new family and returns its handle.
// Returns 0 if the table is closed.
func (t *Table) TrackCreate(kind string) uint64 {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0
	}
	t.next++
	h := t.next
	t.entries[h] = &entry{kind: kind, strong: 1, weak: 0}
	t.mu.Unlock()

	t.notify(Event{Type: EventCreated, Handle: h, Kind: kind, Strong: 1})
	return uint64(h)
}

// TrackStrong records a strong-count change for a family.
func (t *Table) TrackStrong(id uint64, n int64) {
	h := Handle(id)
	t.mu.Lock()
	e, ok := t.entries[h]
	if !ok {
		t.mu.Unlock()
		return
	}
	typ := EventRetained
	if n < e.strong {
		typ = EventDropped
	}
	e.strong = n
	ev := Event{Type: typ, Handle: h, Kind: e.kind, Strong: n, Weak: e.weak}
	t.mu.Unlock()

	t.notify(ev)
}

// TrackWeak records a weak-count change for a family. The count includes
// one implicit unit held by the strong side while the resource is live;
// recording that unit (the only 0 to 1 transition a family can make) is
// silent, so observers only see weak activity caused by actual observers.
func (t *Table) TrackWeak(id uint64, n int64) {
	h := Handle(id)
	t.mu.Lock()
	e, ok := t.entries[h]
	if !ok {
		t.mu.Unlock()
		return
	}
	typ := EventObserved
	if n < e.weak {
		typ = EventObserverDropped
	}
	implicit := e.weak == 0 && n == 1
	e.weak = n
	ev := Event{Type: typ, Handle: h, Kind: e.kind, Strong: e.strong, Weak: n}
	t.mu.Unlock()

	if implicit {
		return
	}
	t.notify(ev)
}

// TrackRelease records that a family's resource was released.
func (t *Table) TrackRelease(id uint64) {
	h := Handle(id)
	t.mu.Lock()
	e, ok := t.entries[h]
	if !ok {
		t.mu.Unlock()
		return
	}
	e.released = true
	ev := Event{Type: EventReleased, Handle: h, Kind: e.kind, Strong: e.strong, Weak: e.weak}
	t.mu.Unlock()

	t.notify(ev)
}

// TrackFree records that a family's control storage was returned.
func (t *Table) TrackFree(id uint64) {
	h := Handle(id)
	t.mu.Lock()
	e, ok := t.entries[h]
	if !ok {
		t.mu.Unlock()
		return
	}
	e.freed = true
	ev := Event{Type: EventFreed, Handle: h, Kind: e.kind}
	t.mu.Unlock()

	t.notify(ev)
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of families not yet freed.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if !e.freed {
			count++
		}
	}
	return count
}

// Family returns a snapshot of the family identified by h, or a
// not-found error when no such family is (or ever was) tracked.
func (t *Table) Family(h Handle) (Family, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[h]
	if !ok {
		return Family{}, errors.New(errors.OpRegistry, errors.KindNotFound).
			Value(h).
			Detail("family %d not tracked", h).
			Build()
	}
	return Family{
		Handle:   h,
		Kind:     e.kind,
		Strong:   e.strong,
		Weak:     e.weak,
		Released: e.released,
		Freed:    e.freed,
	}, nil
}

// Snapshot returns a copy of every tracked family, ordered by handle.
func (t *Table) Snapshot() []Family {
	t.mu.RLock()
	families := make([]Family, 0, len(t.entries))
	for h, e := range t.entries {
		families = append(families, Family{
			Handle:   h,
			Kind:     e.kind,
			Strong:   e.strong,
			Weak:     e.weak,
			Released: e.released,
			Freed:    e.freed,
		})
	}
	t.mu.RUnlock()

	sort.Slice(families, func(i, j int) bool { return families[i].Handle < families[j].Handle })
	return families
}

// Sweep removes freed families and returns how many were removed.
func (t *Table) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for h, e := range t.entries {
		if e.freed {
			delete(t.entries, h)
			removed++
		}
	}
	return removed
}

// Close stops accepting new families and drops all tracked state.
// Already-live families keep running; their subsequent events are ignored.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	t.entries = make(map[Handle]*entry)
	return nil
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnOwnershipEvent(e)
	}
}
