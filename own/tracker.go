package own

// Tracker receives notifications about ownership lifecycle transitions.
// A shared family captures the current tracker at construction and reports
// to it for the rest of its life. The registry package provides an
// implementation; the zero state (no tracker) costs one nil check per
// transition.
//
// Count notifications are advisory snapshots: under concurrent use the
// reported value may be stale by the time the tracker acts on it.
type Tracker interface {
	// TrackCreate registers a new family and returns its id.
	TrackCreate(kind string) uint64

	// TrackStrong reports that the family's strong count changed to n.
	TrackStrong(id uint64, n int64)

	// TrackWeak reports that the family's weak count changed to n.
	TrackWeak(id uint64, n int64)

	// TrackRelease reports that the family's resource was released.
	TrackRelease(id uint64)

	// TrackFree reports that the family's control storage was returned.
	TrackFree(id uint64)
}

var tracker Tracker

// SetTracker configures the tracker new shared families report to.
// This must be called before the families it should observe are created.
func SetTracker(t Tracker) {
	tracker = t
}
