package registry

// Handle identifies a tracked ownership family in a table.
// Handle 0 is reserved and always invalid.
type Handle uint64

// Event types for ownership lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventRetained
	EventDropped
	EventObserved
	EventObserverDropped
	EventReleased
	EventFreed
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventRetained:
		return "retained"
	case EventDropped:
		return "dropped"
	case EventObserved:
		return "observed"
	case EventObserverDropped:
		return "observer_dropped"
	case EventReleased:
		return "released"
	case EventFreed:
		return "freed"
	default:
		return "unknown"
	}
}

// Event represents an ownership lifecycle event.
type Event struct {
	Kind   string
	Handle Handle
	Type   EventType
	Strong int64
	Weak   int64
}

// Observer receives notifications about ownership lifecycle events.
type Observer interface {
	OnOwnershipEvent(Event)
}

// Family is a point-in-time snapshot of one tracked family. Counts are
// advisory: the family keeps changing while the snapshot is read.
type Family struct {
	Kind     string
	Handle   Handle
	Strong   int64
	Weak     int64
	Released bool
	Freed    bool
}
