package ownkit

// Dropper is optionally implemented by resource values that need cleanup.
// Release actions built with own.ReleaseDropper invoke it exactly once per
// owned handle.
type Dropper interface {
	Drop()
}
