package own

import (
	"io"

	"go.uber.org/zap"

	"github.com/ownkit/ownkit"
)

// ReleaseFunc releases one resource handle. An owning type invokes it
// exactly once per owned handle, never while the owner is empty.
//
// Stateful release actions are ordinary closures; a stateless action costs
// nothing beyond the func value itself.
type ReleaseFunc[H any] func(H)

// ReleaseNone returns an explicit no-op release action, for handles whose
// lifetime is managed elsewhere.
func ReleaseNone[H any]() ReleaseFunc[H] {
	return func(H) {}
}

// ReleaseDropper returns a release action that calls Drop on the handle.
func ReleaseDropper[H ownkit.Dropper]() ReleaseFunc[H] {
	return func(h H) {
		h.Drop()
	}
}

// ReleaseCloser returns a release action that calls Close on the handle.
// A close failure has nowhere to propagate at release time, so it is
// logged through the package logger.
func ReleaseCloser[H io.Closer]() ReleaseFunc[H] {
	return func(h H) {
		if err := h.Close(); err != nil {
			Logger().Warn("close failed during release", zap.Error(err))
		}
	}
}

// ReleaseEach lifts an element release action to the array form: the
// returned action releases every element of the slice, front to back.
// Array owners must be released in array form; pairing a single-object
// action with an array acquisition is the caller's error to avoid.
func ReleaseEach[E any](rel ReleaseFunc[E]) ReleaseFunc[[]E] {
	return func(elems []E) {
		for i := range elems {
			rel(elems[i])
		}
	}
}

// noCopy triggers go vet's copylocks check when an owner is copied by
// value. Owners are move-only; copies would duplicate ownership.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
