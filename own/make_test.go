package own

import (
	"testing"

	"github.com/ownkit/ownkit/alloc"
)

type widget struct {
	id      int
	dropped *int
}

func (w *widget) Drop() { *w.dropped++ }

func TestMakeShared_SingleAllocation(t *testing.T) {
	combined := alloc.NewTracking()
	dropped := 0
	s, err := MakeSharedIn(combined, widget{id: 1, dropped: &dropped})
	if err != nil {
		t.Fatalf("MakeSharedIn failed: %v", err)
	}
	if combined.Allocs() != 1 {
		t.Fatalf("combined path made %d allocations, want 1", combined.Allocs())
	}
	s.Drop()

	// The two-step path charges the resource and the control block
	// separately.
	separate := alloc.NewTracking()
	resGrant, err := separate.Alloc(64)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := NewSharedIn(separate, 1, func(int) { separate.Free(resGrant) })
	if err != nil {
		t.Fatalf("NewSharedIn failed: %v", err)
	}
	if separate.Allocs() != 2 {
		t.Fatalf("two-step path made %d allocations, want 2", separate.Allocs())
	}
	s2.Drop()
}

func TestMakeShared_DropperRunsAtLastOwner(t *testing.T) {
	dropped := 0
	s := MakeShared(widget{id: 7, dropped: &dropped})
	c := s.Clone()

	if s.Get().id != 7 {
		t.Fatalf("Get().id = %d, want 7", s.Get().id)
	}

	s.Drop()
	if dropped != 0 {
		t.Fatal("value dropped while a clone still owns it")
	}
	c.Drop()
	if dropped != 1 {
		t.Fatalf("value dropped %d times, want exactly 1", dropped)
	}
}

func TestMakeShared_WeakRetainsCombinedBlock(t *testing.T) {
	ta := alloc.NewTracking()
	dropped := 0
	s, err := MakeSharedIn(ta, widget{dropped: &dropped})
	if err != nil {
		t.Fatal(err)
	}
	w := s.Downgrade()

	s.Drop()
	if dropped != 1 {
		t.Fatal("value not released when the last owner dropped")
	}

	// The released value's block stays charged while the observer lives:
	// value and control block share a single grant.
	if ta.Live() != 1 {
		t.Fatalf("combined block not retained: live=%d, want 1", ta.Live())
	}

	w.Drop()
	if ta.Live() != 0 || ta.Frees() != 1 {
		t.Fatalf("combined block not returned after last observer: live=%d frees=%d", ta.Live(), ta.Frees())
	}
}

func TestMakeShared_TwoStepFreesResourceEarly(t *testing.T) {
	// Contrast case for the retention property: with separate allocations
	// the resource's grant is returned at strong zero even while an
	// observer pins the control block.
	ta := alloc.NewTracking()
	resGrant, err := ta.Alloc(128)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSharedIn(ta, "res", func(string) { ta.Free(resGrant) })
	if err != nil {
		t.Fatal(err)
	}
	w := s.Downgrade()

	s.Drop()
	// Resource grant returned; only the control block remains charged.
	if ta.Frees() != 1 || ta.Live() != 1 {
		t.Fatalf("after strong zero: frees=%d live=%d, want 1, 1", ta.Frees(), ta.Live())
	}

	w.Drop()
	if ta.Live() != 0 {
		t.Fatalf("control block still charged after last observer: live=%d", ta.Live())
	}
}

func TestMakeShared_AllocFailure(t *testing.T) {
	ta := alloc.NewTracking()
	ta.FailAfter(0)

	if _, err := MakeSharedIn(ta, widget{}); err == nil {
		t.Fatal("expected allocation failure")
	}
}

func TestMakeShared_PlainValueNoDropper(t *testing.T) {
	// Values without a Drop method are fine: release is a no-op and the
	// grant is still returned.
	ta := alloc.NewTracking()
	s, err := MakeSharedIn(ta, 42)
	if err != nil {
		t.Fatal(err)
	}
	if *s.Get() != 42 {
		t.Fatalf("Get = %d, want 42", *s.Get())
	}
	s.Drop()
	if ta.Live() != 0 {
		t.Fatalf("grant not returned: live=%d", ta.Live())
	}
}
