package own

import (
	"testing"
)

func TestWeak_LockWhileAlive(t *testing.T) {
	calls := 0
	s := NewShared(11, func(int) { calls++ })
	w := s.Downgrade()

	live, ok := w.Lock()
	if !ok {
		t.Fatal("Lock failed while an owner is alive")
	}
	if live.Get() != 11 {
		t.Fatalf("locked owner sees %d, want 11", live.Get())
	}
	if s.UseCount() != 2 {
		t.Fatalf("use count = %d after lock, want 2", s.UseCount())
	}

	s.Drop()
	if calls != 0 {
		t.Fatal("resource released while the locked owner holds it")
	}

	live.Drop()
	if calls != 1 {
		t.Fatalf("release ran %d times, want exactly 1", calls)
	}

	w.Drop()
}

func TestWeak_LockAfterExpiry(t *testing.T) {
	s := NewShared("x", nil)
	w := s.Downgrade()

	if w.Expired() {
		t.Fatal("observer expired while an owner is alive")
	}

	s.Drop()
	if !w.Expired() {
		t.Fatal("observer not expired after the last owner dropped")
	}

	// An expired Lock is a normal outcome, not an error.
	if _, ok := w.Lock(); ok {
		t.Fatal("Lock succeeded on an expired observer")
	}

	w.Drop()
}

func TestWeak_DoesNotExtendResourceLifetime(t *testing.T) {
	calls := 0
	s := NewShared(1, func(int) { calls++ })
	w := s.Downgrade()

	s.Drop()
	if calls != 1 {
		t.Fatalf("release ran %d times with only observers left, want 1", calls)
	}
	w.Drop()
	if calls != 1 {
		t.Fatalf("release ran %d times after observer drop, want 1", calls)
	}
}

func TestWeak_ZeroValue(t *testing.T) {
	var w Weak[int]
	if w.Ok() {
		t.Fatal("zero value should be empty")
	}
	if !w.Expired() {
		t.Fatal("empty observer should report expired")
	}
	if _, ok := w.Lock(); ok {
		t.Fatal("Lock on empty observer should fail")
	}
	w.Drop() // must not panic
	w.Drop()
}

func TestWeak_MultipleObservers(t *testing.T) {
	s := NewShared(1, nil)
	w1 := s.Downgrade()
	w2 := s.Downgrade()

	w1.Drop()
	live, ok := w2.Lock()
	if !ok {
		t.Fatal("sibling observer broken by another observer's drop")
	}
	live.Drop()

	s.Drop()
	w2.Drop()
}

func TestWeakArray_LockAndIndex(t *testing.T) {
	released := 0
	s := NewSharedArray([]int{1, 2, 3}, func([]int) { released++ })
	w := s.Downgrade()

	live, ok := w.Lock()
	if !ok {
		t.Fatal("Lock failed while an owner is alive")
	}
	if live.Len() != 3 || live.At(2) != 3 {
		t.Fatalf("locked array owner sees len=%d at2=%d", live.Len(), live.At(2))
	}

	s.Drop()
	live.Drop()
	if released != 1 {
		t.Fatalf("release ran %d times, want exactly 1", released)
	}

	if _, ok := w.Lock(); ok {
		t.Fatal("Lock succeeded after the array was released")
	}
	w.Drop()
}
