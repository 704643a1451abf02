package own

import (
	"testing"
)

// element counts Drop calls, standing in for a per-element destructor.
type element struct {
	drops *int
}

func (e element) Drop() { *e.drops++ }

func TestUniqueArray_ArrayFormRelease(t *testing.T) {
	drops := 0
	elems := make([]element, 10)
	for i := range elems {
		elems[i] = element{drops: &drops}
	}

	// The default array-form release destroys every element; the
	// single-object form is not reachable for an array owner.
	u := NewUniqueArrayOf(elems)
	if u.Len() != 10 {
		t.Fatalf("Len = %d, want 10", u.Len())
	}

	u.Drop()
	if drops != 10 {
		t.Fatalf("array release dropped %d elements, want all 10", drops)
	}
	if u.Ok() {
		t.Fatal("owner should be empty after Drop")
	}

	u.Drop()
	if drops != 10 {
		t.Fatalf("double Drop re-released elements: %d drops", drops)
	}
}

func TestUniqueArray_IndexedAccess(t *testing.T) {
	u := NewUniqueArray([]int{10, 20, 30}, nil)

	if u.At(1) != 20 {
		t.Fatalf("At(1) = %d, want 20", u.At(1))
	}
	u.SetAt(1, 25)
	if u.At(1) != 25 {
		t.Fatalf("At(1) = %d after SetAt, want 25", u.At(1))
	}

	var visited []int
	u.Each(func(i int, v int) bool {
		visited = append(visited, v)
		return true
	})
	if len(visited) != 3 || visited[0] != 10 || visited[1] != 25 || visited[2] != 30 {
		t.Fatalf("Each visited %v", visited)
	}

	// Early stop.
	count := 0
	u.Each(func(int, int) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Each visited %d elements after stop, want 1", count)
	}

	u.Drop()
}

func TestUniqueArray_ReleaseSkipsAction(t *testing.T) {
	calls := 0
	u := NewUniqueArray([]byte{1, 2, 3}, func([]byte) { calls++ })

	raw := u.Release()
	if len(raw) != 3 {
		t.Fatalf("Release returned %d elements, want 3", len(raw))
	}
	if u.Ok() || u.Len() != 0 {
		t.Fatal("owner should be empty after Release")
	}

	u.Drop()
	if calls != 0 {
		t.Fatalf("release ran %d times after Release, want 0", calls)
	}
}

func TestUniqueArray_MoveAndReset(t *testing.T) {
	releases := 0
	u := NewUniqueArray([]int{1}, func([]int) { releases++ })

	dst := u.Move()
	if u.Ok() {
		t.Fatal("source should be empty after Move")
	}
	u.Drop()
	if releases != 0 {
		t.Fatal("moved-from source must not release")
	}

	dst.Reset([]int{2, 3})
	if releases != 1 {
		t.Fatalf("Reset released %d times, want 1", releases)
	}
	if dst.Len() != 2 {
		t.Fatalf("Len = %d after Reset, want 2", dst.Len())
	}

	dst.Drop()
	if releases != 2 {
		t.Fatalf("total releases = %d, want 2", releases)
	}
}
