package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Op:     OpTransfer,
				Kind:   KindAllocation,
				Detail: "control block allocation failed",
				Cause:  errors.New("grant denied"),
			},
			contains: []string{"[transfer]", "allocation", "control block allocation failed", "caused by", "grant denied"},
		},
		{
			name: "minimal error",
			err: &Error{
				Op:   OpAlloc,
				Kind: KindExhausted,
			},
			contains: []string{"[alloc]", "exhausted"},
		},
		{
			name: "detail only",
			err: &Error{
				Op:     OpRegistry,
				Kind:   KindClosed,
				Detail: "table is closed",
			},
			contains: []string{"[registry]", "closed", "table is closed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Op:    OpMake,
		Kind:  KindAllocation,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := AllocationFailed(OpTransfer, 64, nil)

	if !errors.Is(err, &Error{Op: OpTransfer, Kind: KindAllocation}) {
		t.Error("expected match on same Op and Kind")
	}
	if errors.Is(err, &Error{Op: OpMake, Kind: KindAllocation}) {
		t.Error("unexpected match on different Op")
	}
	if errors.Is(err, &Error{Op: OpTransfer, Kind: KindExhausted}) {
		t.Error("unexpected match on different Kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("no memory")
	err := New(OpMake, KindAllocation).
		Detail("combined block of %d bytes", 128).
		Value(128).
		Cause(cause).
		Build()

	if err.Op != OpMake || err.Kind != KindAllocation {
		t.Fatalf("wrong op/kind: %v %v", err.Op, err.Kind)
	}
	if err.Detail != "combined block of 128 bytes" {
		t.Fatalf("wrong detail: %q", err.Detail)
	}
	if err.Value != 128 {
		t.Fatalf("wrong value: %v", err.Value)
	}
	if !errors.Is(err, &Error{Op: OpMake, Kind: KindAllocation}) {
		t.Error("builder error does not match sentinel")
	}
	if !errors.Is(err.Unwrap(), cause) {
		t.Error("cause not retained")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if msg := Exhausted(4).Error(); !strings.Contains(msg, "limit 4") {
		t.Errorf("Exhausted message missing limit: %q", msg)
	}
	if msg := Closed(OpRegistry, "table").Error(); !strings.Contains(msg, "table is closed") {
		t.Errorf("Closed message wrong: %q", msg)
	}
	if msg := EmptyOwner(OpTransfer).Error(); !strings.Contains(msg, "no handle") {
		t.Errorf("EmptyOwner message wrong: %q", msg)
	}
}
