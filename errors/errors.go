package errors

import (
	"fmt"
	"strings"
)

// Op indicates which library operation the error came from
type Op string

const (
	OpAcquire  Op = "acquire"  // owner construction
	OpTransfer Op = "transfer" // unique-to-shared ownership transfer
	OpMake     Op = "make"     // combined allocation
	OpAlloc    Op = "alloc"    // allocator calls
	OpRegistry Op = "registry" // registry operations
)

// Kind categorizes the error
type Kind string

const (
	KindAllocation   Kind = "allocation"
	KindExhausted    Kind = "exhausted"
	KindClosed       Kind = "closed"
	KindEmptyOwner   Kind = "empty_owner"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Op     Op
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// AllocationFailed creates an allocation failure error
func AllocationFailed(op Op, size int, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
		Cause:  cause,
	}
}

// Exhausted creates an allocator-exhausted error
func Exhausted(limit int) *Error {
	return &Error{
		Op:     OpAlloc,
		Kind:   KindExhausted,
		Detail: fmt.Sprintf("allocator exhausted (limit %d)", limit),
		Value:  limit,
	}
}

// Closed creates an error for operations on a closed component
func Closed(op Op, what string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindClosed,
		Detail: what + " is closed",
	}
}

// EmptyOwner creates an error for transfers out of an empty owner
func EmptyOwner(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindEmptyOwner,
		Detail: "source owner holds no handle",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(op Op, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}
