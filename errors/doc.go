// Package errors provides structured error types for the ownkit library.
//
// Errors are categorized by Op (which operation produced the error) and
// Kind (error category). The Error type carries a human-readable detail,
// the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpTransfer, errors.KindAllocation).
//		Detail("control block allocation failed").
//		Cause(allocErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.AllocationFailed(errors.OpMake, size, cause)
//	err := errors.Exhausted(limit)
//
// All errors implement the standard error interface and support
// errors.Is/As. Matching with Is compares Op and Kind, so sentinel values
// built from the same pair match regardless of detail text.
package errors
