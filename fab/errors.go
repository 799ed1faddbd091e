package fab

import (
	"errors"
	"strconv"
)

var (
	// ErrNegativeCount is returned by collection operations when the requested
	// size is negative.
	ErrNegativeCount = errors.New("fab: negative collection size")

	// ErrNilRegistry is returned when a facade operation is attempted without
	// a usable registry behind it.
	ErrNilRegistry = errors.New("fab: nil registry")
)

// ConstructionError is returned when the argument-driven construction path
// cannot produce a value: the type cannot accept positional arguments, an
// argument does not fit its target field, or construction panicked.
//
// Hint is always remediation-oriented so test failures read well.
type ConstructionError struct {
	// Type is the target type's string form, e.g. "examples.Widget".
	Type string

	// Hint tells the test author how to fix the call.
	Hint string

	// Cause is the underlying failure, if any.
	Cause error
}

// Error implements the error interface.
func (e ConstructionError) Error() string {
	// Example: fab: cannot construct "examples.Widget": supply constructor args
	msg := "fab: cannot construct " + strconv.Quote(e.Type) + ": " + e.Hint
	if e.Cause != nil {
		msg += " (" + e.Cause.Error() + ")"
	}
	return msg
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e ConstructionError) Unwrap() error { return e.Cause }

// ResolutionError is returned by the facade when no fabricator is registered
// for the requested type and no default fabricator can stand in.
type ResolutionError struct {
	// Type is the requested type's string form.
	Type string

	// Reason explains why resolution failed.
	Reason string
}

// Error implements the error interface.
func (e ResolutionError) Error() string {
	// Example: fab: cannot resolve a fabricator for "io.Reader": ...
	return "fab: cannot resolve a fabricator for " + strconv.Quote(e.Type) + ": " + e.Reason
}

// FabricationError is the single wrapping layer applied at the fabricator
// boundary around construction failures. The facade never adds a second one.
type FabricationError struct {
	// Type is the target type's string form.
	Type string

	// Cause is the construction failure.
	Cause error
}

// Error implements the error interface.
func (e FabricationError) Error() string {
	// Example: fab: fabrication of "examples.Gadget" failed: ...
	msg := "fab: fabrication of " + strconv.Quote(e.Type) + " failed"
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e FabricationError) Unwrap() error { return e.Cause }
