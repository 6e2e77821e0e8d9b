package kernel

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrNilBuilder is returned when a nil SpecimenBuilder is supplied where a
	// collaborator is required.
	ErrNilBuilder = &ArgumentError{Name: "builder", Reason: "must not be nil"}

	// ErrRelease matches any failure reported while releasing tracked resources.
	ErrRelease = errors.New("kernel: release failed")

	// ErrBuilderPanic is returned if a builder implementation panics internally.
	ErrBuilderPanic = errors.New("kernel: panic during Create")
)

// ArgumentError reports an invalid argument passed to a constructor.
type ArgumentError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	// Example: kernel: invalid argument "builder": must not be nil
	return "kernel: invalid argument " + strconv.Quote(e.Name) + ": " + e.Reason
}

// ReleaseError wraps the failure of a single tracked resource.
//
// Index is the resource's position in the tracked collection at the time
// Dispose was called.
type ReleaseError struct {
	Resource any
	Index    int
	Err      error
}

// Error implements the error interface.
func (e *ReleaseError) Error() string {
	// Example: kernel: release of *os.File at index 2: file already closed
	return "kernel: release of " + typeName(e.Resource) + " at index " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

// Unwrap returns the underlying failure.
func (e *ReleaseError) Unwrap() error { return e.Err }

// Is makes every ReleaseError match ErrRelease.
func (e *ReleaseError) Is(target error) bool { return target == ErrRelease }

// ReleasePanicError is reported when a Dispose or Close method panics.
//
// Method names the release method that panicked ("Dispose" or "Close").
type ReleasePanicError struct {
	Method string
	Value  any
}

// Error implements the error interface.
func (e ReleasePanicError) Error() string {
	// Example: panic during Close: connection reset
	prefix := "panic during " + e.Method + ": "
	if err, ok := e.Value.(error); ok {
		return prefix + err.Error()
	}
	if s, ok := e.Value.(string); ok {
		return prefix + s
	}
	return prefix + typeName(e.Value)
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
