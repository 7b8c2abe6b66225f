package nativeasync

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrHandlerAssigned is returned by SetCompleted if a handler has
	// already been assigned. Handles accept exactly one handler.
	ErrHandlerAssigned = errors.New(`nativeasync: completed handler already assigned`)

	// ErrAlreadyCompleted is returned when attempting to report a second
	// terminal status, for the same handle.
	ErrAlreadyCompleted = errors.New(`nativeasync: handle already completed`)

	// ErrNotCompleted is returned by GetResults if the handle has not
	// completed successfully.
	ErrNotCompleted = errors.New(`nativeasync: results unavailable, handle not completed`)

	// ErrRuntimeClosed is reported (via ErrorCode) by tasks started after
	// Runtime.Close was called.
	ErrRuntimeClosed = errors.New(`nativeasync: runtime closed`)

	// ErrGoexit is reported (via ErrorCode) when a task's goroutine exits via
	// runtime.Goexit.
	ErrGoexit = errors.New(`nativeasync: task goroutine exited via runtime.Goexit`)
)

// PanicError wraps a value recovered from a panicking task.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf(`nativeasync: task panicked: %v`, e.Value)
}

// Unwrap returns the panic value, if it is an error.
func (e PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// HResultError is a raw platform error, carrying a numeric HRESULT, in the
// manner of the errors surfaced by WinRT async handles.
type HResultError struct {
	// Cause is the optional underlying error.
	Cause error
	// Message is an optional description.
	Message string
	// Code is the platform HRESULT.
	Code int32
}

// Error implements the error interface.
func (e *HResultError) Error() string {
	s := `nativeasync: hresult 0x` + strconv.FormatUint(uint64(uint32(e.Code)), 16)
	if e.Message != `` {
		s += `: ` + e.Message
	}
	if e.Cause != nil {
		s += `: ` + e.Cause.Error()
	}
	return s
}

// HResult returns the platform result code.
func (e *HResultError) HResult() int32 {
	return e.Code
}

// Unwrap returns the underlying cause for use with [errors.Is] and [errors.As].
func (e *HResultError) Unwrap() error {
	return e.Cause
}
