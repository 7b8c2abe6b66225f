package bridge

import (
	"context"
	"errors"
	"strconv"

	"github.com/kouweizhong/sockets-for-pcl/nativeasync"
)

var (
	// ErrCanceled is returned when the native handle reported the Canceled
	// status, without the caller's signal having been requested. It matches
	// context.Canceled, per errors.Is.
	ErrCanceled error = canceledError{}

	// ErrAlreadyResolved is the panic value raised if a native handle
	// delivers more than one terminal status. This indicates a defect in the
	// native layer.
	ErrAlreadyResolved = errors.New(`bridge: completion already resolved`)

	// ErrInvalidStatus is wrapped by StatusError.
	ErrInvalidStatus = errors.New(`bridge: invalid completion status`)

	// ErrNoErrorCode is returned if a native handle reported the Error
	// status, but provided no error.
	ErrNoErrorCode = errors.New(`bridge: native handle reported error without error code`)
)

type canceledError struct{}

func (canceledError) Error() string { return `bridge: operation canceled` }

func (canceledError) Is(target error) bool { return target == context.Canceled }

// StatusError indicates a native handle reported a status outside the
// defined enumeration, a contract violation. The bridged future fails with
// it, and the completed handler panics with it.
type StatusError struct {
	// ID identifies the native handle.
	ID uint64
	// Status is the value that was reported.
	Status nativeasync.Status
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return ErrInvalidStatus.Error() + `: ` + e.Status.String() + ` for handle ` + strconv.FormatUint(e.ID, 10)
}

// Unwrap returns ErrInvalidStatus.
func (e *StatusError) Unwrap() error {
	return ErrInvalidStatus
}
