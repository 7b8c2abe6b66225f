package nativeasync

import (
	"sync"
	"sync/atomic"
)

type (
	// Info is the part of the native handle contract that is common to
	// actions and operations.
	Info interface {
		// ID returns a process unique identifier for the handle.
		ID() uint64
		// Status returns the current status, which is Started until the
		// handle completes.
		Status() Status
		// ErrorCode returns the raw error, valid only once the handle has
		// completed with the Error status.
		ErrorCode() error
		// Cancel requests cancellation. It doesn't block, and may be called
		// any number of times. Cancellation is realized only if the handle
		// later completes with the Canceled status.
		Cancel()
	}

	// Action is a native handle with no result value.
	Action interface {
		Info
		// SetCompleted assigns the completed handler. It may be called at
		// most once, subsequent calls return ErrHandlerAssigned. If the
		// handle has already completed, the handler is called immediately.
		SetCompleted(handler func(action Action, status Status)) error
	}

	// Operation is a native handle yielding a value of type T.
	Operation[T any] interface {
		Info
		// SetCompleted behaves per Action.SetCompleted.
		SetCompleted(handler func(operation Operation[T], status Status)) error
		// GetResults returns the result, valid only once the handle has
		// completed with the Completed status.
		GetResults() (T, error)
	}
)

var handleID atomic.Uint64

// handle implements the state shared by all handle types.
type handle[T any] struct {
	result      T
	err         error
	handler     func(status Status)
	cancel      func()
	id          uint64
	mu          sync.Mutex
	cancelCount int
	status      Status
	assigned    bool
}

func newHandle[T any](cancel func()) *handle[T] {
	return &handle[T]{
		id:     handleID.Add(1),
		cancel: cancel,
	}
}

func (x *handle[T]) setCompleted(handler func(status Status)) error {
	x.mu.Lock()
	if x.assigned {
		x.mu.Unlock()
		return ErrHandlerAssigned
	}
	x.assigned = true
	x.handler = handler
	status := x.status
	x.mu.Unlock()

	// completion raced ahead of assignment, and didn't see the handler
	if status.Terminal() {
		handler(status)
	}

	return nil
}

// complete transitions to a terminal status, then notifies the handler, if
// any. It must be called with a terminal status.
func (x *handle[T]) complete(status Status, result T, err error) error {
	x.mu.Lock()
	if x.status.Terminal() {
		x.mu.Unlock()
		return ErrAlreadyCompleted
	}
	x.status = status
	x.result = result
	x.err = err
	handler := x.handler
	x.mu.Unlock()

	if handler != nil {
		handler(status)
	}

	return nil
}

// notify forwards a non-terminal (or invalid) status to the handler, without
// changing state.
func (x *handle[T]) notify(status Status) error {
	x.mu.Lock()
	if x.status.Terminal() {
		x.mu.Unlock()
		return ErrAlreadyCompleted
	}
	handler := x.handler
	x.mu.Unlock()

	if handler != nil {
		handler(status)
	}

	return nil
}

func (x *handle[T]) getStatus() Status {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.status
}

func (x *handle[T]) errorCode() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.status != Error {
		return nil
	}
	return x.err
}

func (x *handle[T]) getResults() (T, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.status != Completed {
		var zero T
		return zero, ErrNotCompleted
	}
	return x.result, nil
}

func (x *handle[T]) requestCancel() {
	x.mu.Lock()
	x.cancelCount++
	cancel := x.cancel
	terminal := x.status.Terminal()
	x.mu.Unlock()
	if cancel != nil && !terminal {
		cancel()
	}
}

func (x *handle[T]) cancelRequests() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.cancelCount
}
