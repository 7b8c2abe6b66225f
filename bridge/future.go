package bridge

import (
	"context"
)

// Future is the awaitable result of a bridged native handle. It settles
// exactly once, with either a value, or an error. The zero value is not
// valid.
//
// Future is safe for concurrent use. Waiting on a Future never affects the
// underlying operation, use the Signal passed to the bridge for that.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// settle must be called at most once.
func (x *Future[T]) settle(value T, err error) {
	x.value = value
	x.err = err
	close(x.done)
}

// Done returns a channel that is closed once the future has settled.
func (x *Future[T]) Done() <-chan struct{} {
	return x.done
}

// Settled returns true if the future has settled, without blocking.
func (x *Future[T]) Settled() bool {
	select {
	case <-x.done:
		return true
	default:
		return false
	}
}

// Result returns the result without blocking, where ok is false if the
// future has not settled.
func (x *Future[T]) Result() (value T, err error, ok bool) {
	select {
	case <-x.done:
		return x.value, x.err, true
	default:
		return value, nil, false
	}
}

// Wait blocks until the future settles, then returns the result.
func (x *Future[T]) Wait() (T, error) {
	<-x.done
	return x.value, x.err
}

// Await is like Wait, but returns ctx.Err() if ctx is done first. The
// result takes precedence, if both are ready.
func (x *Future[T]) Await(ctx context.Context) (T, error) {
	if ctx == nil {
		panic(`bridge: nil context`)
	}
	select {
	case <-x.done:
		return x.value, x.err
	default:
	}
	select {
	case <-x.done:
		return x.value, x.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Err blocks until the future settles, then returns the error, if any.
func (x *Future[T]) Err() error {
	<-x.done
	return x.err
}
