package bridge

import (
	"sync/atomic"
)

// outcome is the terminal state of a completion.
type outcome int

const (
	succeeded outcome = iota + 1
	cancelled
	failed
	// faulted is a failure that bypasses classification, e.g. a contract
	// violation.
	faulted
)

// completion is a single-writer, single-resolution source, which passes its
// outcome to a continuation exactly once. Resolving twice panics with
// ErrAlreadyResolved.
type completion[T any] struct {
	continuation func(o outcome, value T, err error)
	resolved     atomic.Bool
}

func newCompletion[T any](continuation func(o outcome, value T, err error)) *completion[T] {
	return &completion[T]{continuation: continuation}
}

func (x *completion[T]) setResult(value T) { x.resolve(succeeded, value, nil) }

func (x *completion[T]) setCanceled() {
	var zero T
	x.resolve(cancelled, zero, nil)
}

func (x *completion[T]) setError(err error) {
	var zero T
	x.resolve(failed, zero, err)
}

func (x *completion[T]) setFault(err error) {
	var zero T
	x.resolve(faulted, zero, err)
}

func (x *completion[T]) resolve(o outcome, value T, err error) {
	if !x.resolved.CompareAndSwap(false, true) {
		panic(ErrAlreadyResolved)
	}
	x.continuation(o, value, err)
}
