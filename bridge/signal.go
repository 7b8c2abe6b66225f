package bridge

import (
	"context"
)

type (
	// Signal is a caller-owned cancellation signal. The bridge registers a
	// callback requesting cancellation of the native handle, and releases
	// the registration once the handle completes.
	//
	// Implementations must be safe for concurrent use.
	Signal interface {
		// Requested returns true if cancellation has been requested.
		Requested() bool
		// Err returns the caller's cancellation error, which must be non-nil
		// if Requested returns true.
		Err() error
		// Register arranges for fn to be called once, when cancellation is
		// requested (including immediately, if it already was). Calling the
		// returned stop func prevents a pending call. Neither may block.
		Register(fn func()) (stop func())
	}

	noneSignal struct{}

	contextSignal struct {
		ctx context.Context
	}
)

// None is a Signal that is never requested.
var None Signal = noneSignal{}

func (noneSignal) Requested() bool { return false }

func (noneSignal) Err() error { return nil }

func (noneSignal) Register(func()) func() { return func() {} }

// Context adapts ctx to a Signal, where Err returns ctx.Err(). Contexts that
// can never be canceled (e.g. context.Background()) return None.
func Context(ctx context.Context) Signal {
	if ctx == nil {
		panic(`bridge: nil context`)
	}
	if ctx.Done() == nil {
		return None
	}
	return contextSignal{ctx: ctx}
}

func (x contextSignal) Requested() bool { return x.ctx.Err() != nil }

func (x contextSignal) Err() error { return x.ctx.Err() }

func (x contextSignal) Register(fn func()) func() {
	stop := context.AfterFunc(x.ctx, fn)
	return func() { stop() }
}
