//go:build linux || darwin

package bridge

import (
	"sync/atomic"

	"github.com/joeycumines/go-eventloop"
)

type abortSignal struct {
	signal *eventloop.AbortSignal
}

// Abort adapts an eventloop AbortSignal to a Signal, where Err returns the
// *eventloop.AbortError, carrying the abort reason. A nil signal returns
// None.
//
// The eventloop signal retains a handler for every registration, until it
// is garbage collected, so long-lived signals accumulate one small closure
// per bridged call. Registrations that are stopped release the callback.
func Abort(signal *eventloop.AbortSignal) Signal {
	if signal == nil {
		return None
	}
	return abortSignal{signal: signal}
}

func (x abortSignal) Requested() bool { return x.signal.Aborted() }

func (x abortSignal) Err() error { return x.signal.ThrowIfAborted() }

// Register holds fn through a pointer that stop clears, as abort handlers
// cannot be removed. Each call leaves a small handler on the signal, but
// not fn, or anything it references.
func (x abortSignal) Register(fn func()) func() {
	var p atomic.Pointer[func()]
	p.Store(&fn)
	x.signal.OnAbort(func(any) {
		if fn := p.Swap(nil); fn != nil {
			(*fn)()
		}
	})
	return func() { p.Store(nil) }
}
