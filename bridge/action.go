package bridge

import (
	"context"
	"fmt"

	"github.com/kouweizhong/sockets-for-pcl/nativeasync"
)

// WrapAction bridges a native action to a Future, using ctx as the
// cancellation Signal, see WrapActionSignal.
//
// If the action reports Canceled after ctx was canceled, the future fails
// with ctx.Err(). Providing a nil ctx or action will cause a panic.
func WrapAction(ctx context.Context, action nativeasync.Action, options ...Option) *Future[struct{}] {
	if ctx == nil {
		panic(`bridge: nil context`)
	}
	return WrapActionSignal(Context(ctx), action, options...)
}

// WrapActionSignal bridges a native action to a Future, which settles once
// the action reports a terminal status:
//   - Completed settles with no error
//   - Canceled fails with signal.Err(), if signal was requested, or
//     ErrCanceled, otherwise
//   - Error fails with the classified ErrorCode, per WithClassifier
//
// Cancellation of signal calls action.Cancel, until the action completes.
// The action remains authoritative: if it reports Completed after signal
// was requested, the future succeeds.
//
// A nil signal is treated as None. Providing a nil action will cause a
// panic. The returned future need not be consumed.
func WrapActionSignal(signal Signal, action nativeasync.Action, options ...Option) *Future[struct{}] {
	if action == nil {
		panic(`bridge: nil action`)
	}
	if signal == nil {
		signal = None
	}

	opts := resolveOptions(options)
	future := newFuture[struct{}]()

	var stop func()
	source := newCompletion(func(o outcome, value struct{}, err error) {
		stop()
		if o == cancelled {
			if signal.Requested() {
				if err = signal.Err(); err == nil {
					err = ErrCanceled
				}
			} else {
				err = ErrCanceled
			}
			future.settle(value, err)
			return
		}
		settle(opts, future, o, value, err)
	})

	stop = signal.Register(action.Cancel)

	if err := action.SetCompleted(func(info nativeasync.Action, status nativeasync.Status) {
		observe(opts, info, status, source, func() (struct{}, error) { return struct{}{}, nil })
	}); err != nil {
		source.setFault(fmt.Errorf(`bridge: action %d: %w`, action.ID(), err))
	}

	return future
}
