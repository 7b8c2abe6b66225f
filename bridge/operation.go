package bridge

import (
	"fmt"

	"github.com/kouweizhong/sockets-for-pcl/nativeasync"
)

// WrapOperation bridges a native operation to a Future, which settles once
// the operation reports a terminal status:
//   - Completed settles with the value from GetResults
//   - Canceled fails with ErrCanceled
//   - Error fails with the classified ErrorCode, per WithClassifier
//
// There is no cancellation signal, call op.Cancel directly. Providing a nil
// op will cause a panic. The returned future need not be consumed.
func WrapOperation[T any](op nativeasync.Operation[T], options ...Option) *Future[T] {
	if op == nil {
		panic(`bridge: nil operation`)
	}

	opts := resolveOptions(options)
	future := newFuture[T]()

	source := newCompletion(func(o outcome, value T, err error) {
		if o == cancelled {
			future.settle(value, ErrCanceled)
			return
		}
		settle(opts, future, o, value, err)
	})

	if err := op.SetCompleted(func(info nativeasync.Operation[T], status nativeasync.Status) {
		observe(opts, info, status, source, info.GetResults)
	}); err != nil {
		source.setFault(fmt.Errorf(`bridge: operation %d: %w`, op.ID(), err))
	}

	return future
}
