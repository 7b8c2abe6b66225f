package bridge

import (
	"github.com/kouweizhong/sockets-for-pcl/nativeasync"
)

// observe implements the completed handler shared by actions and
// operations. It only resolves source, and never blocks.
func observe[T any](opts *bridgeOptions, info nativeasync.Info, status nativeasync.Status, source *completion[T], results func() (T, error)) {
	opts.logger.Trace().
		Uint64(`id`, info.ID()).
		Stringer(`status`, status).
		Log(`bridge: completion status received`)

	switch status {
	case nativeasync.Started:
		// progress notification, not terminal

	case nativeasync.Completed:
		value, err := results()
		if err != nil {
			source.setError(err)
		} else {
			source.setResult(value)
		}

	case nativeasync.Canceled:
		source.setCanceled()

	case nativeasync.Error:
		err := info.ErrorCode()
		if err == nil {
			err = ErrNoErrorCode
		}
		source.setError(err)

	default:
		err := &StatusError{ID: info.ID(), Status: status}
		opts.logger.Crit().
			Uint64(`id`, info.ID()).
			Stringer(`status`, status).
			Log(`bridge: native handle reported an invalid status`)
		source.setFault(err)
		panic(err)
	}
}

// settle normalizes a non-cancelled outcome onto future.
func settle[T any](opts *bridgeOptions, future *Future[T], o outcome, value T, err error) {
	switch o {
	case succeeded:
		future.settle(value, nil)
	case failed:
		var zero T
		if classified := opts.classifier.Classify(err); classified != nil {
			err = classified
		}
		future.settle(zero, err)
	default:
		var zero T
		future.settle(zero, err)
	}
}
