package nativeasync

type (
	// ManualAction is an Action that is completed explicitly, by calling its
	// Report, Complete, Fail, or Abort methods. The zero value is not valid,
	// use NewManualAction.
	//
	// Completion notifications are delivered synchronously, on the goroutine
	// calling the reporting method.
	ManualAction struct {
		h *handle[struct{}]
	}

	// ManualOperation is the Operation equivalent of ManualAction.
	ManualOperation[T any] struct {
		h *handle[T]
	}
)

var (
	_ Action         = (*ManualAction)(nil)
	_ Operation[any] = (*ManualOperation[any])(nil)
)

// NewManualAction returns a new, started, ManualAction.
func NewManualAction() *ManualAction {
	return &ManualAction{h: newHandle[struct{}](nil)}
}

func (x *ManualAction) ID() uint64 { return x.h.id }

func (x *ManualAction) Status() Status { return x.h.getStatus() }

func (x *ManualAction) ErrorCode() error { return x.h.errorCode() }

// Cancel records a cancellation request, see CancelRequested. It doesn't
// complete the action, use Abort for that.
func (x *ManualAction) Cancel() { x.h.requestCancel() }

func (x *ManualAction) SetCompleted(handler func(action Action, status Status)) error {
	if handler == nil {
		panic(`nativeasync: nil completed handler`)
	}
	return x.h.setCompleted(func(status Status) { handler(x, status) })
}

// Report delivers status to the completed handler. Terminal statuses
// complete the action (Error with a nil ErrorCode). Started and invalid
// statuses are forwarded as-is, without changing state.
func (x *ManualAction) Report(status Status) error {
	if status.Terminal() {
		return x.h.complete(status, struct{}{}, nil)
	}
	return x.h.notify(status)
}

// Complete completes the action successfully.
func (x *ManualAction) Complete() error { return x.h.complete(Completed, struct{}{}, nil) }

// Fail completes the action with the Error status, and the given raw error.
func (x *ManualAction) Fail(err error) error { return x.h.complete(Error, struct{}{}, err) }

// Abort completes the action with the Canceled status.
func (x *ManualAction) Abort() error { return x.h.complete(Canceled, struct{}{}, nil) }

// CancelRequested returns true if Cancel has been called at least once.
func (x *ManualAction) CancelRequested() bool { return x.h.cancelRequests() != 0 }

// CancelCount returns the number of calls to Cancel.
func (x *ManualAction) CancelCount() int { return x.h.cancelRequests() }

// NewManualOperation returns a new, started, ManualOperation.
func NewManualOperation[T any]() *ManualOperation[T] {
	return &ManualOperation[T]{h: newHandle[T](nil)}
}

func (x *ManualOperation[T]) ID() uint64 { return x.h.id }

func (x *ManualOperation[T]) Status() Status { return x.h.getStatus() }

func (x *ManualOperation[T]) ErrorCode() error { return x.h.errorCode() }

// Cancel behaves per ManualAction.Cancel.
func (x *ManualOperation[T]) Cancel() { x.h.requestCancel() }

func (x *ManualOperation[T]) SetCompleted(handler func(operation Operation[T], status Status)) error {
	if handler == nil {
		panic(`nativeasync: nil completed handler`)
	}
	return x.h.setCompleted(func(status Status) { handler(x, status) })
}

func (x *ManualOperation[T]) GetResults() (T, error) { return x.h.getResults() }

// Report behaves per ManualAction.Report, completing with the zero value of
// T, for the Completed status.
func (x *ManualOperation[T]) Report(status Status) error {
	if status.Terminal() {
		var zero T
		return x.h.complete(status, zero, nil)
	}
	return x.h.notify(status)
}

// Complete completes the operation successfully, with the given result.
func (x *ManualOperation[T]) Complete(result T) error { return x.h.complete(Completed, result, nil) }

// Fail completes the operation with the Error status, and the given raw error.
func (x *ManualOperation[T]) Fail(err error) error {
	var zero T
	return x.h.complete(Error, zero, err)
}

// Abort completes the operation with the Canceled status.
func (x *ManualOperation[T]) Abort() error {
	var zero T
	return x.h.complete(Canceled, zero, nil)
}

// CancelRequested returns true if Cancel has been called at least once.
func (x *ManualOperation[T]) CancelRequested() bool { return x.h.cancelRequests() != 0 }

// CancelCount returns the number of calls to Cancel.
func (x *ManualOperation[T]) CancelCount() int { return x.h.cancelRequests() }
