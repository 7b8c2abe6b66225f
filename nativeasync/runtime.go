package nativeasync

import (
	"context"
	"errors"
	"sync"

	"github.com/joeycumines/logiface"
)

type (
	// Runtime runs Go functions as native handles, each on its own goroutine,
	// completing the handle when the function returns. It is a reference
	// implementation of the native layer, e.g. for use with blocking socket
	// APIs.
	//
	// Runtime is safe for concurrent use. The zero value is not valid, use
	// NewRuntime.
	Runtime struct {
		logger  *logiface.Logger[logiface.Event]
		drained chan struct{}
		wg      sync.WaitGroup
		mu      sync.Mutex
		closed  bool
	}

	// RuntimeOption configures a Runtime instance.
	RuntimeOption interface {
		applyRuntime(*runtimeOptions) error
	}

	// ActionTask is an Action backed by a Runtime goroutine.
	ActionTask struct {
		h *handle[struct{}]
	}

	// OperationTask is an Operation backed by a Runtime goroutine.
	OperationTask[T any] struct {
		h *handle[T]
	}

	runtimeOptions struct {
		logger *logiface.Logger[logiface.Event]
	}

	runtimeOptionImpl struct {
		applyRuntimeFunc func(*runtimeOptions) error
	}
)

var (
	_ Action         = (*ActionTask)(nil)
	_ Operation[any] = (*OperationTask[any])(nil)
)

func (x *runtimeOptionImpl) applyRuntime(opts *runtimeOptions) error {
	return x.applyRuntimeFunc(opts)
}

// WithRuntimeLogger configures structured logging of task lifecycle events.
// A nil logger disables logging, which is the default.
func WithRuntimeLogger(logger *logiface.Logger[logiface.Event]) RuntimeOption {
	return &runtimeOptionImpl{func(opts *runtimeOptions) error {
		opts.logger = logger
		return nil
	}}
}

func resolveRuntimeOptions(opts []RuntimeOption) (*runtimeOptions, error) {
	cfg := &runtimeOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyRuntime(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// NewRuntime initializes a new Runtime.
func NewRuntime(options ...RuntimeOption) (*Runtime, error) {
	opts, err := resolveRuntimeOptions(options)
	if err != nil {
		return nil, err
	}
	return &Runtime{logger: opts.logger}, nil
}

// Action starts fn as a new ActionTask. See RunOperation for the semantics.
func (x *Runtime) Action(fn func(ctx context.Context) error) *ActionTask {
	if fn == nil {
		panic(`nativeasync: nil action func`)
	}
	return &ActionTask{h: start(x, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})}
}

// Close prevents new tasks from starting, then waits for in-flight tasks
// to complete, or ctx to be done. Tasks started after Close complete
// immediately, with ErrRuntimeClosed.
//
// Close may be called any number of times. The first call starts a single
// goroutine, which waits for in-flight tasks, and exits once they complete,
// regardless of ctx.
func (x *Runtime) Close(ctx context.Context) error {
	x.mu.Lock()
	x.closed = true
	if x.drained == nil {
		x.drained = make(chan struct{})
		go func() {
			defer close(x.drained)
			x.wg.Wait()
		}()
	}
	drained := x.drained
	x.mu.Unlock()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOperation starts fn as a new OperationTask, run by rt.
//
// The ctx passed to fn is canceled by OperationTask.Cancel. The task
// completes when fn returns:
//   - a nil error completes with Completed, even if cancel was requested
//   - an error matching context.Canceled, after cancel was requested,
//     completes with Canceled
//   - any other error completes with Error, reported by ErrorCode
//   - panics complete with Error, reporting a PanicError
//   - runtime.Goexit completes with Error, reporting ErrGoexit
func RunOperation[T any](rt *Runtime, fn func(ctx context.Context) (T, error)) *OperationTask[T] {
	if rt == nil {
		panic(`nativeasync: nil runtime`)
	}
	if fn == nil {
		panic(`nativeasync: nil operation func`)
	}
	return &OperationTask[T]{h: start(rt, fn)}
}

func start[T any](rt *Runtime, fn func(ctx context.Context) (T, error)) *handle[T] {
	ctx, cancel := context.WithCancel(context.Background())
	h := newHandle[T](cancel)

	// the check and the Add must be atomic, vs Close
	rt.mu.Lock()
	if rt.closed {
		rt.mu.Unlock()
		cancel()
		var zero T
		_ = h.complete(Error, zero, ErrRuntimeClosed)
		return h
	}
	rt.wg.Add(1)
	rt.mu.Unlock()

	go run(rt, ctx, cancel, h, fn)

	return h
}

func run[T any](rt *Runtime, ctx context.Context, cancel context.CancelFunc, h *handle[T], fn func(ctx context.Context) (T, error)) {
	defer rt.wg.Done()
	defer cancel()

	var (
		result   T
		err      error
		returned bool
	)

	defer func() {
		status := Completed
		if r := recover(); r != nil {
			rt.logger.Err().
				Uint64(`id`, h.id).
				Any(`panic`, r).
				Log(`nativeasync: task panicked`)
			status, err = Error, PanicError{Value: r}
		} else if !returned {
			status, err = Error, ErrGoexit
		} else if err != nil {
			if h.cancelRequests() != 0 && errors.Is(err, context.Canceled) {
				status, err = Canceled, nil
			} else {
				status = Error
			}
		}
		if status != Completed {
			var zero T
			result = zero
		}
		rt.logger.Debug().
			Uint64(`id`, h.id).
			Stringer(`status`, status).
			Log(`nativeasync: task finished`)
		_ = h.complete(status, result, err)
	}()

	rt.logger.Debug().
		Uint64(`id`, h.id).
		Log(`nativeasync: task started`)
	_ = h.notify(Started)

	result, err = fn(ctx)
	returned = true
}

func (x *ActionTask) ID() uint64 { return x.h.id }

func (x *ActionTask) Status() Status { return x.h.getStatus() }

func (x *ActionTask) ErrorCode() error { return x.h.errorCode() }

// Cancel cancels the context passed to the task's function.
func (x *ActionTask) Cancel() { x.h.requestCancel() }

func (x *ActionTask) SetCompleted(handler func(action Action, status Status)) error {
	if handler == nil {
		panic(`nativeasync: nil completed handler`)
	}
	return x.h.setCompleted(func(status Status) { handler(x, status) })
}

func (x *OperationTask[T]) ID() uint64 { return x.h.id }

func (x *OperationTask[T]) Status() Status { return x.h.getStatus() }

func (x *OperationTask[T]) ErrorCode() error { return x.h.errorCode() }

// Cancel cancels the context passed to the task's function.
func (x *OperationTask[T]) Cancel() { x.h.requestCancel() }

func (x *OperationTask[T]) SetCompleted(handler func(operation Operation[T], status Status)) error {
	if handler == nil {
		panic(`nativeasync: nil completed handler`)
	}
	return x.h.setCompleted(func(status Status) { handler(x, status) })
}

func (x *OperationTask[T]) GetResults() (T, error) { return x.h.getResults() }
