//go:build linux || darwin

package bridge

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/joeycumines/go-eventloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kouweizhong/sockets-for-pcl/nativeasync"
)

func TestAbort_nil(t *testing.T) {
	assert.Equal(t, None, Abort(nil))
}

func TestAbort_signal(t *testing.T) {
	controller := eventloop.NewAbortController()
	signal := Abort(controller.Signal())
	assert.False(t, signal.Requested())
	assert.NoError(t, signal.Err())

	var calls int
	signal.Register(func() { calls++ })
	stop := signal.Register(func() { calls += 100 })
	stop()

	controller.Abort(`user cancelled`)
	assert.Equal(t, 1, calls)
	assert.True(t, signal.Requested())

	var abortErr *eventloop.AbortError
	require.True(t, errors.As(signal.Err(), &abortErr))
	assert.Equal(t, `user cancelled`, abortErr.Reason)
}

func TestWrapActionSignal_abort(t *testing.T) {
	defer checkNumGoroutines(time.Second * 3)(t)
	controller := eventloop.NewAbortController()
	action := nativeasync.NewManualAction()
	future := WrapActionSignal(Abort(controller.Signal()), action)

	controller.Abort(`shutting down`)
	assert.True(t, action.CancelRequested())
	assert.False(t, future.Settled())

	require.NoError(t, action.Abort())
	err := future.Err()
	var abortErr *eventloop.AbortError
	require.True(t, errors.As(err, &abortErr), err)
	assert.Equal(t, `shutting down`, abortErr.Reason)
	assert.Equal(t, `AbortError: shutting down`, err.Error())
}

func TestWrapActionSignal_abortAfterCompletion(t *testing.T) {
	controller := eventloop.NewAbortController()
	action := nativeasync.NewManualAction()
	future := WrapActionSignal(Abort(controller.Signal()), action)
	require.NoError(t, action.Complete())
	require.NoError(t, future.Err())
	controller.Abort(nil)
	assert.Zero(t, action.CancelCount())
}

func TestWrapActionSignal_alreadyAborted(t *testing.T) {
	controller := eventloop.NewAbortController()
	controller.Abort(nil)
	action := nativeasync.NewManualAction()
	future := WrapActionSignal(Abort(controller.Signal()), action)
	assert.Equal(t, 1, action.CancelCount())
	require.NoError(t, action.Abort())
	err := future.Err()
	assert.ErrorIs(t, err, &eventloop.AbortError{})
}

func TestAbort_stopReleasesCallback(t *testing.T) {
	controller := eventloop.NewAbortController()
	signal := Abort(controller.Signal())

	var released atomic.Bool
	func() {
		action := nativeasync.NewManualAction()
		runtime.AddCleanup(action, func(struct{}) { released.Store(true) }, struct{}{})
		stop := signal.Register(action.Cancel)
		stop()
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return released.Load()
	}, time.Second*5, time.Millisecond*10)

	// the handler is still registered, but has nothing to call
	controller.Abort(nil)
	assert.True(t, signal.Requested())
}
