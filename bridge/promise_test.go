package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/joeycumines/go-eventloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kouweizhong/sockets-for-pcl/nativeasync"
	"github.com/kouweizhong/sockets-for-pcl/socketerr"
)

func newTestJS(t *testing.T) *eventloop.JS {
	t.Helper()
	loop, err := eventloop.New()
	require.NoError(t, err)
	js, err := eventloop.NewJS(loop)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	t.Cleanup(func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second*5)
		defer shutdownCancel()
		_ = loop.Shutdown(shutdownCtx)
		cancel()
		<-done
	})
	return js
}

func awaitPromise(t *testing.T, promise *eventloop.ChainedPromise) any {
	t.Helper()
	select {
	case result := <-promise.ToChannel():
		return result
	case <-time.After(time.Second * 5):
		t.Fatal(`promise did not settle`)
		return nil
	}
}

func TestToPromise_fulfilled(t *testing.T) {
	js := newTestJS(t)
	op := nativeasync.NewManualOperation[int]()
	promise := ToPromise(js, WrapOperation[int](op))
	assert.Equal(t, eventloop.Pending, promise.State())
	require.NoError(t, op.Complete(7))
	assert.Equal(t, 7, awaitPromise(t, promise))
	assert.Equal(t, eventloop.Fulfilled, promise.State())
	assert.Equal(t, 7, promise.Value())
}

func TestToPromise_rejected(t *testing.T) {
	js := newTestJS(t)
	op := nativeasync.NewManualOperation[int]()
	require.NoError(t, op.Fail(hrConnRefused))
	promise := ToPromise(js, WrapOperation[int](op))
	// already settled futures settle the promise synchronously
	assert.Equal(t, eventloop.Rejected, promise.State())
	result := awaitPromise(t, promise)
	err, ok := result.(error)
	require.True(t, ok, result)
	assert.True(t, socketerr.IsCategory(err, socketerr.ConnectionRefused))
}

func TestToPromise_action(t *testing.T) {
	js := newTestJS(t)
	action := nativeasync.NewManualAction()
	promise := ToPromise(js, WrapAction(context.Background(), action))
	require.NoError(t, action.Complete())
	assert.Equal(t, struct{}{}, awaitPromise(t, promise))
}

func TestToPromise_nilArgs(t *testing.T) {
	assert.PanicsWithValue(t, `bridge: nil js`, func() {
		ToPromise[int](nil, newFuture[int]())
	})
	js := newTestJS(t)
	assert.PanicsWithValue(t, `bridge: nil future`, func() {
		ToPromise[int](js, nil)
	})
}
