package bridge

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNone(t *testing.T) {
	assert.False(t, None.Requested())
	assert.NoError(t, None.Err())
	stop := None.Register(func() { t.Error(`unexpected call`) })
	require.NotNil(t, stop)
	stop()
}

func TestContext_neverCanceled(t *testing.T) {
	assert.Equal(t, None, Context(context.Background()))
	assert.Equal(t, None, Context(context.TODO()))
}

func TestContext_nil(t *testing.T) {
	assert.PanicsWithValue(t, `bridge: nil context`, func() {
		//lint:ignore SA1012 testing nil context
		Context(nil)
	})
}

func TestContext_register(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	signal := Context(ctx)
	assert.False(t, signal.Requested())
	assert.NoError(t, signal.Err())

	var calls atomic.Int32
	signal.Register(func() { calls.Add(1) })
	stopped := signal.Register(func() { calls.Add(100) })
	stopped()

	cancel(context.DeadlineExceeded)
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second*5, time.Millisecond)
	time.Sleep(time.Millisecond * 20)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, signal.Requested())
	// Err is ctx.Err, not the cause
	assert.Equal(t, context.Canceled, signal.Err())
}

func TestContext_registerAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := make(chan struct{})
	Context(ctx).Register(func() { close(called) })
	select {
	case <-called:
	case <-time.After(time.Second * 5):
		t.Fatal(`expected call`)
	}
}
