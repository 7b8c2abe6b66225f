package bridge

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/stretchr/testify/require"
)

// hresultError is a raw platform error, as produced by the native layer.
type hresultError int32

func (e hresultError) Error() string { return fmt.Sprintf(`hresult %#x`, uint32(e)) }

func (e hresultError) HResult() int32 { return int32(e) }

const (
	hrConnRefused  = hresultError(-2147014835) // 0x8007274D
	hrAccessDenied = hresultError(-2147024891) // 0x80070005
)

// checkNumGoroutines returns a func that fails the test if the number of
// goroutines doesn't return to at most the starting count, within timeout.
func checkNumGoroutines(timeout time.Duration) func(t *testing.T) {
	before := runtime.NumGoroutine()
	return func(t *testing.T) {
		t.Helper()
		deadline := time.Now().Add(timeout)
		for {
			n := runtime.NumGoroutine()
			if n <= before {
				return
			}
			if time.Now().After(deadline) {
				t.Errorf(`goroutines: started with %d, ended with %d`, before, n)
				return
			}
			time.Sleep(time.Millisecond * 10)
		}
	}
}

func requireSettled[T any](t *testing.T, future *Future[T]) (T, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	value, err := future.Await(ctx)
	require.NotErrorIs(t, ctx.Err(), context.DeadlineExceeded, `future did not settle`)
	return value, err
}

type safeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (x *safeBuffer) Write(p []byte) (int, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.b.Write(p)
}

func (x *safeBuffer) String() string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.b.String()
}

func newTestLogger(w *safeBuffer) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w), stumpy.WithTimeField(``)),
		stumpy.L.WithLevel(logiface.LevelTrace),
	).Logger()
}

func formatID(id uint64) string { return strconv.FormatUint(id, 10) }
