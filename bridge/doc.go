// Package bridge converts callback-based native async handles, see
// [github.com/kouweizhong/sockets-for-pcl/nativeasync], into awaitable
// [Future] values, with typed errors.
//
// Each bridged call has three possible outcomes: success, cancellation, or
// failure. Failures are passed through a [Classifier], which by default
// elevates recognized socket error codes to [*socketerr.Error], and returns
// everything else unchanged.
//
// Cancellation is requested through a [Signal] (e.g. a context), but only
// realized when the native handle reports the Canceled status. If the
// caller's signal was requested, the caller's own error is returned (e.g.
// [context.Canceled]), otherwise [ErrCanceled] is returned.
//
// # Usage
//
//	rt, err := nativeasync.NewRuntime()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close(context.Background())
//
//	conn, err := bridge.WrapOperation(nativeasync.RunOperation(rt, func(ctx context.Context) (net.Conn, error) {
//	    return new(net.Dialer).DialContext(ctx, `tcp`, addr)
//	})).Await(ctx)
//	if socketerr.IsCategory(err, socketerr.ConnectionRefused) {
//	    // handle refused
//	}
package bridge
