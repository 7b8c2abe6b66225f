package bridge

import (
	"github.com/joeycumines/go-eventloop"
)

// ToPromise returns a promise that settles with the result of future:
// fulfilled with the value, or rejected with the error. Providing a nil js
// or future will cause a panic.
func ToPromise[T any](js *eventloop.JS, future *Future[T]) *eventloop.ChainedPromise {
	if js == nil {
		panic(`bridge: nil js`)
	}
	if future == nil {
		panic(`bridge: nil future`)
	}
	promise, resolve, reject := js.NewChainedPromise()
	settle := func() {
		if value, err := future.Wait(); err != nil {
			reject(err)
		} else {
			resolve(value)
		}
	}
	if future.Settled() {
		settle()
	} else {
		go settle()
	}
	return promise
}
