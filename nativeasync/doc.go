// Package nativeasync models callback-based native asynchronous handles, in
// the style of the WinRT IAsyncAction and IAsyncOperation interfaces.
//
// A handle represents one in-flight operation, and delivers exactly one
// terminal completion notification, to a single-assignment completed
// handler. The package provides the handle contracts ([Action] and
// [Operation]), manually driven handles ([ManualAction] and
// [ManualOperation]), and a goroutine backed reference [Runtime].
//
// See also [github.com/kouweizhong/sockets-for-pcl/bridge], which converts
// these handles into awaitable futures.
package nativeasync
