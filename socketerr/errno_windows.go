//go:build windows

package socketerr

import (
	"golang.org/x/sys/windows"
)

// the x/sys/windows constants cover only part of winsock
var errnoTable = func() MapTable {
	t := make(MapTable, len(win32Categories))
	for code, category := range win32Categories {
		t[Code(code)] = category
	}
	t[Code(windows.ERROR_OPERATION_ABORTED)] = OperationAborted
	t[Code(windows.WSAECONNREFUSED)] = ConnectionRefused
	t[Code(windows.WSAECONNRESET)] = ConnectionResetByPeer
	t[Code(windows.WSAECONNABORTED)] = SoftwareCausedConnectionAbort
	return t
}()

// ErrnoTable returns a Table of the native errno values, for the build
// platform. On windows, these are the raw Win32 and Winsock codes.
func ErrnoTable() Table { return errnoTable }
