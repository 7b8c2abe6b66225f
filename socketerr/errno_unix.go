//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package socketerr

import (
	"golang.org/x/sys/unix"
)

var errnoTable = MapTable{
	Code(unix.ECANCELED):       OperationAborted,
	Code(unix.ETIMEDOUT):       ConnectionTimedOut,
	Code(unix.EAFNOSUPPORT):    AddressFamilyNotSupported,
	Code(unix.ESOCKTNOSUPPORT): SocketTypeNotSupported,
	Code(unix.EADDRINUSE):      AddressAlreadyInUse,
	Code(unix.EADDRNOTAVAIL):   CannotAssignRequestedAddress,
	Code(unix.ECONNREFUSED):    ConnectionRefused,
	Code(unix.ENETUNREACH):     NetworkIsUnreachable,
	Code(unix.EHOSTUNREACH):    UnreachableHost,
	Code(unix.ENETDOWN):        NetworkIsDown,
	Code(unix.ENETRESET):       NetworkDroppedConnectionOnReset,
	Code(unix.ECONNABORTED):    SoftwareCausedConnectionAbort,
	Code(unix.ECONNRESET):      ConnectionResetByPeer,
	Code(unix.EHOSTDOWN):       HostIsDown,
	Code(unix.EMFILE):          TooManyOpenFiles,
	Code(unix.EMSGSIZE):        MessageTooLong,
}

// ErrnoTable returns a Table of the native errno values, for the build
// platform.
func ErrnoTable() Table { return errnoTable }
