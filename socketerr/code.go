package socketerr

import (
	"errors"
	"strconv"
	"syscall"
)

type (
	// Code is a platform result code, either an HRESULT, or a native errno
	// value.
	Code uint32

	// Space identifies the numbering a Code belongs to. Codes are only
	// comparable within the same Space.
	Space uint8

	// HResulter is implemented by raw errors that carry an HRESULT.
	HResulter interface {
		error
		HResult() int32
	}
)

const (
	// HResultSpace codes are HRESULTs, as reported by an HResulter.
	HResultSpace Space = iota + 1
	// ErrnoSpace codes are native errno values, as reported by a
	// syscall.Errno.
	ErrnoSpace
)

func (x Space) String() string {
	switch x {
	case HResultSpace:
		return `hresult`
	case ErrnoSpace:
		return `errno`
	default:
		return `space(` + strconv.FormatUint(uint64(x), 10) + `)`
	}
}

// HResultFromWin32 converts a Win32 (or Winsock) error code to an HRESULT,
// per the HRESULT_FROM_WIN32 macro.
func HResultFromWin32(code uint32) Code {
	if int32(code) <= 0 {
		return Code(code)
	}
	return Code(code&0x0000FFFF | 7<<16 | 0x80000000)
}

// CodeOf extracts the result code from err, searching the chain (per
// errors.As) for an HResulter, then a syscall.Errno. The space identifies
// which was found, and ok is false if neither was.
func CodeOf(err error) (code Code, space Space, ok bool) {
	if err == nil {
		return 0, 0, false
	}
	var hr HResulter
	if errors.As(err, &hr) {
		return Code(uint32(hr.HResult())), HResultSpace, true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return Code(errno), ErrnoSpace, true
	}
	return 0, 0, false
}
