package nativeasync

import (
	"strconv"
)

// Status is the state of a native handle, as reported to its completed
// handler. The numbering matches the WinRT AsyncStatus enumeration.
type Status int32

const (
	// Started indicates the operation is in progress. It is the initial
	// status, and is not terminal.
	Started Status = iota
	// Completed indicates the operation finished successfully.
	Completed
	// Canceled indicates the operation was canceled.
	Canceled
	// Error indicates the operation failed, see Info.ErrorCode.
	Error
)

// Terminal returns true for the statuses that end an operation.
func (x Status) Terminal() bool {
	switch x {
	case Completed, Canceled, Error:
		return true
	default:
		return false
	}
}

// Valid returns true if x is one of the defined statuses.
func (x Status) Valid() bool {
	return x >= Started && x <= Error
}

func (x Status) String() string {
	switch x {
	case Started:
		return `started`
	case Completed:
		return `completed`
	case Canceled:
		return `canceled`
	case Error:
		return `error`
	default:
		return `status(` + strconv.FormatInt(int64(x), 10) + `)`
	}
}
