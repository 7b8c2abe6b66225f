package socketerr

import (
	"errors"
	"strconv"
)

// Error is a raw platform error, recognized as a socket error condition.
type Error struct {
	// Err is the original raw error.
	Err error
	// Code is the result code extracted from Err.
	Code Code
	// Space is the numbering of Code.
	Space Space
	// Category is the socket error condition, never Unknown.
	Category Category
}

// Error implements the error interface.
func (e *Error) Error() string {
	s := `socket error: ` + e.Category.String()
	if e.Space == ErrnoSpace {
		s += ` (errno ` + strconv.FormatUint(uint64(e.Code), 10) + `)`
	} else {
		s += ` (0x` + strconv.FormatUint(uint64(e.Code), 16) + `)`
	}
	if e.Err != nil {
		s += `: ` + e.Err.Error()
	}
	return s
}

// Unwrap returns the original raw error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is returns true if target is an *Error of the same Category, allowing
// matching with a template, e.g. errors.Is(err, &Error{Category: ConnectionRefused}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Category == e.Category
}

// CategoryOf returns the Category of the first *Error in the chain of err,
// or Unknown.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return Unknown
}

// IsCategory returns true if the chain of err contains an *Error with the
// given category.
func IsCategory(err error, category Category) bool {
	return CategoryOf(err) == category && category != Unknown
}
