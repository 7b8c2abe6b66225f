//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd || windows)

package socketerr

// ErrnoTable returns a Table of the native errno values, for the build
// platform. It is empty on this platform.
func ErrnoTable() Table { return MapTable(nil) }
