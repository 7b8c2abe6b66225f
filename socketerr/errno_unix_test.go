//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package socketerr

import (
	"errors"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestClassify_errno(t *testing.T) {
	for _, tc := range [...]struct {
		errno    unix.Errno
		category Category
	}{
		{unix.ECONNREFUSED, ConnectionRefused},
		{unix.ECONNRESET, ConnectionResetByPeer},
		{unix.ETIMEDOUT, ConnectionTimedOut},
		{unix.EHOSTUNREACH, UnreachableHost},
		{unix.EADDRINUSE, AddressAlreadyInUse},
	} {
		t.Run(tc.errno.Error(), func(t *testing.T) {
			raw := &net.OpError{Op: `dial`, Net: `tcp`, Err: os.NewSyscallError(`connect`, tc.errno)}
			result := Classify(raw)
			var e *Error
			require.True(t, errors.As(result, &e))
			assert.Equal(t, tc.category, e.Category)
			assert.Equal(t, ErrnoSpace, e.Space)
			assert.Same(t, raw, e.Err)
			assert.True(t, errors.Is(result, tc.errno))
		})
	}
}

func TestClassify_errnoUnmapped(t *testing.T) {
	raw := os.NewSyscallError(`open`, unix.EACCES)
	assert.Equal(t, error(raw), Classify(raw))
}

func TestClassify_dialClosedPort(t *testing.T) {
	ln, err := net.Listen(`tcp`, `127.0.0.1:0`)
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	conn, err := net.Dial(`tcp`, addr)
	if err == nil {
		_ = conn.Close()
		t.Skip(`port was reused`)
	}
	assert.Equal(t, ConnectionRefused, CategoryOf(Classify(err)), err)
}
