package tagfs

import (
	"errors"
	"syscall"
)

// Sentinel errors returned by the protocol operations.
var (
	ErrNotFound     = errors.New("no such file or directory")
	ErrAccessDenied = errors.New("permission denied: filesystem is read-only")
	ErrIO           = errors.New("input/output error")
)

// toErrno maps an operation error onto the errno reported to the kernel.
func toErrno(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return syscall.ENOENT
	case errors.Is(err, ErrAccessDenied):
		return syscall.EACCES
	default:
		return syscall.EIO
	}
}
