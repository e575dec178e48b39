// Package status defines the error-code surface returned by the public tree
// operations. It mirrors the way the teacher's fuse package represents
// kernel status codes: a small integer type layered directly on
// syscall.Errno, rather than a bespoke error hierarchy.
package status

import (
	"errors"
	"syscall"
)

// Code is the return status of a public tree operation. Zero means success;
// negative values are reserved for codes that have no POSIX errno
// counterpart (EINVMV).
type Code int32

// Ok reports whether code represents success.
func (c Code) Ok() bool {
	return c == OK
}

func (c Code) Error() string {
	return c.String()
}

func (c Code) String() string {
	if c == OK {
		return "OK"
	}
	if c == EINVMV {
		return "EINVMV: move destination is within source subtree"
	}
	return syscall.Errno(c).Error()
}

// Status codes named in spec §6. Values match the platform's syscall.Errno,
// so syscall.Errno(c) gives the corresponding errno (String relies on this).
// Code is its own type, though: errors.Is does not treat a Code and the
// syscall.Errno of the same value as equal.
const (
	OK        Code = 0
	EINVAL    Code = Code(syscall.EINVAL)
	ENOENT    Code = Code(syscall.ENOENT)
	EEXIST    Code = Code(syscall.EEXIST)
	ENOTEMPTY Code = Code(syscall.ENOTEMPTY)
	EBUSY     Code = Code(syscall.EBUSY)

	// EINVMV has no POSIX errno analogue: the source doesn't reuse any
	// existing errno for "move destination is inside source", so it is a
	// dedicated negative code, per spec §6.
	EINVMV Code = -20
)

// FromError converts err into the Code it wraps, for boundary code that
// needs to return a status.Code from an error built with pkg/errors
// (errors.Wrap/Wrapf chain Unwrap through to the underlying Code).
func FromError(err error) Code {
	if err == nil {
		return OK
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return EINVAL
}
