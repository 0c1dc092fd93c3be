package ioctl

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Do executes the ioctl call, arg points at the request structure.
func Do(fd uintptr, command Command, arg unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(command), uintptr(arg)); errno != 0 {
		return &os.SyscallError{
			Syscall: command.String(),
			Err:     errno,
		}
	}
	return nil
}
