// Package ioctl wraps the ioctl system call for console devices.
package ioctl

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

// Command to be sent over ioctl.
type Command uintptr

// Console commands, from <linux/kd.h>.
const (
	KDGetMode Command = 0x4b3b // get text/graphics mode
	KDSetMode Command = 0x4b3a // set text/graphics mode
)

// Console modes, from <linux/kd.h>.
const (
	KDText     = 0x00
	KDGraphics = 0x01
)

func (c Command) String() string {
	switch c {
	case KDGetMode:
		return "KDGETMODE"
	case KDSetMode:
		return "KDSETMODE"
	default:
		return fmt.Sprintf("ioctl 0x%04x", uintptr(c))
	}
}

// Call does a plain ioctl system call.
func Call(fd uintptr, command Command, arg uintptr) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), arg); errno != 0 {
		return &os.SyscallError{
			Syscall: "SYS_IOCTL " + command.String(),
			Err:     errno,
		}
	}
	return nil
}

// ReadInt executes a command that stores an int at the pointer argument.
func ReadInt(fd uintptr, command Command) (int, error) {
	var v int32
	if err := Call(fd, command, uintptr(unsafe.Pointer(&v))); err != nil {
		return 0, err
	}
	return int(v), nil
}
