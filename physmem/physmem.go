// Package physmem provides access to the VGA text buffer from a hosted
// operating system.
//
// The buffer is mapped from physical memory (through /dev/mem), which
// requires root privileges and a machine whose console is still in VGA text
// mode. Once opened, the device can back a [vgatext.Writer] like any other
// [vgatext.Memory].
package physmem

import (
	"errors"

	"github.com/BeatGlow/vgatext"
)

// Errors
var (
	ErrNotSupported = errors.New("physmem: not supported")
	ErrNotTextMode  = errors.New("physmem: console is not in text mode")
)

// Config is the device configuration.
type Config struct {
	// Base is the physical address of the text buffer.
	Base uintptr

	// Console is the virtual console checked for text mode before mapping,
	// leave empty to skip the check.
	Console string
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Base:    vgatext.PhysAddr,
	Console: "/dev/tty0",
}
