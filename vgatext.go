// Package vgatext is a driver for the VGA text mode buffer.
//
// The buffer is a fixed grid of 80x25 character cells mapped at physical
// address 0xb8000. A [Writer] tracks a software cursor over the grid, wraps
// long lines and scrolls the content up once output reaches the last row.
// The process-wide writer returned by [Default] is guarded by a [SpinLock].
package vgatext

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("VGATEXT_DEBUG") != ""
}

// Grid dimensions.
const (
	Width      = 80
	Height     = 25
	BufferSize = Width * Height * 2 // in bytes, two bytes per cell
)

// PhysAddr is the physical address of the VGA text buffer.
const PhysAddr uintptr = 0xb8000

// Placeholder is drawn for every byte that is not printable ASCII.
const Placeholder byte = 0xfe

// Errors
var (
	ErrInvalidColor  = errors.New("vgatext: invalid color")
	ErrRegionClaimed = errors.New("vgatext: memory region already claimed")
	ErrRegionSize    = errors.New("vgatext: memory region too small")
	ErrRegionAlign   = errors.New("vgatext: memory region not word aligned")
)
