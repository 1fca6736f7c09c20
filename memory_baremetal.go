//go:build baremetal

package vgatext

import "unsafe"

// defaultMemory is the hardware text buffer itself.
func defaultMemory() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(PhysAddr)), BufferSize)
}
