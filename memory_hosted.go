//go:build !baremetal

package vgatext

import "unsafe"

// defaultMemory is a shadow buffer; hosted processes reach the hardware
// through the physmem package instead.
func defaultMemory() []byte {
	// Allocated as words to guarantee alignment.
	words := make([]uint32, BufferSize/4)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), BufferSize)
}
