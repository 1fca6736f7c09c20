package vgatext

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"unsafe"
)

// claims holds the base addresses of every live Region.
var claims struct {
	sync.Mutex
	bases []uintptr
}

// Region is the exclusive owner of a device memory range.
//
// Cells are accessed with atomic operations on the aligned 32-bit word
// holding them, so no store is ever merged, reordered or dropped by the
// compiler. The word layout assumes a little-endian host.
type Region struct {
	base  uintptr
	words []uint32
}

// ClaimRegion takes ownership of the text buffer at physical address base,
// accessed through mem. Only one Region may cover a given address range.
func ClaimRegion(base uintptr, mem []byte) (*Region, error) {
	if len(mem) < BufferSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrRegionSize, len(mem))
	}
	ptr := unsafe.Pointer(&mem[0])
	if uintptr(ptr)&3 != 0 {
		return nil, ErrRegionAlign
	}

	claims.Lock()
	defer claims.Unlock()
	for _, other := range claims.bases {
		if base < other+BufferSize && other < base+BufferSize {
			return nil, fmt.Errorf("%w: %#x overlaps %#x", ErrRegionClaimed, base, other)
		}
	}
	claims.bases = append(claims.bases, base)

	if debug {
		log.Printf("vgatext: claimed region %#x-%#x", base, base+BufferSize)
	}
	return &Region{
		base:  base,
		words: unsafe.Slice((*uint32)(ptr), BufferSize/4),
	}, nil
}

// Release gives up ownership. The region must not be used afterwards.
func (r *Region) Release() {
	claims.Lock()
	defer claims.Unlock()
	for i, base := range claims.bases {
		if base == r.base {
			claims.bases = append(claims.bases[:i], claims.bases[i+1:]...)
			break
		}
	}
	r.words = nil
}

func (r *Region) String() string {
	return fmt.Sprintf("VGA text buffer at %#x", r.base)
}

// Base returns the physical base address.
func (r *Region) Base() uintptr {
	return r.base
}

func (r *Region) word(row, col int) (*uint32, uint) {
	i := row*Width + col
	return &r.words[i>>1], uint(i&1) * 16
}

func (r *Region) ReadCell(row, col int) Cell {
	p, shift := r.word(row, col)
	return CellFromWord(uint16(atomic.LoadUint32(p) >> shift))
}

func (r *Region) WriteCell(row, col int, c Cell) {
	p, shift := r.word(row, col)
	mask := uint32(0xffff) << shift
	for {
		old := atomic.LoadUint32(p)
		if atomic.CompareAndSwapUint32(p, old, old&^mask|uint32(c.Word())<<shift) {
			return
		}
	}
}
