package vgatext

import (
	"encoding/binary"
	"strings"
)

// Memory is the cell storage a Writer draws into.
//
// Implementations access exactly one cell per call; row and col are always
// within the grid.
type Memory interface {
	// ReadCell returns the cell at (row, col).
	ReadCell(row, col int) Cell

	// WriteCell stores the cell at (row, col).
	WriteCell(row, col int, c Cell)
}

// Buffer is an in-process copy of the device memory, laid out exactly like
// the hardware buffer.
type Buffer struct {
	// Pix are the cell bytes, character then color.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent cells.
	Stride int
}

// NewBuffer returns a blank buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		Pix:    make([]byte, BufferSize),
		Stride: Width * 2,
	}
}

// CellOffset returns the offset of the first byte of the cell at (row, col).
func (b *Buffer) CellOffset(row, col int) int {
	return row*b.Stride + col*2
}

func (b *Buffer) ReadCell(row, col int) Cell {
	return CellFromWord(binary.LittleEndian.Uint16(b.Pix[b.CellOffset(row, col):]))
}

func (b *Buffer) WriteCell(row, col int, c Cell) {
	binary.LittleEndian.PutUint16(b.Pix[b.CellOffset(row, col):], c.Word())
}

// Bytes returns the raw cell bytes.
func (b *Buffer) Bytes() []byte {
	return b.Pix
}

// Clear the buffer.
func (b *Buffer) Clear() {
	for i := range b.Pix {
		b.Pix[i] = 0x00
	}
}

// Snapshot is a point in time copy of the grid.
type Snapshot [Height][Width]Cell

// Capture copies every cell of m.
func Capture(m Memory) (s Snapshot) {
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			s[row][col] = m.ReadCell(row, col)
		}
	}
	return
}

// Row returns the characters of a row, with trailing blank cells removed.
func (s *Snapshot) Row(row int) string {
	var b strings.Builder
	for _, c := range s[row] {
		b.WriteByte(c.Char)
	}
	return strings.TrimRight(b.String(), "\x00")
}
