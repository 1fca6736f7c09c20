package vgatext

import (
	"fmt"
	"log"
)

// Writer prints bytes to a text buffer, tracking the position of the next
// character. Lines wrap at the right edge; once the last row is reached the
// content scrolls up and the cursor stays on the last row.
//
// A Writer is not safe for concurrent use, see [Default].
type Writer struct {
	mem  Memory
	col  int
	row  int
	code ColorCode
}

// NewWriter returns a writer positioned at the top left cell of mem.
func NewWriter(mem Memory, code ColorCode) *Writer {
	return &Writer{
		mem:  mem,
		code: code,
	}
}

func (w *Writer) String() string {
	return fmt.Sprintf("writer at row %d column %d (%s)", w.row, w.col, w.code)
}

// Position returns the row and column of the next character.
func (w *Writer) Position() (row, col int) {
	return w.row, w.col
}

// ColorCode used for new characters.
func (w *Writer) ColorCode() ColorCode {
	return w.code
}

// Memory the writer draws into.
func (w *Writer) Memory() Memory {
	return w.mem
}

// WriteByte draws one byte at the cursor. A newline moves to the next line
// without drawing. The byte is written as is; see WriteString for filtering.
//
// The returned error is always nil.
func (w *Writer) WriteByte(b byte) error {
	if b == '\n' {
		w.newLine()
		return nil
	}

	if w.col >= Width {
		w.newLine()
	}
	w.mem.WriteCell(w.row, w.col, Cell{Char: b, Color: w.code})
	w.col++
	return nil
}

// WriteString draws the bytes of s. Bytes outside printable ASCII, other
// than newline, are drawn as [Placeholder]. Multi-byte UTF-8 sequences
// produce one placeholder per byte.
func (w *Writer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		_ = w.WriteByte(sanitize(s[i]))
	}
	return len(s), nil
}

// Write is like WriteString, it makes the Writer a sink for fmt.Fprint and friends.
func (w *Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		_ = w.WriteByte(sanitize(b))
	}
	return len(p), nil
}

func sanitize(b byte) byte {
	if (b >= 0x20 && b <= 0x7e) || b == '\n' {
		return b
	}
	return Placeholder
}

func (w *Writer) newLine() {
	if w.row < Height-1 {
		w.row++
		w.col = 0
		return
	}

	w.scroll()
	w.col = 0
}

// scroll moves every row up by one, dropping the top row, and clears the last row.
func (w *Writer) scroll() {
	if debug {
		log.Printf("vgatext: scroll (%s)", w)
	}
	for row := 0; row < Height-1; row++ {
		for col := 0; col < Width; col++ {
			w.mem.WriteCell(row, col, w.mem.ReadCell(row+1, col))
		}
	}
	for col := 0; col < Width; col++ {
		w.mem.WriteCell(Height-1, col, Blank)
	}
}
