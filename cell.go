package vgatext

// Cell is a single character position as stored by the hardware: the
// character byte followed by its color byte.
type Cell struct {
	Char  byte
	Color ColorCode
}

// Blank is the cell written into rows cleared by a scroll.
var Blank = Cell{}

// Word returns the little-endian 16-bit device representation of the cell.
func (c Cell) Word() uint16 {
	return uint16(c.Color)<<8 | uint16(c.Char)
}

// CellFromWord decodes a 16-bit device word.
func CellFromWord(w uint16) Cell {
	return Cell{
		Char:  byte(w),
		Color: ColorCode(w >> 8),
	}
}
