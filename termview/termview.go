// Package termview shows the text buffer in a terminal.
//
// It emulates the display device on a host: every cell of the grid is
// placed on a tcell screen with its foreground and background color.
package termview

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/BeatGlow/vgatext"
)

// PlaceholderRune is shown for cells holding a byte outside printable ASCII.
const PlaceholderRune = '■'

// ansi maps text mode colors to the terminal's 16 color palette.
var ansi = [16]int{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// View draws grids onto a tcell screen.
type View struct {
	Screen tcell.Screen

	// TrueColor uses the exact VGA palette instead of the terminal palette.
	TrueColor bool
}

// New returns a view on an initialized screen.
func New(screen tcell.Screen) *View {
	return &View{Screen: screen}
}

// Color returns the terminal color for c.
func (v *View) Color(c vgatext.Color) tcell.Color {
	if v.TrueColor {
		rgba := vgatext.Palette[c&0x0f].(color.RGBA)
		return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
	}
	return tcell.PaletteColor(ansi[c&0x0f])
}

// Style returns the terminal style for a color code.
func (v *View) Style(code vgatext.ColorCode) tcell.Style {
	return tcell.StyleDefault.
		Foreground(v.Color(code.Foreground())).
		Background(v.Color(code.Background()))
}

// Draw places every cell of s on the screen. Cells outside the screen are skipped.
func (v *View) Draw(s *vgatext.Snapshot) {
	w, h := v.Screen.Size()
	for row := 0; row < vgatext.Height && row < h; row++ {
		for col := 0; col < vgatext.Width && col < w; col++ {
			c := s[row][col]
			v.Screen.SetContent(col, row, Rune(c.Char), nil, v.Style(c.Color))
		}
	}
}

// Refresh draws the current content of mem and shows it.
func (v *View) Refresh(mem vgatext.Memory) {
	s := vgatext.Capture(mem)
	v.Draw(&s)
	v.Screen.Show()
}

// Rune returns the rune shown for a cell character.
func Rune(b byte) rune {
	switch {
	case b == 0x00:
		return ' '
	case b >= 0x20 && b <= 0x7e:
		return rune(b)
	default:
		return PlaceholderRune
	}
}
