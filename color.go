package vgatext

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is one of the 16 fixed text mode colors.
type Color uint8

// Supported colors, in hardware order.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

var colorNames = [16]string{
	"black", "blue", "green", "cyan",
	"red", "magenta", "brown", "light gray",
	"dark gray", "light blue", "light green", "light cyan",
	"light red", "pink", "yellow", "white",
}

// Palette is the standard VGA palette, indexed by Color.
var Palette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0x00, 0x00, 0xaa, 0xff},
	color.RGBA{0x00, 0xaa, 0x00, 0xff},
	color.RGBA{0x00, 0xaa, 0xaa, 0xff},
	color.RGBA{0xaa, 0x00, 0x00, 0xff},
	color.RGBA{0xaa, 0x00, 0xaa, 0xff},
	color.RGBA{0xaa, 0x55, 0x00, 0xff},
	color.RGBA{0xaa, 0xaa, 0xaa, 0xff},
	color.RGBA{0x55, 0x55, 0x55, 0xff},
	color.RGBA{0x55, 0x55, 0xff, 0xff},
	color.RGBA{0x55, 0xff, 0x55, 0xff},
	color.RGBA{0x55, 0xff, 0xff, 0xff},
	color.RGBA{0xff, 0x55, 0x55, 0xff},
	color.RGBA{0xff, 0x55, 0xff, 0xff},
	color.RGBA{0xff, 0xff, 0x55, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
}

// ColorModel converts any color to the nearest palette Color.
var ColorModel color.Model = color.ModelFunc(colorModel)

// ColorFromCode converts a numeric code to a Color.
func ColorFromCode(n uint8) (Color, error) {
	if n > uint8(White) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColor, n)
	}
	return Color(n), nil
}

func (c Color) String() string {
	return colorNames[c&0x0f]
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return Palette[c&0x0f].RGBA()
}

var labPalette [16]colorful.Color

func init() {
	for i, c := range Palette {
		labPalette[i], _ = colorful.MakeColor(c)
	}
}

func colorModel(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}

	// Fully transparent colors can't be converted by colorful.
	want, ok := colorful.MakeColor(c)
	if !ok {
		return Black
	}

	var (
		best     Color
		bestDist = want.DistanceLab(labPalette[0])
	)
	for i := 1; i < len(labPalette); i++ {
		if d := want.DistanceLab(labPalette[i]); d < bestDist {
			best, bestDist = Color(i), d
		}
	}
	return best
}

// ColorCode is a packed foreground and background color byte.
type ColorCode uint8

// DefaultColorCode is light green text on a black background.
var DefaultColorCode = NewColorCode(LightGreen, Black)

// NewColorCode packs the foreground in the low nibble and the background in the high nibble.
func NewColorCode(fg, bg Color) ColorCode {
	return ColorCode((bg&0x0f)<<4 | fg&0x0f)
}

// Foreground color.
func (c ColorCode) Foreground() Color {
	return Color(c & 0x0f)
}

// Background color.
func (c ColorCode) Background() Color {
	return Color(c >> 4)
}

func (c ColorCode) String() string {
	return fmt.Sprintf("%s on %s", c.Foreground(), c.Background())
}
