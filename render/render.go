// Package render draws the text buffer as an image.
//
// Glyphs are rasterized with freetype from the Go Mono TrueType font, so a
// snapshot of the grid can be saved as a screenshot or pushed to any pixel
// display that implements periph's [display.Drawer].
package render

import (
	"image"
	"image/png"
	"io"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/vgatext"
)

// Config is the renderer configuration.
type Config struct {
	// Size of the font in points.
	Size float64

	// DPI is the resolution in dots per inch.
	DPI float64
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Size: 12,
	DPI:  72,
}

// Renderer rasterizes grid snapshots. It is not safe for concurrent use.
type Renderer struct {
	face   font.Face
	cell   image.Point
	ascent int
}

// New returns a renderer for config, nil selects DefaultConfig.
func New(config *Config) (*Renderer, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	if config.Size <= 0 {
		config.Size = DefaultConfig.Size
	}
	if config.DPI <= 0 {
		config.DPI = DefaultConfig.DPI
	}

	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    config.Size,
		DPI:     config.DPI,
		Hinting: font.HintingFull,
	})

	// Monospaced: every glyph has the advance of 'M'.
	advance, _ := face.GlyphAdvance('M')
	metrics := face.Metrics()
	return &Renderer{
		face: face,
		cell: image.Pt(advance.Ceil(), (metrics.Ascent + metrics.Descent).Ceil()),
		// Glyphs sit on the baseline, ascent pixels below the cell top.
		ascent: metrics.Ascent.Ceil(),
	}, nil
}

// CellSize is the size of one character cell in pixels.
func (r *Renderer) CellSize() image.Point {
	return r.cell
}

// Bounds of a rendered grid.
func (r *Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.cell.X*vgatext.Width, r.cell.Y*vgatext.Height)
}

// Render draws every cell of s with its background and foreground colors.
func (r *Renderer) Render(s *vgatext.Snapshot) *image.RGBA {
	img := image.NewRGBA(r.Bounds())
	d := &font.Drawer{
		Dst:  img,
		Face: r.face,
	}
	for row := 0; row < vgatext.Height; row++ {
		for col := 0; col < vgatext.Width; col++ {
			r.drawCell(img, d, row, col, s[row][col])
		}
	}
	return img
}

func (r *Renderer) drawCell(img *image.RGBA, d *font.Drawer, row, col int, c vgatext.Cell) {
	var (
		orig = image.Pt(col*r.cell.X, row*r.cell.Y)
		rect = image.Rectangle{Min: orig, Max: orig.Add(r.cell)}
		fg   = image.NewUniform(c.Color.Foreground())
	)
	draw.Draw(img, rect, image.NewUniform(c.Color.Background()), image.Point{}, draw.Src)

	switch {
	case c.Char == 0x00 || c.Char == ' ':
	case c.Char > ' ' && c.Char <= 0x7e:
		d.Src = fg
		d.Dot = fixed.P(orig.X, orig.Y+r.ascent)
		d.DrawString(string(rune(c.Char)))
	default:
		// Anything outside ASCII, including the placeholder, is a small square.
		box := image.Rect(0, 0, r.cell.X/2, r.cell.Y/2).Add(orig).Add(image.Pt(r.cell.X/4, r.cell.Y/4))
		draw.Draw(img, box, fg, image.Point{}, draw.Src)
	}
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
