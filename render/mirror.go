package render

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/vgatext"
)

// Mirror copies the text buffer to a pixel display.
type Mirror struct {
	Drawer   display.Drawer
	Renderer *Renderer
}

func (m *Mirror) String() string {
	return fmt.Sprintf("mirror to %s", m.Drawer)
}

// Refresh renders the current content of mem and draws it to the display,
// scaled down to fit when the display is smaller than the rendered grid.
func (m *Mirror) Refresh(mem vgatext.Memory) error {
	s := vgatext.Capture(mem)
	img := m.Renderer.Render(&s)

	dst := m.Drawer.Bounds()
	if src := img.Bounds(); src.Dx() <= dst.Dx() && src.Dy() <= dst.Dy() {
		return m.Drawer.Draw(dst, img, image.Point{})
	}

	scaled := image.NewRGBA(fit(img.Bounds().Size(), dst.Size()))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return m.Drawer.Draw(dst, scaled, image.Point{})
}

// fit returns the largest rectangle of src's aspect ratio within dst.
func fit(src, dst image.Point) image.Rectangle {
	w, h := dst.X, src.Y*dst.X/src.X
	if h > dst.Y {
		w, h = src.X*dst.Y/src.Y, dst.Y
	}
	return image.Rect(0, 0, w, h)
}
