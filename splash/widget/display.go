package widget

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// rgbaDisplay lets tinyfont draw into a clipped region of an RGBA image.
type rgbaDisplay struct {
	dst *image.RGBA
	opa uint8
}

func (d *rgbaDisplay) Size() (x, y int16) {
	b := d.dst.Bounds()
	return int16(b.Max.X), int16(b.Max.Y)
}

func (d *rgbaDisplay) SetPixel(x, y int16, c color.RGBA) {
	p := image.Pt(int(x), int(y))
	if !p.In(d.dst.Bounds()) {
		return
	}
	c = fade(c, d.opa)
	if c.A == 0xFF {
		d.dst.SetRGBA(p.X, p.Y, c)
		return
	}
	under := d.dst.RGBAAt(p.X, p.Y)
	inv := 0xFF - c.A
	d.dst.SetRGBA(p.X, p.Y, color.RGBA{
		R: c.R + mulOpa(under.R, inv),
		G: c.G + mulOpa(under.G, inv),
		B: c.B + mulOpa(under.B, inv),
		A: c.A + mulOpa(under.A, inv),
	})
}

func (d *rgbaDisplay) Display() error { return nil }

func (d *rgbaDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	fillRect(d.dst, image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(d.dst.Bounds()), c, d.opa)
	return nil
}

func (d *rgbaDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

var _ drivers.Displayer = (*rgbaDisplay)(nil)
