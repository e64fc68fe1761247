package widget

import (
	"image"

	"golang.org/x/image/draw"
)

// Image shows a picture at its natural size.
type Image struct {
	*Obj
	src image.Image
}

// NewImage adds an image object sized to src.
func NewImage(parent *Obj, src image.Image) *Image {
	im := &Image{Obj: NewContainer(parent)}
	im.content = im
	im.SetSrc(src)
	return im
}

// Src returns the shown picture.
func (im *Image) Src() image.Image { return im.src }

// SetSrc replaces the picture and resizes the object to it.
func (im *Image) SetSrc(src image.Image) {
	im.src = src
	if src == nil {
		im.SetSize(0, 0)
		return
	}
	b := src.Bounds()
	im.SetSize(b.Dx(), b.Dy())
}

func (im *Image) draw(dst *image.RGBA, r image.Rectangle, _ *Obj, opa uint8) {
	if im.src == nil {
		return
	}
	sp := im.src.Bounds().Min
	if opa == 0xFF {
		draw.Draw(dst, r, im.src, sp, draw.Over)
		return
	}
	mask := image.NewUniform(opaColor(opa))
	draw.DrawMask(dst, r, im.src, sp, mask, image.Point{}, draw.Over)
}
