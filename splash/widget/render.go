package widget

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Render draws root and its visible descendants into dst. Children are
// clipped to their parent's box.
func Render(dst *image.RGBA, root *Obj) {
	if dst == nil || root == nil {
		return
	}
	renderObj(dst, root, image.Point{}, dst.Bounds(), 0xFF)
}

func renderObj(dst *image.RGBA, o *Obj, origin image.Point, clip image.Rectangle, opa uint8) {
	if o.hidden {
		return
	}
	if o.opaScaleEnabled {
		opa = mulOpa(opa, o.opaScale)
	}
	if opa == 0 {
		return
	}
	r := o.Bounds().Add(origin)
	clip = clip.Intersect(r)
	if clip.Empty() {
		return
	}

	fillRect(dst, clip, o.style.Body, opa)
	if bw := o.style.BorderWidth; bw > 0 {
		drawBorder(dst, r, clip, bw, o.style.BorderColor, opa)
	}
	if o.content != nil {
		sub := dst.SubImage(clip).(*image.RGBA)
		o.content.draw(sub, r, o, opa)
	}
	for _, c := range o.children {
		renderObj(dst, c, r.Min, clip, opa)
	}
}

func opaColor(opa uint8) color.Alpha { return color.Alpha{A: opa} }

func mulOpa(a, b uint8) uint8 {
	return uint8(uint16(a) * uint16(b) / 0xFF)
}

// fade scales c by opa, keeping it alpha-premultiplied.
func fade(c color.RGBA, opa uint8) color.RGBA {
	if opa == 0xFF {
		return c
	}
	return color.RGBA{
		R: mulOpa(c.R, opa),
		G: mulOpa(c.G, opa),
		B: mulOpa(c.B, opa),
		A: mulOpa(c.A, opa),
	}
}

func fillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA, opa uint8) {
	if c.A == 0 || opa == 0 || r.Empty() {
		return
	}
	c = fade(c, opa)
	op := draw.Over
	if c.A == 0xFF {
		op = draw.Src
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, op)
}

func drawBorder(dst *image.RGBA, r, clip image.Rectangle, bw int, c color.RGBA, opa uint8) {
	bw = min(bw, r.Dx()/2, r.Dy()/2)
	if bw <= 0 {
		return
	}
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+bw),
		image.Rect(r.Min.X, r.Max.Y-bw, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+bw, r.Min.X+bw, r.Max.Y-bw),
		image.Rect(r.Max.X-bw, r.Min.Y+bw, r.Max.X, r.Max.Y-bw),
	}
	for _, e := range edges {
		fillRect(dst, e.Intersect(clip), c, opa)
	}
}

// Mix blends fg over bg with weight ratio/255 for fg.
func Mix(fg, bg color.RGBA, ratio uint8) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8((uint16(a)*uint16(ratio) + uint16(b)*(0xFF-uint16(ratio))) / 0xFF)
	}
	return color.RGBA{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: mix(fg.A, bg.A)}
}
