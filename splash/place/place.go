// Package place rotates the firmware boot image for the panel and computes
// where it goes on screen.
package place

import (
	"image"

	"bootsplash/hal"
	"bootsplash/splash/bgrt"
	"bootsplash/splash/orient"

	"github.com/disintegration/imaging"
)

// Placement is a rotated image and its top-left corner on screen.
type Placement struct {
	Image *image.NRGBA
	Pos   image.Point
	orient.Resolution
}

// Bounds returns the screen rectangle covered by the placed image.
func (p Placement) Bounds() image.Rectangle {
	if p.Image == nil {
		return image.Rectangle{Min: p.Pos, Max: p.Pos}
	}
	return image.Rectangle{Min: p.Pos, Max: p.Pos.Add(p.Image.Bounds().Size())}
}

// Place rotates src clockwise by the net angle for panel and meta.Status and
// remaps the firmware offset into screen coordinates.
func Place(src image.Image, meta bgrt.Meta, panel hal.PanelOrientation, screen orient.Size) Placement {
	r := orient.Resolve(panel, meta.Status)
	b := src.Bounds()
	size := orient.Size{W: b.Dx(), H: b.Dy()}

	var rotated *image.NRGBA
	// imaging rotates counter-clockwise.
	switch r.Angle {
	case 90:
		rotated = imaging.Rotate270(src)
	case 180:
		rotated = imaging.Rotate180(src)
	case 270:
		rotated = imaging.Rotate90(src)
	default:
		rotated = imaging.Clone(src)
	}

	x, y := orient.Remap(r, screen, size, meta.X, meta.Y)
	return Placement{Image: rotated, Pos: image.Pt(x, y), Resolution: r}
}
