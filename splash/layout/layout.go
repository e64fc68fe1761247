// Package layout positions the splash widgets around a vertical anchor
// derived from the logo, and pulls them back up when they would run off
// the page.
package layout

import (
	"image"
	"math"

	"bootsplash/splash/place"
	"bootsplash/splash/widget"
)

// Context holds the screen metrics shared by every placement.
type Context struct {
	Width, Height int
	// Unit is one percent of the longer screen side, rounded up.
	Unit    int
	Spacing int
	// VerticalOffset moves every centered widget down. It is fixed by
	// PlaceLogo and never negative.
	VerticalOffset int
}

// NewContext derives the unit and spacing from the screen size.
func NewContext(width, height int) *Context {
	unit := int(math.Ceil(float64(max(width, height)) * 0.01))
	return &Context{
		Width:   width,
		Height:  height,
		Unit:    unit,
		Spacing: 5 * unit,
	}
}

// Portrait reports whether the screen is taller than wide.
func (c *Context) Portrait() bool { return c.Height > c.Width }

// StaticLogoBox returns the size the static logo is rendered at. One of the
// two sides is 0, meaning it follows the aspect ratio: 80% of the width in
// portrait, 15% of the height in landscape.
func (c *Context) StaticLogoBox() (w, h int) {
	if c.Portrait() {
		return int(float64(c.Width) * 0.8), 0
	}
	return 0, int(float64(c.Height) * 0.15)
}

// Center returns the position centering a w×h box on screen, moved by
// (dx, dy) and the vertical offset.
func (c *Context) Center(w, h, dx, dy int) (x, y int) {
	return c.Width/2 - w/2 + dx, c.Height/2 - h/2 + dy + c.VerticalOffset
}

// CenterObj moves o to the centered position.
func (c *Context) CenterObj(o *widget.Obj, dx, dy int) {
	o.SetPos(c.Center(o.Width(), o.Height(), dx, dy))
}

// PlaceLogo positions the logo, then fixes the vertical offset from its
// bottom edge. A firmware placement is used as is; otherwise the logo sits
// one logo height above the center.
func (c *Context) PlaceLogo(logo *widget.Obj, firmware *place.Placement) {
	if firmware != nil {
		logo.SetPos(firmware.Pos.X, firmware.Pos.Y)
	} else {
		c.CenterObj(logo, 0, -logo.Height())
	}
	c.VerticalOffset = VerticalOffset(c.Height, c.Spacing, logo.Bounds())
}

// VerticalOffset computes how far the UI block must move down to clear the
// logo. Full-screen boot images are assumed to keep the bottom third free,
// so the offset never pushes the block past that third.
func VerticalOffset(screenHeight, spacing int, logo image.Rectangle) int {
	midpoint := screenHeight / 2
	bottomThird := float64(screenHeight) / 3.0 * 2

	offset := logo.Max.Y - midpoint + spacing
	if offset < 0 {
		offset = 0
	}
	if float64(offset+midpoint) > bottomThird {
		offset = int(bottomThird - float64(midpoint) + float64(spacing))
	}
	return offset
}

// Relayout shifts every child of page except logo up when the bottom of
// lowest, plus half a spacing, would overflow the page. It returns the shift
// applied, zero or negative. It is meant to run once, after every widget is
// placed.
func (c *Context) Relayout(page, lowest, logo *widget.Obj) int {
	pageBottom := page.Y() + page.Height()
	bottom := lowest.Y() + lowest.Height() + c.Spacing/2
	if bottom <= pageBottom {
		return 0
	}
	shift := pageBottom - bottom
	for _, child := range page.Children() {
		if child == logo {
			continue
		}
		child.SetY(child.Y() + shift)
	}
	return shift
}
