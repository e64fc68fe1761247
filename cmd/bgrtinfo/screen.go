//go:build !tinygo

package main

import (
	"image"
	"image/color"

	"bootsplash/splash/place"
	"bootsplash/splash/widget"
)

// layoutScreen draws the placed image on a black screen the way the splash
// page shows it.
func layoutScreen(p place.Placement, width, height int) *image.RGBA {
	root := widget.NewScreen(width, height)
	root.SetStyle(widget.Style{Body: color.RGBA{A: 0xFF}})
	im := widget.NewImage(root, p.Image)
	im.SetPos(p.Pos.X, p.Pos.Y)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	widget.Render(dst, root)
	return dst
}
