// Package orient maps the panel mounting and the firmware boot image
// rotation to the net rotation the image needs on screen, and remaps the
// firmware offsets accordingly.
package orient

import "bootsplash/hal"

// Status is the display rotation stored with the firmware boot image.
type Status uint8

const (
	StatusNormal Status = iota
	StatusClockwise90
	StatusUpsideDown180
	StatusCounterClockwise270
)

func (s Status) String() string {
	switch s {
	case StatusClockwise90:
		return "clockwise"
	case StatusUpsideDown180:
		return "upside_down"
	case StatusCounterClockwise270:
		return "counter_clockwise"
	default:
		return "normal"
	}
}

// Degrees returns the clockwise rotation the status stands for.
func (s Status) Degrees() int {
	switch s {
	case StatusClockwise90:
		return 90
	case StatusUpsideDown180:
		return 180
	case StatusCounterClockwise270:
		return 270
	default:
		return 0
	}
}

// StatusFromBits decodes the BGRT status field. Only bits 1 and 2 carry
// the orientation; everything else is ignored.
func StatusFromBits(v uint64) Status {
	switch (v & 0b110) >> 1 {
	case 0b01:
		return StatusClockwise90
	case 0b10:
		return StatusUpsideDown180
	case 0b11:
		return StatusCounterClockwise270
	default:
		return StatusNormal
	}
}

// PanelCorrection returns the rotation undoing the panel's physical mounting.
func PanelCorrection(o hal.PanelOrientation) int {
	switch o {
	case hal.PanelLeftUp:
		return -90
	case hal.PanelRightUp:
		return -270
	case hal.PanelBottomUp:
		return -180
	default:
		return 0
	}
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	// Angle is the net clockwise rotation, one of 0, 90, 180, 270.
	Angle int
	// Swap reports whether width and height trade places.
	Swap bool
}

// Resolve counters the panel rotation, then adds back the stored rotation of
// the image.
func Resolve(panel hal.PanelOrientation, status Status) Resolution {
	a := mod360(PanelCorrection(panel) - status.Degrees())
	return Resolution{Angle: a, Swap: a == 90 || a == 270}
}

func mod360(a int) int {
	a %= 360
	if a < 0 {
		a += 360
	}
	return a
}

// Size is a width and height in pixels.
type Size struct {
	W, H int
}

// Remap transforms the firmware offset (x, y) of an image of size img into
// screen coordinates once the image is rotated by r.Angle.
func Remap(r Resolution, screen, img Size, x, y int) (int, int) {
	switch r.Angle {
	case 90:
		return screen.W - y - img.H, screen.H - x - img.W
	case 180:
		return screen.W - x, screen.H - y
	case 270:
		return y, x
	default:
		return x, y
	}
}

// Unremap is the inverse of Remap for the same screen and image size.
func Unremap(r Resolution, screen, img Size, x, y int) (int, int) {
	switch r.Angle {
	case 90:
		return screen.H - y - img.W, screen.W - x - img.H
	case 180:
		return screen.W - x, screen.H - y
	case 270:
		return y, x
	default:
		return x, y
	}
}
