package hal

import (
	"errors"
	"strings"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// ErrExit is returned by a step function to stop the runner cleanly.
var ErrExit = errors.New("exit requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatXRGB8888 is 32bpp little-endian B, G, R, X.
	PixelFormatXRGB8888
)

// BytesPerPixel returns the storage size of one pixel, or 0 when unknown.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGB565:
		return 2
	case PixelFormatXRGB8888:
		return 4
	default:
		return 0
	}
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// PanelOrientation describes how the physical panel is mounted relative to
// its native pixel addressing.
type PanelOrientation uint8

const (
	PanelNativeUp PanelOrientation = iota
	// PanelLeftUp is a panel installed 90° clockwise.
	PanelLeftUp
	// PanelRightUp is a panel installed 90° counter-clockwise.
	PanelRightUp
	// PanelBottomUp is a panel installed upside-down.
	PanelBottomUp
)

func (o PanelOrientation) String() string {
	switch o {
	case PanelLeftUp:
		return "left-up"
	case PanelRightUp:
		return "right-up"
	case PanelBottomUp:
		return "bottom-up"
	default:
		return "normal"
	}
}

// ParsePanelOrientation maps a DRM style orientation name to a
// PanelOrientation. Unknown names are treated as the native orientation.
func ParsePanelOrientation(s string) PanelOrientation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left-up", "left_up", "leftup":
		return PanelLeftUp
	case "right-up", "right_up", "rightup":
		return PanelRightUp
	case "bottom-up", "bottom_up", "bottomup", "upside-down":
		return PanelBottomUp
	default:
		return PanelNativeUp
	}
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	// KeyUnknown marks events that only carry a Rune.
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer and how the panel is mounted.
type Display interface {
	Framebuffer() Framebuffer
	Orientation() PanelOrientation
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the splash and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	// Simulator reports whether the splash runs in a development window.
	Simulator() bool
}
