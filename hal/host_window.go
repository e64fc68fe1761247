//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"

	"bootsplash/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards
// keyboard input. This is the splash simulator. It blocks until the window
// closes or the step function returns ErrExit.
func RunWindow(opts HostOptions, newApp func(HAL) func() error) error {
	h := newHostHAL(opts, nil)
	h.simulator = true
	step := newApp(h)

	fb := h.fb.(*hostFramebuffer)
	g := &hostGame{h: h, fb: fb, step: step}
	ebiten.SetWindowTitle("bootsplash (" + buildinfo.Short() + ")")
	scale := 1
	if fb.width <= 400 && fb.height <= 400 {
		scale = 2
	}
	ebiten.SetWindowSize(fb.width*scale, fb.height*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	fb    *hostFramebuffer
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrExit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGBA(g.img.Pix)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.width, g.fb.height
}
