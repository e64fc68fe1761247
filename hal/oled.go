//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

// OLEDConfig selects the SPI port and data/command pin of an SSD1306 panel.
type OLEDConfig struct {
	SPIPort string
	DCPin   string
	Width   int
	Height  int
	// Rotated flips the panel 180° in the controller.
	Rotated bool
}

type oledFramebuffer struct {
	*hostFramebuffer
	dev *ssd1306.Dev
	img *image.RGBA
}

func (f *oledFramebuffer) Present() error {
	f.snapshotRGBA(f.img.Pix)
	return f.dev.Draw(f.dev.Bounds(), f.img, image.Point{})
}

// RunOLED drives the splash on a small SPI OLED panel.
func RunOLED(ctx context.Context, oc OLEDConfig, opts HostOptions, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if oc.Width <= 0 {
		oc.Width = 128
	}
	if oc.Height <= 0 {
		oc.Height = 64
	}
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("oled: host init: %w", err)
	}

	port, err := spireg.Open(oc.SPIPort)
	if err != nil {
		return fmt.Errorf("oled: open spi %q: %w", oc.SPIPort, err)
	}
	defer port.Close()

	dc := gpioreg.ByName(oc.DCPin)
	if dc == nil {
		return fmt.Errorf("oled: unknown dc pin %q", oc.DCPin)
	}

	dev, err := ssd1306.NewSPI(port, dc, &ssd1306.Opts{W: oc.Width, H: oc.Height, Rotated: oc.Rotated})
	if err != nil {
		return fmt.Errorf("oled: init ssd1306: %w", err)
	}
	defer dev.Halt()

	fb := &oledFramebuffer{
		hostFramebuffer: newHostFramebuffer(oc.Width, oc.Height),
		dev:             dev,
		img:             image.NewRGBA(image.Rect(0, 0, oc.Width, oc.Height)),
	}
	opts.Width = oc.Width
	opts.Height = oc.Height
	h := newHostHAL(opts, fb)
	return runTicker(ctx, h, newApp, cfg)
}
