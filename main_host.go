//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bootsplash/app"
	"bootsplash/hal"
	"bootsplash/internal/buildinfo"
	"bootsplash/splash/bgrt"
)

func main() {
	var (
		cfg      hal.HeadlessConfig
		opts     hal.HostOptions
		appCfg   app.Config
		panel    string
		fbdev    string
		oled     hal.OLEDConfig
		noDriver bool
		version  bool
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate when not running the window.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks when not running the window (0 = run until quit).")
	flag.IntVar(&opts.Width, "width", 480, "Screen width for the window and headless modes.")
	flag.IntVar(&opts.Height, "height", 800, "Screen height for the window and headless modes.")
	flag.StringVar(&panel, "panel-orientation", "normal", "Panel mounting: normal, left-up, right-up, bottom-up.")
	flag.StringVar(&appCfg.ConfigPath, "config", "", "JSON configuration file.")
	flag.StringVar(&appCfg.BGRTDir, "bgrt-dir", bgrt.DefaultDir, "Directory holding the firmware boot image.")
	flag.StringVar(&fbdev, "fbdev", "", "Draw on a Linux framebuffer device such as /dev/fb0.")
	flag.StringVar(&oled.SPIPort, "oled-spi", "", "Draw on an SSD1306 OLED on this SPI port.")
	flag.StringVar(&oled.DCPin, "oled-dc", "GPIO25", "Data/command GPIO pin of the OLED.")
	flag.StringVar(&appCfg.Screenshot, "screenshot", "", "Write the last frame to this .png or .webp file on exit.")
	flag.StringVar(&appCfg.InputCharset, "input-charset", "", "Charset of the driver commands on stdin (default UTF-8).")
	flag.BoolVar(&appCfg.FadeIn, "fade-in", false, "Fade in at start instead of waiting for the driver.")
	flag.BoolVar(&noDriver, "no-driver", false, "Do not read driver commands from stdin.")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Banner("bootsplash"))
		return
	}

	opts.Orientation = hal.ParsePanelOrientation(panel)
	opts.LogOutput = os.Stderr
	if !noDriver {
		appCfg.Commands = os.Stdin
		appCfg.Answers = os.Stdout
	}
	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, appCfg) }

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch {
	case fbdev != "":
		err = hal.RunFramebuffer(ctx, fbdev, opts, newApp, cfg)
	case oled.SPIPort != "":
		err = hal.RunOLED(ctx, oled, opts, newApp, cfg)
	case cfg.Enabled:
		err = hal.RunHeadless(ctx, opts, newApp, cfg)
	default:
		err = hal.RunWindow(opts, newApp)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
