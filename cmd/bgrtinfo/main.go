//go:build !tinygo

// Command bgrtinfo prints the firmware boot image metadata and where the
// splash would put the image on a given screen.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bootsplash/hal"
	"bootsplash/internal/buildinfo"
	"bootsplash/splash/bgrt"
	"bootsplash/splash/layout"
	"bootsplash/splash/orient"
	"bootsplash/splash/place"

	"github.com/HugoSmits86/nativewebp"
)

func main() {
	var (
		dir     string
		panel   string
		width   int
		height  int
		out     string
		version bool
	)
	flag.StringVar(&dir, "dir", bgrt.DefaultDir, "BGRT directory (image, status, xoffset, yoffset).")
	flag.StringVar(&panel, "panel-orientation", "normal", "Panel mounting: normal, left-up, right-up, bottom-up.")
	flag.IntVar(&width, "width", 0, "Screen width in panel pixels.")
	flag.IntVar(&height, "height", 0, "Screen height in panel pixels.")
	flag.StringVar(&out, "out", "", "Write the placed screen to this .webp or .png file.")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Banner("bgrtinfo"))
		return
	}
	if err := run(os.Stdout, bgrt.Dir(dir), hal.ParsePanelOrientation(panel), width, height, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, src bgrt.Source, panel hal.PanelOrientation, width, height int, out string) error {
	img, meta, err := src.Load()
	if errors.Is(err, bgrt.ErrUnavailable) {
		return errors.New("no firmware boot image")
	}
	if err != nil {
		return err
	}
	b := img.Bounds()
	fmt.Fprintf(w, "image:    %dx%d\n", b.Dx(), b.Dy())
	fmt.Fprintf(w, "status:   %#x (%s)\n", meta.StatusBits, meta.Status)
	fmt.Fprintf(w, "offset:   %d,%d\n", meta.X, meta.Y)
	fmt.Fprintf(w, "panel:    %s\n", panel)

	if width <= 0 || height <= 0 {
		return nil
	}
	p := place.Place(img, meta, panel, orient.Size{W: width, H: height})
	lay := layout.NewContext(width, height)
	offset := layout.VerticalOffset(height, lay.Spacing, p.Bounds())
	fmt.Fprintf(w, "rotation: %d (swap %v)\n", p.Angle, p.Swap)
	fmt.Fprintf(w, "placed:   %v\n", p.Bounds())
	fmt.Fprintf(w, "ui shift: %d\n", offset)

	if out == "" {
		return nil
	}
	return writeScreen(out, p, width, height)
}

func writeScreen(path string, p place.Placement, width, height int) error {
	var encode func(io.Writer, image.Image) error
	switch ext := filepath.Ext(path); strings.ToLower(ext) {
	case ".webp":
		encode = func(w io.Writer, img image.Image) error { return nativewebp.Encode(w, img, nil) }
	case ".png":
		encode = png.Encode
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := encode(f, layoutScreen(p, width, height)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
