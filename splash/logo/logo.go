// Package logo loads the static splash logo: an SVG rasterized at the
// target size, or a raster image scaled to it.
package logo

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"path"

	"github.com/ftrvxmtrx/tga"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

//go:embed assets/logo.svg
var defaultSVG []byte

// Names are the asset file names tried in order.
var Names = []string{"logo.svg", "logo.png", "logo.tga", "logo.bmp"}

// ErrNotFound reports that no logo asset exists.
var ErrNotFound = errors.New("logo: no asset found")

// Default renders the built-in logo to fit (w, h).
func Default(w, h int) (*image.RGBA, error) {
	return RenderSVG(defaultSVG, w, h)
}

// Load renders the first logo asset found in assets to fit (w, h). A zero
// side follows the aspect ratio of the asset.
func Load(assets fs.FS, w, h int) (*image.RGBA, error) {
	if assets == nil {
		return nil, ErrNotFound
	}
	for _, name := range Names {
		raw, err := fs.ReadFile(assets, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("logo: read %s: %w", name, err)
		}
		if path.Ext(name) == ".svg" {
			return RenderSVG(raw, w, h)
		}
		src, err := decodeRaster(name, bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("logo: decode %s: %w", name, err)
		}
		return Scale(src, w, h), nil
	}
	return nil, ErrNotFound
}

func decodeRaster(name string, r io.Reader) (image.Image, error) {
	// tga has no magic number, so the format comes from the extension.
	switch path.Ext(name) {
	case ".png":
		return png.Decode(r)
	case ".tga":
		return tga.Decode(r)
	case ".bmp":
		return bmp.Decode(r)
	default:
		return nil, fmt.Errorf("unsupported format %q", path.Ext(name))
	}
}

// RenderSVG rasterizes an SVG document to fit (w, h).
func RenderSVG(data []byte, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("logo: parse svg: %w", err)
	}
	vw, vh := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if vw <= 0 || vh <= 0 {
		return nil, errors.New("logo: svg has an empty view box")
	}
	w, h = Fit(vw, vh, w, h)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// Scale resizes src to fit (w, h).
func Scale(src image.Image, w, h int) *image.RGBA {
	b := src.Bounds()
	w, h = Fit(b.Dx(), b.Dy(), w, h)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// Fit resolves a target size where a zero side keeps the aspect ratio of
// srcW×srcH. Both zero keeps the source size.
func Fit(srcW, srcH, w, h int) (int, int) {
	switch {
	case srcW <= 0 || srcH <= 0:
		return max(w, 1), max(h, 1)
	case w <= 0 && h <= 0:
		return srcW, srcH
	case h <= 0:
		h = w * srcH / srcW
	case w <= 0:
		w = h * srcW / srcH
	}
	return max(w, 1), max(h, 1)
}
