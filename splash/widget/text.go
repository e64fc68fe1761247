package widget

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	regularOnce sync.Once
	regular     *opentype.Font
	regularErr  error
)

// NewFace returns the UI typeface at size px.
func NewFace(px float64) (font.Face, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	if regularErr != nil {
		return nil, fmt.Errorf("widget: parse font: %w", regularErr)
	}
	face, err := opentype.NewFace(regular, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("widget: new face: %w", err)
	}
	return face, nil
}

func lineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// wrap breaks s into lines no wider than width. Words longer than a line are
// broken between runes.
func wrap(face font.Face, s string, width int) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, w := range words {
			cand := w
			if line != "" {
				cand = line + " " + w
			}
			if width <= 0 || textWidth(face, cand) <= width {
				line = cand
				continue
			}
			if line != "" {
				out = append(out, line)
			}
			for textWidth(face, w) > width {
				n := fitRunes(face, w, width)
				out = append(out, w[:n])
				w = w[n:]
			}
			line = w
		}
		out = append(out, line)
	}
	return out
}

// fitRunes returns the byte length of the longest prefix of s that fits in
// width, and at least one rune.
func fitRunes(face font.Face, s string, width int) int {
	n := 0
	for i, r := range s {
		end := i + len(string(r))
		if n > 0 && textWidth(face, s[:end]) > width {
			break
		}
		n = end
	}
	return n
}

// drawLine draws s with its box's top edge at y, horizontally centered in r.
func drawLine(dst *image.RGBA, face font.Face, r image.Rectangle, y int, s string, c color.RGBA) {
	if s == "" || c.A == 0 {
		return
	}
	x := r.Min.X + (r.Dx()-textWidth(face, s))/2
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
