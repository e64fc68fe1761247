package hal

import (
	"errors"
	"image"
)

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// Blit copies src into the framebuffer, converting to its pixel format, and
// presents it. src is clipped to the framebuffer size.
func Blit(fb Framebuffer, src *image.RGBA) error {
	if fb == nil || src == nil {
		return nil
	}
	buf := fb.Buffer()
	if buf == nil {
		return errors.New("hal: framebuffer buffer is nil")
	}
	bpp := fb.Format().BytesPerPixel()
	if bpp == 0 {
		return errors.New("hal: unsupported framebuffer format")
	}

	b := src.Bounds()
	w := min(fb.Width(), b.Dx())
	h := min(fb.Height(), b.Dy())
	stride := fb.StrideBytes()

	for y := 0; y < h; y++ {
		row := y * stride
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			r := src.Pix[si+0]
			g := src.Pix[si+1]
			bl := src.Pix[si+2]
			si += 4

			off := row + x*bpp
			if off < 0 || off+bpp > len(buf) {
				continue
			}
			switch bpp {
			case 2:
				pix := rgb565(r, g, bl)
				buf[off] = byte(pix)
				buf[off+1] = byte(pix >> 8)
			case 4:
				buf[off] = bl
				buf[off+1] = g
				buf[off+2] = r
				buf[off+3] = 0xFF
			}
		}
	}
	return fb.Present()
}
