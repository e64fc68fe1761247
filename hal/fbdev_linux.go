//go:build linux && !tinygo

package hal

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// fbVarScreenInfo receives struct fb_var_screeninfo. The kernel writes the
// whole struct, so the buffer is oversized and only the leading fields are
// decoded.
type fbVarScreenInfo [160]byte

// fbFixScreenInfo receives struct fb_fix_screeninfo, oversized the same way.
type fbFixScreenInfo [128]byte

// lineLength decodes line_length. It follows id[16], the unsigned long
// smem_start, four u32 and three u16 fields, aligned to 4.
func (info *fbFixScreenInfo) lineLength() int {
	off := 16 + int(unsafe.Sizeof(uintptr(0))) + 4*4 + 3*2
	off = (off + 3) &^ 3
	return int(binary.LittleEndian.Uint32(info[off : off+4]))
}

// fbStride returns the row pitch, trusting the driver's line_length and
// falling back to the virtual width for drivers that leave it zero.
func fbStride(lineLength, virtWidth, bytesPerPixel int) int {
	if packed := virtWidth * bytesPerPixel; lineLength < packed {
		return packed
	}
	return lineLength
}

type fbdevFramebuffer struct {
	f      *os.File
	mem    []byte
	back   []byte
	width  int
	height int
	stride int
	format PixelFormat
}

func openFBDev(path string) (*fbdevFramebuffer, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("fbdev: open %s: %w", path, err)
	}

	var info fbVarScreenInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), fbioGetVScreenInfo, uintptr(unsafe.Pointer(&info[0])))
	if errno != 0 {
		f.Close()
		return nil, fmt.Errorf("fbdev: FBIOGET_VSCREENINFO %s: %w", path, errno)
	}

	width := int(binary.LittleEndian.Uint32(info[0:4]))
	height := int(binary.LittleEndian.Uint32(info[4:8]))
	virtWidth := int(binary.LittleEndian.Uint32(info[8:12]))
	bpp := int(binary.LittleEndian.Uint32(info[24:28]))

	var fix fbFixScreenInfo
	_, _, errno = unix.Syscall(unix.SYS_IOCTL, f.Fd(), fbioGetFScreenInfo, uintptr(unsafe.Pointer(&fix[0])))
	if errno != 0 {
		f.Close()
		return nil, fmt.Errorf("fbdev: FBIOGET_FSCREENINFO %s: %w", path, errno)
	}

	var format PixelFormat
	switch bpp {
	case 16:
		format = PixelFormatRGB565
	case 32:
		format = PixelFormatXRGB8888
	default:
		f.Close()
		return nil, fmt.Errorf("fbdev: %s: unsupported depth %d bpp", path, bpp)
	}
	if virtWidth < width {
		virtWidth = width
	}
	stride := fbStride(fix.lineLength(), virtWidth, format.BytesPerPixel())

	mem, err := unix.Mmap(int(f.Fd()), 0, stride*height, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("fbdev: mmap %s: %w", path, err)
	}

	return &fbdevFramebuffer{
		f:      f,
		mem:    mem,
		back:   make([]byte, len(mem)),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

func (f *fbdevFramebuffer) Width() int          { return f.width }
func (f *fbdevFramebuffer) Height() int         { return f.height }
func (f *fbdevFramebuffer) Format() PixelFormat { return f.format }
func (f *fbdevFramebuffer) StrideBytes() int    { return f.stride }
func (f *fbdevFramebuffer) Buffer() []byte      { return f.back }

func (f *fbdevFramebuffer) Present() error {
	copy(f.mem, f.back)
	return nil
}

func (f *fbdevFramebuffer) ClearRGB(r, g, b uint8) {
	switch f.format {
	case PixelFormatRGB565:
		pixel := rgb565(r, g, b)
		for i := 0; i+1 < len(f.back); i += 2 {
			f.back[i] = byte(pixel)
			f.back[i+1] = byte(pixel >> 8)
		}
	case PixelFormatXRGB8888:
		for i := 0; i+3 < len(f.back); i += 4 {
			f.back[i] = b
			f.back[i+1] = g
			f.back[i+2] = r
			f.back[i+3] = 0xFF
		}
	}
}

func (f *fbdevFramebuffer) Close() error {
	if f.mem != nil {
		unix.Munmap(f.mem)
		f.mem = nil
	}
	return f.f.Close()
}

// RunFramebuffer drives the splash on a Linux framebuffer device such as
// /dev/fb0. The screen size is taken from the device.
func RunFramebuffer(ctx context.Context, path string, opts HostOptions, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	fb, err := openFBDev(path)
	if err != nil {
		return err
	}
	defer fb.Close()

	opts.Width = fb.width
	opts.Height = fb.height
	h := newHostHAL(opts, fb)
	return runTicker(ctx, h, newApp, cfg)
}
