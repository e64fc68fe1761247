//go:build linux && !tinygo

package hal

import (
	"encoding/binary"
	"testing"
	"unsafe"
)

func TestFixScreenInfoLineLength(t *testing.T) {
	var info fbFixScreenInfo
	off := 48
	if unsafe.Sizeof(uintptr(0)) == 4 {
		off = 44
	}
	binary.LittleEndian.PutUint32(info[off:], 2560)
	if got := info.lineLength(); got != 2560 {
		t.Fatalf("lineLength() = %d, want 2560", got)
	}
}

func TestFBStride(t *testing.T) {
	tests := []struct {
		lineLength, virtWidth, bpp int
		want                       int
	}{
		{2560, 600, 4, 2560},
		{2400, 600, 4, 2400},
		{0, 600, 4, 2400},
		{1024, 500, 2, 1024},
	}
	for _, tt := range tests {
		if got := fbStride(tt.lineLength, tt.virtWidth, tt.bpp); got != tt.want {
			t.Fatalf("fbStride(%d, %d, %d) = %d, want %d", tt.lineLength, tt.virtWidth, tt.bpp, got, tt.want)
		}
	}
}
