package bgrt

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
	"testing/fstest"

	"bootsplash/splash/orient"

	"golang.org/x/image/bmp"
)

func encodeBMP(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 0xFF, A: 0xFF})
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("bmp.Encode() err = %v", err)
	}
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	src := Source{FS: fstest.MapFS{
		"image":   {Data: encodeBMP(t, 40, 20)},
		"status":  {Data: []byte("5\n")},
		"xoffset": {Data: []byte("120\n")},
		"yoffset": {Data: []byte("300\n")},
	}}
	if !src.Available() {
		t.Fatalf("Available() = false, want true")
	}

	img, meta, err := src.Load()
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(40, 20) {
		t.Fatalf("image size = %v, want (40,20)", got)
	}
	want := Meta{StatusBits: 5, Status: orient.StatusUpsideDown180, X: 120, Y: 300}
	if meta != want {
		t.Fatalf("Load() meta = %+v, want %+v", meta, want)
	}
}

func TestLoadUnavailable(t *testing.T) {
	src := Source{FS: fstest.MapFS{}}
	if src.Available() {
		t.Fatalf("Available() = true, want false")
	}
	if _, _, err := src.Load(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Load() err = %v, want ErrUnavailable", err)
	}
	if (Source{}).Available() {
		t.Fatalf("zero Source Available() = true")
	}
}

func TestLoadBadMetadata(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{"missing offsets", fstest.MapFS{
			"image":  {Data: encodeBMP(t, 4, 4)},
			"status": {Data: []byte("1")},
		}},
		{"garbage status", fstest.MapFS{
			"image":   {Data: encodeBMP(t, 4, 4)},
			"status":  {Data: []byte("on")},
			"xoffset": {Data: []byte("0")},
			"yoffset": {Data: []byte("0")},
		}},
		{"not a bmp", fstest.MapFS{
			"image":   {Data: []byte("PNG?")},
			"status":  {Data: []byte("1")},
			"xoffset": {Data: []byte("0")},
			"yoffset": {Data: []byte("0")},
		}},
	}
	for _, tt := range tests {
		src := Source{FS: tt.fs}
		if _, _, err := src.Load(); err == nil {
			t.Fatalf("%s: Load() err = nil, want error", tt.name)
		}
	}
}
