// Package bgrt reads the firmware boot graphic (ACPI BGRT) exposed by the
// kernel under sysfs.
package bgrt

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"bootsplash/splash/orient"

	"golang.org/x/image/bmp"
)

// DefaultDir is where Linux exposes the BGRT table.
const DefaultDir = "/sys/firmware/acpi/bgrt"

// ErrUnavailable reports that the firmware did not provide a boot graphic.
var ErrUnavailable = errors.New("bgrt: unavailable")

// Meta is the metadata stored next to the image.
type Meta struct {
	// StatusBits is the raw status field.
	StatusBits uint64
	Status     orient.Status
	// X and Y are relative to the native panel orientation.
	X, Y int
}

// Source reads BGRT files from FS, rooted at the BGRT directory.
type Source struct {
	FS fs.FS
}

// Dir returns a Source over a directory on disk.
func Dir(path string) Source {
	if path == "" {
		path = DefaultDir
	}
	return Source{FS: os.DirFS(path)}
}

// Available reports whether the firmware image file exists.
func (s Source) Available() bool {
	if s.FS == nil {
		return false
	}
	st, err := fs.Stat(s.FS, "image")
	return err == nil && !st.IsDir()
}

// Load decodes the image and reads its metadata.
func (s Source) Load() (image.Image, Meta, error) {
	if !s.Available() {
		return nil, Meta{}, ErrUnavailable
	}
	raw, err := fs.ReadFile(s.FS, "image")
	if err != nil {
		return nil, Meta{}, fmt.Errorf("bgrt: read image: %w", err)
	}
	img, err := bmp.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, Meta{}, fmt.Errorf("bgrt: decode image: %w", err)
	}
	meta, err := s.Meta()
	if err != nil {
		return nil, Meta{}, err
	}
	return img, meta, nil
}

// Meta reads the status and offset files.
func (s Source) Meta() (Meta, error) {
	if s.FS == nil {
		return Meta{}, ErrUnavailable
	}
	status, err := s.readUint("status")
	if err != nil {
		return Meta{}, err
	}
	x, err := s.readUint("xoffset")
	if err != nil {
		return Meta{}, err
	}
	y, err := s.readUint("yoffset")
	if err != nil {
		return Meta{}, err
	}
	return Meta{
		StatusBits: status,
		Status:     orient.StatusFromBits(status),
		X:          int(x),
		Y:          int(y),
	}, nil
}

func (s Source) readUint(name string) (uint64, error) {
	b, err := fs.ReadFile(s.FS, name)
	if err != nil {
		return 0, fmt.Errorf("bgrt: read %s: %w", name, err)
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(b)), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bgrt: parse %s: %w", name, err)
	}
	return v, nil
}
