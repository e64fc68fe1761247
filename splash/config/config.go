// Package config reads the splash settings from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultForeground Color = 0xFFFFFFFF
	DefaultBackground Color = 0xFF000000
	DefaultTheme            = "night"
)

// Color is a 0xAARRGGBB value. It decodes from a hex string (with or
// without 0x) or a JSON number.
type Color uint32

func (c *Color) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n uint32
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("color: want hex string or number, got %s", b)
		}
		*c = Color(n)
		return nil
	}
	v, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor parses a hex color such as "0xFF202020" or "202020".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color: parse %q: %w", s, err)
	}
	return Color(v), nil
}

// RGBA returns the opaque color. The alpha byte is ignored like the
// display does.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
}

// Splash holds the "splash" section.
type Splash struct {
	Foreground *Color `json:"foreground"`
	Background *Color `json:"background"`
	Theme      string `json:"theme"`
	UseBGRT    bool   `json:"useBGRT"`
	// AssetsPath overrides the built-in logo with logo.svg, logo.png,
	// logo.tga or logo.bmp from that directory.
	AssetsPath string `json:"assetsPath"`
}

// Config is the whole configuration file.
type Config struct {
	Splash Splash `json:"splash"`
}

// Default returns the configuration used without a file.
func Default() Config {
	var cfg Config
	cfg.resolve("")
	return cfg
}

// Load reads a JSON config file. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes a configuration document and fills in defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg.resolve("")
	return cfg, nil
}

// resolve fills in defaults and makes a relative assets path relative to
// the config file directory.
func (c *Config) resolve(baseDir string) {
	s := &c.Splash
	if s.Foreground == nil {
		v := DefaultForeground
		s.Foreground = &v
	}
	if s.Background == nil {
		v := DefaultBackground
		s.Background = &v
	}
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	if s.AssetsPath != "" && baseDir != "" && !filepath.IsAbs(s.AssetsPath) {
		s.AssetsPath = filepath.Join(baseDir, s.AssetsPath)
	}
}

// FG returns the foreground color.
func (s Splash) FG() color.RGBA {
	if s.Foreground == nil {
		return DefaultForeground.RGBA()
	}
	return s.Foreground.RGBA()
}

// BG returns the background color.
func (s Splash) BG() color.RGBA {
	if s.Background == nil {
		return DefaultBackground.RGBA()
	}
	return s.Background.RGBA()
}
