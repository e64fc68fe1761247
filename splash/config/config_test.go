package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default().Splash
	if s.FG() != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Fatalf("FG() = %v, want white", s.FG())
	}
	if s.BG() != (color.RGBA{A: 0xFF}) {
		t.Fatalf("BG() = %v, want black", s.BG())
	}
	if s.Theme != "night" || s.UseBGRT {
		t.Fatalf("Default() = %+v", s)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`{"splash": {"foreground": "0xFF102030", "background": 4278190335, "theme": "day", "useBGRT": true}}`))
	if err != nil {
		t.Fatalf("Parse() err = %v", err)
	}
	s := cfg.Splash
	if s.FG() != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}) {
		t.Fatalf("FG() = %v", s.FG())
	}
	if s.BG() != (color.RGBA{B: 0xFF, A: 0xFF}) {
		t.Fatalf("BG() = %v", s.BG())
	}
	if s.Theme != "day" || !s.UseBGRT {
		t.Fatalf("Parse() = %+v", s)
	}
}

func TestParseBadColor(t *testing.T) {
	if _, err := Parse([]byte(`{"splash": {"foreground": "chartreuse"}}`)); err == nil {
		t.Fatalf("Parse() err = nil, want error")
	}
	if _, err := Parse([]byte(`{"splash": {"foreground": true}}`)); err == nil {
		t.Fatalf("Parse(bool) err = nil, want error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"0xFF000000", 0xFF000000},
		{"ffffff", 0x00FFFFFF},
		{"#123456", 0x123456},
		{" 0XAB ", 0xAB},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("ParseColor(%q) = %#x, %v; want %#x", tt.in, got, err, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "splash.json")
	if err := os.WriteFile(path, []byte(`{"splash": {"assetsPath": "assets"}}`), 0o644); err != nil {
		t.Fatalf("WriteFile() err = %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if want := filepath.Join(dir, "assets"); cfg.Splash.AssetsPath != want {
		t.Fatalf("AssetsPath = %q, want %q", cfg.Splash.AssetsPath, want)
	}

	missing, err := Load(filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatalf("Load(missing) err = %v", err)
	}
	if missing.Splash.Theme != DefaultTheme {
		t.Fatalf("Load(missing) theme = %q", missing.Splash.Theme)
	}
}
