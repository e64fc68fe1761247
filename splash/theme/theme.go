// Package theme holds the named palettes of the splash chrome.
package theme

import (
	"image/color"
	"sort"

	"bootsplash/splash/widget"
)

// Theme colors the parts the configuration does not.
type Theme struct {
	Name     string
	Keyboard widget.KeyboardColors
	// PlaceholderMix is the weight of the foreground in the placeholder
	// text color, the rest being background.
	PlaceholderMix uint8
}

var themes = map[string]Theme{
	"night": {
		Name: "night",
		Keyboard: widget.KeyboardColors{
			Background: color.RGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xFF},
			Key:        color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF},
			KeyText:    color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF},
		},
		PlaceholderMix: 100,
	},
	"day": {
		Name: "day",
		Keyboard: widget.KeyboardColors{
			Background: color.RGBA{R: 0xE4, G: 0xE4, B: 0xE4, A: 0xFF},
			Key:        color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
			KeyText:    color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF},
		},
		PlaceholderMix: 100,
	},
}

// Lookup returns the named theme. ok is false for unknown names, in which
// case the night theme is returned.
func Lookup(name string) (t Theme, ok bool) {
	t, ok = themes[name]
	if !ok {
		return themes["night"], false
	}
	return t, true
}

// Names lists the known themes.
func Names() []string {
	out := make([]string, 0, len(themes))
	for name := range themes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
