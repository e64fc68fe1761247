package widget

import (
	"image"
	"image/color"
	"time"

	"bootsplash/hal"
	"bootsplash/splash/anim"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// KeyboardAnimation is how long the keyboard takes to slide in or out.
const KeyboardAnimation = 300 * time.Millisecond

// KeyboardColors is the palette of the on-screen keyboard.
type KeyboardColors struct {
	Background color.RGBA
	Key        color.RGBA
	KeyText    color.RGBA
}

var keyRows = [][]string{
	{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
	{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"},
	{"a", "s", "d", "f", "g", "h", "j", "k", "l"},
	{"z", "x", "c", "v", "b", "n", "m", "<-"},
	{"space", "OK"},
}

// Keyboard is the on-screen keyboard. It slides in from the bottom of its
// parent and feeds key events to the attached text area.
type Keyboard struct {
	*Obj
	sched  *anim.Scheduler
	colors KeyboardColors
	ta     *TextArea
	shown  bool
}

// NewKeyboard adds a hidden keyboard spanning the width of parent.
func NewKeyboard(parent *Obj, sched *anim.Scheduler, colors KeyboardColors) *Keyboard {
	k := &Keyboard{Obj: NewContainer(parent), sched: sched, colors: colors}
	k.content = k
	k.SetWidth(parent.Width())
	k.SetY(parent.Height())
	k.SetHidden(true)
	return k
}

// AnimationDuration is the slide duration.
func (k *Keyboard) AnimationDuration() time.Duration { return KeyboardAnimation }

// SetTextArea attaches the text area receiving input.
func (k *Keyboard) SetTextArea(ta *TextArea) { k.ta = ta }

// TextArea returns the attached text area.
func (k *Keyboard) TextArea() *TextArea { return k.ta }

// Shown reports whether the keyboard is up or on its way up.
func (k *Keyboard) Shown() bool { return k.shown }

// Show slides the keyboard in.
func (k *Keyboard) Show() {
	k.shown = true
	k.SetHidden(false)
	k.slide(k.parent.Height() - k.Height())
}

// Hide slides the keyboard out. It stays attached to its text area.
func (k *Keyboard) Hide() {
	k.shown = false
	k.slide(k.parent.Height())
}

func (k *Keyboard) slide(to int) {
	if k.sched == nil {
		k.SetY(to)
		return
	}
	k.sched.Start(anim.Anim{
		Target:   k.Obj,
		Prop:     anim.PropY,
		From:     k.Y(),
		To:       to,
		Duration: KeyboardAnimation,
		Path:     anim.EaseOut,
		Exec:     k.SetY,
	})
}

// HandleKey routes a key press to the text area and reports whether it was
// consumed. Enter submits and slides the keyboard out.
func (k *Keyboard) HandleKey(ev hal.KeyEvent) bool {
	if !k.shown || k.ta == nil || k.ta.Hidden() || !ev.Press {
		return false
	}
	if ev.Rune != 0 {
		k.ta.Insert(ev.Rune)
		return true
	}
	switch ev.Code {
	case hal.KeyBackspace:
		k.ta.Backspace()
	case hal.KeyEnter:
		k.Hide()
		k.ta.Submit()
	default:
		return false
	}
	return true
}

func (k *Keyboard) draw(dst *image.RGBA, r image.Rectangle, _ *Obj, opa uint8) {
	fillRect(dst, r, k.colors.Background, opa)

	d := &rgbaDisplay{dst: dst, opa: opa}
	font := &proggy.TinySZ8pt7b
	pad := max(2, r.Dy()/60)
	rowH := (r.Dy() - pad) / len(keyRows)
	if rowH <= pad {
		return
	}
	for ri, row := range keyRows {
		y := r.Min.Y + pad + ri*rowH
		keyW := (r.Dx() - pad) / len(row)
		for ki, label := range row {
			x := r.Min.X + pad + ki*keyW
			key := image.Rect(x, y, x+keyW-pad, y+rowH-pad)
			fillRect(dst, key, k.colors.Key, opa)

			_, w := tinyfont.LineWidth(font, label)
			tx := key.Min.X + (key.Dx()-int(w))/2
			ty := key.Min.Y + key.Dy()/2 + 4
			tinyfont.WriteLine(d, font, int16(tx), int16(ty), label, k.colors.KeyText)
		}
	}
}
