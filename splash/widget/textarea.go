package widget

import (
	"image"
	"strings"
	"unicode"

	"golang.org/x/image/font"
)

const bullet = "•"

// TextArea is a one-line text field with a placeholder and an optional
// password mode. Submitting fires the submit hook at most once per hook.
type TextArea struct {
	*Obj
	face        font.Face
	text        []rune
	placeholder string
	pwd         bool
	onSubmit    func(string)
}

// NewTextArea adds a text field to parent. Its height follows the face.
func NewTextArea(parent *Obj, face font.Face) *TextArea {
	ta := &TextArea{Obj: NewContainer(parent), face: face}
	ta.content = ta
	ta.SetHeight(lineHeight(face) * 2)
	return ta
}

func (ta *TextArea) Text() string { return string(ta.text) }

func (ta *TextArea) SetText(s string) { ta.text = []rune(s) }

func (ta *TextArea) Placeholder() string { return ta.placeholder }

func (ta *TextArea) SetPlaceholder(s string) { ta.placeholder = s }

// SetPasswordMode masks the text when drawn.
func (ta *TextArea) SetPasswordMode(on bool) { ta.pwd = on }

func (ta *TextArea) Show() { ta.SetHidden(false) }
func (ta *TextArea) Hide() { ta.SetHidden(true) }

// SetOnSubmit installs the hook the next Submit consumes.
func (ta *TextArea) SetOnSubmit(fn func(string)) { ta.onSubmit = fn }

// Insert appends r if it is printable.
func (ta *TextArea) Insert(r rune) {
	if !unicode.IsPrint(r) {
		return
	}
	ta.text = append(ta.text, r)
}

// Backspace removes the last rune.
func (ta *TextArea) Backspace() {
	if n := len(ta.text); n > 0 {
		ta.text = ta.text[:n-1]
	}
}

// Submit hands the text to the submit hook and clears the hook. It reports
// whether a hook ran.
func (ta *TextArea) Submit() bool {
	fn := ta.onSubmit
	if fn == nil {
		return false
	}
	ta.onSubmit = nil
	fn(string(ta.text))
	return true
}

func (ta *TextArea) draw(dst *image.RGBA, r image.Rectangle, o *Obj, opa uint8) {
	s := string(ta.text)
	c := o.style.Text
	switch {
	case len(ta.text) == 0:
		s = ta.placeholder
		c = o.style.Placeholder
	case ta.pwd:
		s = strings.Repeat(bullet, len(ta.text))
	}
	y := r.Min.Y + (r.Dy()-lineHeight(ta.face))/2
	drawLine(dst, ta.face, r, y, s, fade(c, opa))
}
