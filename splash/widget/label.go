package widget

import (
	"image"

	"golang.org/x/image/font"
)

// Label is centered text that breaks into lines at its width. Its height
// follows its content.
type Label struct {
	*Obj
	face  font.Face
	text  string
	lines []string
}

// NewLabel adds a label drawn with face to parent.
func NewLabel(parent *Obj, face font.Face) *Label {
	l := &Label{Obj: NewContainer(parent), face: face}
	l.content = l
	l.reflow()
	return l
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(s string) {
	l.text = s
	l.reflow()
}

// SetWidth sets the wrapping width and reflows the text.
func (l *Label) SetWidth(w int) {
	l.Obj.SetWidth(w)
	l.reflow()
}

// Lines returns the wrapped lines.
func (l *Label) Lines() []string { return append([]string(nil), l.lines...) }

func (l *Label) reflow() {
	l.lines = wrap(l.face, l.text, l.w)
	l.h = len(l.lines) * lineHeight(l.face)
}

func (l *Label) draw(dst *image.RGBA, r image.Rectangle, o *Obj, opa uint8) {
	c := fade(o.style.Text, opa)
	lh := lineHeight(l.face)
	for i, line := range l.lines {
		drawLine(dst, l.face, r, r.Min.Y+i*lh, line, c)
	}
}
