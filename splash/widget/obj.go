// Package widget is the small retained widget tree the splash draws: plain
// containers plus image, label, progress bar, text area and keyboard
// content, rendered in software to an *image.RGBA.
package widget

import (
	"image"
	"image/color"
)

// Style is the look of one object. It is a value: setting it on an object
// copies it, so objects never share a mutable style.
type Style struct {
	// Body fills the object's box; a zero alpha leaves it transparent.
	Body        color.RGBA
	BorderColor color.RGBA
	BorderWidth int
	Text        color.RGBA
	Placeholder color.RGBA
}

type content interface {
	draw(dst *image.RGBA, r image.Rectangle, o *Obj, opa uint8)
}

// Obj is a node of the widget tree. Positions are relative to the parent.
// Children are owned by their parent; the parent link is a back-reference.
type Obj struct {
	parent   *Obj
	children []*Obj

	x, y, w, h int
	hidden     bool
	style      Style

	opaScaleEnabled bool
	opaScale        uint8

	content content
}

// NewScreen returns a root object of the given size.
func NewScreen(w, h int) *Obj {
	return &Obj{w: w, h: h, opaScale: 0xFF}
}

// NewContainer adds an empty child to parent.
func NewContainer(parent *Obj) *Obj {
	o := &Obj{opaScale: 0xFF}
	parent.add(o)
	return o
}

func (o *Obj) add(child *Obj) {
	child.parent = o
	o.children = append(o.children, child)
}

// Parent returns the parent object, or nil for a screen.
func (o *Obj) Parent() *Obj { return o.parent }

// Children returns the children in drawing order.
func (o *Obj) Children() []*Obj { return append([]*Obj(nil), o.children...) }

// SetParent moves o under parent, on top of its new siblings.
func (o *Obj) SetParent(parent *Obj) {
	if o.parent == parent {
		return
	}
	if o.parent != nil {
		o.parent.remove(o)
	}
	if parent != nil {
		parent.add(o)
	}
}

func (o *Obj) remove(child *Obj) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Del detaches o from its parent.
func (o *Obj) Del() {
	if o.parent != nil {
		o.parent.remove(o)
	}
}

func (o *Obj) X() int      { return o.x }
func (o *Obj) Y() int      { return o.y }
func (o *Obj) Width() int  { return o.w }
func (o *Obj) Height() int { return o.h }

func (o *Obj) SetX(x int)         { o.x = x }
func (o *Obj) SetY(y int)         { o.y = y }
func (o *Obj) SetPos(x, y int)    { o.x, o.y = x, y }
func (o *Obj) SetWidth(w int)     { o.w = max(w, 0) }
func (o *Obj) SetHeight(h int)    { o.h = max(h, 0) }
func (o *Obj) Hidden() bool       { return o.hidden }
func (o *Obj) SetHidden(hid bool) { o.hidden = hid }

func (o *Obj) SetSize(w, h int) {
	o.SetWidth(w)
	o.SetHeight(h)
}

// Bounds returns the object's box in its parent's coordinates.
func (o *Obj) Bounds() image.Rectangle { return image.Rect(o.x, o.y, o.x+o.w, o.y+o.h) }

// AbsBounds returns the object's box in screen coordinates.
func (o *Obj) AbsBounds() image.Rectangle {
	r := o.Bounds()
	for p := o.parent; p != nil; p = p.parent {
		r = r.Add(image.Pt(p.x, p.y))
	}
	return r
}

// Style returns a copy of the object's style.
func (o *Obj) Style() Style { return o.style }

// SetStyle replaces the object's style with a copy of s.
func (o *Obj) SetStyle(s Style) { o.style = s }

// EnableOpaScale makes OpaScale apply to the object and its children.
func (o *Obj) EnableOpaScale(en bool) { o.opaScaleEnabled = en }

func (o *Obj) OpaScale() uint8 { return o.opaScale }

// SetOpaScale sets the opacity multiplier, clamped to 0..255.
func (o *Obj) SetOpaScale(v int) {
	o.opaScale = uint8(min(max(v, 0), 0xFF))
}
