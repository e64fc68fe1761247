package widget

import (
	"image"
	"image/color"
	"testing"
	"time"

	"bootsplash/hal"
	"bootsplash/splash/anim"
)

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestLabel(t *testing.T, px float64) *Label {
	t.Helper()
	face, err := NewFace(px)
	if err != nil {
		t.Fatalf("NewFace() err = %v", err)
	}
	return NewLabel(NewScreen(200, 200), face)
}

func TestObjTree(t *testing.T) {
	screen := NewScreen(100, 80)
	page := NewContainer(screen)
	page.SetPos(0, 10)
	child := NewContainer(page)
	child.SetPos(5, 7)
	child.SetSize(10, 20)

	if got := child.AbsBounds(); got != image.Rect(5, 17, 15, 37) {
		t.Fatalf("AbsBounds() = %v", got)
	}
	if child.Parent() != page || len(page.Children()) != 1 {
		t.Fatalf("parent links wrong")
	}

	child.SetParent(screen)
	if len(page.Children()) != 0 || len(screen.Children()) != 2 {
		t.Fatalf("SetParent() children = %d/%d", len(page.Children()), len(screen.Children()))
	}
	child.Del()
	if child.Parent() != nil || len(screen.Children()) != 1 {
		t.Fatalf("Del() left child attached")
	}
}

func TestStyleIsCopied(t *testing.T) {
	screen := NewScreen(10, 10)
	a := NewContainer(screen)
	b := NewContainer(screen)

	st := a.Style()
	st.Body = white
	a.SetStyle(st)
	b.SetStyle(st)
	st.Body = black
	a.SetStyle(st)

	if b.Style().Body != white {
		t.Fatalf("style shared between objects")
	}
}

func TestRenderOpaScaleAndHidden(t *testing.T) {
	screen := NewScreen(4, 4)
	screen.SetStyle(Style{Body: black})
	cover := NewContainer(screen)
	cover.SetSize(4, 4)
	cover.SetStyle(Style{Body: white})
	cover.EnableOpaScale(true)

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))

	cover.SetOpaScale(0)
	Render(dst, screen)
	if got := dst.RGBAAt(1, 1); got != black {
		t.Fatalf("transparent cover pixel = %v, want black", got)
	}

	cover.SetOpaScale(0xFF)
	Render(dst, screen)
	if got := dst.RGBAAt(1, 1); got != white {
		t.Fatalf("opaque cover pixel = %v, want white", got)
	}

	cover.SetOpaScale(128)
	Render(dst, screen)
	if got := dst.RGBAAt(1, 1); got.R < 120 || got.R > 136 {
		t.Fatalf("half cover pixel = %v, want mid grey", got)
	}

	cover.SetHidden(true)
	Render(dst, screen)
	if got := dst.RGBAAt(1, 1); got != black {
		t.Fatalf("hidden cover pixel = %v, want black", got)
	}
}

func TestRenderClipsToParent(t *testing.T) {
	screen := NewScreen(10, 10)
	screen.SetStyle(Style{Body: black})
	box := NewContainer(screen)
	box.SetSize(4, 4)
	inner := NewContainer(box)
	inner.SetSize(8, 8)
	inner.SetStyle(Style{Body: white})

	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Render(dst, screen)
	if got := dst.RGBAAt(3, 3); got != white {
		t.Fatalf("inside pixel = %v, want white", got)
	}
	if got := dst.RGBAAt(6, 6); got != black {
		t.Fatalf("clipped pixel = %v, want black", got)
	}
}

func TestLabelWrap(t *testing.T) {
	l := newTestLabel(t, 16)
	l.SetWidth(1000)
	l.SetText("Booting to recovery menu")
	if got := len(l.Lines()); got != 1 {
		t.Fatalf("wide label lines = %d, want 1", got)
	}
	oneLine := l.Height()

	l.SetWidth(textWidth(l.face, "Booting to") + 1)
	if got := len(l.Lines()); got != 3 {
		t.Fatalf("narrow label lines = %v, want 3", l.Lines())
	}
	if l.Height() != 3*oneLine {
		t.Fatalf("Height() = %d, want %d", l.Height(), 3*oneLine)
	}

	l.SetWidth(textWidth(l.face, "W"))
	l.SetText("WWWW")
	if got := len(l.Lines()); got != 4 {
		t.Fatalf("long word lines = %v, want 4", l.Lines())
	}

	l.SetText("")
	if l.Height() != oneLine {
		t.Fatalf("empty label Height() = %d, want one line %d", l.Height(), oneLine)
	}
}

func TestTextAreaSubmitOnce(t *testing.T) {
	face, err := NewFace(16)
	if err != nil {
		t.Fatalf("NewFace() err = %v", err)
	}
	ta := NewTextArea(NewScreen(100, 100), face)
	var got []string
	ta.SetOnSubmit(func(s string) { got = append(got, s) })

	for _, r := range "hunter2\x00" {
		ta.Insert(r)
	}
	ta.Backspace()
	if !ta.Submit() {
		t.Fatalf("Submit() = false, want true")
	}
	if ta.Submit() {
		t.Fatalf("second Submit() = true, want false")
	}
	if len(got) != 1 || got[0] != "hunter" {
		t.Fatalf("submitted %q, want [hunter]", got)
	}
}

func TestKeyboardRoutesKeys(t *testing.T) {
	face, err := NewFace(16)
	if err != nil {
		t.Fatalf("NewFace() err = %v", err)
	}
	clock := &fakeClock{now: time.Unix(0, 0)}
	sched := anim.NewScheduler(clock.Now)
	screen := NewScreen(480, 800)
	kb := NewKeyboard(screen, sched, KeyboardColors{})
	kb.SetHeight(264)
	ta := NewTextArea(screen, face)

	if kb.HandleKey(hal.KeyEvent{Press: true, Rune: 'a'}) {
		t.Fatalf("hidden keyboard consumed a key")
	}

	var submitted string
	ta.SetOnSubmit(func(s string) { submitted = s })
	kb.SetTextArea(ta)
	kb.Show()

	clock.now = clock.now.Add(KeyboardAnimation)
	sched.Sample(clock.now)
	if kb.Y() != 800-264 {
		t.Fatalf("keyboard Y() = %d, want %d", kb.Y(), 800-264)
	}

	for _, ev := range []hal.KeyEvent{
		{Press: true, Rune: 'o'},
		{Press: true, Rune: 'k'},
		{Press: false, Code: hal.KeyEnter},
		{Press: true, Code: hal.KeyEnter},
	} {
		kb.HandleKey(ev)
	}
	if submitted != "ok" {
		t.Fatalf("submitted %q, want %q", submitted, "ok")
	}
	if kb.Shown() {
		t.Fatalf("keyboard still shown after submit")
	}
}

func TestProgressBarAnimates(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	sched := anim.NewScheduler(clock.Now)
	p := NewProgressBar(NewScreen(100, 100), sched, 500*time.Millisecond)

	p.SetProgress(150)
	if p.Progress() != 100 {
		t.Fatalf("Progress() = %d, want clamped 100", p.Progress())
	}
	sched.Sample(clock.now)
	if p.Shown() != 0 {
		t.Fatalf("Shown() at start = %d, want 0", p.Shown())
	}
	clock.now = clock.now.Add(500 * time.Millisecond)
	sched.Sample(clock.now)
	if p.Shown() != 100 {
		t.Fatalf("Shown() at end = %d, want 100", p.Shown())
	}

	direct := NewProgressBar(NewScreen(100, 100), nil, 0)
	direct.SetProgress(-4)
	if direct.Shown() != 0 || direct.Progress() != 0 {
		t.Fatalf("direct bar = %d/%d, want 0/0", direct.Shown(), direct.Progress())
	}
}

func TestMix(t *testing.T) {
	if got := Mix(white, black, 0xFF); got != white {
		t.Fatalf("Mix(ratio 255) = %v, want white", got)
	}
	if got := Mix(white, black, 0); got != black {
		t.Fatalf("Mix(ratio 0) = %v, want black", got)
	}
}
