package widget

import (
	"image"
	"image/color"
	"time"

	"bootsplash/splash/anim"
)

// ProgressBar shows a 0..100 value. Value changes glide over the update
// length instead of jumping.
type ProgressBar struct {
	*Obj
	sched  *anim.Scheduler
	update time.Duration

	Foreground color.RGBA
	Background color.RGBA

	progress int
	shown    int
}

// NewProgressBar adds a progress bar to parent. Value changes are animated
// on sched over update.
func NewProgressBar(parent *Obj, sched *anim.Scheduler, update time.Duration) *ProgressBar {
	p := &ProgressBar{
		Obj:        NewContainer(parent),
		sched:      sched,
		update:     update,
		Foreground: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Background: color.RGBA{A: 0xFF},
	}
	p.content = p
	return p
}

// Progress returns the last value set.
func (p *ProgressBar) Progress() int { return p.progress }

// Shown returns the value currently drawn.
func (p *ProgressBar) Shown() int { return p.shown }

// SetProgress sets the value, clamped to 0..100.
func (p *ProgressBar) SetProgress(v int) {
	v = min(max(v, 0), 100)
	p.progress = v
	if p.sched == nil || p.update <= 0 {
		if p.sched != nil {
			p.sched.Stop(p, anim.PropValue)
		}
		p.shown = v
		return
	}
	p.sched.Start(anim.Anim{
		Target:   p,
		Prop:     anim.PropValue,
		From:     p.shown,
		To:       v,
		Duration: p.update,
		Path:     anim.EaseOut,
		Exec:     func(x int) { p.shown = x },
	})
}

func (p *ProgressBar) draw(dst *image.RGBA, r image.Rectangle, _ *Obj, opa uint8) {
	bw := max(1, r.Dy()/6)
	fillRect(dst, r, p.Foreground, opa)
	inner := r.Inset(bw)
	fillRect(dst, inner, p.Background, opa)

	bar := inner.Inset(bw)
	if bar.Empty() {
		return
	}
	bar.Max.X = bar.Min.X + bar.Dx()*p.shown/100
	fillRect(dst, bar, p.Foreground, opa)
}
