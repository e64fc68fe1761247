// Package anim animates integer properties over time. Animations are keyed by
// (target, property); starting one on a busy key replaces the running one.
//
// There is no completion callback: callers that need to know whether an
// animation is over poll Active or compare against the clock.
package anim

import (
	"math"
	"time"

	"bootsplash/kernel"
)

// Path maps linear progress t in [0,1] to eased progress.
type Path func(t float64) float64

func Linear(t float64) float64 { return t }

// EaseIn starts slow and speeds up.
func EaseIn(t float64) float64 { return t * t * t }

// EaseOut starts fast and slows down.
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Prop names the animated property of a target.
type Prop uint8

const (
	PropX Prop = iota + 1
	PropY
	PropOpaScale
	PropValue
)

// Anim describes one timed transition of a property from From to To.
type Anim struct {
	Target   any
	Prop     Prop
	From, To int
	Duration time.Duration
	Delay    time.Duration
	// Path defaults to Linear.
	Path Path
	// Exec applies a sampled value.
	Exec func(v int)
}

type key struct {
	target any
	prop   Prop
}

type running struct {
	Anim
	start time.Time
}

// Scheduler samples running animations. It is driven from the main loop.
type Scheduler struct {
	clock kernel.Clock
	byKey map[key]*running
	order []key
}

// NewScheduler returns an empty scheduler reading time from clock.
func NewScheduler(clock kernel.Clock) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{clock: clock, byKey: make(map[key]*running)}
}

// Start launches a, replacing any animation on the same target and property.
func (s *Scheduler) Start(a Anim) {
	if a.Exec == nil {
		return
	}
	if a.Path == nil {
		a.Path = Linear
	}
	k := key{target: a.Target, prop: a.Prop}
	if _, ok := s.byKey[k]; !ok {
		s.order = append(s.order, k)
	}
	s.byKey[k] = &running{Anim: a, start: s.clock()}
}

// Stop drops the animation on target and prop, leaving the property as is.
func (s *Scheduler) Stop(target any, prop Prop) {
	k := key{target: target, prop: prop}
	if _, ok := s.byKey[k]; !ok {
		return
	}
	delete(s.byKey, k)
	s.compact()
}

// Active reports whether an animation runs (or waits for its delay) on
// target and prop.
func (s *Scheduler) Active(target any, prop Prop) bool {
	_, ok := s.byKey[key{target: target, prop: prop}]
	return ok
}

// Len returns the number of running animations.
func (s *Scheduler) Len() int { return len(s.byKey) }

// Step samples every animation at the kernel time.
func (s *Scheduler) Step(ctx *kernel.Context) { s.Sample(ctx.Now()) }

// Sample applies the value of every animation at now and retires the
// finished ones.
func (s *Scheduler) Sample(now time.Time) {
	done := false
	for _, k := range s.order {
		r, ok := s.byKey[k]
		if !ok {
			continue
		}
		elapsed := now.Sub(r.start) - r.Delay
		if elapsed < 0 {
			continue
		}
		t := 1.0
		if r.Duration > 0 && elapsed < r.Duration {
			t = float64(elapsed) / float64(r.Duration)
		}
		r.Exec(r.value(t))
		if t >= 1 {
			// Exec may have restarted the key.
			if s.byKey[k] == r {
				delete(s.byKey, k)
			}
			done = true
		}
	}
	if done {
		s.compact()
	}
}

func (r *running) value(t float64) int {
	if t >= 1 {
		return r.To
	}
	return r.From + int(math.Round(float64(r.To-r.From)*r.Path(t)))
}

func (s *Scheduler) compact() {
	out := s.order[:0]
	for _, k := range s.order {
		if _, ok := s.byKey[k]; ok {
			out = append(out, k)
		}
	}
	s.order = out
}
