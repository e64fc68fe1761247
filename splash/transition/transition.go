// Package transition fades the splash in and out and decides when the
// process may exit.
package transition

import (
	"time"

	"bootsplash/kernel"
	"bootsplash/splash/anim"
	"bootsplash/splash/widget"
)

// Timing holds the durations of the transitions.
type Timing struct {
	// FadeLength is the fade in and fade out duration.
	FadeLength time.Duration
	// ProgressUpdateLength is how long a progress bar change takes to
	// show. The fade out waits for it.
	ProgressUpdateLength time.Duration
	// ExitMargin is added after the fade before exiting.
	ExitMargin time.Duration
	// SimulatorSettle keeps the last frame up in the simulator.
	SimulatorSettle time.Duration
}

// DefaultTiming returns the stock durations.
func DefaultTiming() Timing {
	return Timing{
		FadeLength:           400 * time.Millisecond,
		ProgressUpdateLength: 500 * time.Millisecond,
		ExitMargin:           100 * time.Millisecond,
		SimulatorSettle:      2 * time.Second,
	}
}

// TaskAdder registers the exit poll. *kernel.Kernel implements it.
type TaskAdder interface {
	AddTask(t kernel.Task) kernel.TaskID
}

// Options wires a Controller.
type Options struct {
	// Cover is the full-screen overlay whose opacity is animated.
	Cover *widget.Obj
	Sched *anim.Scheduler
	Tasks TaskAdder
	Clock kernel.Clock
	Timing
	Simulator bool
	// SetProgress is called with 100 when quitting.
	SetProgress func(int)
	// Exit is called once the exit gate opens.
	Exit func()
}

// Controller runs the fades and the exit gate.
type Controller struct {
	opts Options

	quitting    bool
	exitAt      time.Time
	settleUntil time.Time
	exited      bool
}

// New returns a controller. The cover starts opaque.
func New(opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	opts.Cover.EnableOpaScale(true)
	opts.Cover.SetOpaScale(0xFF)
	return &Controller{opts: opts}
}

// FadeIn uncovers the scene over d.
func (c *Controller) FadeIn(d time.Duration) {
	c.fade(0xFF, 0, d, 0, anim.EaseOut)
}

// FadeOut covers the scene over d, once the last progress update had time
// to show.
func (c *Controller) FadeOut(d time.Duration) {
	c.fade(0, 0xFF, d, c.opts.ProgressUpdateLength, anim.EaseIn)
}

func (c *Controller) fade(from, to int, d, delay time.Duration, path anim.Path) {
	cover := c.opts.Cover
	c.opts.Sched.Start(anim.Anim{
		Target:   cover,
		Prop:     anim.PropOpaScale,
		From:     from,
		To:       to,
		Duration: d,
		Delay:    delay,
		Path:     path,
		Exec:     cover.SetOpaScale,
	})
}

// Quit fills the progress bar, fades out unless sticky, and arms the exit
// gate. A sticky quit leaves the scene on screen for whatever comes next.
// Calls after the first are ignored and return false.
func (c *Controller) Quit(sticky bool) bool {
	if c.quitting {
		return false
	}
	c.quitting = true

	var fade time.Duration
	if !sticky {
		fade = c.opts.FadeLength
		c.FadeOut(fade)
	}
	if c.opts.SetProgress != nil {
		c.opts.SetProgress(100)
	}

	// The animation scheduler has no completion signal, so the gate polls
	// the clock from the main loop.
	c.exitAt = c.opts.Clock().Add(fade + c.opts.ProgressUpdateLength + c.opts.ExitMargin)
	if c.opts.Tasks.AddTask(kernel.TaskFunc(c.poll)) == kernel.NoTask {
		// Nothing would ever open the gate.
		c.exit()
	}
	return true
}

// ExitAt returns the time after which the gate opens.
func (c *Controller) ExitAt() (time.Time, bool) { return c.exitAt, c.quitting }

// Exited reports whether Exit was called.
func (c *Controller) Exited() bool { return c.exited }

func (c *Controller) poll(ctx *kernel.Context) {
	now := ctx.Now()
	if !now.After(c.exitAt) {
		return
	}
	if c.opts.Simulator && c.opts.SimulatorSettle > 0 {
		if c.settleUntil.IsZero() {
			c.settleUntil = now.Add(c.opts.SimulatorSettle)
			return
		}
		if !now.After(c.settleUntil) {
			return
		}
	}
	ctx.Exit()
	c.exit()
}

func (c *Controller) exit() {
	c.exited = true
	if c.opts.Exit != nil {
		c.opts.Exit()
	}
}
