package transition

import (
	"testing"
	"time"

	"bootsplash/kernel"
	"bootsplash/splash/anim"
	"bootsplash/splash/widget"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixture struct {
	clock    *fakeClock
	k        *kernel.Kernel
	sched    *anim.Scheduler
	cover    *widget.Obj
	c        *Controller
	progress int
	exits    int
}

func newFixture(simulator bool) *fixture {
	f := &fixture{clock: &fakeClock{now: time.Unix(1000, 0)}, progress: -1}
	f.k = kernel.New(f.clock.Now)
	f.sched = anim.NewScheduler(f.clock.Now)
	f.k.AddTask(f.sched)
	f.cover = widget.NewContainer(widget.NewScreen(480, 800))
	f.c = New(Options{
		Cover:       f.cover,
		Sched:       f.sched,
		Tasks:       f.k,
		Clock:       f.clock.Now,
		Timing:      DefaultTiming(),
		Simulator:   simulator,
		SetProgress: func(v int) { f.progress = v },
		Exit:        func() { f.exits++ },
	})
	return f
}

// run steps the kernel every 10ms for d.
func (f *fixture) run(d time.Duration) {
	for end := f.clock.now.Add(d); f.clock.now.Before(end); {
		f.clock.Advance(10 * time.Millisecond)
		f.k.Step()
	}
}

func TestFadeIn(t *testing.T) {
	f := newFixture(false)
	if f.cover.OpaScale() != 0xFF {
		t.Fatalf("cover starts at %d, want opaque", f.cover.OpaScale())
	}
	f.c.FadeIn(400 * time.Millisecond)
	f.run(200 * time.Millisecond)
	mid := f.cover.OpaScale()
	// Ease out: more than half done at half time.
	if mid == 0 || mid >= 0x80 {
		t.Fatalf("opacity halfway = %d, want in (0, 128)", mid)
	}
	f.run(300 * time.Millisecond)
	if f.cover.OpaScale() != 0 {
		t.Fatalf("opacity after fade = %d, want 0", f.cover.OpaScale())
	}
}

func TestFadeOutWaitsForProgress(t *testing.T) {
	f := newFixture(false)
	f.cover.SetOpaScale(0)
	f.c.FadeOut(400 * time.Millisecond)
	f.run(490 * time.Millisecond)
	if f.cover.OpaScale() != 0 {
		t.Fatalf("opacity during delay = %d, want 0", f.cover.OpaScale())
	}
	f.run(500 * time.Millisecond)
	if f.cover.OpaScale() != 0xFF {
		t.Fatalf("opacity after fade = %d, want 255", f.cover.OpaScale())
	}
}

func TestQuitSticky(t *testing.T) {
	f := newFixture(false)
	f.cover.SetOpaScale(0)
	start := f.clock.now
	if !f.c.Quit(true) {
		t.Fatalf("Quit() = false, want true")
	}
	if f.sched.Active(f.cover, anim.PropOpaScale) {
		t.Fatalf("sticky quit started a fade")
	}
	if f.progress != 100 {
		t.Fatalf("progress = %d, want 100", f.progress)
	}
	exitAt, ok := f.c.ExitAt()
	if want := start.Add(600 * time.Millisecond); !ok || !exitAt.Equal(want) {
		t.Fatalf("ExitAt() = %v, want %v", exitAt, want)
	}

	f.run(590 * time.Millisecond)
	if f.exits != 0 {
		t.Fatalf("exited before the gate opened")
	}
	f.run(20 * time.Millisecond)
	if f.exits != 1 || !f.c.Exited() {
		t.Fatalf("exits = %d, want 1", f.exits)
	}
	f.run(100 * time.Millisecond)
	if f.exits != 1 {
		t.Fatalf("exits = %d after more steps, want 1", f.exits)
	}
	if f.cover.OpaScale() != 0 {
		t.Fatalf("sticky quit changed the cover")
	}
}

func TestQuitFadesOut(t *testing.T) {
	f := newFixture(false)
	f.cover.SetOpaScale(0)
	start := f.clock.now
	f.c.Quit(false)

	if !f.sched.Active(f.cover, anim.PropOpaScale) {
		t.Fatalf("quit did not start a fade")
	}
	exitAt, _ := f.c.ExitAt()
	if !exitAt.After(start.Add(DefaultTiming().FadeLength)) {
		t.Fatalf("ExitAt() = %v, want after now + fade", exitAt)
	}

	f.run(time.Second + 10*time.Millisecond)
	if f.exits != 1 {
		t.Fatalf("exits = %d, want 1", f.exits)
	}
	if f.cover.OpaScale() != 0xFF {
		t.Fatalf("cover at exit = %d, want opaque", f.cover.OpaScale())
	}
}

func TestQuitTwiceIgnored(t *testing.T) {
	f := newFixture(false)
	f.c.Quit(true)
	first, _ := f.c.ExitAt()
	f.clock.Advance(time.Millisecond)
	if f.c.Quit(false) {
		t.Fatalf("second Quit() = true, want false")
	}
	if again, _ := f.c.ExitAt(); !again.Equal(first) {
		t.Fatalf("second Quit() moved the exit time")
	}
	if f.sched.Active(f.cover, anim.PropOpaScale) {
		t.Fatalf("second Quit() started a fade")
	}
}

func TestQuitSimulatorSettles(t *testing.T) {
	f := newFixture(true)
	f.c.Quit(true)
	f.run(time.Second)
	if f.exits != 0 {
		t.Fatalf("simulator exited without settling")
	}
	f.run(2 * time.Second)
	if f.exits != 1 {
		t.Fatalf("exits = %d after settle, want 1", f.exits)
	}
}

type fullTable struct{}

func (fullTable) AddTask(kernel.Task) kernel.TaskID { return kernel.NoTask }

func TestQuitWithFullTaskTable(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	var exits int
	c := New(Options{
		Cover:  widget.NewContainer(widget.NewScreen(480, 800)),
		Sched:  anim.NewScheduler(clock.Now),
		Tasks:  fullTable{},
		Clock:  clock.Now,
		Timing: DefaultTiming(),
		Exit:   func() { exits++ },
	})
	if !c.Quit(false) {
		t.Fatalf("Quit() = false on first call")
	}
	if exits != 1 || !c.Exited() {
		t.Fatalf("exits = %d, Exited() = %v, want an immediate exit", exits, c.Exited())
	}
}
