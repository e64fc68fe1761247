package anim

import (
	"testing"
	"time"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestScheduler() (*Scheduler, *fakeClock) {
	c := &fakeClock{now: time.Unix(1000, 0)}
	return NewScheduler(c.Now), c
}

func TestPaths(t *testing.T) {
	for name, p := range map[string]Path{"linear": Linear, "in": EaseIn, "out": EaseOut} {
		if p(0) != 0 || p(1) != 1 {
			t.Fatalf("%s: endpoints = (%v, %v), want (0, 1)", name, p(0), p(1))
		}
	}
	if EaseIn(0.5) >= 0.5 {
		t.Fatalf("EaseIn(0.5) = %v, want < 0.5", EaseIn(0.5))
	}
	if EaseOut(0.5) <= 0.5 {
		t.Fatalf("EaseOut(0.5) = %v, want > 0.5", EaseOut(0.5))
	}
}

func TestSchedulerSamplesAndRetires(t *testing.T) {
	s, c := newTestScheduler()
	var got []int
	s.Start(Anim{Target: "a", Prop: PropY, From: 0, To: 100, Duration: 100 * time.Millisecond, Exec: func(v int) { got = append(got, v) }})

	s.Sample(c.now)
	c.Advance(50 * time.Millisecond)
	s.Sample(c.now)
	c.Advance(60 * time.Millisecond)
	s.Sample(c.now)

	want := []int{0, 50, 100}
	if len(got) != len(want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values = %v, want %v", got, want)
		}
	}
	if s.Active("a", PropY) || s.Len() != 0 {
		t.Fatalf("animation still active after its duration")
	}
}

func TestSchedulerDelay(t *testing.T) {
	s, c := newTestScheduler()
	v := -1
	s.Start(Anim{Target: 1, Prop: PropOpaScale, From: 0, To: 255, Duration: 100 * time.Millisecond, Delay: 500 * time.Millisecond, Path: EaseIn, Exec: func(x int) { v = x }})

	c.Advance(499 * time.Millisecond)
	s.Sample(c.now)
	if v != -1 {
		t.Fatalf("value during delay = %d, want untouched", v)
	}
	if !s.Active(1, PropOpaScale) {
		t.Fatalf("Active() = false during delay")
	}
	c.Advance(time.Millisecond)
	s.Sample(c.now)
	if v != 0 {
		t.Fatalf("value at end of delay = %d, want 0", v)
	}
	c.Advance(100 * time.Millisecond)
	s.Sample(c.now)
	if v != 255 {
		t.Fatalf("final value = %d, want 255", v)
	}
}

func TestSchedulerReplacesSameKey(t *testing.T) {
	s, c := newTestScheduler()
	first, second := 0, 0
	target := &struct{ y int }{}
	s.Start(Anim{Target: target, Prop: PropY, From: 0, To: -100, Duration: time.Second, Exec: func(int) { first++ }})
	s.Start(Anim{Target: target, Prop: PropY, From: -30, To: 0, Duration: time.Second, Exec: func(int) { second++ }})
	s.Start(Anim{Target: target, Prop: PropX, From: 0, To: 1, Duration: time.Second, Exec: func(int) {}})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	c.Advance(10 * time.Millisecond)
	s.Sample(c.now)
	if first != 0 || second != 1 {
		t.Fatalf("exec counts = (%d, %d), want (0, 1)", first, second)
	}
}

func TestSchedulerZeroDuration(t *testing.T) {
	s, c := newTestScheduler()
	v := 0
	s.Start(Anim{Target: "x", Prop: PropValue, From: 3, To: 9, Exec: func(x int) { v = x }})
	s.Sample(c.now)
	if v != 9 || s.Len() != 0 {
		t.Fatalf("value = %d len = %d, want 9 and 0", v, s.Len())
	}
}

func TestSchedulerStop(t *testing.T) {
	s, c := newTestScheduler()
	calls := 0
	s.Start(Anim{Target: "x", Prop: PropY, From: 0, To: 10, Duration: time.Second, Exec: func(int) { calls++ }})
	s.Stop("x", PropY)
	c.Advance(time.Second)
	s.Sample(c.now)
	if calls != 0 {
		t.Fatalf("stopped animation ran %d times", calls)
	}
}
