// Package kernel is the cooperative main loop of the splash: a tiny task
// scheduler stepped once per frame, plus the mailbox that carries driver
// commands into that loop.
package kernel

import "time"

const maxTasks = 32

// TaskID identifies a registered task. NoTask is never assigned.
type TaskID uint8

const NoTask TaskID = 0xFF

// Clock returns the current monotonic time.
type Clock func() time.Time

// Task is a cooperative unit of execution. Step must not block.
type Task interface {
	Step(*Context)
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc func(*Context)

func (f TaskFunc) Step(ctx *Context) { f(ctx) }

type taskState struct {
	task Task
	live bool
}

// Kernel is a minimal cooperative scheduler.
//
// All tasks run on the goroutine calling Step; nothing here is safe for
// concurrent use.
type Kernel struct {
	clock Clock

	tasks     [maxTasks]taskState
	taskCount TaskID
	steps     uint64
}

// New creates a kernel reading time from clock (time.Now when nil).
func New(clock Clock) *Kernel {
	if clock == nil {
		clock = time.Now
	}
	return &Kernel{clock: clock}
}

// Now returns the kernel's notion of the current time.
func (k *Kernel) Now() time.Time { return k.clock() }

// AddTask registers a task and returns its ID, or NoTask when the table is full.
//
// Slots of retired tasks are reused.
func (k *Kernel) AddTask(t Task) TaskID {
	for id := TaskID(0); id < k.taskCount; id++ {
		if !k.tasks[id].live {
			k.tasks[id] = taskState{task: t, live: true}
			return id
		}
	}
	if k.taskCount >= maxTasks {
		return NoTask
	}
	id := k.taskCount
	k.taskCount++
	k.tasks[id] = taskState{task: t, live: true}
	return id
}

// Step runs every live task once, in registration order.
//
// A task added during Step first runs on the next Step.
func (k *Kernel) Step() {
	k.steps++
	n := k.taskCount
	for id := TaskID(0); id < n; id++ {
		st := &k.tasks[id]
		if !st.live || st.task == nil {
			continue
		}
		ctx := &Context{k: k, taskID: id}
		st.task.Step(ctx)
		if ctx.exit {
			*st = taskState{}
		}
	}
}

// Running returns the number of live tasks.
func (k *Kernel) Running() int {
	n := 0
	for id := TaskID(0); id < k.taskCount; id++ {
		if k.tasks[id].live {
			n++
		}
	}
	return n
}

// Steps returns how many times Step has been called.
func (k *Kernel) Steps() uint64 { return k.steps }

// Context provides task-local access to kernel operations.
type Context struct {
	k      *Kernel
	taskID TaskID
	exit   bool
}

// TaskID returns the current task ID.
func (c *Context) TaskID() TaskID { return c.taskID }

// Now returns the kernel time.
func (c *Context) Now() time.Time { return c.k.Now() }

// Exit retires the calling task once its current step returns.
func (c *Context) Exit() { c.exit = true }
