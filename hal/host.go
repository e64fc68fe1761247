//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// HostOptions configures the host HAL.
type HostOptions struct {
	Width       int
	Height      int
	Orientation PanelOrientation
	// LogOutput receives log lines. Defaults to stderr so stdout stays free
	// for driver answers.
	LogOutput io.Writer
}

type hostHAL struct {
	logger      *hostLogger
	fb          Framebuffer
	kbd         *hostKeyboard
	orientation PanelOrientation
	simulator   bool
}

// New returns a host HAL backed by an in-memory framebuffer.
func New(opts HostOptions) HAL {
	return newHostHAL(opts, nil)
}

func newHostHAL(opts HostOptions, fb Framebuffer) *hostHAL {
	if opts.Width <= 0 {
		opts.Width = 480
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if fb == nil {
		fb = newHostFramebuffer(opts.Width, opts.Height)
	}
	return &hostHAL{
		logger:      &hostLogger{w: opts.LogOutput},
		fb:          fb,
		kbd:         newHostKeyboard(),
		orientation: opts.Orientation,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb, orientation: h.orientation} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Simulator() bool  { return h.simulator }

type hostDisplay struct {
	fb          Framebuffer
	orientation PanelOrientation
}

func (d hostDisplay) Framebuffer() Framebuffer      { return d.fb }
func (d hostDisplay) Orientation() PanelOrientation { return d.orientation }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
