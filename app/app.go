package app

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"bootsplash/hal"
	"bootsplash/internal/buildinfo"
	"bootsplash/kernel"
	"bootsplash/splash/anim"
	"bootsplash/splash/bgrt"
	"bootsplash/splash/config"
	"bootsplash/splash/proto"
	"bootsplash/splash/scene"

	"github.com/HugoSmits86/nativewebp"
)

// Config selects where the splash reads its settings and commands.
type Config struct {
	// ConfigPath is the JSON configuration file. Missing means defaults.
	ConfigPath string
	// BGRTDir is the firmware image directory, bgrt.DefaultDir when empty.
	BGRTDir string
	// Commands carries driver command lines. Nil means no driver.
	Commands io.Reader
	// Answers receives "answer" lines. Nil discards them.
	Answers io.Writer
	// InputCharset decodes Commands from a legacy charset.
	InputCharset string
	// FadeIn uncovers the scene at start instead of waiting for the driver.
	FadeIn bool
	// Screenshot writes the last frame to a .png or .webp file on exit.
	Screenshot string
	// Clock defaults to time.Now.
	Clock kernel.Clock
}

type system struct {
	h   hal.HAL
	log hal.Logger
	cfg Config

	k     *kernel.Kernel
	mb    *kernel.Mailbox
	sc    *scene.Scene
	fb    hal.Framebuffer
	frame *image.RGBA

	answerMu sync.Mutex
	quitting bool
	exit     bool
}

// NewWithConfig builds the splash on h and returns its per-tick step. The
// step returns hal.ErrExit once the splash is done.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.step
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	s := &system{
		h:   h,
		log: h.Logger(),
		cfg: cfg,
		mb:  new(kernel.Mailbox),
	}
	s.logf("splash: %s", buildinfo.Banner("bootsplash"))

	settings, err := config.Load(cfg.ConfigPath)
	if err != nil {
		s.logf("splash: %v", err)
		settings = config.Default()
	}

	s.fb = h.Display().Framebuffer()
	if s.fb == nil {
		return nil, errors.New("app: no framebuffer")
	}
	// The panel shows the background until the first frame is ready.
	bg := settings.Splash.BG()
	s.fb.ClearRGB(bg.R, bg.G, bg.B)
	if err := s.fb.Present(); err != nil {
		return nil, fmt.Errorf("app: present: %w", err)
	}
	w, ht := s.fb.Width(), s.fb.Height()
	s.frame = image.NewRGBA(image.Rect(0, 0, w, ht))

	s.k = kernel.New(cfg.Clock)
	sched := anim.NewScheduler(cfg.Clock)
	s.k.AddTask(sched)

	sc, err := scene.New(scene.Options{
		Width:     w,
		Height:    ht,
		Panel:     h.Display().Orientation(),
		Config:    settings,
		BGRT:      bgrt.Dir(cfg.BGRTDir),
		Sched:     sched,
		Tasks:     s.k,
		Clock:     cfg.Clock,
		Simulator: h.Simulator(),
		Log:       s.log,
		Exit:      func() { s.exit = true },
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	s.sc = sc
	if cfg.FadeIn {
		sc.FadeIn()
	}

	if cfg.Commands != nil {
		r, err := proto.NewReader(cfg.Commands, cfg.InputCharset)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		go s.readCommands(r)
	}
	return s, nil
}

// readCommands forwards driver commands to the mailbox. It is the only
// goroutine besides the loop; it never touches the widget tree. It returns
// after forwarding quit, since the loop stops draining then.
func (s *system) readCommands(r *proto.Reader) {
	for {
		cmd, err := r.Next()
		if errors.Is(err, io.EOF) {
			s.logf("splash: driver input closed")
			return
		}
		if err != nil {
			s.logf("splash: %v", err)
			if errors.Is(err, proto.ErrUnknownCommand) || errors.Is(err, proto.ErrBadArgument) {
				continue
			}
			return
		}
		msg, err := cmd.Message()
		if err != nil {
			s.logf("splash: %v", err)
			continue
		}
		s.mb.Send(msg)
		if cmd.Kind == proto.MsgQuit {
			return
		}
	}
}

func (s *system) step() error {
	s.drainKeys()
	s.drainMailbox()
	s.k.Step()

	s.sc.Render(s.frame)
	if err := hal.Blit(s.fb, s.frame); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}
	if s.exit {
		if err := s.screenshot(); err != nil {
			s.logf("splash: %v", err)
		}
		return hal.ErrExit
	}
	return nil
}

func (s *system) drainKeys() {
	in := s.h.Input()
	if in == nil || in.Keyboard() == nil {
		return
	}
	ch := in.Keyboard().Events()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			s.sc.HandleKey(ev)
		default:
			return
		}
	}
}

// drainMailbox applies queued driver commands. Nothing is applied once the
// splash is quitting.
func (s *system) drainMailbox() {
	for !s.quitting {
		msg, ok := s.mb.TryRecv()
		if !ok {
			return
		}
		cmd, err := proto.Decode(msg)
		if err != nil {
			s.logf("splash: %v", err)
			continue
		}
		s.apply(cmd)
	}
}

func (s *system) apply(cmd proto.Command) {
	switch cmd.Kind {
	case proto.MsgProgress:
		s.sc.SetProgress(cmd.Progress)
	case proto.MsgLabel:
		s.sc.SetLabel(cmd.Text)
	case proto.MsgAsk:
		id := cmd.ID
		s.sc.AskUser(cmd.Text, id, func(value string) { s.answer(id, value) })
	case proto.MsgRecovery:
		s.sc.ShowRecoveryNotice(cmd.Flag)
	case proto.MsgQuit:
		s.sc.Quit(cmd.Flag)
		s.quitting = true
	case proto.MsgFadeIn:
		s.sc.FadeIn()
	}
}

func (s *system) answer(id, value string) {
	if s.cfg.Answers == nil {
		return
	}
	s.answerMu.Lock()
	defer s.answerMu.Unlock()
	if _, err := io.WriteString(s.cfg.Answers, proto.FormatAnswer(id, value)); err != nil {
		s.logf("splash: write answer: %v", err)
	}
}

func (s *system) screenshot() error {
	path := s.cfg.Screenshot
	if path == "" {
		return nil
	}
	encode, err := encoderFor(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer f.Close()

	if err := encode(f, s.frame); err != nil {
		return fmt.Errorf("screenshot: encode %s: %w", path, err)
	}
	return f.Close()
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch ext := filepath.Ext(path); strings.ToLower(ext) {
	case ".webp":
		return func(w io.Writer, img image.Image) error { return nativewebp.Encode(w, img, nil) }, nil
	case ".png":
		return png.Encode, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", ext)
	}
}

func (s *system) logf(format string, args ...any) {
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
