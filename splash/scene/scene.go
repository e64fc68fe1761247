// Package scene builds the splash widget tree and exposes the operations the
// boot driver calls.
package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"

	"bootsplash/hal"
	"bootsplash/kernel"
	"bootsplash/splash/anim"
	"bootsplash/splash/bgrt"
	"bootsplash/splash/config"
	"bootsplash/splash/layout"
	"bootsplash/splash/logo"
	"bootsplash/splash/orient"
	"bootsplash/splash/place"
	"bootsplash/splash/prompt"
	"bootsplash/splash/theme"
	"bootsplash/splash/transition"
	"bootsplash/splash/widget"

	"golang.org/x/image/font"
)

// RecoveryText is shown at the page bottom by ShowRecoveryNotice.
const RecoveryText = "Booting to recovery menu"

// Options wires a Scene.
type Options struct {
	Width, Height int
	Panel         hal.PanelOrientation
	Config        config.Config
	// BGRT is the firmware image source. A zero Source means none.
	BGRT bgrt.Source
	// Assets overrides Config.Splash.AssetsPath when set.
	Assets fs.FS

	Sched *anim.Scheduler
	Tasks transition.TaskAdder
	Clock kernel.Clock
	// Timing defaults to transition.DefaultTiming when zero.
	Timing    transition.Timing
	Simulator bool

	Log hal.Logger
	// Exit is called once the quit transition is over.
	Exit func()
}

// Scene owns every widget of the splash.
type Scene struct {
	log    hal.Logger
	timing transition.Timing
	lay    *layout.Context

	screen   *widget.Obj
	page     *widget.Obj
	keyboard *widget.Keyboard
	logo     *widget.Image
	firmware *place.Placement
	progress *widget.ProgressBar
	label    *widget.Label
	recovery *widget.Obj
	textArea *widget.TextArea
	cover    *widget.Obj

	prompt     *prompt.Controller
	transition *transition.Controller
}

// New builds the widget tree. Placement is complete when it returns; the
// cover starts opaque until FadeIn or the first fade.
func New(opts Options) (*Scene, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("scene: bad screen size %dx%d", opts.Width, opts.Height)
	}
	if opts.Sched == nil || opts.Tasks == nil {
		return nil, errors.New("scene: scheduler and task list are required")
	}
	if opts.Timing == (transition.Timing{}) {
		opts.Timing = transition.DefaultTiming()
	}
	if opts.Log == nil {
		opts.Log = nopLogger{}
	}

	s := &Scene{
		log:    opts.Log,
		timing: opts.Timing,
		lay:    layout.NewContext(opts.Width, opts.Height),
	}
	cfg := opts.Config.Splash
	fg, bg := cfg.FG(), cfg.BG()

	th, ok := theme.Lookup(cfg.Theme)
	if !ok {
		s.logf("splash: unknown theme %q, using %s", cfg.Theme, th.Name)
	}
	face, err := widget.NewFace(float64(max(12, 3*s.lay.Unit)))
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	s.screen = widget.NewScreen(opts.Width, opts.Height)
	s.screen.SetStyle(widget.Style{Body: bg})

	s.page = widget.NewContainer(s.screen)
	s.page.SetSize(opts.Width, opts.Height)
	s.page.SetStyle(widget.Style{Body: bg})

	s.keyboard = widget.NewKeyboard(s.screen, opts.Sched, th.Keyboard)
	kbh := min(max(float64(opts.Width)*0.55, 0), float64(opts.Height)*0.5)
	s.keyboard.SetHeight(int(kbh))

	fwImg, fwMeta, fwErr := opts.BGRT.Load()
	if fwErr != nil && !errors.Is(fwErr, bgrt.ErrUnavailable) {
		s.logf("splash: %v", fwErr)
	}
	screenSize := orient.Size{W: opts.Width, H: opts.Height}
	var fw *place.Placement
	if fwErr == nil {
		p := place.Place(fwImg, fwMeta, opts.Panel, screenSize)
		fw = &p
	}

	s.addLogo(cfg, opts.Assets, fw)
	s.addProgressBar(opts.Sched, fg, bg)
	s.addLabel(face, fg)
	s.addRecovery(face, fg, bg)
	s.addTextArea(face, fg, bg, th.PlaceholderMix)
	s.lay.Relayout(s.page, s.textArea.Obj, s.logo.Obj)

	s.cover = widget.NewContainer(s.screen)
	s.cover.SetSize(opts.Width, opts.Height)
	s.cover.SetStyle(widget.Style{Body: bg})
	// The cover carries its own copy of the firmware image so fades happen
	// around it, whether or not the page shows it.
	if fw != nil {
		im := widget.NewImage(s.cover, fw.Image)
		im.SetPos(fw.Pos.X, fw.Pos.Y)
	}

	s.keyboard.SetTextArea(s.textArea)
	s.prompt = prompt.New(s.page, s.textArea, s.keyboard, opts.Sched, opts.Height, s.lay.Unit)
	s.transition = transition.New(transition.Options{
		Cover:       s.cover,
		Sched:       opts.Sched,
		Tasks:       opts.Tasks,
		Clock:       opts.Clock,
		Timing:      opts.Timing,
		Simulator:   opts.Simulator,
		SetProgress: s.SetProgress,
		Exit:        opts.Exit,
	})
	return s, nil
}

func (s *Scene) addLogo(cfg config.Splash, assets fs.FS, fw *place.Placement) {
	if cfg.UseBGRT && fw != nil {
		s.firmware = fw
		s.logo = widget.NewImage(s.page, fw.Image)
		s.lay.PlaceLogo(s.logo.Obj, fw)
		return
	}

	w, h := s.lay.StaticLogoBox()
	if assets == nil && cfg.AssetsPath != "" {
		assets = os.DirFS(cfg.AssetsPath)
	}
	img, err := logo.Load(assets, w, h)
	if err != nil {
		if !errors.Is(err, logo.ErrNotFound) {
			s.logf("splash: %v", err)
		}
		img, err = logo.Default(w, h)
		if err != nil {
			s.logf("splash: default logo: %v", err)
		}
	}
	var src image.Image
	if img != nil {
		src = img
	}
	s.logo = widget.NewImage(s.page, src)
	s.lay.PlaceLogo(s.logo.Obj, nil)
}

func (s *Scene) addProgressBar(sched *anim.Scheduler, fg, bg color.RGBA) {
	s.progress = widget.NewProgressBar(s.page, sched, s.timing.ProgressUpdateLength)
	s.progress.SetSize(int(float64(s.lay.Width)*0.7), 3*s.lay.Unit)
	s.lay.CenterObj(s.progress.Obj, 0, 0)
	s.progress.Foreground = fg
	s.progress.Background = bg
}

func (s *Scene) addLabel(face font.Face, fg color.RGBA) {
	s.label = widget.NewLabel(s.page, face)
	s.label.SetStyle(widget.Style{Text: fg})
	s.label.SetWidth(int(float64(s.lay.Width) * 0.9))
	s.lay.CenterObj(s.label.Obj, 0, s.lay.Spacing)
}

func (s *Scene) addRecovery(face font.Face, fg, bg color.RGBA) {
	s.recovery = widget.NewContainer(s.page)
	s.recovery.SetHidden(true)
	s.recovery.SetWidth(s.page.Width())
	s.recovery.SetStyle(widget.Style{Body: bg})

	l := widget.NewLabel(s.recovery, face)
	l.SetStyle(widget.Style{Text: fg})
	l.SetWidth(int(float64(s.recovery.Width()) * 0.9))
	l.SetText(RecoveryText)
	l.SetPos(s.recovery.Width()/2-l.Width()/2, s.lay.Unit)

	s.recovery.SetHeight(l.Height() + 2*s.lay.Unit)
	s.recovery.SetPos(0, s.page.Height()-s.recovery.Height())
}

func (s *Scene) addTextArea(face font.Face, fg, bg color.RGBA, mix uint8) {
	s.textArea = widget.NewTextArea(s.page, face)
	s.textArea.SetWidth(int(float64(s.lay.Width) * 0.9))
	s.lay.CenterObj(s.textArea.Obj, 0, 14*s.lay.Unit)
	s.textArea.Hide()
	s.textArea.SetPasswordMode(true)
	s.textArea.SetStyle(widget.Style{
		Body:        bg,
		BorderColor: fg,
		BorderWidth: 3,
		Text:        fg,
		Placeholder: widget.Mix(fg, bg, mix),
	})
}

// SetProgress sets the progress bar, clamped to 0..100.
func (s *Scene) SetProgress(percent int) { s.progress.SetProgress(percent) }

// SetLabel replaces the status text.
func (s *Scene) SetLabel(text string) { s.label.SetText(text) }

// AskUser prompts for an answer. A call repeating the open question's
// identifier does nothing.
func (s *Scene) AskUser(placeholder, id string, onSubmit func(string)) {
	s.prompt.Ask(placeholder, id, onSubmit)
}

// ShowRecoveryNotice shows or hides the recovery notice.
func (s *Scene) ShowRecoveryNotice(show bool) { s.recovery.SetHidden(!show) }

// Quit starts the exit transition. It returns false when already quitting.
func (s *Scene) Quit(sticky bool) bool { return s.transition.Quit(sticky) }

// FadeIn uncovers the scene over the configured fade length.
func (s *Scene) FadeIn() { s.transition.FadeIn(s.timing.FadeLength) }

// HandleKey feeds a key event to the prompt.
func (s *Scene) HandleKey(ev hal.KeyEvent) bool { return s.keyboard.HandleKey(ev) }

// Render draws the whole screen into dst.
func (s *Scene) Render(dst *image.RGBA) { widget.Render(dst, s.screen) }

// Layout returns the screen metrics the scene was placed with.
func (s *Scene) Layout() layout.Context { return *s.lay }

// Firmware returns the firmware placement when the page shows it.
func (s *Scene) Firmware() (place.Placement, bool) {
	if s.firmware == nil {
		return place.Placement{}, false
	}
	return *s.firmware, true
}

// Prompting reports the identifier of the open question.
func (s *Scene) Prompting() (string, bool) { return s.prompt.Active() }

// Exited reports whether the quit transition finished.
func (s *Scene) Exited() bool { return s.transition.Exited() }

func (s *Scene) logf(format string, args ...any) {
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
func (nopLogger) WriteLineBytes([]byte)  {}
