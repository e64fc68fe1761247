// Package prompt runs the text entry shown when the boot needs an answer
// from the user, such as a disk passphrase.
package prompt

import (
	"bootsplash/splash/anim"
	"bootsplash/splash/widget"
)

// Session is one question put to the user. Its callback runs at most once.
type Session struct {
	ID          string
	Placeholder string
	onSubmit    func(string)
}

func (s *Session) consume(value string) {
	fn := s.onSubmit
	s.onSubmit = nil
	if fn != nil {
		fn(value)
	}
}

// Controller owns the text area and keyboard while a question is asked,
// and slides the page up when the keyboard would cover the text area.
type Controller struct {
	page  *widget.Obj
	ta    *widget.TextArea
	kb    *widget.Keyboard
	sched *anim.Scheduler

	screenHeight int
	unit         int

	active *Session
}

// New returns an idle controller. ta lives on page; kb lives outside it so
// sliding the page leaves the keyboard in place.
func New(page *widget.Obj, ta *widget.TextArea, kb *widget.Keyboard, sched *anim.Scheduler, screenHeight, unit int) *Controller {
	return &Controller{
		page:         page,
		ta:           ta,
		kb:           kb,
		sched:        sched,
		screenHeight: screenHeight,
		unit:         unit,
	}
}

// Active returns the identifier of the open question.
func (c *Controller) Active() (id string, ok bool) {
	if c.active == nil {
		return "", false
	}
	return c.active.ID, true
}

// Ask shows the text area and keyboard for a new question. Asking again
// with the identifier of the open question does nothing; another identifier
// replaces it.
func (c *Controller) Ask(placeholder, id string, onSubmit func(string)) {
	if c.active != nil && c.active.ID == id {
		return
	}
	s := &Session{ID: id, Placeholder: placeholder, onSubmit: onSubmit}
	c.active = s

	c.ta.SetPlaceholder(placeholder)
	c.ta.SetText("")
	c.ta.Show()
	c.kb.SetTextArea(c.ta)
	c.kb.Show()

	bottomSpace := c.screenHeight - (c.ta.Y() + c.ta.Height())
	if delta := bottomSpace - c.kb.Height() - 3*c.unit; delta < 0 {
		c.offsetPage(delta)
	}

	c.ta.SetOnSubmit(func(value string) { c.submit(s, value) })
}

func (c *Controller) submit(s *Session, value string) {
	if c.active != s {
		return
	}
	c.active = nil
	c.ta.Hide()
	c.offsetPage(0)
	s.consume(value)
}

// offsetPage animates the page to y, replacing any slide in flight.
func (c *Controller) offsetPage(y int) {
	c.sched.Start(anim.Anim{
		Target:   c.page,
		Prop:     anim.PropY,
		From:     c.page.Y(),
		To:       y,
		Duration: c.kb.AnimationDuration(),
		Path:     anim.EaseOut,
		Exec:     c.page.SetY,
	})
}
