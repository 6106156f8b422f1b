// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and every returned Cmd is run to completion
// before the next event, so tests observe a settled model after each key.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds Cmd chains so a model that keeps scheduling work
// cannot hang a test.
const MaxDrainDepth = 100

// cmdTimeout separates immediate Cmds (store reads, message factories) from
// timer-driven ones such as cursor blinks, which are dropped.
const cmdTimeout = 10 * time.Millisecond

// Driver owns a model and feeds it messages.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has been returned. The runtime normally
	// swallows tea.QuitMsg, so the driver records it itself.
	Quitting bool
}

type Option func(*Driver)

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Call DrainInit to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send dispatches msg and drains the resulting Cmds. Messages after a quit
// are ignored.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

func (d *Driver) PressKey(r rune)        { d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}) }
func (d *Driver) PressEnter()            { d.Send(tea.KeyMsg{Type: tea.KeyEnter}) }
func (d *Driver) PressEsc()              { d.Send(tea.KeyMsg{Type: tea.KeyEsc}) }
func (d *Driver) PressTab()              { d.Send(tea.KeyMsg{Type: tea.KeyTab}) }
func (d *Driver) PressShiftTab()         { d.Send(tea.KeyMsg{Type: tea.KeyShiftTab}) }
func (d *Driver) PressBackspace()        { d.Send(tea.KeyMsg{Type: tea.KeyBackspace}) }
func (d *Driver) PressCtrlC()            { d.Send(tea.KeyMsg{Type: tea.KeyCtrlC}) }
func (d *Driver) PressUp()               { d.Send(tea.KeyMsg{Type: tea.KeyUp}) }
func (d *Driver) PressDown()             { d.Send(tea.KeyMsg{Type: tea.KeyDown}) }
func (d *Driver) View() string           { return d.Model.View() }
func (d *Driver) Contains(s string) bool { return strings.Contains(d.View(), s) }

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := runWithTimeout(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.drain(next, depth+1)
}

func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlink matches the unexported blink messages of bubbles/cursor.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
