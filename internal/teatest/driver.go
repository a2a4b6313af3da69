// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of starting a tea.Program, the driver calls Update directly and
// drains every returned Cmd in the calling goroutine, which keeps tests
// deterministic. Cursor blink Cmds block on timer channels, so Cmds run
// under a short timeout and blink messages are dropped.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth caps recursive command draining so a model that keeps
// emitting Cmds cannot hang a test.
const maxDrainDepth = 100

// cmdTimeout separates real Cmds, which return in microseconds, from
// blink timers that sleep for roughly half a second.
const cmdTimeout = 10 * time.Millisecond

// Driver feeds messages to a tea.Model and tracks whether it quit.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg shows up during draining. The
	// bubbletea runtime would normally swallow that message, so the
	// driver records it itself.
	Quitting bool
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize delivers an initial WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// New wraps model in a driver. Call DrainInit afterwards to process the
// model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command and drains what it produces.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches one message through Update and drains resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// SendKey sends a raw tea.KeyMsg.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a single character key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEsc})
}

// PressTab sends the Tab key.
func (d *Driver) PressTab() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyTab})
}

// PressShiftTab sends Shift+Tab.
func (d *Driver) PressShiftTab() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyShiftTab})
}

// PressSpace sends the space bar.
func (d *Driver) PressSpace() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

// PressUp sends the Up arrow key.
func (d *Driver) PressUp() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyUp})
}

// PressDown sends the Down arrow key.
func (d *Driver) PressDown() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyDown})
}

// PressBackspace sends the Backspace key.
func (d *Driver) PressBackspace() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyBackspace})
}

// PressCtrl sends a control chord named like "ctrl+z".
func (d *Driver) PressCtrl(chord string) {
	d.T.Helper()
	switch chord {
	case "ctrl+c":
		d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	case "ctrl+s":
		d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	case "ctrl+x":
		d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlX})
	case "ctrl+y":
		d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlY})
	case "ctrl+z":
		d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlZ})
	default:
		d.T.Fatalf("teatest.Driver: unknown chord %q", chord)
	}
}

// Type sends a string one key event at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View returns the rendered output of the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil || depth >= maxDrainDepth {
		if depth >= maxDrainDepth {
			d.T.Logf("teatest.Driver: drain depth limit (%d) reached", maxDrainDepth)
		}
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil {
		return
	}
	if isCursorBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, subCmd := range batch {
			if subCmd == nil {
				continue
			}
			d.drainCmd(subCmd, depth+1)
		}
		return
	}

	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, nextCmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(nextCmd, depth+1)
}

// execCmdWithTimeout runs cmd in a goroutine and gives up after
// cmdTimeout, so blocking Cmds cannot stall the test.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink detects the unexported blink message types from
// bubbles/cursor, which chain into blocking timer Cmds when processed.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
