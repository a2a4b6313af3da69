// Package tui is the interactive tailoring editor: a benchmark tree with
// selection checkboxes, a detail pane with a type-validated value editor,
// profile title/description fields, and a browsable undo history.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/scaptail/scaptail/internal/history"
	"github.com/scaptail/scaptail/internal/session"
	"github.com/scaptail/scaptail/internal/tui/formatter"
)

// focusArea identifies which pane receives keystrokes.
type focusArea int

const (
	focusTree focusArea = iota
	focusTitle
	focusDesc
	focusValue
	focusHistory
	focusAreaCount
)

// Model is the root bubbletea model of the tailoring editor.
type Model struct {
	session *session.Session
	keys    keyMap

	tree        *treePane
	item        *itemPane
	profile     *profilePane
	historyPane *historyPane

	focus  focusArea
	width  int
	height int
	status string

	// confirm is the modal "Discard changes?" prompt shown when the user
	// closes without confirming the tailoring.
	confirm      *huh.Form
	confirmValue bool

	quitting bool
}

// New builds the editor model around an open tailoring session.
func New(sess *session.Session) *Model {
	m := &Model{
		session:     sess,
		keys:        defaultKeyMap(),
		tree:        newTreePane(sess),
		item:        newItemPane(sess),
		profile:     newProfilePane(sess),
		historyPane: newHistoryPane(sess),
	}
	sess.OnProfileChanged = m.profile.refresh
	sess.OnItemChanged = m.item.refresh

	m.item.setItem(sess.Benchmark())
	m.applyFocus()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tree.height = msg.Height - 4
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.updateKey(msg)
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "esc", "ctrl+c":
		return m.requestClose()

	case "ctrl+s":
		m.session.ConfirmAndClose()
		m.quitting = true
		return m, tea.Quit

	case "ctrl+x":
		m.session.DiscardProfile()
		return m.requestClose()

	case "ctrl+z":
		m.noteUndoErr(m.session.Undo(), "nothing to undo")
		m.historyPane.follow()
		return m, nil

	case "ctrl+y":
		m.noteUndoErr(m.session.Redo(), "nothing to redo")
		m.historyPane.follow()
		return m, nil

	case "tab":
		m.focus = (m.focus + 1) % focusAreaCount
		m.applyFocus()
		return m, nil

	case "shift+tab":
		m.focus = (m.focus + focusAreaCount - 1) % focusAreaCount
		m.applyFocus()
		return m, nil
	}

	var cmd tea.Cmd
	var err error
	switch m.focus {
	case focusTree:
		var moved bool
		moved, err = m.tree.update(msg)
		if moved {
			if node := m.tree.current(); node != nil {
				m.item.setItem(node.Item)
			}
		}
	case focusTitle, focusDesc:
		cmd, err = m.profile.update(msg)
	case focusValue:
		cmd, err = m.item.update(msg)
	case focusHistory:
		err = m.historyPane.update(msg)
	}

	if err != nil {
		m.status = formatter.StyleRed.Render(err.Error())
	}
	if m.focus != focusHistory {
		m.historyPane.follow()
	}
	return m, cmd
}

// requestClose starts the close flow: a confirmed tailoring closes
// immediately, an unconfirmed one raises the discard prompt.
func (m *Model) requestClose() (tea.Model, tea.Cmd) {
	if m.session.Confirmed() {
		m.session.Close(nil)
		m.quitting = true
		return m, tea.Quit
	}

	m.confirmValue = false
	m.confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Discard changes?").
				Description("The tailoring was not confirmed. Closing now rolls back every change.").
				Affirmative("Discard").
				Negative("Keep editing").
				Value(&m.confirmValue),
		),
	).WithShowHelp(false)
	return m, m.confirm.Init()
}

func (m *Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	switch m.confirm.State {
	case huh.StateAborted:
		m.confirm = nil
		m.status = formatter.Dim("close cancelled")
	case huh.StateCompleted:
		m.confirm = nil
		if !m.confirmValue {
			m.status = formatter.Dim("close cancelled")
			return m, cmd
		}
		m.session.Close(nil)
		m.historyPane.follow()
		m.quitting = true
		return m, tea.Batch(cmd, tea.Quit)
	}
	return m, cmd
}

func (m *Model) applyFocus() {
	m.tree.focused = m.focus == focusTree
	m.profile.setFocus(m.focus == focusTitle, m.focus == focusDesc)
	m.item.setFocus(m.focus == focusValue)
	m.historyPane.focused = m.focus == focusHistory
	if m.focus == focusHistory {
		m.historyPane.follow()
	}
}

// noteUndoErr surfaces undo/redo failures, downgrading the empty-stack
// sentinels to a dim notice.
func (m *Model) noteUndoErr(err error, emptyNotice string) {
	switch {
	case err == nil:
	case errors.Is(err, history.ErrNothingToUndo), errors.Is(err, history.ErrNothingToRedo):
		m.status = formatter.Dim(emptyNotice)
	default:
		m.status = formatter.StyleRed.Render(err.Error())
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = 100
	}
	leftWidth := width * 3 / 5
	rightWidth := width - leftWidth - 2

	title := formatter.StyleHeader.Render(fmt.Sprintf("Tailoring %q", m.session.ProfileTitle()))
	if !m.session.IsNewProfile() {
		title += formatter.Dim(" (existing profile)")
	}

	left := lipgloss.NewStyle().Width(leftWidth).Render(m.tree.view(leftWidth))
	right := strings.Join([]string{
		m.profile.view(rightWidth),
		"",
		m.item.view(rightWidth),
		"",
		m.historyPane.view(rightWidth),
	}, "\n")
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	sections := []string{title, body}
	if m.confirm != nil {
		sections = append(sections, m.confirm.View())
	}
	if m.status != "" {
		sections = append(sections, m.status)
	}
	sections = append(sections, m.helpLine())

	return strings.Join(sections, "\n")
}

func (m *Model) helpLine() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.shortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return formatter.Dim(strings.Join(parts, " • "))
}

// paneHeader renders a pane title, highlighted when the pane has focus.
func paneHeader(title string, focused bool) string {
	if focused {
		return formatter.StyleHeader.Render("▍" + title)
	}
	return formatter.Dim("▍" + title)
}
