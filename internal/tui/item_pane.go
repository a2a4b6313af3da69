package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/scaptail/scaptail/internal/session"
	"github.com/scaptail/scaptail/internal/tui/formatter"
	"github.com/scaptail/scaptail/internal/valueinput"
	"github.com/scaptail/scaptail/internal/xccdf"
)

// itemPane shows the item under the tree cursor: title, id, type, and
// description. For value items it also hosts the content editor with
// type-aware validation and instance suggestions.
type itemPane struct {
	session *session.Session
	item    *xccdf.Item

	input textinput.Model
	rules valueinput.Model

	// refreshInProgress suppresses the change handler while the editor
	// content is being rewritten from the document.
	refreshInProgress bool
	focused           bool
}

func newItemPane(sess *session.Session) *itemPane {
	input := textinput.New()
	input.Prompt = "content: "
	input.ShowSuggestions = true
	return &itemPane{session: sess, input: input}
}

// setItem switches the pane to a new item and rebuilds the editor state.
func (p *itemPane) setItem(item *xccdf.Item) {
	p.item = item
	if item == nil || item.Kind != xccdf.KindValue {
		return
	}
	p.rules = valueinput.For(p.session.Policy(), item)
	p.input.SetSuggestions(p.rules.Suggestions)
	p.refreshInProgress = true
	p.input.SetValue(p.rules.Current)
	p.input.CursorEnd()
	p.refreshInProgress = false
}

// refresh re-reads the effective content after an undo or redo touched it.
func (p *itemPane) refresh() {
	if p.item == nil || p.item.Kind != xccdf.KindValue {
		return
	}
	current := p.session.CurrentValueOf(p.item)
	if p.input.Value() == current {
		return
	}
	p.refreshInProgress = true
	p.input.SetValue(current)
	p.input.CursorEnd()
	p.refreshInProgress = false
}

func (p *itemPane) setFocus(focused bool) {
	p.focused = focused
	if focused && p.item != nil && p.item.Kind == xccdf.KindValue {
		p.input.Focus()
	} else {
		p.input.Blur()
	}
}

// update feeds keys to the content editor. Input that cannot become a
// valid content for the value's type is rejected and the editor reverts.
func (p *itemPane) update(msg tea.Msg) (tea.Cmd, error) {
	if !p.focused || p.item == nil || p.item.Kind != xccdf.KindValue {
		return nil, nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	after := p.input.Value()

	if after == before || p.refreshInProgress {
		return cmd, nil
	}
	if !p.rules.AcceptsPartial(after) {
		p.refreshInProgress = true
		p.input.SetValue(before)
		p.input.CursorEnd()
		p.refreshInProgress = false
		return cmd, nil
	}
	return cmd, p.session.SetValueValueWithUndo(p.item, after)
}

func (p *itemPane) view(width int) string {
	var b strings.Builder
	b.WriteString(paneHeader("Item", p.focused))
	b.WriteString("\n")

	if p.item == nil {
		b.WriteString(formatter.Dim("nothing selected"))
		return b.String()
	}

	b.WriteString(formatter.Bold(p.item.Title()))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(p.item.ID))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(p.item.Kind.Label()))
	b.WriteString("\n")

	if desc := p.item.Description(); desc != "" {
		b.WriteString("\n")
		b.WriteString(wrap(desc, width))
		b.WriteString("\n")
	}

	if p.item.Kind == xccdf.KindValue {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s\n", p.input.View(), formatter.Dim(p.rules.TypeLabel())))
		if len(p.rules.Suggestions) > 0 {
			b.WriteString(formatter.Dim("known: " + strings.Join(p.rules.Suggestions, ", ")))
		}
	}
	return b.String()
}

// wrap performs a plain greedy word wrap for the description block.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
