package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/scaptail/scaptail/internal/session"
	"github.com/scaptail/scaptail/internal/tui/formatter"
)

// profilePane edits the profile's title and description. Each keystroke
// becomes an undo command; consecutive edits to the same field merge
// into one history entry.
type profilePane struct {
	session *session.Session

	title textinput.Model
	desc  textarea.Model

	// refreshInProgress suppresses the change handlers while the widgets
	// are rewritten from the document, as happens on undo and redo.
	refreshInProgress bool

	focusTitle bool
	focusDesc  bool
}

func newProfilePane(sess *session.Session) *profilePane {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "profile title"

	desc := textarea.New()
	desc.Placeholder = "profile description"
	desc.ShowLineNumbers = false
	desc.SetHeight(3)

	p := &profilePane{session: sess, title: title, desc: desc}
	p.refresh()
	return p
}

// refresh re-reads the profile text after the document changed underneath
// the widgets.
func (p *profilePane) refresh() {
	p.refreshInProgress = true
	if title := p.session.ProfileTitle(); p.title.Value() != title {
		p.title.SetValue(title)
		p.title.CursorEnd()
	}
	if desc := p.session.ProfileDescription(); p.desc.Value() != desc {
		p.desc.SetValue(desc)
	}
	p.refreshInProgress = false
}

func (p *profilePane) setFocus(title, desc bool) {
	p.focusTitle = title
	p.focusDesc = desc
	if title {
		p.title.Focus()
	} else {
		p.title.Blur()
	}
	if desc {
		p.desc.Focus()
	} else {
		p.desc.Blur()
	}
}

// update routes keys to the focused field and pushes undo commands for
// every observed change.
func (p *profilePane) update(msg tea.Msg) (tea.Cmd, error) {
	switch {
	case p.focusTitle:
		before := p.title.Value()
		var cmd tea.Cmd
		p.title, cmd = p.title.Update(msg)
		after := p.title.Value()
		if after == before || p.refreshInProgress {
			return cmd, nil
		}
		return cmd, p.session.SetProfileTitleWithUndo(after)

	case p.focusDesc:
		before := p.desc.Value()
		var cmd tea.Cmd
		p.desc, cmd = p.desc.Update(msg)
		after := p.desc.Value()
		if after == before || p.refreshInProgress {
			return cmd, nil
		}
		return cmd, p.session.SetProfileDescriptionWithUndo(after)
	}
	return nil, nil
}

func (p *profilePane) view(width int) string {
	var b strings.Builder
	b.WriteString(paneHeader("Profile", p.focusTitle || p.focusDesc))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(p.session.ProfileID()))
	b.WriteString("\n")
	b.WriteString(fieldLabel("title", p.focusTitle))
	b.WriteString(" ")
	b.WriteString(p.title.View())
	b.WriteString("\n")
	b.WriteString(fieldLabel("description", p.focusDesc))
	b.WriteString("\n")
	b.WriteString(p.desc.View())
	return b.String()
}

func fieldLabel(name string, focused bool) string {
	if focused {
		return formatter.StyleCursor.Render(name + ":")
	}
	return formatter.Dim(name + ":")
}
