package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/scaptail/scaptail/internal/session"
	"github.com/scaptail/scaptail/internal/tui/formatter"
)

// historyPane lists the undo stack. The entry at position zero is the
// pristine state; selecting any entry and pressing enter rewinds or
// replays the document to that point.
type historyPane struct {
	session *session.Session
	cursor  int
	focused bool
}

func newHistoryPane(sess *session.Session) *historyPane {
	return &historyPane{session: sess}
}

// entries returns the displayed labels, position 0 first.
func (p *historyPane) entries() []string {
	texts := p.session.Stack().Texts()
	entries := make([]string, 0, len(texts)+1)
	entries = append(entries, "<initial state>")
	entries = append(entries, texts...)
	return entries
}

// follow moves the cursor to the stack's current position, called after
// commands are pushed or undone outside this pane.
func (p *historyPane) follow() {
	p.cursor = p.session.Stack().Index()
}

func (p *historyPane) update(msg tea.KeyMsg) error {
	entries := p.entries()
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(entries)-1 {
			p.cursor++
		}
	case "enter":
		return p.session.SetHistoryIndex(p.cursor)
	}
	return nil
}

func (p *historyPane) view(width int) string {
	var b strings.Builder
	b.WriteString(paneHeader("History", p.focused))

	index := p.session.Stack().Index()
	for i, entry := range p.entries() {
		b.WriteString("\n")

		marker := "  "
		if i == index {
			marker = formatter.StyleGreen.Render("● ")
		}
		cursor := "  "
		if p.focused && i == p.cursor {
			cursor = formatter.StyleCursor.Render("❯ ")
		}

		text := entry
		switch {
		case i > index:
			text = formatter.Dim(text) // redoable tail
		case p.focused && i == p.cursor:
			text = formatter.StyleCursor.Render(text)
		default:
			text = formatter.StyleFg.Render(text)
		}
		b.WriteString(cursor + marker + text)
	}
	return b.String()
}
