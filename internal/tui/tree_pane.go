package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/scaptail/scaptail/internal/session"
	"github.com/scaptail/scaptail/internal/tree"
	"github.com/scaptail/scaptail/internal/tui/formatter"
)

// treeRow pairs a visible node with its rendering position.
type treeRow struct {
	node   *tree.Node
	depth  int
	isLast bool
}

// treePane is the benchmark tree with checkboxes: cursor navigation,
// expand/collapse, and space-to-toggle selection.
type treePane struct {
	session   *session.Session
	cursor    int
	collapsed map[string]bool
	height    int
	focused   bool
}

func newTreePane(sess *session.Session) *treePane {
	return &treePane{
		session:   sess,
		collapsed: make(map[string]bool),
	}
}

// visibleRows flattens the tree, hiding the children of collapsed nodes.
func (p *treePane) visibleRows() []treeRow {
	var rows []treeRow
	var walk func(node *tree.Node, depth int, isLast bool)
	walk = func(node *tree.Node, depth int, isLast bool) {
		rows = append(rows, treeRow{node: node, depth: depth, isLast: isLast})
		if p.collapsed[node.ID] {
			return
		}
		for i, child := range node.Children {
			walk(child, depth+1, i == len(node.Children)-1)
		}
	}
	walk(p.session.Root(), 0, true)
	return rows
}

// current returns the node under the cursor.
func (p *treePane) current() *tree.Node {
	rows := p.visibleRows()
	if p.cursor >= len(rows) {
		return nil
	}
	return rows[p.cursor].node
}

// update handles keys while the tree pane has focus. It reports whether
// the cursor moved, so the item pane can follow the selection.
func (p *treePane) update(msg tea.KeyMsg) (moved bool, err error) {
	rows := p.visibleRows()

	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
			return true, nil
		}
	case "down", "j":
		if p.cursor < len(rows)-1 {
			p.cursor++
			return true, nil
		}
	case "enter":
		if p.cursor < len(rows) {
			node := rows[p.cursor].node
			if len(node.Children) > 0 {
				p.collapsed[node.ID] = !p.collapsed[node.ID]
			}
		}
	case " ":
		if p.cursor < len(rows) {
			node := rows[p.cursor].node
			if node.HasCheckbox && !node.Disabled {
				return false, p.session.HandleNodeToggled(node, !node.Checked)
			}
		}
	}
	return false, nil
}

func (p *treePane) view(width int) string {
	rows := p.visibleRows()

	renderRows := make([]formatter.TreeRow, len(rows))
	for i, row := range rows {
		renderRows[i] = formatter.TreeRow{
			Title:       row.node.Text,
			Kind:        row.node.Kind,
			Depth:       row.depth,
			IsLast:      row.isLast,
			HasCheckbox: row.node.HasCheckbox,
			Checked:     row.node.Checked,
			Disabled:    row.node.Disabled,
			Collapsed:   p.collapsed[row.node.ID],
			Container:   len(row.node.Children) > 0,
			Cursor:      p.focused && i == p.cursor,
		}
	}
	lines := formatter.RenderTreeRows(renderRows)

	// Keep the cursor inside the visible window.
	if p.height > 0 && len(lines) > p.height {
		start := p.cursor - p.height/2
		if start < 0 {
			start = 0
		}
		if start+p.height > len(lines) {
			start = len(lines) - p.height
		}
		lines = lines[start : start+p.height]
	}

	header := paneHeader("Benchmark", p.focused)
	return header + "\n" + strings.Join(lines, "\n")
}
