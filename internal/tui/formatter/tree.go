package formatter

import (
	"strings"

	"github.com/scaptail/scaptail/internal/xccdf"
)

// TreeRow is one visible line of the benchmark tree.
type TreeRow struct {
	Title       string
	Kind        xccdf.Kind
	Depth       int
	IsLast      bool // last sibling at its depth, for the corner connector
	HasCheckbox bool
	Checked     bool
	Disabled    bool
	Collapsed   bool // container with hidden children
	Container   bool
	Cursor      bool // row under the selection cursor
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeGap    = "   "
)

// RenderTreeRows renders tree rows as indented lines using box-drawing
// connectors. Checkboxes render as [x]/[ ]; disabled rows are dimmed;
// the cursor row gets a pointer prefix and highlight.
func RenderTreeRows(rows []TreeRow) []string {
	// lastAtDepth tracks, per depth, whether the subtree we are inside
	// has ended, to decide between pipe and gap fillers.
	lastAtDepth := make(map[int]bool)

	lines := make([]string, len(rows))
	for idx, row := range rows {
		lastAtDepth[row.Depth] = row.IsLast

		var prefix strings.Builder
		for d := 1; d < row.Depth; d++ {
			if lastAtDepth[d] {
				prefix.WriteString(treeGap)
			} else {
				prefix.WriteString(treePipe)
			}
		}
		if row.Depth > 0 {
			if row.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}

		var parts []string

		if row.Container {
			if row.Collapsed {
				parts = append(parts, "▸")
			} else {
				parts = append(parts, "▾")
			}
		} else {
			parts = append(parts, " ")
		}

		if row.HasCheckbox {
			if row.Checked {
				parts = append(parts, "[x]")
			} else {
				parts = append(parts, "[ ]")
			}
		} else {
			parts = append(parts, "   ")
		}

		icon := KindStyle(row.Kind).Render(KindIcon(row.Kind))
		title := row.Title
		switch {
		case row.Disabled:
			icon = StyleDim.Render(KindIcon(row.Kind))
			title = StyleDim.Render(title)
		case row.Cursor:
			title = StyleCursor.Render(title)
		default:
			title = StyleFg.Render(title)
		}
		parts = append(parts, icon, title)

		marker := "  "
		if row.Cursor {
			marker = StyleCursor.Render("❯ ")
		}

		lines[idx] = marker + StyleDim.Render(prefix.String()) + strings.Join(parts, " ")
	}
	return lines
}
