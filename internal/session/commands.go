package session

import (
	"fmt"

	"github.com/scaptail/scaptail/internal/history"
	"github.com/scaptail/scaptail/internal/tree"
	"github.com/scaptail/scaptail/internal/xccdf"
)

// Merge-compatibility tags for the four command kinds.
const (
	cmdSelect      = 1
	cmdTitle       = 2
	cmdDescription = 3
	cmdValue       = 4
)

// selectCommand toggles one item's selection override and resynchronizes
// just that node. Selection toggles never merge: each click is one undo
// step.
type selectCommand struct {
	session   *Session
	node      *tree.Node
	newSelect bool
	text      string
}

func newSelectCommand(s *Session, node *tree.Node, newSelect bool) *selectCommand {
	verb := "unselect"
	if newSelect {
		verb = "select"
	}
	return &selectCommand{
		session:   s,
		node:      node,
		newSelect: newSelect,
		text:      fmt.Sprintf("%s '%s'", verb, node.Item.ID),
	}
}

func (c *selectCommand) ID() int      { return cmdSelect }
func (c *selectCommand) Text() string { return c.text }

func (c *selectCommand) Redo() { c.apply(c.newSelect) }
func (c *selectCommand) Undo() { c.apply(!c.newSelect) }

func (c *selectCommand) apply(selected bool) {
	item := c.node.Item
	c.session.noteErr(c.session.SetItemSelected(item, selected))
	c.session.sync.Synchronize(c.node, item, false)
}

func (c *selectCommand) MergeWith(history.Command) bool { return false }

// titleCommand changes the profile title; bursts of keystrokes coalesce
// into one history entry spanning the pre-first to post-last text.
type titleCommand struct {
	session  *Session
	oldTitle string
	newTitle string
}

func newTitleCommand(s *Session, oldTitle, newTitle string) *titleCommand {
	return &titleCommand{session: s, oldTitle: oldTitle, newTitle: newTitle}
}

func (c *titleCommand) ID() int { return cmdTitle }

func (c *titleCommand) Text() string {
	return fmt.Sprintf("profile title to \"%s\"", c.newTitle)
}

func (c *titleCommand) Redo() {
	c.session.noteErr(c.session.SetProfileTitle(c.newTitle))
	c.session.refreshProfileDock()
}

func (c *titleCommand) Undo() {
	c.session.noteErr(c.session.SetProfileTitle(c.oldTitle))
	c.session.refreshProfileDock()
}

func (c *titleCommand) MergeWith(other history.Command) bool {
	o, ok := other.(*titleCommand)
	if !ok {
		return false
	}
	c.newTitle = o.newTitle
	return true
}

// descriptionCommand changes the profile description, merging like
// titleCommand.
type descriptionCommand struct {
	session *Session
	oldDesc string
	newDesc string
}

func newDescriptionCommand(s *Session, oldDesc, newDesc string) *descriptionCommand {
	return &descriptionCommand{session: s, oldDesc: oldDesc, newDesc: newDesc}
}

func (c *descriptionCommand) ID() int { return cmdDescription }

func (c *descriptionCommand) Text() string {
	return fmt.Sprintf("profile description to \"%s\"", truncate(c.newDesc, 32))
}

func (c *descriptionCommand) Redo() {
	c.session.noteErr(c.session.SetProfileDescription(c.newDesc))
	c.session.refreshProfileDock()
}

func (c *descriptionCommand) Undo() {
	c.session.noteErr(c.session.SetProfileDescription(c.oldDesc))
	c.session.refreshProfileDock()
}

func (c *descriptionCommand) MergeWith(other history.Command) bool {
	o, ok := other.(*descriptionCommand)
	if !ok {
		return false
	}
	c.newDesc = o.newDesc
	return true
}

// valueCommand changes one value item's override. Merging additionally
// requires the same underlying value, so edits to different values stay
// separate history entries.
type valueCommand struct {
	session  *Session
	value    *xccdf.Item
	oldValue string
	newValue string
}

func newValueCommand(s *Session, value *xccdf.Item, oldValue, newValue string) *valueCommand {
	return &valueCommand{session: s, value: value, oldValue: oldValue, newValue: newValue}
}

func (c *valueCommand) ID() int { return cmdValue }

func (c *valueCommand) Text() string {
	return fmt.Sprintf("set value '%s' to '%s'", c.value.ID, c.newValue)
}

func (c *valueCommand) Redo() {
	c.session.SetValueValue(c.value, c.newValue)
	c.session.refreshItemDock()
}

func (c *valueCommand) Undo() {
	c.session.SetValueValue(c.value, c.oldValue)
	c.session.refreshItemDock()
}

func (c *valueCommand) MergeWith(other history.Command) bool {
	o, ok := other.(*valueCommand)
	if !ok || o.value != c.value {
		return false
	}
	c.newValue = o.newValue
	return true
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
