// Package tree maintains the view-side mirror of a benchmark hierarchy:
// one Node per document item, reconciled by a Synchronizer and annotated
// with checkbox and enablement state for rendering.
package tree

import "github.com/scaptail/scaptail/internal/xccdf"

// Node mirrors one benchmark item in the view. The invariant after every
// synchronization: Children equals, in order, the item's child values
// followed by its child rules and groups, and Item is never nil.
type Node struct {
	Text     string
	ID       string
	Kind     xccdf.Kind
	Children []*Node

	// HasCheckbox is true for rules and groups only; Checked is the
	// rendered checkbox state.
	HasCheckbox bool
	Checked     bool

	// Disabled marks nodes under an unchecked ancestor; they render
	// dimmed and reject interaction.
	Disabled bool

	// Item is the back-reference into the document.
	Item *xccdf.Item
}

// SelectedForPropagation reports how the node counts during enablement
// propagation: nodes without a checkbox (benchmark, value) always count
// as selected.
func (n *Node) SelectedForPropagation() bool {
	return !n.HasCheckbox || n.Checked
}

// ChildByItem returns the child node mirroring the given item, or nil.
func (n *Node) ChildByItem(item *xccdf.Item) *Node {
	for _, c := range n.Children {
		if c.Item == item {
			return c
		}
	}
	return nil
}

// Walk visits the node and all descendants depth-first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
