package tree

import "github.com/scaptail/scaptail/internal/xccdf"

// Synchronizer reconciles the node tree against the document hierarchy.
// Checkbox state is derived from the policy's effective selection, so a
// synchronize pass after an undo snaps the view back to the document.
//
// The in-progress counter guards against feedback loops: writing checkbox
// state during a pass must not be mistaken for user interaction, so every
// edit-event handler checks InProgress before spawning a command.
type Synchronizer struct {
	policy *xccdf.Policy
	lock   int
}

// NewSynchronizer creates a synchronizer resolving selection through the
// given policy.
func NewSynchronizer(policy *xccdf.Policy) *Synchronizer {
	return &Synchronizer{policy: policy}
}

// InProgress reports whether a synchronize pass is currently running.
func (s *Synchronizer) InProgress() bool {
	return s.lock > 0
}

// Synchronize rebuilds node from item: label, kind tag, id, checkbox
// state, and — when recursive — the child list. Existing child nodes are
// reused when their item survives, stale ones are dropped, new ones are
// created, and the final child order equals the document order exactly
// (values first, then rules and groups). An enablement pass over the
// subtree follows every structural sync.
func (s *Synchronizer) Synchronize(node *Node, item *xccdf.Item, recursive bool) {
	s.lock++
	defer func() { s.lock-- }()

	node.Text = item.Title()
	node.Kind = item.Kind
	node.ID = item.ID
	node.Item = item

	switch item.Kind {
	case xccdf.KindRule, xccdf.KindGroup:
		node.HasCheckbox = true
		node.Checked = s.policy.EffectiveSelected(item)
		CascadeDisabledState(node, node.Checked)
	case xccdf.KindValue:
		node.HasCheckbox = false
	}

	if recursive && item.IsContainer() {
		s.synchronizeChildren(node, item)
	}
}

func (s *Synchronizer) synchronizeChildren(node *Node, item *xccdf.Item) {
	target := make([]*xccdf.Item, 0, len(item.Values)+len(item.Content))
	target = append(target, item.Values...)
	target = append(target, item.Content...)

	existing := make(map[*xccdf.Item]*Node, len(node.Children))
	for _, child := range node.Children {
		existing[child.Item] = child
	}

	children := make([]*Node, 0, len(target))
	for _, childItem := range target {
		childNode, ok := existing[childItem]
		if !ok {
			childNode = &Node{}
		}
		children = append(children, childNode)
		s.Synchronize(childNode, childItem, true)
	}
	// Nodes whose item vanished from the target list are not carried
	// over; dropping them here removes them from the view.
	node.Children = children
}

// Build creates and fully synchronizes a tree for the benchmark root,
// including the initial whole-tree enablement pass.
func (s *Synchronizer) Build(root *xccdf.Item) *Node {
	node := &Node{}
	s.Synchronize(node, root, true)
	RefreshEnablement(node, true)
	return node
}
