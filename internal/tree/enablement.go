package tree

// RefreshEnablement recomputes the enabled state of every descendant of
// node. A child is enabled exactly when every checkbox-bearing ancestor
// up to and including node is checked, folded into allAncestorsSelected.
// The root call passes true.
func RefreshEnablement(node *Node, allAncestorsSelected bool) {
	allAncestorsSelected = allAncestorsSelected && node.SelectedForPropagation()

	for _, child := range node.Children {
		child.Disabled = !allAncestorsSelected
		RefreshEnablement(child, allAncestorsSelected)
	}
}

// CascadeDisabledState flips only the delta between the current and the
// target enabled state of node's descendants, for use after a single
// interactive checkbox toggle. nowEnabled is whether children of node
// should be enabled (all ancestors including node selected).
//
// Subtrees already in the target state are skipped; re-enabled children
// propagate with their own checkbox folded in, so the walk converges to
// the same fixed point RefreshEnablement computes.
func CascadeDisabledState(node *Node, nowEnabled bool) {
	for _, child := range node.Children {
		wasEnabled := !child.Disabled

		switch {
		case !nowEnabled && wasEnabled:
			child.Disabled = true
			CascadeDisabledState(child, false)
		case nowEnabled && !wasEnabled:
			child.Disabled = false
			CascadeDisabledState(child, child.SelectedForPropagation())
		}
	}
}
