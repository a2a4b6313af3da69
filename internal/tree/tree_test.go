package tree

import (
	"testing"

	"github.com/scaptail/scaptail/internal/xccdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBenchmark() *xccdf.Item {
	value := &xccdf.Item{
		ID:        "xccdf_value_x",
		Kind:      xccdf.KindValue,
		Titles:    []xccdf.TextEntry{{Lang: "en", Text: "Timeout"}},
		ValueType: xccdf.TypeNumber,
		Instances: []xccdf.ValueInstance{{Selector: "", Value: "30"}},
	}
	ruleA := &xccdf.Item{
		ID:       "xccdf_rule_a",
		Kind:     xccdf.KindRule,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "Rule A"}},
		Selected: true,
	}
	ruleB := &xccdf.Item{
		ID:       "xccdf_rule_b",
		Kind:     xccdf.KindRule,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "Rule B"}},
		Selected: true,
	}
	inner := &xccdf.Item{
		ID:       "xccdf_group_inner",
		Kind:     xccdf.KindGroup,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "Inner"}},
		Selected: true,
		Content:  []*xccdf.Item{ruleB},
	}
	outer := &xccdf.Item{
		ID:       "xccdf_group_outer",
		Kind:     xccdf.KindGroup,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "Outer"}},
		Selected: true,
		Values:   []*xccdf.Item{value},
		Content:  []*xccdf.Item{ruleA, inner},
	}
	return &xccdf.Item{
		ID:      "xccdf_benchmark",
		Kind:    xccdf.KindBenchmark,
		Titles:  []xccdf.TextEntry{{Lang: "en", Text: "Benchmark"}},
		Content: []*xccdf.Item{outer},
	}
}

func newTree(t *testing.T) (*Synchronizer, *Node, *xccdf.Policy) {
	t.Helper()
	bench := buildBenchmark()
	policy := xccdf.NewPolicy(bench, &xccdf.Profile{ID: "prof"})
	sync := NewSynchronizer(policy)
	root := sync.Build(bench)
	return sync, root, policy
}

func TestBuild_MirrorsDocumentOrder(t *testing.T) {
	_, root, _ := newTree(t)

	require.Len(t, root.Children, 1)
	outer := root.Children[0]
	assert.Equal(t, "xccdf_group_outer", outer.ID)
	assert.Equal(t, "Outer", outer.Text)

	// Values come before rules and groups.
	require.Len(t, outer.Children, 3)
	assert.Equal(t, "xccdf_value_x", outer.Children[0].ID)
	assert.Equal(t, "xccdf_rule_a", outer.Children[1].ID)
	assert.Equal(t, "xccdf_group_inner", outer.Children[2].ID)
}

func TestBuild_CheckboxPresence(t *testing.T) {
	_, root, _ := newTree(t)
	outer := root.Children[0]

	assert.False(t, root.HasCheckbox, "benchmark has no checkbox")
	assert.True(t, outer.HasCheckbox)
	assert.True(t, outer.Checked)
	assert.False(t, outer.Children[0].HasCheckbox, "values have no checkbox")
	assert.True(t, outer.Children[1].HasCheckbox)
}

func TestBuild_BackReferences(t *testing.T) {
	_, root, _ := newTree(t)
	root.Walk(func(n *Node) {
		assert.NotNil(t, n.Item, "no node without a live item back-reference")
		assert.Equal(t, n.Item.ID, n.ID)
	})
}

func TestSynchronize_CheckboxFollowsPolicyOverride(t *testing.T) {
	sync, root, policy := newTree(t)
	outer := root.Children[0]
	ruleA := outer.Children[1]

	policy.AddSelect("xccdf_rule_a", false)
	sync.Synchronize(ruleA, ruleA.Item, false)

	assert.False(t, ruleA.Checked)
}

func TestSynchronize_StableWithoutStructuralChange(t *testing.T) {
	sync, root, _ := newTree(t)

	var before []*Node
	root.Walk(func(n *Node) { before = append(before, n) })

	sync.Synchronize(root, root.Item, true)
	RefreshEnablement(root, true)

	var after []*Node
	root.Walk(func(n *Node) { after = append(after, n) })

	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.Same(t, before[i], after[i], "resync reuses nodes and keeps ordering")
	}
}

func TestSynchronize_RemovesStaleAndInsertsNew(t *testing.T) {
	sync, root, _ := newTree(t)
	outer := root.Children[0]
	outerItem := outer.Item
	kept := outer.Children[2]      // inner group
	ruleAItem := outer.Children[1].Item

	// Drop rule A, add a new rule at the end.
	ruleC := &xccdf.Item{ID: "xccdf_rule_c", Kind: xccdf.KindRule, Selected: true,
		Titles: []xccdf.TextEntry{{Lang: "en", Text: "Rule C"}}}
	outerItem.Content = []*xccdf.Item{outerItem.Content[1], ruleC}

	sync.Synchronize(outer, outerItem, true)

	require.Len(t, outer.Children, 3)
	assert.Equal(t, "xccdf_value_x", outer.Children[0].ID)
	assert.Same(t, kept, outer.Children[1], "surviving node is reused in place")
	assert.Equal(t, "xccdf_rule_c", outer.Children[2].ID)
	assert.Nil(t, outer.ChildByItem(ruleAItem), "stale node is gone")
}

func TestSynchronize_GuardActiveDuringPass(t *testing.T) {
	bench := buildBenchmark()
	policy := xccdf.NewPolicy(bench, &xccdf.Profile{ID: "prof"})
	sync := NewSynchronizer(policy)

	assert.False(t, sync.InProgress())
	// The guard must cover the whole recursive pass; observe it via a
	// title hook is not possible, so rebuild and check it resets.
	root := sync.Build(bench)
	assert.False(t, sync.InProgress(), "counter returns to zero after the pass")
	assert.NotNil(t, root)
}

func TestRefreshEnablement_DeepUncheckedAncestor(t *testing.T) {
	sync, root, policy := newTree(t)
	outer := root.Children[0]
	inner := outer.Children[2]
	ruleB := inner.Children[0]

	// Benchmark -> Outer(checked) -> Inner(unchecked) -> Rule B.
	policy.AddSelect("xccdf_group_inner", false)
	sync.Synchronize(inner, inner.Item, false)
	RefreshEnablement(root, true)

	assert.False(t, outer.Disabled)
	assert.False(t, inner.Disabled, "the unchecked node itself stays editable")
	assert.True(t, ruleB.Disabled, "descendants of an unchecked ancestor are disabled")
}

func TestCascadeDisabledState_MatchesFullRefresh(t *testing.T) {
	sync, root, policy := newTree(t)
	outer := root.Children[0]
	inner := outer.Children[2]

	// Uncheck the inner group first, then toggle the outer group off and
	// back on via the delta cascade. The fixed point must equal a full
	// refresh: rule B stays disabled because inner remains unchecked.
	policy.AddSelect("xccdf_group_inner", false)
	sync.Synchronize(inner, inner.Item, false)
	RefreshEnablement(root, true)

	outer.Checked = false
	CascadeDisabledState(outer, false)
	assert.True(t, inner.Disabled)
	assert.True(t, inner.Children[0].Disabled)

	outer.Checked = true
	CascadeDisabledState(outer, true)

	expect := cloneEnablement(root)
	RefreshEnablement(root, true)
	assert.Equal(t, expect, cloneEnablement(root), "cascade converges to the refresh fixed point")

	assert.False(t, inner.Disabled)
	assert.True(t, inner.Children[0].Disabled)
}

// cloneEnablement snapshots node ids mapped to their disabled flag.
func cloneEnablement(root *Node) map[string]bool {
	snap := make(map[string]bool)
	root.Walk(func(n *Node) { snap[n.ID] = n.Disabled })
	return snap
}
