package session

import (
	"testing"

	"github.com/scaptail/scaptail/internal/tree"
	"github.com/scaptail/scaptail/internal/xccdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureBenchmark() *xccdf.Item {
	value := &xccdf.Item{
		ID:        "xccdf_value_x",
		Kind:      xccdf.KindValue,
		Titles:    []xccdf.TextEntry{{Lang: "en", Text: "Timeout"}},
		ValueType: xccdf.TypeNumber,
		Instances: []xccdf.ValueInstance{{Selector: "", Value: "30"}},
	}
	valueY := &xccdf.Item{
		ID:        "xccdf_value_y",
		Kind:      xccdf.KindValue,
		Titles:    []xccdf.TextEntry{{Lang: "en", Text: "Banner"}},
		ValueType: xccdf.TypeString,
		Instances: []xccdf.ValueInstance{{Selector: "", Value: "hello"}},
	}
	ruleA := &xccdf.Item{
		ID:       "xccdf_rule_a",
		Kind:     xccdf.KindRule,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "Rule A"}},
		Selected: true,
	}
	group := &xccdf.Item{
		ID:       "xccdf_group_g",
		Kind:     xccdf.KindGroup,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "Group"}},
		Selected: true,
		Values:   []*xccdf.Item{value, valueY},
		Content:  []*xccdf.Item{ruleA},
	}
	return &xccdf.Item{
		ID:      "xccdf_benchmark",
		Kind:    xccdf.KindBenchmark,
		Titles:  []xccdf.TextEntry{{Lang: "en", Text: "Benchmark"}},
		Content: []*xccdf.Item{group},
	}
}

func fixtureProfile() *xccdf.Profile {
	return &xccdf.Profile{
		ID:           "xccdf_profile_test",
		Titles:       []xccdf.TextEntry{{Lang: "en", Text: "Test Profile"}},
		Descriptions: []xccdf.TextEntry{{Lang: "en", Text: "A profile for tests"}},
	}
}

func newTestSession(t *testing.T, finished FinishedFunc) *Session {
	t.Helper()
	bench := fixtureBenchmark()
	policy := xccdf.NewPolicy(bench, fixtureProfile())
	s, err := New(policy, bench, false, finished)
	require.NoError(t, err)
	return s
}

func findNode(root *tree.Node, id string) *tree.Node {
	var found *tree.Node
	root.Walk(func(n *tree.Node) {
		if n.ID == id {
			found = n
		}
	})
	return found
}

func TestNew_ConstructionErrors(t *testing.T) {
	bench := fixtureBenchmark()

	_, err := New(nil, bench, false, nil)
	assert.ErrorIs(t, err, ErrConstruction)

	_, err = New(xccdf.NewPolicy(bench, nil), bench, false, nil)
	assert.ErrorIs(t, err, ErrConstruction)

	_, err = New(xccdf.NewPolicy(bench, fixtureProfile()), nil, false, nil)
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestSetItemSelected_WritesAndVerifies(t *testing.T) {
	s := newTestSession(t, nil)
	rule := s.Benchmark().Find("xccdf_rule_a")

	require.NoError(t, s.SetItemSelected(rule, false))
	assert.False(t, s.Policy().EffectiveSelected(rule))

	sel, ok := s.Policy().Profile().SelectByID("xccdf_rule_a")
	require.True(t, ok, "override lands in the profile too")
	assert.False(t, sel.Selected)
}

func TestSelectToggle_CommandAndUndo(t *testing.T) {
	s := newTestSession(t, nil)
	rule := s.Benchmark().Find("xccdf_rule_a")
	node := findNode(s.Root(), "xccdf_rule_a")
	require.NotNil(t, node)

	require.NoError(t, s.HandleNodeToggled(node, false))

	assert.False(t, s.Policy().EffectiveSelected(rule), "read-back equals false")
	assert.False(t, node.Checked, "node resynchronized non-recursively")
	assert.Equal(t, 1, s.Stack().Len())
	assert.Equal(t, []string{"unselect 'xccdf_rule_a'"}, s.Stack().Texts())

	require.NoError(t, s.Undo())
	assert.True(t, s.Policy().EffectiveSelected(rule), "undo restores the override")
	assert.True(t, node.Checked)
}

func TestHandleNodeToggled_NoCommandWhenStateMatches(t *testing.T) {
	s := newTestSession(t, nil)
	node := findNode(s.Root(), "xccdf_rule_a")

	require.NoError(t, s.HandleNodeToggled(node, true))
	assert.Equal(t, 0, s.Stack().Len(), "toggle to the current state records nothing")
}

func TestHandleNodeToggled_IgnoresValueNodes(t *testing.T) {
	s := newTestSession(t, nil)
	node := findNode(s.Root(), "xccdf_value_x")

	require.NoError(t, s.HandleNodeToggled(node, false))
	assert.Equal(t, 0, s.Stack().Len())
}

func TestTitleCommands_Merge(t *testing.T) {
	s := newTestSession(t, nil)

	require.NoError(t, s.SetProfileTitleWithUndo("Test Profile 1"))
	require.NoError(t, s.SetProfileTitleWithUndo("Test Profile 12"))

	assert.Equal(t, "Test Profile 12", s.ProfileTitle())
	require.Equal(t, 1, s.Stack().Len(), "keystroke burst coalesces into one entry")

	require.NoError(t, s.Undo())
	assert.Equal(t, "Test Profile", s.ProfileTitle(), "merged entry spans back to the pre-first-edit title")

	require.NoError(t, s.Redo())
	assert.Equal(t, "Test Profile 12", s.ProfileTitle())
}

func TestValueCommands_NoMergeAcrossValues(t *testing.T) {
	s := newTestSession(t, nil)
	vx := s.Benchmark().Find("xccdf_value_x")
	vy := s.Benchmark().Find("xccdf_value_y")

	require.NoError(t, s.SetValueValueWithUndo(vx, "42"))
	require.NoError(t, s.SetValueValueWithUndo(vy, "world"))

	assert.Equal(t, 2, s.Stack().Len(), "different value ids never merge")

	require.NoError(t, s.SetValueValueWithUndo(vy, "world!"))
	assert.Equal(t, 2, s.Stack().Len(), "same value id merges")
	assert.Equal(t, "world!", s.CurrentValueOf(vy))
}

func TestUndoRedo_LosslessRoundTrip(t *testing.T) {
	s := newTestSession(t, nil)
	rule := s.Benchmark().Find("xccdf_rule_a")
	group := s.Benchmark().Find("xccdf_group_g")
	vx := s.Benchmark().Find("xccdf_value_x")
	ruleNode := findNode(s.Root(), "xccdf_rule_a")
	groupNode := findNode(s.Root(), "xccdf_group_g")

	require.NoError(t, s.SetItemSelectedWithUndo(ruleNode, false))
	require.NoError(t, s.SetProfileTitleWithUndo("Hardened"))
	require.NoError(t, s.SetProfileDescriptionWithUndo("Hardened servers"))
	require.NoError(t, s.SetValueValueWithUndo(vx, "42"))
	require.NoError(t, s.SetItemSelectedWithUndo(groupNode, false))

	n := s.Stack().Len()
	require.NoError(t, s.SetHistoryIndex(0))

	assert.True(t, s.Policy().EffectiveSelected(rule))
	assert.True(t, s.Policy().EffectiveSelected(group))
	assert.Equal(t, "Test Profile", s.ProfileTitle())
	assert.Equal(t, "A profile for tests", s.ProfileDescription())
	assert.Equal(t, "30", s.CurrentValueOf(vx))

	require.NoError(t, s.SetHistoryIndex(n))

	assert.False(t, s.Policy().EffectiveSelected(rule))
	assert.False(t, s.Policy().EffectiveSelected(group))
	assert.Equal(t, "Hardened", s.ProfileTitle())
	assert.Equal(t, "Hardened servers", s.ProfileDescription())
	assert.Equal(t, "42", s.CurrentValueOf(vx))
	assert.False(t, findNode(s.Root(), "xccdf_rule_a").Checked)
}

func TestDivergingHistory(t *testing.T) {
	s := newTestSession(t, nil)
	vx := s.Benchmark().Find("xccdf_value_x")
	vy := s.Benchmark().Find("xccdf_value_y")

	require.NoError(t, s.SetValueValueWithUndo(vx, "1"))
	require.NoError(t, s.SetValueValueWithUndo(vy, "two"))
	require.NoError(t, s.SetHistoryIndex(1))

	require.NoError(t, s.SetProfileTitleWithUndo("Branched"))

	assert.Equal(t, 2, s.Stack().Len(), "commands beyond the branch point are discarded")
	require.NoError(t, s.SetHistoryIndex(s.Stack().Len()))
	assert.Equal(t, "hello", s.CurrentValueOf(vy), "discarded future is unreachable")
}

func TestSetProfileTitle_NoEditableText(t *testing.T) {
	bench := fixtureBenchmark()
	profile := fixtureProfile()
	profile.Titles = nil
	policy := xccdf.NewPolicy(bench, profile)
	s, err := New(policy, bench, false, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetProfileTitle("anything"), ErrNoEditableText)
	assert.ErrorIs(t, s.SetProfileTitleWithUndo("anything"), ErrNoEditableText)
}

func TestProfileDock_RefreshHookFires(t *testing.T) {
	s := newTestSession(t, nil)
	refreshed := 0
	s.OnProfileChanged = func() { refreshed++ }

	require.NoError(t, s.SetProfileTitleWithUndo("New Title"))
	assert.Equal(t, 1, refreshed)

	require.NoError(t, s.Undo())
	assert.Equal(t, 2, refreshed, "undo refreshes the dock too")
}

func TestClose_ConfirmedNotifiesAccepted(t *testing.T) {
	var gotNew, gotAccepted bool
	notified := 0
	s := newTestSession(t, func(isNew, accepted bool) {
		gotNew, gotAccepted = isNew, accepted
		notified++
	})

	s.ConfirmAndClose()

	assert.Equal(t, 1, notified)
	assert.False(t, gotNew)
	assert.True(t, gotAccepted)
}

func TestClose_DeclinedConfirmationAborts(t *testing.T) {
	notified := 0
	s := newTestSession(t, func(bool, bool) { notified++ })
	require.NoError(t, s.SetProfileTitleWithUndo("Changed"))

	closed := s.Close(func() bool { return false })

	assert.False(t, closed, "declining the prompt keeps the session open")
	assert.Equal(t, 0, notified)
	assert.Equal(t, "Changed", s.ProfileTitle(), "nothing rolled back")
}

func TestClose_UnconfirmedRollsBackEverything(t *testing.T) {
	var gotAccepted = true
	s := newTestSession(t, func(_, accepted bool) { gotAccepted = accepted })
	rule := s.Benchmark().Find("xccdf_rule_a")
	node := findNode(s.Root(), "xccdf_rule_a")

	require.NoError(t, s.SetItemSelectedWithUndo(node, false))
	require.NoError(t, s.SetProfileTitleWithUndo("Changed"))

	closed := s.Close(func() bool { return true })

	assert.True(t, closed)
	assert.False(t, gotAccepted)
	assert.True(t, s.Stack().IsClean(), "history rolled back to index 0")
	assert.True(t, s.Policy().EffectiveSelected(rule))
	assert.Equal(t, "Test Profile", s.ProfileTitle())
}

func TestDiscardProfile_MarksNewProfile(t *testing.T) {
	var gotNew bool
	var gotAccepted = true
	s := newTestSession(t, func(isNew, accepted bool) { gotNew, gotAccepted = isNew, accepted })

	s.DiscardProfile()
	closed := s.Close(nil)

	assert.True(t, closed)
	assert.True(t, gotNew, "discard reports the profile as new")
	assert.False(t, gotAccepted)
}

func TestObserver_SeesCommandTraffic(t *testing.T) {
	var events []Event
	rec := observerFunc(func(e Event) { events = append(events, e) })

	bench := fixtureBenchmark()
	policy := xccdf.NewPolicy(bench, fixtureProfile())
	s, err := New(policy, bench, false, nil, WithObserver(rec))
	require.NoError(t, err)

	require.NoError(t, s.SetProfileTitleWithUndo("T"))
	require.NoError(t, s.Undo())

	require.Len(t, events, 2)
	assert.Equal(t, "push", events[0].Action)
	assert.Equal(t, `profile title to "T"`, events[0].Text)
	assert.Equal(t, "undo", events[1].Action)
}

type observerFunc func(Event)

func (f observerFunc) Observe(e Event) { f(e) }
