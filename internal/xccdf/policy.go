package xccdf

// Policy is the runtime combination of a benchmark and a profile. It
// carries its own select overlay, mirroring the profile's: the tailoring
// session writes every selection override to both, then verifies the
// effective read through the policy.
type Policy struct {
	benchmark *Item
	profile   *Profile
	selects   []Select
}

// NewPolicy creates a policy over the given benchmark root and profile.
// The profile's existing selects are replayed into the policy overlay so
// a resumed tailoring evaluates the same way a live one does.
func NewPolicy(benchmark *Item, profile *Profile) *Policy {
	p := &Policy{benchmark: benchmark, profile: profile}
	if profile != nil {
		p.selects = append(p.selects, profile.Selects...)
	}
	return p
}

// Benchmark returns the benchmark root item.
func (p *Policy) Benchmark() *Item { return p.benchmark }

// Profile returns the profile this policy evaluates.
func (p *Policy) Profile() *Profile { return p.profile }

// AddSelect appends a selection override to the policy overlay.
func (p *Policy) AddSelect(itemID string, selected bool) {
	p.selects = append(p.selects, Select{ItemID: itemID, Selected: selected})
}

// EffectiveSelected resolves an item's selection: the newest policy-level
// override when present, else the item's own default.
func (p *Policy) EffectiveSelected(item *Item) bool {
	for idx := len(p.selects) - 1; idx >= 0; idx-- {
		if p.selects[idx].ItemID == item.ID {
			return p.selects[idx].Selected
		}
	}
	return item.Selected
}

// ValueOf resolves a value item's effective content: the newest profile
// set-value override when present, else the default instance.
func (p *Policy) ValueOf(value *Item) string {
	if p.profile != nil {
		if sv, ok := p.profile.SetValueByID(value.ID); ok {
			return sv.Value
		}
	}
	return value.DefaultInstance()
}
