package xccdf

// Select is a profile-level selection override for one item.
type Select struct {
	ItemID   string
	Selected bool
}

// SetValue is a profile-level content override for one value item.
type SetValue struct {
	ValueID string
	Value   string
}

// Profile is a named override set layered onto a benchmark. Overrides are
// appended, never rewritten in place; lookups resolve the last matching
// entry so the newest override always wins.
type Profile struct {
	ID           string
	Titles       []TextEntry
	Descriptions []TextEntry
	Selects      []Select
	SetValues    []SetValue
}

// AddSelect appends a selection override.
func (p *Profile) AddSelect(itemID string, selected bool) {
	p.Selects = append(p.Selects, Select{ItemID: itemID, Selected: selected})
}

// AddSetValue appends a value override.
func (p *Profile) AddSetValue(valueID, value string) {
	p.SetValues = append(p.SetValues, SetValue{ValueID: valueID, Value: value})
}

// SelectByID returns the effective selection override for an item id.
func (p *Profile) SelectByID(itemID string) (Select, bool) {
	for idx := len(p.Selects) - 1; idx >= 0; idx-- {
		if p.Selects[idx].ItemID == itemID {
			return p.Selects[idx], true
		}
	}
	return Select{}, false
}

// SetValueByID returns the effective value override for a value id.
func (p *Profile) SetValueByID(valueID string) (SetValue, bool) {
	for idx := len(p.SetValues) - 1; idx >= 0; idx-- {
		if p.SetValues[idx].ValueID == valueID {
			return p.SetValues[idx], true
		}
	}
	return SetValue{}, false
}

// Title returns the preferred-language profile title.
func (p *Profile) Title() string {
	return PreferredText(p.Titles)
}

// Description returns the preferred-language profile description.
func (p *Profile) Description() string {
	return PreferredText(p.Descriptions)
}
