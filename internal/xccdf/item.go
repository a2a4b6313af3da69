package xccdf

// Kind identifies the type of a benchmark item.
type Kind string

const (
	KindBenchmark Kind = "benchmark"
	KindGroup     Kind = "group"
	KindRule      Kind = "rule"
	KindValue     Kind = "value"
)

// Label returns the xccdf-prefixed display label for the kind.
func (k Kind) Label() string {
	switch k {
	case KindBenchmark:
		return "xccdf:Benchmark"
	case KindGroup:
		return "xccdf:Group"
	case KindRule:
		return "xccdf:Rule"
	case KindValue:
		return "xccdf:Value"
	}
	return ""
}

// ValueType is the declared data type of a value item.
type ValueType string

const (
	TypeNumber  ValueType = "number"
	TypeString  ValueType = "string"
	TypeBoolean ValueType = "boolean"
)

// ValueInstance is one named candidate content for a value item.
// The instance with an empty selector is the document default.
type ValueInstance struct {
	Selector string
	Value    string
}

// Item is a node in the benchmark hierarchy. A single struct covers all
// four kinds; value-specific fields are zero for non-values and the child
// slices are only populated for groups and benchmarks.
type Item struct {
	ID           string
	Kind         Kind
	Titles       []TextEntry
	Descriptions []TextEntry

	// Selected is the item's own default; the effective selection is
	// resolved through a Policy overlay.
	Selected bool

	// Values holds child value items; Content holds child rules and
	// groups. Both are ordered as they appear in the document.
	Values  []*Item
	Content []*Item

	// Value-only fields.
	ValueType ValueType
	Instances []ValueInstance
}

// Title returns the preferred-language title text.
func (i *Item) Title() string {
	return PreferredText(i.Titles)
}

// Description returns the preferred-language description text.
func (i *Item) Description() string {
	return PreferredText(i.Descriptions)
}

// IsContainer reports whether the item may have children.
func (i *Item) IsContainer() bool {
	return i.Kind == KindBenchmark || i.Kind == KindGroup
}

// DefaultInstance returns the content of the default value instance: the
// instance with an empty selector, or the first instance when none is
// marked default. Empty string when the value has no instances.
func (i *Item) DefaultInstance() string {
	for _, inst := range i.Instances {
		if inst.Selector == "" {
			return inst.Value
		}
	}
	if len(i.Instances) > 0 {
		return i.Instances[0].Value
	}
	return ""
}

// Find returns the item with the given id in the subtree rooted at i,
// or nil when absent.
func (i *Item) Find(id string) *Item {
	if i.ID == id {
		return i
	}
	for _, v := range i.Values {
		if found := v.Find(id); found != nil {
			return found
		}
	}
	for _, c := range i.Content {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every item in the subtree rooted at i in document order
// (the item itself, then its values, then its rules and groups).
func (i *Item) Walk(fn func(*Item)) {
	fn(i)
	for _, v := range i.Values {
		v.Walk(fn)
	}
	for _, c := range i.Content {
		c.Walk(fn)
	}
}
