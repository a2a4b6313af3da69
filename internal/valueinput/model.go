// Package valueinput derives type-aware input rules for editing a value
// item: an acceptance predicate for the declared data type plus the
// ordered instance suggestions offered alongside the current content.
package valueinput

import (
	"strings"

	"github.com/scaptail/scaptail/internal/xccdf"
)

// booleanTokens is the fixed set a boolean value accepts, matched
// case-insensitively.
var booleanTokens = []string{"true", "false", "1", "0", "yes", "no"}

// Model captures the editing rules for one value item.
type Model struct {
	Type xccdf.ValueType

	// Suggestions is the ordered list of known instance contents.
	Suggestions []string

	// Current is the effective content at the time the model was built,
	// shown as the editable text, visually separated from Suggestions.
	Current string
}

// For builds the editing model for value, resolving the current content
// through the policy.
func For(policy *xccdf.Policy, value *xccdf.Item) Model {
	m := Model{
		Type:    value.ValueType,
		Current: policy.ValueOf(value),
	}
	for _, inst := range value.Instances {
		m.Suggestions = append(m.Suggestions, inst.Value)
	}
	return m
}

// Accepts reports whether input is a complete, valid content for the
// value's type. Numbers accept only unsigned digit sequences; booleans
// accept a fixed case-insensitive token set; strings accept anything.
func (m Model) Accepts(input string) bool {
	switch m.Type {
	case xccdf.TypeNumber:
		if input == "" {
			return false
		}
		for _, r := range input {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	case xccdf.TypeBoolean:
		lower := strings.ToLower(input)
		for _, tok := range booleanTokens {
			if lower == tok {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// AcceptsPartial reports whether input is a valid editing state: either
// already acceptable or a prefix that can still become acceptable. The
// empty string is always a valid editing state.
func (m Model) AcceptsPartial(input string) bool {
	if input == "" {
		return true
	}
	switch m.Type {
	case xccdf.TypeNumber:
		return m.Accepts(input)
	case xccdf.TypeBoolean:
		lower := strings.ToLower(input)
		for _, tok := range booleanTokens {
			if strings.HasPrefix(tok, lower) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// TypeLabel returns the short label rendered next to the input field.
func (m Model) TypeLabel() string {
	switch m.Type {
	case xccdf.TypeNumber:
		return "(number)"
	case xccdf.TypeBoolean:
		return "(bool)"
	default:
		return "(string)"
	}
}
