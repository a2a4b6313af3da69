// Package testutil provides shared fixtures for tests: an in-memory
// tailoring store and a small benchmark document.
package testutil

import "github.com/scaptail/scaptail/internal/xccdf"

// NewBenchmark builds a compact benchmark exercising every item kind:
//
//	Benchmark
//	└── Group "System"
//	    ├── Value "Session timeout" (number)
//	    ├── Value "Login banner"    (string)
//	    ├── Rule  "Disable root login"
//	    └── Group "Audit"
//	        ├── Value "Audit enabled" (boolean)
//	        └── Rule  "Enable auditd"
func NewBenchmark() *xccdf.Item {
	timeout := &xccdf.Item{
		ID:        "xccdf_value_session_timeout",
		Kind:      xccdf.KindValue,
		Titles:    []xccdf.TextEntry{{Lang: "en", Text: "Session timeout"}},
		ValueType: xccdf.TypeNumber,
		Instances: []xccdf.ValueInstance{
			{Selector: "", Value: "30"},
			{Selector: "strict", Value: "10"},
		},
	}
	banner := &xccdf.Item{
		ID:        "xccdf_value_login_banner",
		Kind:      xccdf.KindValue,
		Titles:    []xccdf.TextEntry{{Lang: "en", Text: "Login banner"}},
		ValueType: xccdf.TypeString,
		Instances: []xccdf.ValueInstance{{Selector: "", Value: "Authorized use only"}},
	}
	auditEnabled := &xccdf.Item{
		ID:        "xccdf_value_audit_enabled",
		Kind:      xccdf.KindValue,
		Titles:    []xccdf.TextEntry{{Lang: "en", Text: "Audit enabled"}},
		ValueType: xccdf.TypeBoolean,
		Instances: []xccdf.ValueInstance{{Selector: "", Value: "true"}},
	}
	rootLogin := &xccdf.Item{
		ID:           "xccdf_rule_no_root_login",
		Kind:         xccdf.KindRule,
		Titles:       []xccdf.TextEntry{{Lang: "en", Text: "Disable root login"}},
		Descriptions: []xccdf.TextEntry{{Lang: "en", Text: "Remote root logins must be disabled."}},
		Selected:     true,
	}
	auditd := &xccdf.Item{
		ID:       "xccdf_rule_enable_auditd",
		Kind:     xccdf.KindRule,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "Enable auditd"}},
		Selected: true,
	}
	audit := &xccdf.Item{
		ID:       "xccdf_group_audit",
		Kind:     xccdf.KindGroup,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "Audit"}},
		Selected: true,
		Values:   []*xccdf.Item{auditEnabled},
		Content:  []*xccdf.Item{auditd},
	}
	system := &xccdf.Item{
		ID:       "xccdf_group_system",
		Kind:     xccdf.KindGroup,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "System"}},
		Selected: true,
		Values:   []*xccdf.Item{timeout, banner},
		Content:  []*xccdf.Item{rootLogin, audit},
	}
	return &xccdf.Item{
		ID:      "xccdf_benchmark_sample",
		Kind:    xccdf.KindBenchmark,
		Titles:  []xccdf.TextEntry{{Lang: "en", Text: "Sample Security Benchmark"}},
		Content: []*xccdf.Item{system},
	}
}

// NewProfile builds an editable profile with default-language title and
// description entries.
func NewProfile(id string) *xccdf.Profile {
	return &xccdf.Profile{
		ID:           id,
		Titles:       []xccdf.TextEntry{{Lang: "en", Text: "Custom Profile"}},
		Descriptions: []xccdf.TextEntry{{Lang: "en", Text: "Tailored from the sample benchmark"}},
	}
}
