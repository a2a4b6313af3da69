package cli

import "github.com/scaptail/scaptail/internal/xccdf"

// BuiltinBenchmark returns the bundled hardening benchmark the editor
// opens by default.
func BuiltinBenchmark() *xccdf.Item {
	sshTimeout := &xccdf.Item{
		ID:     "xccdf_scaptail_value_ssh_idle_timeout",
		Kind:   xccdf.KindValue,
		Titles: []xccdf.TextEntry{{Lang: "en", Text: "SSH idle timeout (seconds)"}},
		Descriptions: []xccdf.TextEntry{
			{Lang: "en", Text: "Interval after which idle SSH sessions are terminated."},
		},
		ValueType: xccdf.TypeNumber,
		Instances: []xccdf.ValueInstance{
			{Selector: "", Value: "300"},
			{Selector: "lenient", Value: "900"},
			{Selector: "strict", Value: "120"},
		},
	}
	sshRootLogin := &xccdf.Item{
		ID:     "xccdf_scaptail_rule_sshd_disable_root_login",
		Kind:   xccdf.KindRule,
		Titles: []xccdf.TextEntry{{Lang: "en", Text: "Disable SSH root login"}},
		Descriptions: []xccdf.TextEntry{
			{Lang: "en", Text: "PermitRootLogin must be set to no in sshd_config."},
		},
		Selected: true,
	}
	sshEmptyPasswords := &xccdf.Item{
		ID:     "xccdf_scaptail_rule_sshd_disable_empty_passwords",
		Kind:   xccdf.KindRule,
		Titles: []xccdf.TextEntry{{Lang: "en", Text: "Disable SSH empty passwords"}},
		Descriptions: []xccdf.TextEntry{
			{Lang: "en", Text: "PermitEmptyPasswords must be set to no in sshd_config."},
		},
		Selected: true,
	}
	ssh := &xccdf.Item{
		ID:       "xccdf_scaptail_group_ssh",
		Kind:     xccdf.KindGroup,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "SSH Server"}},
		Selected: true,
		Values:   []*xccdf.Item{sshTimeout},
		Content:  []*xccdf.Item{sshRootLogin, sshEmptyPasswords},
	}

	minLen := &xccdf.Item{
		ID:        "xccdf_scaptail_value_password_min_length",
		Kind:      xccdf.KindValue,
		Titles:    []xccdf.TextEntry{{Lang: "en", Text: "Minimum password length"}},
		ValueType: xccdf.TypeNumber,
		Instances: []xccdf.ValueInstance{
			{Selector: "", Value: "12"},
			{Selector: "strict", Value: "16"},
		},
	}
	requireDigits := &xccdf.Item{
		ID:        "xccdf_scaptail_value_password_require_digits",
		Kind:      xccdf.KindValue,
		Titles:    []xccdf.TextEntry{{Lang: "en", Text: "Require digits in passwords"}},
		ValueType: xccdf.TypeBoolean,
		Instances: []xccdf.ValueInstance{{Selector: "", Value: "true"}},
	}
	maxAge := &xccdf.Item{
		ID:     "xccdf_scaptail_rule_password_max_age",
		Kind:   xccdf.KindRule,
		Titles: []xccdf.TextEntry{{Lang: "en", Text: "Enforce password maximum age"}},
		Descriptions: []xccdf.TextEntry{
			{Lang: "en", Text: "PASS_MAX_DAYS in /etc/login.defs must not exceed 365."},
		},
		Selected: true,
	}
	passwords := &xccdf.Item{
		ID:       "xccdf_scaptail_group_passwords",
		Kind:     xccdf.KindGroup,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "Password Policy"}},
		Selected: true,
		Values:   []*xccdf.Item{minLen, requireDigits},
		Content:  []*xccdf.Item{maxAge},
	}

	auditBacklog := &xccdf.Item{
		ID:        "xccdf_scaptail_value_audit_backlog_limit",
		Kind:      xccdf.KindValue,
		Titles:    []xccdf.TextEntry{{Lang: "en", Text: "Audit backlog limit"}},
		ValueType: xccdf.TypeNumber,
		Instances: []xccdf.ValueInstance{{Selector: "", Value: "8192"}},
	}
	auditdEnabled := &xccdf.Item{
		ID:       "xccdf_scaptail_rule_service_auditd_enabled",
		Kind:     xccdf.KindRule,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "Enable the auditd service"}},
		Selected: true,
	}
	auditImmutable := &xccdf.Item{
		ID:     "xccdf_scaptail_rule_audit_rules_immutable",
		Kind:   xccdf.KindRule,
		Titles: []xccdf.TextEntry{{Lang: "en", Text: "Make audit configuration immutable"}},
		Descriptions: []xccdf.TextEntry{
			{Lang: "en", Text: "Audit rules must end with -e 2 so changes require a reboot."},
		},
		Selected: false,
	}
	auditing := &xccdf.Item{
		ID:       "xccdf_scaptail_group_auditing",
		Kind:     xccdf.KindGroup,
		Titles:   []xccdf.TextEntry{{Lang: "en", Text: "Auditing"}},
		Selected: true,
		Values:   []*xccdf.Item{auditBacklog},
		Content:  []*xccdf.Item{auditdEnabled, auditImmutable},
	}

	banner := &xccdf.Item{
		ID:        "xccdf_scaptail_value_login_banner",
		Kind:      xccdf.KindValue,
		Titles:    []xccdf.TextEntry{{Lang: "en", Text: "Login banner text"}},
		ValueType: xccdf.TypeString,
		Instances: []xccdf.ValueInstance{
			{Selector: "", Value: "Authorized users only."},
			{Selector: "dod", Value: "You are accessing a monitored information system."},
		},
	}

	return &xccdf.Item{
		ID:     "xccdf_scaptail_benchmark_hardening",
		Kind:   xccdf.KindBenchmark,
		Titles: []xccdf.TextEntry{{Lang: "en", Text: "OS Hardening Benchmark"}},
		Descriptions: []xccdf.TextEntry{
			{Lang: "en", Text: "Baseline hardening checks for general purpose servers."},
		},
		Values:  []*xccdf.Item{banner},
		Content: []*xccdf.Item{ssh, passwords, auditing},
	}
}
