package xccdf

// DefaultLang is the language used when picking and editing localized
// text entries.
const DefaultLang = "en"

// TextEntry is one localized variant of a title or description.
type TextEntry struct {
	Lang string
	Text string
}

// PreferredText picks the variant to display: the last entry in the
// default language, or the first entry when no default-language variant
// exists. Empty string when the list is empty.
func PreferredText(entries []TextEntry) string {
	var preferred *TextEntry
	for idx := range entries {
		candidate := &entries[idx]
		if preferred == nil || candidate.Lang == DefaultLang {
			preferred = candidate
		}
	}
	if preferred == nil {
		return ""
	}
	return preferred.Text
}

// SetPreferredText overwrites the entry PreferredText would pick and
// forces its language to the default. It cannot synthesize a new entry;
// it reports false when the list is empty.
func SetPreferredText(entries []TextEntry, text string) ([]TextEntry, bool) {
	var preferred *TextEntry
	for idx := range entries {
		candidate := &entries[idx]
		if preferred == nil || candidate.Lang == DefaultLang {
			preferred = candidate
		}
	}
	if preferred == nil {
		return entries, false
	}
	preferred.Text = text
	preferred.Lang = DefaultLang
	return entries, true
}
