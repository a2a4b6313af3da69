// Package formatter holds the shared lipgloss styles and the benchmark
// tree renderer for the tailoring TUI.
package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/scaptail/scaptail/internal/xccdf"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleCursor = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// KindIcon returns the glyph rendered before an item of the given kind.
func KindIcon(kind xccdf.Kind) string {
	switch kind {
	case xccdf.KindBenchmark:
		return "⬢"
	case xccdf.KindGroup:
		return "▣"
	case xccdf.KindRule:
		return "◉"
	case xccdf.KindValue:
		return "≔"
	}
	return " "
}

// KindStyle returns the style for an item kind's icon.
func KindStyle(kind xccdf.Kind) lipgloss.Style {
	switch kind {
	case xccdf.KindBenchmark:
		return StyleHeader
	case xccdf.KindGroup:
		return StyleBlue
	case xccdf.KindRule:
		return StyleGreen
	case xccdf.KindValue:
		return StylePurple
	}
	return StyleDim
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return StyleHeader.Render(upper) + "\n" + StyleDim.Render(line)
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
