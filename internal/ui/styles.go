package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color scheme names accepted by --color and the settings file.
const (
	SchemeDark  = "dark"
	SchemeLight = "light"
	SchemeNone  = "none"
)

// Segment colors, dark scheme
var (
	darkCategory    = lipgloss.Color("3") // yellow
	darkAlias       = lipgloss.Color("#DA68EC")
	darkDescription = lipgloss.Color("#FF6A3D")
	darkTrailing    = lipgloss.Color("15")
	darkMatch       = lipgloss.Color("#10B981")
	darkCursor      = lipgloss.Color("#7C3AED")
)

// Segment colors, light scheme
var (
	lightCategory    = lipgloss.Color("#B58900")
	lightAlias       = lipgloss.Color("#8839EF")
	lightDescription = lipgloss.Color("#D20F39")
	lightTrailing    = lipgloss.Color("8")
	lightMatch       = lipgloss.Color("#40A02B")
	lightCursor      = lipgloss.Color("#4F46E5")
)

// Theme bundles the styles for one picker session. Match is the live
// search-match highlight and always wins over segment colors where
// they overlap.
type Theme struct {
	Name      string
	SegColors bool

	Category    lipgloss.Style
	Alias       lipgloss.Style
	Description lipgloss.Style
	Trailing    lipgloss.Style
	Match       lipgloss.Style
	Cursor      lipgloss.Style
	Footer      lipgloss.Style
}

// NewTheme builds the theme for the named scheme. Unknown names fall
// back to dark; "none" keeps the match highlight readable without any
// color.
func NewTheme(name string, segColors bool) Theme {
	th := Theme{Name: name, SegColors: segColors}
	switch name {
	case SchemeNone:
		th.SegColors = false
		th.Match = lipgloss.NewStyle().Underline(true).Bold(true)
		th.Cursor = lipgloss.NewStyle().Bold(true)
		th.Footer = lipgloss.NewStyle()
	case SchemeLight:
		th.Category = lipgloss.NewStyle().Foreground(lightCategory)
		th.Alias = lipgloss.NewStyle().Foreground(lightAlias).Bold(true)
		th.Description = lipgloss.NewStyle().Foreground(lightDescription)
		th.Trailing = lipgloss.NewStyle().Foreground(lightTrailing)
		th.Match = lipgloss.NewStyle().Foreground(lightMatch).Underline(true).Bold(true)
		th.Cursor = lipgloss.NewStyle().Foreground(lightCursor).Bold(true)
		th.Footer = lipgloss.NewStyle().Foreground(lightTrailing)
	default:
		th.Category = lipgloss.NewStyle().Foreground(darkCategory)
		th.Alias = lipgloss.NewStyle().Foreground(darkAlias).Bold(true)
		th.Description = lipgloss.NewStyle().Foreground(darkDescription)
		th.Trailing = lipgloss.NewStyle().Foreground(darkTrailing)
		th.Match = lipgloss.NewStyle().Foreground(darkMatch).Underline(true).Bold(true)
		th.Cursor = lipgloss.NewStyle().Foreground(darkCursor).Bold(true)
		th.Footer = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
	return th
}

// segmentStyle maps a renderer segment to its style.
func (t Theme) segmentStyle(seg Segment) lipgloss.Style {
	switch seg {
	case SegmentCategory:
		return t.Category
	case SegmentAlias:
		return t.Alias
	case SegmentDescription:
		return t.Description
	case SegmentTrailing:
		return t.Trailing
	}
	return lipgloss.NewStyle()
}

// SchemeFromPreferences picks the color scheme: an explicit flag wins,
// then the settings file, then dark unless NO_COLOR is set in the
// environment.
func SchemeFromPreferences(explicit, configured string) string {
	if explicit != "" {
		return explicit
	}
	if configured != "" {
		return configured
	}
	if termenv.EnvNoColor() {
		return SchemeNone
	}
	return SchemeDark
}

// SegColorsAllowed reports whether the environment permits per-segment
// coloring at all (NO_COLOR and friends disable it).
func SegColorsAllowed() bool {
	return !termenv.EnvNoColor()
}
