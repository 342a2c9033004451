package report

import "github.com/charmbracelet/lipgloss"

// Status colors. AdaptiveColor picks the variant matching the terminal
// background.
var (
	colorSupported   = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#4ADE80"}
	colorWildcard    = lipgloss.AdaptiveColor{Light: "#EA580C", Dark: "#FB923C"}
	colorUnsupported = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	colorUnknown     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// Styles holds the pre-built lipgloss styles a rendered report uses.
type Styles struct {
	Header      lipgloss.Style
	Muted       lipgloss.Style
	Supported   lipgloss.Style
	Wildcard    lipgloss.Style
	Unsupported lipgloss.Style
	Unknown     lipgloss.Style
}

// NewStyles builds the report styles. With noColor set every style is a
// pass-through, keeping the layout but dropping ANSI sequences.
func NewStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{
			Header:      plain,
			Muted:       plain,
			Supported:   plain,
			Wildcard:    plain,
			Unsupported: plain,
			Unknown:     plain,
		}
	}
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(colorUnknown),
		Supported:   lipgloss.NewStyle().Foreground(colorSupported),
		Wildcard:    lipgloss.NewStyle().Foreground(colorWildcard),
		Unsupported: lipgloss.NewStyle().Foreground(colorUnsupported),
		Unknown:     lipgloss.NewStyle().Foreground(colorUnknown),
	}
}
