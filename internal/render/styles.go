// Package render formats stackups, calculation results and the standards
// table for the terminal using lipgloss styles.
//
// Every view returns a string; callers decide where to write it. Colors
// degrade to plain text when the output is not a terminal.
package render

import "github.com/charmbracelet/lipgloss"

// Layer colors follow the usual stackup drawing conventions.
var (
	CopperColor     = lipgloss.Color("#CF8534")
	SolderMaskColor = lipgloss.Color("#228B22")
	CoreColor       = lipgloss.Color("#808080")
	PrepregColor    = lipgloss.Color("#C0C0C0")
	HeaderColor     = lipgloss.Color("#2E8B57")
	StandardsColor  = lipgloss.Color("#36454F")

	SuccessColor = lipgloss.Color("#2E7D32")
	ErrorColor   = lipgloss.Color("#E53935")
	WarningColor = lipgloss.Color("#FFC107")
	MutedColor   = lipgloss.Color("#8A8F98")
)

// Styles is the set of styles the views draw with.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Body   lipgloss.Style
	Label  lipgloss.Style
	Muted  lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	Copper     lipgloss.Style
	SolderMask lipgloss.Style
	Core       lipgloss.Style
	Prepreg    lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(HeaderColor).
			Bold(true),
		Header: lipgloss.NewStyle().Bold(true),
		Body:   lipgloss.NewStyle(),
		Label:  lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(MutedColor),

		Success: lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(WarningColor),

		Copper:     lipgloss.NewStyle().Foreground(CopperColor),
		SolderMask: lipgloss.NewStyle().Foreground(SolderMaskColor),
		Core:       lipgloss.NewStyle().Foreground(CoreColor),
		Prepreg:    lipgloss.NewStyle().Foreground(PrepregColor),
	}
}
