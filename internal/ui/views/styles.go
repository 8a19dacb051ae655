package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	InputInvalid  lipgloss.Style
	Checkbox      lipgloss.Style
	Year          lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	inputBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Input:         inputBase.BorderForeground(lipgloss.Color("241")),
		InputFocused:  inputBase.BorderForeground(lipgloss.Color("99")),
		InputInvalid:  inputBase.BorderForeground(lipgloss.Color("203")), // red
		Checkbox:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Year:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// TypeColor returns the color used for an OMDb result type
func TypeColor(kind string) string {
	switch kind {
	case "movie":
		return "78" // green
	case "series":
		return "33" // blue
	case "episode":
		return "51" // cyan
	default:
		return "214" // yellow
	}
}
