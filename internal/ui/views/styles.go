package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	Dim           lipgloss.Style
	Ribbon        lipgloss.Style
	Arrow         lipgloss.Style
	ProgressFill  lipgloss.Style
	ProgressTrack lipgloss.Style
	Popup         lipgloss.Style
	PopupTitle    lipgloss.Style
	Help          lipgloss.Style
	Ready         lipgloss.Style
	Scroll        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style
	Marker        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tab:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Ribbon:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Bold(true),
		Arrow:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		ProgressFill:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		ProgressTrack: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		PopupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Help:          lipgloss.NewStyle().Faint(true),
		Ready:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Marker:        lipgloss.NewStyle(),
	}
}

// ColorFor maps a section color tag to a terminal color
func ColorFor(tag string) lipgloss.Color {
	switch tag {
	case "primary":
		return lipgloss.Color("45") // cyan
	case "secondary":
		return lipgloss.Color("78") // green
	case "accent":
		return lipgloss.Color("205") // pink
	case "neon-purple":
		return lipgloss.Color("135")
	case "neon-blue":
		return lipgloss.Color("39")
	case "neon-green":
		return lipgloss.Color("82")
	case "neon-orange":
		return lipgloss.Color("208")
	default:
		return lipgloss.Color("252")
	}
}
