package picker

import "github.com/charmbracelet/lipgloss"

// Style controls the picker's rendering.
type Style struct {
	Label     lipgloss.Style
	Separator lipgloss.Style

	// Text is used for filled sections, Placeholder for sections still
	// showing their label.
	Text        lipgloss.Style
	Placeholder lipgloss.Style

	// Invalid replaces Text and Placeholder on a half that failed to decode
	// or when the endpoint is flagged out of order.
	Invalid lipgloss.Style

	// Highlight marks the active section of a focused picker.
	Highlight lipgloss.Style

	// Error renders the range ordering message.
	Error lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Separator:   dim,
		Text:        lipgloss.NewStyle(),
		Placeholder: dim,
		Invalid:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Highlight:   lipgloss.NewStyle().Reverse(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true),
	}
}
