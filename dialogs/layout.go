package dialogs

import "github.com/charmbracelet/lipgloss"

// boxStyle frames every segview dialog; the border background matches the
// dimmed overlay behind it.
var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("252")).
	BorderBackground(lipgloss.Color(overlayBG)).
	Padding(1, 2).
	Width(60)

const overlayBG = "236"

// Overlay centers a dialog over the full terminal, dimming everything
// behind it.
func Overlay(width, height int, dialog string) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(overlayBG)),
	)
}
