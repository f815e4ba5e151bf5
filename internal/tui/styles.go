package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorBlue   = lipgloss.Color("39")
	ColorGray   = lipgloss.Color("244")
	ColorNavy   = lipgloss.Color("17")
	ColorRed    = lipgloss.Color("196")
	ColorOrange = lipgloss.Color("208")
	ColorWhite  = lipgloss.Color("255")
	ColorGreen  = lipgloss.Color("42")
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorWhite).
			Bold(true).
			Padding(0, 1)

	crumbStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorGray).
			Padding(0, 1)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBlue).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Padding(0, 1)

	activeButtonStyle = lipgloss.NewStyle().
				Background(ColorBlue).
				Foreground(ColorWhite).
				Bold(true).
				Padding(0, 1)

	destructiveStyle = lipgloss.NewStyle().
				Foreground(ColorRed)

	toastStyle = lipgloss.NewStyle().
			Background(ColorGreen).
			Foreground(ColorNavy).
			Padding(0, 1)

	loadingStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)
)

// StateColor returns the accent used to render a page state label.
func StateColor(state string) lipgloss.Color {
	switch state {
	case "error", "no-internet":
		return ColorRed
	case "loading":
		return ColorOrange
	case "no-data":
		return ColorGray
	default:
		return ColorBlue
	}
}
