package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorCyan  = lipgloss.Color("36")
	colorDim   = lipgloss.Color("240")
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleName    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

func okLine(msg string) string {
	return styleSuccess.Render(iconSuccess) + " " + msg
}

func failLine(msg string) string {
	return styleError.Render(iconError) + " " + msg
}
