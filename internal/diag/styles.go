package diag

import "github.com/charmbracelet/lipgloss"

// Level colors
var (
	ColorDebug = lipgloss.Color("6") // Cyan
	ColorInfo  = lipgloss.Color("7") // White
	ColorWarn  = lipgloss.Color("3") // Yellow
	ColorError = lipgloss.Color("1") // Red
)

// Level styles
var (
	DebugStyle = lipgloss.NewStyle().Foreground(ColorDebug)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo)
	WarnStyle  = lipgloss.NewStyle().Foreground(ColorWarn)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
)

// StyleFor returns the line style for a level.
func StyleFor(level Level) lipgloss.Style {
	switch level {
	case LevelDebug:
		return DebugStyle
	case LevelWarn:
		return WarnStyle
	case LevelError:
		return ErrorStyle
	}
	return InfoStyle
}
