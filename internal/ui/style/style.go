// Package style provides shared colors and icons for log and status output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/shiori/internal/core/domain"
)

// Palette.
var (
	Indigo = lipgloss.Color("#6366F1")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Teal   = lipgloss.Color("#0D9488")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// Header renders section titles in status output.
var Header = lipgloss.NewStyle().Bold(true).Foreground(Indigo)

// Dim renders secondary detail such as paths and reasons.
var Dim = lipgloss.NewStyle().Foreground(Slate)

// StatusIcon returns the icon and color used for a unit status.
func StatusIcon(status domain.UnitStatus) (string, lipgloss.Color) {
	switch status {
	case domain.UnitStatusPassed:
		return Check, Green
	case domain.UnitStatusFailed:
		return Cross, Red
	case domain.UnitStatusCached:
		return Tilde, Teal
	case domain.UnitStatusRunning:
		return Dot, Yellow
	default:
		return Circle, Slate
	}
}

// RenderStatus renders the icon of status in its color.
func RenderStatus(status domain.UnitStatus) string {
	icon, color := StatusIcon(status)
	return lipgloss.NewStyle().Foreground(color).Render(icon)
}
