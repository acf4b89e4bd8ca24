// Package style provides the colors and icons shared by the log handler and
// the status report.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// SyncIcon returns the icon that marks an artifact as in sync or diverged.
func SyncIcon(inSync bool) string {
	if inSync {
		return Check
	}
	return Cross
}

// SyncColor returns the color that marks an artifact as in sync or diverged.
func SyncColor(inSync bool) lipgloss.Color {
	if inSync {
		return Green
	}
	return Red
}
