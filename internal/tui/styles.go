// Package tui provides the terminal user interface for worldclock.
//
// The package is a single Bubble Tea program: the clock view, the timezone
// selection modal and the notification toasts are all driven from one Update
// loop, and every delayed effect (refresh tick, pulse, commit delay, toast
// transitions) is a tea.Tick that comes back as a typed message.
//
// # Semantic Colors
//
// Five semantic colors are exported for use across components:
//   - ColorPrimary (Blue): active states, the clock face
//   - ColorSuccess (Green): confirm success, toasts
//   - ColorWarning (Yellow): the just-updated pulse
//   - ColorError (Red): refresh failures
//   - ColorMuted (Gray): dim text, backdrop
//
// # NO_COLOR Support
//
// Call CheckNoColor() before starting the program to respect the NO_COLOR
// environment variable. Colors are also disabled when TERM=dumb.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for the clock face and the focused option.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSecondary is violet, used for the modal frame and toasts.
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#5F5FD7", Dark: "#8B5CF6"}

	// ColorSuccess is green, used for success states.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for the refresh pulse.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used when the display cannot be refreshed.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for dim/inactive states and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// Styles holds every lipgloss style the program renders with.
type Styles struct {
	Header lipgloss.Style
	Time   lipgloss.Style
	Pulse  lipgloss.Style
	Failed lipgloss.Style
	Date   lipgloss.Style
	Label  lipgloss.Style
	Help   lipgloss.Style
	Dim    lipgloss.Style

	Modal      lipgloss.Style
	ModalFlash lipgloss.Style
	ModalTitle lipgloss.Style
	Option     lipgloss.Style
	Cursor     lipgloss.Style
	Current    lipgloss.Style

	Button        lipgloss.Style
	ButtonPrimary lipgloss.Style
	ButtonBusy    lipgloss.Style
	ButtonSuccess lipgloss.Style

	Toast        lipgloss.Style
	ToastLeaving lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() *Styles {
	button := lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())

	return &Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Time:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1),
		Pulse:  lipgloss.NewStyle().Bold(true).Foreground(ColorWarning).Padding(0, 1),
		Failed: lipgloss.NewStyle().Bold(true).Foreground(ColorError).Padding(0, 1),
		Date:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}),
		Label:  lipgloss.NewStyle().Foreground(ColorSecondary),
		Help:   lipgloss.NewStyle().Foreground(ColorMuted),
		Dim:    lipgloss.NewStyle().Faint(true),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2),
		ModalFlash: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSuccess).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).MarginBottom(1),
		Option:     lipgloss.NewStyle(),
		Cursor:     lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Current:    lipgloss.NewStyle().Foreground(ColorSuccess),

		Button:        button.BorderForeground(ColorMuted),
		ButtonPrimary: button.BorderForeground(ColorPrimary).Foreground(ColorPrimary),
		ButtonBusy:    button.BorderForeground(ColorMuted).Foreground(ColorMuted),
		ButtonSuccess: button.BorderForeground(ColorSuccess).Foreground(ColorSuccess),

		Toast: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorSecondary).
			Padding(0, 2),
		ToastLeaving: lipgloss.NewStyle().
			Faint(true).
			Foreground(ColorMuted).
			Padding(0, 2),
	}
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this before rendering styled output.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or TERM=dumb.
// This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
