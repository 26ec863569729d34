package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	// wideHeader is shown when the terminal is at least wideThreshold columns.
	wideHeader = "🌍  W O R L D   C L O C K  🌍"

	// narrowHeader is the compact header for small terminals.
	narrowHeader = "═══ World Clock ═══"

	wideThreshold = 60
)

// RenderHeader renders the program header centered for width.
// Width of 0 or less leaves the header unpadded.
func RenderHeader(width int, style lipgloss.Style) string {
	text := headerText(width)
	return centerText(style.Render(text), text, width)
}

func headerText(width int) string {
	if width >= wideThreshold {
		return wideHeader
	}
	return narrowHeader
}

// centerText centers styled text based on the visual width of the plain text.
func centerText(styled, original string, totalWidth int) string {
	textWidth := lipgloss.Width(original)
	if totalWidth <= 0 || textWidth >= totalWidth {
		return styled
	}
	padding := (totalWidth - textWidth) / 2
	if padding <= 0 {
		return styled
	}
	return strings.Repeat(" ", padding) + styled
}

// GetTerminalWidth returns the current terminal width.
// Returns 0 if width cannot be determined.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
