package tui

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/mrz1836/worldclock/internal/display"
	wcerrors "github.com/mrz1836/worldclock/internal/errors"
	"github.com/mrz1836/worldclock/internal/zone"
)

// Menu layout constants.
const (
	// TerminalEdgeMargin is the space kept between the menu and the terminal edge.
	TerminalEdgeMargin = 4
	// MinMenuWidth is the narrowest usable menu.
	MinMenuWidth = 40
	// DefaultMenuWidth is used when the terminal size is unknown.
	DefaultMenuWidth = 60
)

// ZoneOptions builds select options labelled the way the clock labels zones.
func ZoneOptions(zones []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(zones))
	for _, id := range zones {
		label := display.LabelFor(id).String()
		if id != zone.Local {
			label += "  (" + id + ")"
		}
		opts = append(opts, huh.NewOption(label, id))
	}
	return opts
}

// PickZone presents a one-shot select over zones and returns the chosen
// identifier. Returns ErrInteractiveRequired without a terminal and
// ErrMenuCanceled when the user aborts.
func PickZone(title string, zones []string, initial string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", wcerrors.ErrInteractiveRequired
	}
	if len(zones) == 0 {
		return "", wcerrors.ErrNoZonesMatched
	}
	CheckNoColor()

	selected := initial
	field := huh.NewSelect[string]().
		Title(title).
		Options(ZoneOptions(zones)...).
		Height(min(len(zones)+2, 12)).
		Value(&selected)

	_, accessible := os.LookupEnv("ACCESSIBLE")
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(Theme()).
		WithWidth(adaptWidth(DefaultMenuWidth)).
		WithAccessible(accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", wcerrors.ErrMenuCanceled
		}
		return "", wcerrors.Wrap(err, "zone picker failed")
	}
	return selected, nil
}

// adaptWidth returns a menu width that fits the terminal.
func adaptWidth(maxWidth int) int {
	width := GetTerminalWidth()
	if width <= 0 {
		return maxWidth
	}
	available := width - TerminalEdgeMargin
	if maxWidth > 0 && maxWidth < available {
		return maxWidth
	}
	return max(available, MinMenuWidth)
}

// Theme returns a huh theme using the semantic colors.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorPrimary)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(ColorSuccess)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)

	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(ColorMuted)

	return t
}
