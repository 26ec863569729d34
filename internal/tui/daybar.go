package tui

import (
	"github.com/charmbracelet/bubbles/progress"
)

// DefaultDayBarWidth is the width of the day bar in the zones table.
const DefaultDayBarWidth = 12

// DayBar renders how much of a zone's day has elapsed as a static progress
// bar. It uses the primary gradient, or a solid fill under NO_COLOR.
type DayBar struct {
	bar progress.Model
}

// NewDayBar creates a bar of the given width.
func NewDayBar(width int) *DayBar {
	opts := []progress.Option{
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	}
	if HasColorSupport() {
		opts = append(opts, progress.WithScaledGradient(string(ColorPrimary.Light), string(ColorPrimary.Dark)))
	} else {
		opts = append(opts, progress.WithSolidFill("#808080"))
	}
	return &DayBar{bar: progress.New(opts...)}
}

// Width returns the bar width.
func (d *DayBar) Width() int {
	return d.bar.Width
}

// Render draws the bar for fraction, clamped to [0, 1].
func (d *DayBar) Render(fraction float64) string {
	switch {
	case fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}
	return d.bar.ViewAs(fraction)
}
