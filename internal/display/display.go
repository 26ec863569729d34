// Package display contains the clock display controller: it reads the
// committed timezone, resolves the current instant through the formatting
// service and writes the time, date and label regions of a Surface.
package display

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mrz1836/worldclock/internal/errors"
	"github.com/mrz1836/worldclock/internal/timefmt"
	"github.com/mrz1836/worldclock/internal/zone"
)

// Placeholders written when a refresh fails.
const (
	ErrorMarker      = "Error"
	DiagnosticMarker = "Check log for details"
)

// Icons shown in front of the timezone label.
const (
	IconLocalPin = "📍"
	IconMapPin   = "📌"
)

// Label is the content of the timezone label region.
type Label struct {
	Icon string
	Text string
}

// String joins icon and text.
func (l Label) String() string {
	return l.Icon + " " + l.Text
}

// LabelFor derives the label for a timezone identifier.
func LabelFor(id string) Label {
	if id == zone.Local {
		return Label{Icon: IconLocalPin, Text: zone.LocalLabel}
	}
	return Label{Icon: IconMapPin, Text: zone.Flag(id) + " " + zone.City(id)}
}

// Surface is the set of display regions the controller writes.
type Surface interface {
	SetTime(text string)
	SetDate(text string)
	SetLabel(label Label)
	// Pulse applies the transient "just updated" marker to the time region.
	Pulse()
}

// Frame is one fully formatted display state.
type Frame struct {
	Zone   string `json:"zone"`
	Time   string `json:"time"`
	Date   string `json:"date"`
	Label  string `json:"label"`
	Abbrev string `json:"abbrev"`
	Offset string `json:"offset"`
	// DayProgress is the elapsed share of the zone's calendar day.
	DayProgress float64 `json:"day_progress"`

	label Label
}

// Snapshot resolves and formats the current instant for id without touching
// any surface.
func Snapshot(svc timefmt.Service, id string) (frame Frame, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("formatter panic: %v", r) //nolint:err113 // recovered value
		}
	}()

	inst, err := svc.Resolve(id)
	if err != nil {
		return Frame{}, err
	}

	label := LabelFor(id)
	return Frame{
		Zone:        id,
		Time:        inst.Time(),
		Date:        inst.Date(),
		Label:       label.Text,
		Abbrev:      inst.Zone(),
		Offset:      inst.Offset(),
		DayProgress: inst.DayFraction(),
		label:       label,
	}, nil
}

// Controller refreshes a Surface from the committed timezone.
type Controller struct {
	state     *zone.State
	formatter timefmt.Service
	surface   Surface
	logger    zerolog.Logger
}

// NewController wires the controller to its collaborators.
func NewController(state *zone.State, formatter timefmt.Service, surface Surface, logger zerolog.Logger) *Controller {
	return &Controller{
		state:     state,
		formatter: formatter,
		surface:   surface,
		logger:    logger.With().Str("component", "display").Logger(),
	}
}

// Refresh redraws the time, date and label regions.
//
// Regions are written only after formatting succeeded, so a failing refresh
// never leaves a mix of old and new values. On failure the time and date
// regions get the placeholders, the label keeps its previous value, the
// failure is logged and ErrDisplayRefresh is returned. Callers do not retry;
// the next scheduled tick is an independent attempt.
func (c *Controller) Refresh() error {
	id := c.state.Selected()

	frame, err := Snapshot(c.formatter, id)
	if err != nil {
		c.surface.SetTime(ErrorMarker)
		c.surface.SetDate(DiagnosticMarker)
		c.logger.Error().Err(err).Str("zone", id).Msg("error updating clock")
		return errors.Wrapf(errors.ErrDisplayRefresh, "zone %s: %v", id, err)
	}

	c.surface.SetLabel(frame.label)
	c.surface.SetTime(frame.Time)
	c.surface.SetDate(frame.Date)
	c.surface.Pulse()
	return nil
}
