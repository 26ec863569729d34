// Package timefmt is the time formatting service: it resolves "now" in the
// local zone or a named IANA zone and formats it with the fixed clock
// patterns. Zone data comes from the embedded tzdata, so resolution does not
// depend on the host's zoneinfo files.
package timefmt

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // embedded IANA database

	"github.com/mrz1836/worldclock/internal/clock"
	"github.com/mrz1836/worldclock/internal/constants"
	"github.com/mrz1836/worldclock/internal/errors"
	"github.com/mrz1836/worldclock/internal/zone"
)

// Local is the identifier that selects the system timezone.
const Local = zone.Local

// Service resolves the current instant for a timezone identifier.
type Service interface {
	Resolve(id string) (Instant, error)
}

// Instant is a resolved point in time, ready to be formatted.
type Instant struct {
	t time.Time
}

// NewInstant wraps t.
func NewInstant(t time.Time) Instant {
	return Instant{t: t}
}

// Time formats the instant as 24-hour HH:MM:SS.
func (i Instant) Time() string {
	return i.t.Format(constants.TimeLayout)
}

// Date formats the instant as "Monday, January 2, 2006".
func (i Instant) Date() string {
	return i.t.Format(constants.DateLayout)
}

// Zone returns the zone abbreviation in effect at the instant.
func (i Instant) Zone() string {
	name, _ := i.t.Zone()
	return name
}

// Offset returns the UTC offset as UTC±HH:MM.
func (i Instant) Offset() string {
	_, offset := i.t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offset/3600, (offset%3600)/60)
}

// DayFraction is the share of the local calendar day elapsed at the
// instant, in [0, 1).
func (i Instant) DayFraction() float64 {
	h, m, sec := i.t.Clock()
	return float64(h*3600+m*60+sec) / secondsPerDay
}

const secondsPerDay = 24 * 60 * 60

// Value returns the underlying time.
func (i Instant) Value() time.Time {
	return i.t
}

// Formatter is the default Service backed by the time package.
// Loaded locations are cached; LoadLocation parses zone data on every call.
type Formatter struct {
	clock clock.Clock
	local *time.Location

	mu    sync.Mutex
	cache map[string]*time.Location
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocal overrides the location used for the Local sentinel.
func WithLocal(loc *time.Location) Option {
	return func(f *Formatter) {
		f.local = loc
	}
}

// NewFormatter returns a Formatter reading the current time from c.
func NewFormatter(c clock.Clock, opts ...Option) *Formatter {
	f := &Formatter{
		clock: c,
		local: time.Local,
		cache: make(map[string]*time.Location),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Resolve returns the current instant in the zone named by id.
func (f *Formatter) Resolve(id string) (Instant, error) {
	loc, err := f.Location(id)
	if err != nil {
		return Instant{}, err
	}
	return Instant{t: f.clock.Now().In(loc)}, nil
}

// Location returns the *time.Location for id.
func (f *Formatter) Location(id string) (*time.Location, error) {
	if id == Local {
		return f.local, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if loc, ok := f.cache[id]; ok {
		return loc, nil
	}
	// LoadLocation accepts "" and "UTC" as UTC; neither is an option here.
	if id == "" {
		return nil, errors.Wrap(errors.ErrUnknownTimezone, "empty timezone")
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUnknownTimezone, "load %s: %v", id, err)
	}
	f.cache[id] = loc
	return loc, nil
}

var _ Service = (*Formatter)(nil)
