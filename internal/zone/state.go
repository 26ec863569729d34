// Package zone holds the committed timezone selection and the pure helpers
// derived from a timezone identifier: validation, city label and flag glyph.
package zone

import (
	"strings"
	"sync"

	"github.com/mrz1836/worldclock/internal/errors"
)

// Local is the sentinel meaning "use the system timezone".
const Local = "local"

// State is the single source of truth for the Selected Timezone.
// It starts at Local on every fresh process and is never persisted.
// The TUI mutates it only from the modal commit path; reads may come from
// Bubble Tea commands running on other goroutines, hence the lock.
type State struct {
	mu       sync.RWMutex
	selected string
}

// NewState returns a State initialized to the Local sentinel.
func NewState() *State {
	return &State{selected: Local}
}

// Selected returns the committed timezone identifier or Local.
func (s *State) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// IsLocal reports whether the committed value is the Local sentinel.
func (s *State) IsLocal() bool {
	return s.Selected() == Local
}

// Commit replaces the Selected Timezone with id.
// Values are trusted to come from the option list, but anything that is not
// the sentinel or Region/City shaped is rejected so the invariant holds.
func (s *State) Commit(id string) error {
	if !IsValidID(id) {
		return errors.Wrapf(errors.ErrInvalidTimezone, "commit %q", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
	return nil
}

// IsValidID reports whether id is Local or looks like Region/City.
// Multi-level ids such as America/Argentina/Buenos_Aires are accepted.
func IsValidID(id string) bool {
	if id == Local {
		return true
	}
	if strings.ContainsAny(id, " \t") {
		return false
	}
	parts := strings.Split(id, "/")
	if len(parts) < 2 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

// CityRaw returns the segment after the last '/', underscores kept.
// Notifications use this form.
func CityRaw(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// City returns the display name for id: the last path segment with
// underscores replaced by spaces. The Local sentinel maps to LocalLabel.
func City(id string) string {
	if id == Local {
		return LocalLabel
	}
	return strings.ReplaceAll(CityRaw(id), "_", " ")
}

// LocalLabel is the fixed label shown for the Local sentinel.
const LocalLabel = "Local Time"
