package display

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

//nolint:gochecknoglobals // Monotonic ticker identity, same approach as bubbles/timer
var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg asks the owner of a Ticker to refresh the display.
type TickMsg struct {
	ID   int
	gen  int
	Time time.Time
}

// Ticker is the repeating refresh task. It does not own a goroutine: each
// accepted tick re-arms the next one through Next, and Stop invalidates every
// tick already in flight by bumping the generation.
type Ticker struct {
	id       int
	gen      int
	interval time.Duration
	running  bool
}

// NewTicker creates a stopped ticker.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{id: nextID(), interval: interval}
}

// ID identifies the ticker in TickMsg.
func (t *Ticker) ID() int {
	return t.id
}

// Interval returns the refresh period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Running reports whether ticks are being accepted.
func (t *Ticker) Running() bool {
	return t.running
}

// Start begins ticking and returns the first scheduled tick.
func (t *Ticker) Start() tea.Cmd {
	t.running = true
	t.gen++
	return t.Next()
}

// Stop rejects every pending and future tick until Start is called again.
func (t *Ticker) Stop() {
	t.running = false
	t.gen++
}

// Accept reports whether msg belongs to the current run of this ticker.
func (t *Ticker) Accept(msg TickMsg) bool {
	return t.running && msg.ID == t.id && msg.gen == t.gen
}

// Next schedules the following tick.
func (t *Ticker) Next() tea.Cmd {
	id, gen := t.id, t.gen
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, gen: gen, Time: now}
	})
}

// Step returns the message Next would deliver, without waiting.
// Tests use it to single-step the refresh loop.
func (t *Ticker) Step() TickMsg {
	return TickMsg{ID: t.id, gen: t.gen, Time: time.Now()}
}
