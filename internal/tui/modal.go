package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrz1836/worldclock/internal/constants"
	"github.com/mrz1836/worldclock/internal/display"
	"github.com/mrz1836/worldclock/internal/zone"
)

// ModalState is whether the selection modal is showing.
type ModalState int

const (
	// ModalClosed hides the overlay.
	ModalClosed ModalState = iota
	// ModalOpen shows the overlay and routes keys to it.
	ModalOpen
)

// ModalEvents is the modal's event surface. Key bindings map onto these
// methods, and tests drive them directly.
type ModalEvents interface {
	// OnOpen shows the overlay with the committed value preselected.
	OnOpen() tea.Cmd
	// OnClose hides the overlay. Any pending selection is discarded on the
	// next open.
	OnClose()
	// OnConfirm starts a commit of the pending value.
	OnConfirm() tea.Cmd
	// OnChange records a new pending value.
	OnChange(value string)
}

// ModalConfig holds the modal timings.
type ModalConfig struct {
	OpenFlash    time.Duration
	CommitDelay  time.Duration
	ConfirmReset time.Duration
	// Rows is the number of options visible at once.
	Rows int
}

// DefaultModalConfig returns the stock modal timings.
func DefaultModalConfig() ModalConfig {
	return ModalConfig{
		OpenFlash:    constants.OpenFlashDuration,
		CommitDelay:  constants.CommitDelay,
		ConfirmReset: constants.ConfirmResetDelay,
		Rows:         8,
	}
}

type (
	flashEndMsg     struct{ seq int }
	confirmResetMsg struct{}

	// commitMsg carries the value captured at confirm time once the commit
	// delay has elapsed.
	commitMsg struct{ value string }
)

// Modal is the timezone selection overlay.
type Modal struct {
	cfg     ModalConfig
	state   *zone.State
	options []string

	open     bool
	cursor   int
	offset   int
	pending  string
	flashing bool
	flashSeq int
	button   ConfirmButton
}

var _ ModalEvents = (*Modal)(nil)

// NewModal creates a closed modal over options. The committed value is always
// offered even if options leave it out.
func NewModal(state *zone.State, options []string, cfg ModalConfig) *Modal {
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultModalConfig().Rows
	}
	m := &Modal{
		cfg:     cfg,
		state:   state,
		options: append([]string(nil), options...),
		pending: state.Selected(),
		button:  NewConfirmButton(),
	}
	m.ensureOption(state.Selected())
	return m
}

// State returns whether the modal is open.
func (m *Modal) State() ModalState {
	if m.open {
		return ModalOpen
	}
	return ModalClosed
}

// IsOpen reports whether the overlay is showing.
func (m *Modal) IsOpen() bool { return m.open }

// Pending returns the unconfirmed selection.
func (m *Modal) Pending() string { return m.pending }

// Options returns the selectable identifiers.
func (m *Modal) Options() []string {
	return append([]string(nil), m.options...)
}

// Flashing reports whether the open highlight is active.
func (m *Modal) Flashing() bool { return m.flashing }

// Button exposes the confirm control.
func (m *Modal) Button() *ConfirmButton { return &m.button }

// OnOpen implements ModalEvents.
func (m *Modal) OnOpen() tea.Cmd {
	committed := m.state.Selected()
	m.ensureOption(committed)
	m.open = true
	m.pending = committed
	m.moveTo(m.indexOf(committed))

	m.flashing = true
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(m.cfg.OpenFlash, func(time.Time) tea.Msg {
		return flashEndMsg{seq: seq}
	})
}

// OnClose implements ModalEvents.
func (m *Modal) OnClose() {
	m.open = false
}

// OnConfirm implements ModalEvents. It is ignored while a commit is in
// flight or its success affordance is showing.
func (m *Modal) OnConfirm() tea.Cmd {
	if m.button.Disabled() {
		return nil
	}
	value := m.pending
	return tea.Batch(
		m.button.SetBusy(),
		tea.Tick(m.cfg.CommitDelay, func(time.Time) tea.Msg {
			return commitMsg{value: value}
		}),
	)
}

// OnChange implements ModalEvents.
func (m *Modal) OnChange(value string) {
	m.pending = value
	m.button.Advise(value, m.state.Selected())
}

// Committed closes the modal after a successful commit and schedules the
// confirm button's return to idle.
func (m *Modal) Committed() tea.Cmd {
	m.OnClose()
	m.button.SetSuccess()
	return tea.Tick(m.cfg.ConfirmReset, func(time.Time) tea.Msg {
		return confirmResetMsg{}
	})
}

// Failed re-enables the confirm button after a rejected commit.
func (m *Modal) Failed() {
	m.button.Reset()
}

// HandleKey maps an open-state key press onto ModalEvents.
func (m *Modal) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.open {
		return nil
	}
	switch {
	case key.Matches(msg, keys.Up):
		m.selectIndex(m.cursor - 1)
	case key.Matches(msg, keys.Down):
		m.selectIndex(m.cursor + 1)
	case key.Matches(msg, keys.First):
		m.selectIndex(0)
	case key.Matches(msg, keys.Last):
		m.selectIndex(len(m.options) - 1)
	case key.Matches(msg, keys.Confirm):
		return m.OnConfirm()
	case key.Matches(msg, keys.Escape),
		key.Matches(msg, keys.Cancel),
		key.Matches(msg, keys.Close),
		key.Matches(msg, keys.Backdrop):
		m.OnClose()
	}
	return nil
}

// Update handles the modal's own timer messages.
func (m *Modal) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case flashEndMsg:
		if msg.seq == m.flashSeq {
			m.flashing = false
		}
		return nil, true
	case confirmResetMsg:
		m.button.Reset()
		return nil, true
	case spinner.TickMsg:
		return m.button.Update(msg), true
	}
	return nil, false
}

func (m *Modal) selectIndex(i int) {
	if len(m.options) == 0 {
		return
	}
	i = max(0, min(i, len(m.options)-1))
	if i == m.cursor && m.options[i] == m.pending {
		return
	}
	m.moveTo(i)
	m.OnChange(m.options[i])
}

func (m *Modal) moveTo(i int) {
	m.cursor = max(i, 0)
	rows := m.cfg.Rows
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m *Modal) indexOf(id string) int {
	for i, o := range m.options {
		if o == id {
			return i
		}
	}
	return -1
}

func (m *Modal) ensureOption(id string) {
	if m.indexOf(id) < 0 {
		m.options = append([]string{id}, m.options...)
	}
}

// View renders the overlay centered in width x height, with the rest of the
// screen filled as a backdrop.
func (m *Modal) View(styles *Styles, width, height int) string {
	committed := m.state.Selected()

	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Select Timezone"))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render("Current: " + display.LabelFor(committed).String()))
	b.WriteString("\n\n")

	end := min(m.offset+m.cfg.Rows, len(m.options))
	if m.offset > 0 {
		b.WriteString(styles.Dim.Render("  ↑ more") + "\n")
	}
	for i := m.offset; i < end; i++ {
		id := m.options[i]
		line := fmt.Sprintf("%s  %s", display.LabelFor(id).Text, styles.Dim.Render(id))
		if id == zone.Local {
			line = display.LabelFor(id).Text
		}
		if id == committed {
			line += " " + styles.Current.Render("●")
		}
		if i == m.cursor {
			b.WriteString(styles.Cursor.Render("› ") + styles.Cursor.Render(line))
		} else {
			b.WriteString("  " + styles.Option.Render(line))
		}
		b.WriteString("\n")
	}
	if end < len(m.options) {
		b.WriteString(styles.Dim.Render("  ↓ more") + "\n")
	}
	b.WriteString("\n")

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		m.button.View(styles), "  ", styles.Button.Render("Cancel"))
	b.WriteString(buttons)

	box := styles.Modal
	if m.flashing {
		box = styles.ModalFlash
	}
	rendered := box.Render(b.String())
	if width <= 0 || height <= 0 {
		return rendered
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, rendered,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(ColorMuted))
}
