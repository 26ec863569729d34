package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/mrz1836/worldclock/internal/constants"
	"github.com/mrz1836/worldclock/internal/display"
	"github.com/mrz1836/worldclock/internal/timefmt"
	"github.com/mrz1836/worldclock/internal/zone"
)

// AppConfig holds configuration for the clock program.
type AppConfig struct {
	// RefreshInterval is the period of the display refresh tick.
	RefreshInterval time.Duration
	// PulseDuration is how long the time region stays highlighted after a
	// refresh.
	PulseDuration time.Duration
	Modal         ModalConfig
	Toast         ToastConfig
	// Zones is the option list offered by the modal.
	Zones []string
	// Notifications enables toasts after a commit.
	Notifications bool
	// BellEnabled rings the terminal bell with each toast.
	BellEnabled bool
	// Quiet suppresses the header and the bell.
	Quiet bool
	// BellWriter receives the bell character. Defaults to os.Stdout.
	BellWriter io.Writer
}

// DefaultAppConfig returns the stock configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		RefreshInterval: constants.RefreshInterval,
		PulseDuration:   constants.PulseDuration,
		Modal:           DefaultModalConfig(),
		Toast:           DefaultToastConfig(),
		Zones:           []string{zone.Local},
		Notifications:   true,
	}
}

type (
	pulseEndMsg struct{ seq int }

	// BellMsg is returned after the terminal bell was rung.
	BellMsg struct{}
)

// App is the Bubble Tea model for the world clock. It is the display
// controller's Surface: the controller writes regions into it and the
// resulting timer commands are handed back to the runtime from Update.
type App struct {
	cfg      AppConfig
	state    *zone.State
	ctrl     *display.Controller
	ticker   *display.Ticker
	modal    *Modal
	toasts   *Toasts
	notifier *Notifier
	styles   *Styles
	help     help.Model
	logger   zerolog.Logger

	timeText string
	dateText string
	label    display.Label
	pulsing  bool
	pulseSeq int
	err      error

	queued   []tea.Cmd
	width    int
	height   int
	quitting bool
}

var _ display.Surface = (*App)(nil)

// NewApp wires the program around state and formatter.
func NewApp(state *zone.State, formatter timefmt.Service, logger zerolog.Logger, cfg AppConfig) *App {
	notifier := NewNotifier(cfg.BellEnabled, cfg.Quiet)
	if cfg.BellWriter != nil {
		notifier = NewNotifierWithWriter(cfg.BellEnabled, cfg.Quiet, cfg.BellWriter)
	}
	a := &App{
		cfg:      cfg,
		state:    state,
		ticker:   display.NewTicker(cfg.RefreshInterval),
		modal:    NewModal(state, cfg.Zones, cfg.Modal),
		toasts:   NewToasts(cfg.Toast),
		notifier: notifier,
		styles:   NewStyles(),
		help:     help.New(),
		logger:   logger.With().Str("component", "tui").Logger(),
		width:    80,
		height:   24,
	}
	a.ctrl = display.NewController(state, formatter, a, logger)
	return a
}

// SetTime implements display.Surface.
func (a *App) SetTime(text string) { a.timeText = text }

// SetDate implements display.Surface.
func (a *App) SetDate(text string) { a.dateText = text }

// SetLabel implements display.Surface.
func (a *App) SetLabel(label display.Label) { a.label = label }

// Pulse implements display.Surface. Overlapping pulses extend the highlight;
// only the latest one clears it.
func (a *App) Pulse() {
	a.pulsing = true
	a.pulseSeq++
	seq := a.pulseSeq
	a.queue(tea.Tick(a.cfg.PulseDuration, func(time.Time) tea.Msg {
		return pulseEndMsg{seq: seq}
	}))
}

// Init refreshes immediately and starts the refresh ticker.
func (a *App) Init() tea.Cmd {
	a.refresh()
	a.queue(a.ticker.Start())
	return a.flush()
}

// Update handles messages and returns the updated model and any commands.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case display.TickMsg:
		if a.ticker.Accept(msg) {
			a.refresh()
			a.queue(a.ticker.Next())
		}

	case pulseEndMsg:
		if msg.seq == a.pulseSeq {
			a.pulsing = false
		}

	case commitMsg:
		a.commit(msg.value)

	case BellMsg:

	default:
		if cmd, ok := a.modal.Update(msg); ok {
			a.queue(cmd)
		} else if cmd, ok := a.toasts.Update(msg); ok {
			a.queue(cmd)
		}
	}

	return a, a.flush()
}

func (a *App) handleKey(msg tea.KeyMsg) {
	if msg.Type == tea.KeyCtrlC {
		a.quit()
		return
	}
	if a.modal.IsOpen() {
		a.queue(a.modal.HandleKey(msg))
		return
	}
	switch {
	case key.Matches(msg, keys.Quit):
		a.quit()
	case key.Matches(msg, keys.Open):
		a.queue(a.modal.OnOpen())
	}
}

func (a *App) quit() {
	a.quitting = true
	a.ticker.Stop()
	a.queue(tea.Quit)
}

// commit applies a confirmed selection captured by the modal.
func (a *App) commit(value string) {
	if err := a.state.Commit(value); err != nil {
		a.logger.Warn().Err(err).Str("zone", value).Msg("timezone commit rejected")
		a.modal.Failed()
		return
	}
	a.logger.Info().Str("zone", value).Msg("timezone updated")

	a.refresh()
	a.queue(a.modal.Committed())

	if a.cfg.Notifications {
		a.queue(a.toasts.Push("Timezone updated to " + zone.CityRaw(value)))
		a.queue(a.bell())
	}
}

func (a *App) refresh() {
	a.err = a.ctrl.Refresh()
}

func (a *App) bell() tea.Cmd {
	n := a.notifier
	return func() tea.Msg {
		n.Bell()
		return BellMsg{}
	}
}

func (a *App) queue(cmd tea.Cmd) {
	if cmd != nil {
		a.queued = append(a.queued, cmd)
	}
}

func (a *App) flush() tea.Cmd {
	if len(a.queued) == 0 {
		return nil
	}
	cmds := a.queued
	a.queued = nil
	return tea.Batch(cmds...)
}

// View renders the current state to a string.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	if toasts := a.toasts.View(a.styles, a.width); toasts != "" {
		b.WriteString(toasts)
		b.WriteString("\n")
	}

	if a.modal.IsOpen() {
		b.WriteString(a.modal.View(a.styles, a.width, a.height-lipgloss.Height(b.String())))
		b.WriteString("\n")
		b.WriteString(a.help.View(modalHelp{keys}))
		return b.String()
	}

	timeStyle := a.styles.Time
	switch {
	case a.err != nil:
		timeStyle = a.styles.Failed
	case a.pulsing:
		timeStyle = a.styles.Pulse
	}

	lines := []string{}
	if !a.cfg.Quiet {
		lines = append(lines, a.styles.Header.Render(headerText(a.width)), "")
	}
	lines = append(lines,
		timeStyle.Render(a.timeText),
		a.styles.Date.Render(a.dateText),
		"",
		a.styles.Label.Render(a.label.String()),
		"",
		a.styles.Help.Render(a.help.View(clockHelp{keys})),
	)

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if a.width > 0 {
		body = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, body)
	}
	b.WriteString(body)
	return b.String()
}

// TimeText returns the time region.
func (a *App) TimeText() string { return a.timeText }

// DateText returns the date region.
func (a *App) DateText() string { return a.dateText }

// Label returns the label region.
func (a *App) Label() display.Label { return a.label }

// Pulsing reports whether the just-updated marker is showing.
func (a *App) Pulsing() bool { return a.pulsing }

// Error returns the error from the last refresh.
func (a *App) Error() error { return a.err }

// Modal returns the selection modal.
func (a *App) Modal() *Modal { return a.modal }

// Toasts returns the toast stack.
func (a *App) Toasts() *Toasts { return a.toasts }

// Ticker returns the refresh ticker.
func (a *App) Ticker() *display.Ticker { return a.ticker }

// IsQuitting returns true if the model is in quitting state.
func (a *App) IsQuitting() bool { return a.quitting }
