package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/mrz1836/worldclock/internal/constants"
)

// Notifier emits terminal bells alongside toasts.
// It respects configuration settings for bell enabled and quiet mode.
type Notifier struct {
	bellEnabled bool
	quiet       bool
	writer      io.Writer
}

// NewNotifier creates a notifier with the given settings.
// It writes to os.Stdout by default.
func NewNotifier(bellEnabled, quiet bool) *Notifier {
	return NewNotifierWithWriter(bellEnabled, quiet, os.Stdout)
}

// NewNotifierWithWriter creates a notifier with a custom writer.
func NewNotifierWithWriter(bellEnabled, quiet bool, w io.Writer) *Notifier {
	return &Notifier{
		bellEnabled: bellEnabled,
		quiet:       quiet,
		writer:      w,
	}
}

// Bell emits a terminal bell character (\a) if enabled and not in quiet mode.
func (n *Notifier) Bell() {
	if n == nil {
		return
	}
	if n.bellEnabled && !n.quiet {
		_, _ = fmt.Fprint(n.writer, "\a")
	}
}

// ToastPhase is the lifecycle stage of a single toast.
type ToastPhase int

const (
	// ToastEntering toasts are inserted but not drawn yet.
	ToastEntering ToastPhase = iota
	// ToastVisible toasts are drawn at full strength.
	ToastVisible
	// ToastLeaving toasts are drawn faint until removed.
	ToastLeaving
)

// String returns the phase name.
func (p ToastPhase) String() string {
	switch p {
	case ToastEntering:
		return "entering"
	case ToastVisible:
		return "visible"
	case ToastLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

// Toast is a transient, self-dismissing message.
type Toast struct {
	ID      string
	Message string
	Phase   ToastPhase
}

// ToastConfig holds the toast transition timings.
type ToastConfig struct {
	EnterDelay   time.Duration
	VisibleFor   time.Duration
	ExitDuration time.Duration
}

// DefaultToastConfig returns the stock toast timings.
func DefaultToastConfig() ToastConfig {
	return ToastConfig{
		EnterDelay:   constants.NotificationEnterDelay,
		VisibleFor:   constants.NotificationVisibleFor,
		ExitDuration: constants.NotificationExitDuration,
	}
}

// Lifetime is the time from Push until the toast is removed. VisibleFor
// runs from insertion, concurrently with EnterDelay.
func (c ToastConfig) Lifetime() time.Duration {
	return c.VisibleFor + c.ExitDuration
}

type (
	toastShowMsg   struct{ id string }
	toastHideMsg   struct{ id string }
	toastRemoveMsg struct{ id string }
)

// Toasts is the stack of in-flight toasts. Each toast owns its own timers,
// so several may be on screen at once.
type Toasts struct {
	cfg   ToastConfig
	items []Toast
}

// NewToasts creates an empty toast stack.
func NewToasts(cfg ToastConfig) *Toasts {
	return &Toasts{cfg: cfg}
}

// Push inserts a toast and returns the commands that reveal it and, counted
// from the same instant, start its exit.
func (t *Toasts) Push(message string) tea.Cmd {
	id := uuid.NewString()
	t.items = append(t.items, Toast{ID: id, Message: message, Phase: ToastEntering})
	return tea.Batch(
		tea.Tick(t.cfg.EnterDelay, func(time.Time) tea.Msg {
			return toastShowMsg{id: id}
		}),
		tea.Tick(t.cfg.VisibleFor, func(time.Time) tea.Msg {
			return toastHideMsg{id: id}
		}),
	)
}

// Items returns a copy of the in-flight toasts, oldest first.
func (t *Toasts) Items() []Toast {
	out := make([]Toast, len(t.items))
	copy(out, t.items)
	return out
}

// Len returns the number of in-flight toasts.
func (t *Toasts) Len() int {
	return len(t.items)
}

// Update advances toast lifecycles. The bool reports whether msg was a toast
// message.
func (t *Toasts) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case toastShowMsg:
		// A late show must not revive a toast that is already leaving.
		if t.phase(msg.id) == ToastEntering {
			t.setPhase(msg.id, ToastVisible)
		}
		return nil, true

	case toastHideMsg:
		if !t.setPhase(msg.id, ToastLeaving) {
			return nil, true
		}
		return tea.Tick(t.cfg.ExitDuration, func(time.Time) tea.Msg {
			return toastRemoveMsg{id: msg.id}
		}), true

	case toastRemoveMsg:
		t.remove(msg.id)
		return nil, true
	}
	return nil, false
}

func (t *Toasts) setPhase(id string, phase ToastPhase) bool {
	for i := range t.items {
		if t.items[i].ID == id {
			t.items[i].Phase = phase
			return true
		}
	}
	return false
}

func (t *Toasts) phase(id string) ToastPhase {
	for _, item := range t.items {
		if item.ID == id {
			return item.Phase
		}
	}
	return -1
}

func (t *Toasts) remove(id string) {
	for i := range t.items {
		if t.items[i].ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// View renders drawn toasts right-aligned within width.
func (t *Toasts) View(styles *Styles, width int) string {
	lines := make([]string, 0, len(t.items))
	for _, item := range t.items {
		var rendered string
		switch item.Phase {
		case ToastEntering:
			continue
		case ToastVisible:
			rendered = styles.Toast.Render(item.Message)
		case ToastLeaving:
			rendered = styles.ToastLeaving.Render(item.Message)
		}
		if width > 0 {
			rendered = lipgloss.PlaceHorizontal(width, lipgloss.Right, rendered)
		}
		lines = append(lines, rendered)
	}
	return strings.Join(lines, "\n")
}
