package tui

import (
	"bytes"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/worldclock/internal/clock"
	"github.com/mrz1836/worldclock/internal/timefmt"
	"github.com/mrz1836/worldclock/internal/zone"
)

func TestNotifier_Bell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		enabled bool
		quiet   bool
		want    string
	}{
		{"enabled", true, false, "\a"},
		{"disabled", false, false, ""},
		{"quiet", true, true, ""},
		{"disabled and quiet", false, true, ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			n := NewNotifierWithWriter(tc.enabled, tc.quiet, &buf)
			n.Bell()
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestNotifier_NilIsSafe(t *testing.T) {
	t.Parallel()

	var n *Notifier
	assert.NotPanics(t, n.Bell)
}

func TestNewNotifier_DefaultsToStdout(t *testing.T) {
	t.Parallel()

	n := NewNotifier(true, false)
	assert.Same(t, os.Stdout, n.writer)
}

func TestNewApp_BellWriterDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := DefaultAppConfig()
	cfg.BellWriter = &buf

	app := NewApp(zone.NewState(), timefmt.NewFormatter(clock.RealClock{}), zerolog.Nop(), cfg)
	assert.Same(t, &buf, app.notifier.writer)

	app = NewApp(zone.NewState(), timefmt.NewFormatter(clock.RealClock{}), zerolog.Nop(), DefaultAppConfig())
	assert.Same(t, os.Stdout, app.notifier.writer)
}

func TestDefaultToastConfig_Lifetime(t *testing.T) {
	t.Parallel()

	cfg := DefaultToastConfig()
	assert.Equal(t, 10*time.Millisecond, cfg.EnterDelay)
	assert.Equal(t, 3300*time.Millisecond, cfg.Lifetime())
}

func TestToasts_Lifecycle(t *testing.T) {
	t.Parallel()

	toasts := NewToasts(DefaultToastConfig())
	styles := NewStyles()

	cmd := toasts.Push("Timezone updated to Tokyo")
	require.NotNil(t, cmd)
	require.Equal(t, 1, toasts.Len())

	item := toasts.Items()[0]
	assert.Equal(t, ToastEntering, item.Phase)
	assert.NotEmpty(t, item.ID)
	assert.Empty(t, toasts.View(styles, 0), "entering toasts are not drawn")

	next, handled := toasts.Update(toastShowMsg{id: item.ID})
	assert.True(t, handled)
	assert.Nil(t, next, "the exit was already scheduled by Push")
	assert.Equal(t, ToastVisible, toasts.Items()[0].Phase)
	assert.Contains(t, toasts.View(styles, 80), "Timezone updated to Tokyo")

	next, handled = toasts.Update(toastHideMsg{id: item.ID})
	assert.True(t, handled)
	assert.NotNil(t, next)
	assert.Equal(t, ToastLeaving, toasts.Items()[0].Phase)
	assert.Contains(t, toasts.View(styles, 0), "Timezone updated to Tokyo")

	next, handled = toasts.Update(toastRemoveMsg{id: item.ID})
	assert.True(t, handled)
	assert.Nil(t, next)
	assert.Equal(t, 0, toasts.Len())
}

func TestToasts_PushSchedulesExitFromInsertion(t *testing.T) {
	t.Parallel()

	cfg := ToastConfig{EnterDelay: time.Millisecond, VisibleFor: 5 * time.Millisecond, ExitDuration: time.Millisecond}
	toasts := NewToasts(cfg)

	cmd := toasts.Push("Timezone updated to Tokyo")
	id := toasts.Items()[0].ID

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "show and hide are started together")
	require.Len(t, batch, 2)

	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, c())
	}
	assert.Contains(t, msgs, toastShowMsg{id: id})
	assert.Contains(t, msgs, toastHideMsg{id: id})
}

func TestToasts_LateShowDoesNotRevive(t *testing.T) {
	t.Parallel()

	toasts := NewToasts(DefaultToastConfig())
	toasts.Push("Timezone updated to Tokyo")
	id := toasts.Items()[0].ID

	toasts.Update(toastHideMsg{id: id})
	cmd, handled := toasts.Update(toastShowMsg{id: id})

	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, ToastLeaving, toasts.Items()[0].Phase)
}

func TestToasts_IndependentItems(t *testing.T) {
	t.Parallel()

	toasts := NewToasts(DefaultToastConfig())
	toasts.Push("first")
	toasts.Push("second")

	items := toasts.Items()
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)

	toasts.Update(toastRemoveMsg{id: items[0].ID})
	remaining := toasts.Items()
	require.Len(t, remaining, 1)
	assert.Equal(t, "second", remaining[0].Message)
}

func TestToasts_UnknownIDsAndMessages(t *testing.T) {
	t.Parallel()

	toasts := NewToasts(DefaultToastConfig())

	cmd, handled := toasts.Update(toastShowMsg{id: "missing"})
	assert.True(t, handled)
	assert.Nil(t, cmd)

	cmd, handled = toasts.Update(toastHideMsg{id: "missing"})
	assert.True(t, handled)
	assert.Nil(t, cmd)

	_, handled = toasts.Update("not a toast")
	assert.False(t, handled)
}

func TestToastPhase_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "entering", ToastEntering.String())
	assert.Equal(t, "visible", ToastVisible.String())
	assert.Equal(t, "leaving", ToastLeaving.String())
	assert.Equal(t, "unknown", ToastPhase(9).String())
}
