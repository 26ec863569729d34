package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/worldclock/internal/zone"
)

func newTestModal(t *testing.T, options ...string) (*Modal, *zone.State) {
	t.Helper()
	state := zone.NewState()
	return NewModal(state, options, DefaultModalConfig()), state
}

func TestNewModal_OffersCommittedValue(t *testing.T) {
	t.Parallel()

	m, _ := newTestModal(t, "Asia/Tokyo")

	assert.Equal(t, []string{zone.Local, "Asia/Tokyo"}, m.Options())
	assert.Equal(t, ModalClosed, m.State())
	assert.False(t, m.IsOpen())
}

func TestModal_OnOpenPreselectsCommitted(t *testing.T) {
	t.Parallel()

	m, state := newTestModal(t, zone.Local, "Europe/Paris", "Asia/Tokyo")
	require.NoError(t, state.Commit("Asia/Tokyo"))

	m.OnChange("Europe/Paris")
	cmd := m.OnOpen()

	require.NotNil(t, cmd)
	assert.Equal(t, ModalOpen, m.State())
	assert.Equal(t, "Asia/Tokyo", m.Pending())
	assert.Equal(t, 2, m.cursor)
	assert.True(t, m.Flashing())
}

func TestModal_OnOpenAddsUnlistedCommittedValue(t *testing.T) {
	t.Parallel()

	m, state := newTestModal(t, zone.Local)
	require.NoError(t, state.Commit("Europe/Berlin"))

	m.OnOpen()

	assert.Equal(t, "Europe/Berlin", m.Options()[0])
	assert.Equal(t, "Europe/Berlin", m.Pending())
}

func TestModal_FlashEndsForLatestOpenOnly(t *testing.T) {
	t.Parallel()

	m, _ := newTestModal(t, zone.Local)
	m.OnOpen()
	first := m.flashSeq
	m.OnClose()
	m.OnOpen()

	_, handled := m.Update(flashEndMsg{seq: first})
	assert.True(t, handled)
	assert.True(t, m.Flashing())

	m.Update(flashEndMsg{seq: m.flashSeq})
	assert.False(t, m.Flashing())
}

func TestModal_OnChangeAdvisesLabel(t *testing.T) {
	t.Parallel()

	m, _ := newTestModal(t, zone.Local, "Asia/Dubai")

	m.OnChange("Asia/Dubai")
	assert.Equal(t, LabelUpdate, m.Button().Label())
	assert.Equal(t, "Asia/Dubai", m.Pending())

	m.OnChange(zone.Local)
	assert.Equal(t, LabelKeep, m.Button().Label())
	assert.False(t, m.Button().Disabled(), "advisory label never disables confirm")
}

func TestModal_OnCloseKeepsCommitted(t *testing.T) {
	t.Parallel()

	m, state := newTestModal(t, zone.Local, "Asia/Dubai")
	m.OnOpen()
	m.OnChange("Asia/Dubai")
	m.OnClose()

	assert.False(t, m.IsOpen())
	assert.Equal(t, zone.Local, state.Selected())

	m.OnOpen()
	assert.Equal(t, zone.Local, m.Pending(), "reopening discards the pending value")
}

func TestModal_OnConfirmIgnoredWhileBusy(t *testing.T) {
	t.Parallel()

	m, _ := newTestModal(t, zone.Local, "Asia/Dubai")
	m.OnOpen()
	m.OnChange("Asia/Dubai")

	require.NotNil(t, m.OnConfirm())
	assert.True(t, m.Button().Disabled())
	assert.Nil(t, m.OnConfirm())
}

func TestModal_CommittedAndReset(t *testing.T) {
	t.Parallel()

	m, _ := newTestModal(t, zone.Local)
	m.OnOpen()
	m.OnConfirm()

	cmd := m.Committed()
	require.NotNil(t, cmd)
	assert.False(t, m.IsOpen())
	assert.Equal(t, ButtonSuccess, m.Button().Phase())
	assert.True(t, m.Button().Disabled())

	_, handled := m.Update(confirmResetMsg{})
	assert.True(t, handled)
	assert.Equal(t, ButtonIdle, m.Button().Phase())
	assert.Equal(t, LabelUpdate, m.Button().Label())
}

func TestModal_HandleKeyNavigation(t *testing.T) {
	t.Parallel()

	m, _ := newTestModal(t, zone.Local, "America/Chicago", "Europe/Paris", "Asia/Tokyo")

	assert.Nil(t, m.HandleKey(tea.KeyMsg{Type: tea.KeyDown}), "closed modal ignores keys")
	assert.Equal(t, zone.Local, m.Pending())

	m.OnOpen()

	m.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, zone.Local, m.Pending(), "cursor clamps at the top")

	m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, "America/Chicago", m.Pending())

	m.HandleKey(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, "Asia/Tokyo", m.Pending())

	m.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "Asia/Tokyo", m.Pending(), "cursor clamps at the bottom")

	m.HandleKey(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, zone.Local, m.Pending())
	assert.Equal(t, LabelKeep, m.Button().Label())
}

func TestModal_ScrollWindow(t *testing.T) {
	t.Parallel()

	state := zone.NewState()
	cfg := DefaultModalConfig()
	cfg.Rows = 2
	m := NewModal(state, []string{zone.Local, "Asia/Tokyo", "Asia/Dubai", "Asia/Kolkata"}, cfg)
	m.OnOpen()

	m.HandleKey(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 2, m.offset)

	view := m.View(NewStyles(), 0, 0)
	assert.Contains(t, view, "Kolkata")
	assert.NotContains(t, view, "Tokyo")
	assert.Contains(t, view, "↑ more")

	m.HandleKey(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.offset)
}

func TestModal_SpinnerTicksOnlyWhileBusy(t *testing.T) {
	t.Parallel()

	m, _ := newTestModal(t, zone.Local)

	cmd, handled := m.Update(spinner.TickMsg{})
	assert.True(t, handled)
	assert.Nil(t, cmd)
}

func TestModal_ViewShowsBackdrop(t *testing.T) {
	t.Parallel()

	m, _ := newTestModal(t, zone.Local, "Asia/Tokyo")
	m.OnOpen()

	view := m.View(NewStyles(), 60, 30)
	assert.Contains(t, view, "░")
	assert.Contains(t, view, "Select Timezone")
	assert.Contains(t, view, "Cancel")
}
