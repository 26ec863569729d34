package tui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	wcerrors "github.com/mrz1836/worldclock/internal/errors"
	"github.com/mrz1836/worldclock/internal/zone"
)

func TestZoneOptions(t *testing.T) {
	t.Parallel()

	opts := ZoneOptions([]string{zone.Local, "Asia/Tokyo", "Africa/Cairo"})
	require.Len(t, opts, 3)

	assert.Equal(t, "📍 Local Time", opts[0].Key)
	assert.Equal(t, zone.Local, opts[0].Value)
	assert.Equal(t, "📌 🇯🇵 Tokyo  (Asia/Tokyo)", opts[1].Key)
	assert.Equal(t, "📌 🌍 Cairo  (Africa/Cairo)", opts[2].Key)
}

func TestPickZone_RequiresTerminal(t *testing.T) {
	t.Parallel()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal")
	}
	_, err := PickZone("Timezone", []string{zone.Local}, zone.Local)
	require.ErrorIs(t, err, wcerrors.ErrInteractiveRequired)
}

func TestAdaptWidth(t *testing.T) {
	t.Parallel()

	w := adaptWidth(DefaultMenuWidth)
	assert.Positive(t, w)
}

func TestTheme(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, Theme())
}
