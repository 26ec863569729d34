package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/worldclock/internal/display"
	"github.com/mrz1836/worldclock/internal/errors"
)

func TestNow_Text(t *testing.T) {
	t.Parallel()

	out, err := executeRoot(t, testDeps(), "now", "Asia/Tokyo")
	require.NoError(t, err)

	assert.Equal(t, "📌 🇯🇵 Tokyo\n21:00:00\nSunday, February 15, 2026\nJST UTC+09:00\n", out)
}

func TestNow_JSON(t *testing.T) {
	t.Parallel()

	out, err := executeRoot(t, testDeps(), "now", "America/New_York", "-o", "json")
	require.NoError(t, err)

	var frame display.Frame
	require.NoError(t, json.Unmarshal([]byte(out), &frame))
	assert.Equal(t, "America/New_York", frame.Zone)
	assert.Equal(t, "07:00:00", frame.Time)
	assert.Equal(t, "Sunday, February 15, 2026", frame.Date)
	assert.Equal(t, "🇺🇸 New York", frame.Label)
	assert.Equal(t, "EST", frame.Abbrev)
	assert.Equal(t, "UTC-05:00", frame.Offset)
}

func TestNow_DefaultsToLocal(t *testing.T) {
	t.Parallel()

	out, err := executeRoot(t, testDeps(), "now")
	require.NoError(t, err)
	assert.Contains(t, out, "📍 Local Time\n")
}

func TestNow_RejectsZones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		zone    string
		wantErr error
	}{
		{"bare city", "Tokyo", errors.ErrInvalidTimezone},
		{"empty segment", "Asia/", errors.ErrInvalidTimezone},
		{"whitespace", "Asia/New York", errors.ErrInvalidTimezone},
		{"unknown region", "Mars/Olympus_Mons", errors.ErrUnknownTimezone},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err := executeRoot(t, testDeps(), "now", tc.zone)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
			assert.Empty(t, out)
		})
	}
}

func TestNow_Pick(t *testing.T) {
	t.Parallel()

	d := testDeps()
	var offered []string
	var initial string
	d.pick = func(_ string, zones []string, init string) (string, error) {
		offered = zones
		initial = init
		return "Europe/London", nil
	}

	out, err := executeRoot(t, d, "now", "--pick", "--config", writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"local", "America/New_York", "Europe/London", "Asia/Tokyo"}, offered)
	assert.Equal(t, "local", initial)
	assert.Contains(t, out, "🇬🇧 London")
	assert.Contains(t, out, "12:00:00")
	assert.Contains(t, out, "GMT UTC+00:00")
}

func TestNow_PickCanceled(t *testing.T) {
	t.Parallel()

	d := testDeps()
	d.pick = func(string, []string, string) (string, error) {
		return "", errors.ErrMenuCanceled
	}

	out, err := executeRoot(t, d, "now", "--pick", "--config", writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Contains(t, out, "Selection canceled.")
	assert.NotContains(t, out, "Local Time")
}

func TestNow_PickWithoutTerminal(t *testing.T) {
	t.Parallel()

	_, err := executeRoot(t, testDeps(), "now", "--pick", "--config", writeConfig(t, testConfig))
	require.ErrorIs(t, err, errors.ErrInteractiveRequired)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestNow_PickWithZoneConflicts(t *testing.T) {
	t.Parallel()

	_, err := executeRoot(t, testDeps(), "now", "Asia/Tokyo", "--pick")
	require.ErrorIs(t, err, errors.ErrFlagConflict)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}
