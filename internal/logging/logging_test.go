package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    zerolog.Level
	}{
		{"default", false, false, zerolog.InfoLevel},
		{"verbose", true, false, zerolog.DebugLevel},
		{"quiet", false, true, zerolog.WarnLevel},
		{"verbose wins", true, true, zerolog.DebugLevel},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Level(tc.verbose, tc.quiet))
		})
	}
}

func TestInitWithWriter_FieldNames(t *testing.T) {
	var buf bytes.Buffer
	logger := InitWithWriter(Options{}, &buf)

	logger.Info().Str("zone", "Asia/Tokyo").Msg("timezone updated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "timezone updated", entry["event"])
	assert.Equal(t, "Asia/Tokyo", entry["zone"])
	assert.Contains(t, entry, "ts")
}

func TestInitWithWriter_QuietDropsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := InitWithWriter(Options{Quiet: true}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInit_FileOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "worldclock.log")

	logger, closer, err := Init(Options{LogFile: path})
	require.NoError(t, err)
	logger.Error().Str("zone", "Asia/Tokyo").Msg("error updating clock")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path) //nolint:gosec // test-controlled path
	require.NoError(t, err)
	assert.Contains(t, string(data), "error updating clock")
}

func TestInit_NoOutputs(t *testing.T) {
	logger, closer, err := Init(Options{})
	require.NoError(t, err)
	require.NotNil(t, closer)
	assert.NotPanics(t, func() { logger.Info().Msg("discarded") })
	assert.NoError(t, closer.Close())
}

func TestInit_UnwritableLogDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, closer, err := Init(Options{LogFile: filepath.Join(blocker, "logs", "worldclock.log")})
	require.Error(t, err)
	assert.NotNil(t, closer)
}
