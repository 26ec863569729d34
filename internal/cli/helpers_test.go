package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/worldclock/internal/clock"
	"github.com/mrz1836/worldclock/internal/errors"
	"github.com/mrz1836/worldclock/internal/tui"
)

// noon is 2026-02-15 12:00 UTC: 21:00 in Tokyo, 07:00 in New York.
var noon = time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // test fixture

const testConfig = `zones:
  - local
  - America/New_York
  - Europe/London
  - Asia/Tokyo
`

// testDeps returns deps that never touch the terminal or the user's home.
func testDeps() *deps {
	return &deps{
		clock:      clock.NewFixed(noon),
		isTerminal: func() bool { return false },
		pick: func(string, []string, string) (string, error) {
			return "", errors.ErrInteractiveRequired
		},
		runTUI:    func(context.Context, *tui.App) error { return nil },
		logWriter: &bytes.Buffer{},
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// executeRoot runs the root command with args and returns stdout.
func executeRoot(t *testing.T, d *deps, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmdWithDeps(&GlobalFlags{}, BuildInfo{Version: "test"}, d)
	return executeCmd(cmd, args...)
}

func executeCmd(cmd *cobra.Command, args ...string) (string, error) {
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
