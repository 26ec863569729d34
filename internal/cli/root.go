// Package cli provides the command-line interface for worldclock.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/mrz1836/worldclock/internal/clock"
	"github.com/mrz1836/worldclock/internal/config"
	"github.com/mrz1836/worldclock/internal/errors"
	"github.com/mrz1836/worldclock/internal/logging"
	"github.com/mrz1836/worldclock/internal/timefmt"
	"github.com/mrz1836/worldclock/internal/tui"
	"github.com/mrz1836/worldclock/internal/zone"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the logger initialized in PersistentPreRunE.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// It MUST only be called after the root command's PersistentPreRunE has
// executed; before that it returns a zero-value logger.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

func setLogger(l zerolog.Logger) {
	globalLoggerMu.Lock()
	globalLogger = l
	globalLoggerMu.Unlock()
}

// deps are the process-level collaborators of the commands.
type deps struct {
	clock clock.Clock
	// isTerminal reports whether stdout is a terminal.
	isTerminal func() bool
	pick       func(title string, zones []string, initial string) (string, error)
	runTUI     func(ctx context.Context, app *tui.App) error
	// logFile returns the rotating log file path; "" disables the file.
	logFile func() (string, error)
	// logWriter, when set, receives all logs as JSON instead of the console.
	logWriter io.Writer
}

func defaultDeps() *deps {
	return &deps{
		clock: clock.RealClock{},
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // fd fits in int
		},
		pick: tui.PickZone,
		runTUI: func(ctx context.Context, app *tui.App) error {
			return tui.Run(ctx, app)
		},
		logFile: config.LogFilePath,
	}
}

// newRootCmd creates the root command for the worldclock CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	return newRootCmdWithDeps(flags, info, defaultDeps())
}

func newRootCmdWithDeps(flags *GlobalFlags, info BuildInfo, d *deps) *cobra.Command {
	v := viper.New()
	var logCloser io.Closer

	cmd := &cobra.Command{
		Use:   "worldclock",
		Short: "World Clock - the time anywhere, right in your terminal",
		Long: `World Clock shows the current time, date and timezone in a full-screen
terminal view that refreshes every second.

Press t or enter to choose another timezone, q to quit.

Features:
  • Live clock for the local zone or any configured IANA zone
  • Country flag and city label for the selected zone
  • One-shot and scripted output with 'now' and 'zones'`,
		Version: formatVersion(info),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClock(cmd.Context(), flags, d)
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			resolveGlobalFlags(v, flags)

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			// The clock owns the screen, so its logs only go to the file.
			logger, closer := initLogger(flags, d, cmd != cmd.Root())
			logCloser = closer
			setLogger(logger)
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logCloser != nil {
				_ = logCloser.Close()
			}
		},
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	AddNowCommand(cmd, flags, d)
	AddZonesCommand(cmd, flags, d)
	AddConfigCommand(cmd, flags)

	return cmd
}

func initLogger(flags *GlobalFlags, d *deps, console bool) (zerolog.Logger, io.Closer) {
	opts := logging.Options{Verbose: flags.Verbose, Quiet: flags.Quiet, Console: console}
	if d.logWriter != nil {
		return logging.InitWithWriter(opts, d.logWriter), nil
	}

	if d.logFile != nil {
		if path, err := d.logFile(); err == nil {
			opts.LogFile = path
		}
	}
	logger, closer, err := logging.Init(opts)
	if err != nil {
		logger.Warn().Err(err).Msg("log file unavailable")
	}
	return logger, closer
}

// runClock runs the full-screen clock until the user quits or ctx ends.
func runClock(ctx context.Context, flags *GlobalFlags, d *deps) error {
	if !d.isTerminal() {
		return errors.NewExitCode2Error(
			errors.Wrap(errors.ErrInteractiveRequired, "the clock needs a terminal; use 'worldclock now' instead"))
	}

	cfg, err := config.Load(ctx, flags.ConfigPath)
	if err != nil {
		return err
	}

	logger := GetLogger()
	app := tui.NewApp(zone.NewState(), timefmt.NewFormatter(d.clock), logger, appConfig(cfg, flags.Quiet))

	logger.Info().Int("zones", len(cfg.Zones)).Msg("clock started")
	err = d.runTUI(ctx, app)
	logger.Info().Err(err).Msg("clock stopped")
	return err
}

// appConfig maps the loaded configuration onto the TUI settings.
func appConfig(cfg *config.Config, quiet bool) tui.AppConfig {
	return tui.AppConfig{
		RefreshInterval: cfg.Clock.RefreshInterval,
		PulseDuration:   cfg.Clock.PulseDuration,
		Modal: tui.ModalConfig{
			OpenFlash:    cfg.Modal.OpenFlash,
			CommitDelay:  cfg.Modal.CommitDelay,
			ConfirmReset: cfg.Modal.ConfirmReset,
			Rows:         cfg.Modal.Rows,
		},
		Toast: tui.ToastConfig{
			EnterDelay:   cfg.Notifications.EnterDelay,
			VisibleFor:   cfg.Notifications.VisibleFor,
			ExitDuration: cfg.Notifications.ExitDuration,
		},
		Zones:         cfg.Zones,
		Notifications: cfg.Notifications.Enabled,
		BellEnabled:   cfg.Notifications.Bell,
		Quiet:         quiet,
	}
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are reported on stderr in the selected output format.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	return execute(ctx, cmd, flags)
}

func execute(ctx context.Context, cmd *cobra.Command, flags *GlobalFlags) error {
	cmd.SilenceErrors = true
	err := cmd.ExecuteContext(ctx)
	if err != nil && ctx.Err() == nil {
		tui.NewOutput(cmd.ErrOrStderr(), flags.Output).Error(err)
	}
	return err
}
