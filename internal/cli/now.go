package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/worldclock/internal/config"
	"github.com/mrz1836/worldclock/internal/ctxutil"
	"github.com/mrz1836/worldclock/internal/display"
	"github.com/mrz1836/worldclock/internal/errors"
	"github.com/mrz1836/worldclock/internal/timefmt"
	"github.com/mrz1836/worldclock/internal/tui"
	"github.com/mrz1836/worldclock/internal/zone"
)

// NowFlags holds flags specific to the now command.
type NowFlags struct {
	// Pick selects the zone from an interactive list.
	Pick bool
}

// AddNowCommand adds the now command to the root command.
func AddNowCommand(root *cobra.Command, global *GlobalFlags, d *deps) {
	flags := &NowFlags{}
	cmd := &cobra.Command{
		Use:   "now [zone]",
		Short: "Print the current time once",
		Long: `Print the current time, date and label for a timezone and exit.

The zone is "local" (the default) or an IANA identifier such as Asia/Tokyo.

Examples:
  worldclock now                    # local time
  worldclock now Europe/London      # time in London
  worldclock now --pick             # choose from the configured zones
  worldclock now Asia/Tokyo -o json # machine-readable`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(cmd.Context(), cmd.OutOrStdout(), args, global, flags, d)
		},
	}
	cmd.Flags().BoolVar(&flags.Pick, "pick", false, "choose the zone from the configured list")
	root.AddCommand(cmd)
}

func runNow(ctx context.Context, w io.Writer, args []string, global *GlobalFlags, flags *NowFlags, d *deps) error {
	if err := ctxutil.Check(ctx, "now"); err != nil {
		return err
	}

	id := zone.Local
	if len(args) == 1 {
		id = args[0]
	}

	if flags.Pick {
		if len(args) == 1 {
			return errors.NewExitCode2Error(errors.Wrap(errors.ErrFlagConflict, "--pick with a zone argument"))
		}
		cfg, err := config.Load(ctx, global.ConfigPath)
		if err != nil {
			return err
		}
		picked, err := d.pick("Select Timezone", cfg.Zones, zone.Local)
		if stderrors.Is(err, errors.ErrMenuCanceled) {
			tui.NewOutput(w, global.Output).Info(errors.UserMessage(err))
			return nil
		}
		if err != nil {
			return err
		}
		id = picked
	}

	if !zone.IsValidID(id) {
		return errors.NewExitCode2Error(errors.Wrapf(errors.ErrInvalidTimezone, "%q", id))
	}

	frame, err := display.Snapshot(timefmt.NewFormatter(d.clock), id)
	if err != nil {
		if stderrors.Is(err, errors.ErrUnknownTimezone) {
			return errors.NewExitCode2Error(err)
		}
		return errors.Wrap(err, "resolve time")
	}

	logger := GetLogger()
	logger.Debug().Str("zone", id).Str("time", frame.Time).Msg("snapshot")

	if global.Output == OutputJSON {
		return tui.NewOutput(w, OutputJSON).JSON(frame)
	}
	return writeFrame(w, frame)
}

// writeFrame prints a frame as plain lines, easy to cut or grep.
func writeFrame(w io.Writer, f display.Frame) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s %s\n",
		display.LabelFor(f.Zone).String(), f.Time, f.Date, f.Abbrev, f.Offset)
	return err
}
