package cli

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"

	"github.com/mrz1836/worldclock/internal/config"
	"github.com/mrz1836/worldclock/internal/ctxutil"
	"github.com/mrz1836/worldclock/internal/display"
	"github.com/mrz1836/worldclock/internal/errors"
	"github.com/mrz1836/worldclock/internal/timefmt"
	"github.com/mrz1836/worldclock/internal/tui"
	"github.com/mrz1836/worldclock/internal/zone"
)

// zoneResolveLimit bounds concurrent zone lookups.
const zoneResolveLimit = 8

// AddZonesCommand adds the zones command to the root command.
func AddZonesCommand(root *cobra.Command, global *GlobalFlags, d *deps) {
	root.AddCommand(&cobra.Command{
		Use:   "zones [filter]",
		Short: "List the configured timezones with their current time",
		Long: `List every timezone offered by the clock's selection modal, with its
flag, city, current time, UTC offset and how much of its day has passed.

The optional filter matches the identifier or city, ignoring case.

Examples:
  worldclock zones          # all configured zones
  worldclock zones america  # only zones under America/
  worldclock zones -o json  # machine-readable`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			return runZones(cmd.Context(), cmd.OutOrStdout(), filter, global, d)
		},
	})
}

func runZones(ctx context.Context, w io.Writer, filter string, global *GlobalFlags, d *deps) error {
	if err := ctxutil.Check(ctx, "zones"); err != nil {
		return err
	}

	cfg, err := config.Load(ctx, global.ConfigPath)
	if err != nil {
		return err
	}

	ids := filterZones(cfg.Zones, filter)
	if len(ids) == 0 {
		return errors.Wrapf(errors.ErrNoZonesMatched, "filter %q", filter)
	}

	frames, err := resolveZones(ctx, timefmt.NewFormatter(d.clock), ids)
	if err != nil {
		return err
	}

	out := tui.NewOutput(w, global.Output)
	if global.Output == OutputJSON {
		return out.JSON(frames)
	}

	bar := tui.NewDayBar(tui.DefaultDayBarWidth)
	rows := make([][]string, 0, len(frames))
	for _, f := range frames {
		rows = append(rows, []string{f.Zone, display.LabelFor(f.Zone).String(), f.Time, f.Offset, bar.Render(f.DayProgress)})
	}
	out.Table([]string{"ZONE", "LABEL", "TIME", "OFFSET", "DAY"}, rows)
	return nil
}

// filterZones keeps the ids whose identifier or city contains filter,
// compared under Unicode case folding. An empty filter keeps everything.
func filterZones(ids []string, filter string) []string {
	if filter == "" {
		return ids
	}
	fold := cases.Fold()
	needle := fold.String(filter)

	matched := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.Contains(fold.String(id), needle) || strings.Contains(fold.String(zone.City(id)), needle) {
			matched = append(matched, id)
		}
	}
	return matched
}

// resolveZones snapshots every id concurrently and returns the frames in
// input order.
func resolveZones(ctx context.Context, svc timefmt.Service, ids []string) ([]display.Frame, error) {
	frames := make([]display.Frame, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(zoneResolveLimit)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := ctxutil.Canceled(gctx); err != nil {
				return err
			}
			f, err := display.Snapshot(svc, id)
			if err != nil {
				return errors.Wrapf(err, "resolve %s", id)
			}
			frames[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}
