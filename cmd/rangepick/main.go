package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/rangepick"
	"github.com/iw2rmb/rangepick/internal/logging"
	"github.com/iw2rmb/rangepick/internal/store"
	"github.com/iw2rmb/rangepick/mask"
	"github.com/iw2rmb/rangepick/picker"
)

type options struct {
	use24h   bool
	useAMPM  bool
	start    string
	end      string
	history  string
	debug    string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "rangepick",
		Short:        "Pick a date-time range in the terminal",
		SilenceUsage: true,
		Version:      rangepick.Version(),
		Example: strings.TrimSpace(`
  # Pick a range, printing "start<TAB>end" in RFC 3339 on enter
  rangepick

  # Start from known values in 24-hour mode
  rangepick --24h --start "05/15/2023 09:00" --end "05/15/2023 17:30"

  # Remember applied ranges and preload the last one
  rangepick --history ~/.local/state/rangepick/history.sqlite
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if cmd.Flags().Changed("24h") {
				opts.useAMPM = !opts.use24h
			}
			return run(ctx, cmd.OutOrStdout(), *opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.useAMPM, "ampm", true, "use the 12-hour layout with an AM/PM section")
	f.BoolVar(&opts.use24h, "24h", false, "use the 24-hour layout")
	f.StringVar(&opts.start, "start", "", `initial start, "MM/dd/yyyy hh:mm[ AM|PM]"`)
	f.StringVar(&opts.end, "end", "", `initial end, "MM/dd/yyyy hh:mm[ AM|PM]"`)
	f.StringVar(&opts.history, "history", "", "SQLite file recording applied ranges")
	f.StringVar(&opts.debug, "debug", "", "write logs to this file")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level for --debug: debug, info, warn, error")
	cmd.MarkFlagsMutuallyExclusive("ampm", "24h")

	return cmd
}

func run(ctx context.Context, out io.Writer, opts options) error {
	cleanup, err := logging.SetupLogging(opts.debug, logging.ParseLevel(opts.logLevel))
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer cleanup()

	cfg := picker.RangeConfig{UseAMPM: opts.useAMPM}
	if cfg.StartDate, cfg.StartTime, err = parseEndpoint("start", opts.start); err != nil {
		return err
	}
	if cfg.EndDate, cfg.EndTime, err = parseEndpoint("end", opts.end); err != nil {
		return err
	}

	var history *store.History
	if opts.history != "" {
		history, err = store.Open(ctx, opts.history)
		if err != nil {
			return err
		}
		defer history.Close()

		if opts.start == "" && opts.end == "" {
			preloadLatest(ctx, history, &cfg)
		}
	}

	if cb, ok := newSystemClipboard(); ok {
		cfg.Clipboard = cb
	}

	p := tea.NewProgram(newApp(picker.NewRange(cfg)), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	a, ok := final.(app)
	if !ok || a.result == nil {
		slog.Info("picker closed without a range")
		return nil
	}

	r := *a.result
	if history != nil {
		id, err := history.Save(ctx, r)
		if err != nil {
			return err
		}
		slog.Info("saved range", "id", id)
	}
	_, err = fmt.Fprintf(out, "%s\t%s\n", r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339))
	return err
}

// parseEndpoint decodes a --start/--end value. Empty input leaves the
// endpoint blank; a time without a date is rejected.
func parseEndpoint(name, s string) (*mask.Date, *mask.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil, nil
	}
	d, t := mask.ParseText(s)
	if d == nil {
		return nil, nil, fmt.Errorf("invalid --%s %q: want MM/dd/yyyy hh:mm[ AM|PM]", name, s)
	}
	if t == nil && len(s) > len("MM/dd/yyyy") {
		return nil, nil, fmt.Errorf("invalid --%s %q: bad time of day", name, s)
	}
	return d, t, nil
}

func preloadLatest(ctx context.Context, history *store.History, cfg *picker.RangeConfig) {
	last, err := history.Latest(ctx)
	if errors.Is(err, store.ErrNoHistory) {
		return
	}
	if err != nil {
		slog.Warn("load latest range", "err", err)
		return
	}
	sd, st := mask.DateOf(last.Start), mask.TimeOf(last.Start)
	ed, et := mask.DateOf(last.End), mask.TimeOf(last.End)
	cfg.StartDate, cfg.StartTime = &sd, &st
	cfg.EndDate, cfg.EndTime = &ed, &et
	slog.Debug("preloaded range", "id", last.ID, "start", last.Start, "end", last.End)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
