package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/clockface/internal/config"
	"github.com/mrz1836/clockface/internal/constants"
	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/flock"
	"github.com/mrz1836/clockface/internal/loop"
	"github.com/mrz1836/clockface/internal/signal"
	"github.com/mrz1836/clockface/internal/tui"
)

// terminalCheck reports whether stdout is a terminal. Tests replace it.
//
//nolint:gochecknoglobals // test seam
var terminalCheck = tui.IsTerminal

// runOptions contains the flags of the run command.
type runOptions struct {
	png      string
	interval time.Duration
	radius   float64
	timezone string
	duration time.Duration
}

// overrides turns the flags into configuration overrides. Zero values
// leave the configured value alone.
func (o *runOptions) overrides() *config.Config {
	return &config.Config{
		Clock: config.ClockConfig{
			Radius:   o.radius,
			Interval: o.interval,
			Timezone: o.timezone,
		},
	}
}

// AddRunCommand adds the run command to the root command.
func AddRunCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newRunCmd(flags))
}

// newRunCmd creates the run command.
func newRunCmd(flags *GlobalFlags) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the live clock",
		Long: `Show the analog clock and redraw it until you quit.

In a terminal the clock is drawn full screen; press q to quit, ? for help
and p to toggle the seconds bar. With --png the clock runs headless and
rewrites the image file on every redraw until interrupted.

Examples:
  clockface run
  clockface run --timezone Asia/Tokyo --radius 80
  clockface run --png clock.png --interval 1s
  clockface run --png clock.png --duration 10s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClock(cmd.Context(), cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.png, "png", "", "write frames to this PNG file instead of the terminal")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "redraw interval (default 100ms)")
	cmd.Flags().Float64Var(&opts.radius, "radius", 0, "face radius in surface units (default 100)")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "", "IANA timezone to show (default local)")
	cmd.Flags().DurationVar(&opts.duration, "duration", 0, "stop after this long (default: run until interrupted)")

	return cmd
}

// runClock loads the configuration and starts the terminal or PNG clock.
func runClock(ctx context.Context, cmd *cobra.Command, flags *GlobalFlags, opts *runOptions) error {
	if opts.duration < 0 {
		return errors.NewExitCode2Error(fmt.Errorf("%w: --duration must not be negative", errors.ErrValueOutOfRange))
	}

	logger := GetLogger()
	cfg, err := loadConfig(logger.WithContext(ctx), flags.ConfigFile, opts.overrides())
	if err != nil {
		return err
	}

	setup, err := newClockSetup(cfg)
	if err != nil {
		return err
	}

	if opts.png != "" {
		return runHeadless(ctx, cmd, flags, setup, opts)
	}
	return runTerminal(ctx, cmd, flags, setup, opts)
}

// runTerminal runs the Bubble Tea clock. It refuses to start without a
// terminal so nothing half-drawn reaches a pipe.
func runTerminal(ctx context.Context, cmd *cobra.Command, flags *GlobalFlags, setup *clockSetup, opts *runOptions) error {
	if !terminalCheck() {
		return fmt.Errorf("%w: %w", errors.ErrSurfaceUnavailable, errors.ErrNotTerminal)
	}

	// log lines would tear the frame; keep only the file
	logger := InitFileLogger(flags.Verbose, flags.Quiet)
	setLogger(logger)

	raster := setup.newRaster()
	c, err := setup.newClock(raster, true, logger)
	if err != nil {
		return err
	}

	sig := signal.NewHandler(ctx, signal.WithLogger(logger))
	defer sig.Stop()
	ctx = sig.Context()
	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	model := tui.NewClockModel(c, raster, tui.ClockConfig{
		Interval:     setup.cfg.Clock.Interval,
		ErrorPolicy:  setup.cfg.Clock.ErrorPolicy,
		Zone:         setup.zone(),
		Quiet:        flags.Quiet,
		ShowProgress: true,
		Colored:      tui.HasColorSupport(),
	}, logger.With().Str("component", "tui").Logger())

	logger.Info().
		Float64("radius", setup.cfg.Clock.Radius).
		Dur("interval", setup.cfg.Clock.Interval).
		Str("timezone", setup.loc.String()).
		Msg("starting terminal clock")

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		if !stderrors.Is(err, tea.ErrProgramKilled) || ctx.Err() == nil {
			return errors.Wrap(err, "terminal clock failed")
		}
	}

	logger.Info().Int("frames", model.Frames()).Int("failures", model.Failures()).Msg("terminal clock stopped")
	if setup.cfg.Clock.ErrorPolicy == constants.ErrorPolicyStop && model.Err() != nil {
		return model.Err()
	}
	return nil
}

// runHeadless rewrites the PNG file on every tick until interrupted, the
// duration elapses or, under the stop policy, a frame fails.
func runHeadless(ctx context.Context, cmd *cobra.Command, flags *GlobalFlags, setup *clockSetup, opts *runOptions) error {
	logger := GetLogger()
	out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

	img := setup.newImage()
	c, err := setup.newClock(img, false, logger)
	if err != nil {
		return err
	}

	lock, err := flock.Acquire(opts.png)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	sig := signal.NewHandler(ctx, signal.WithLogger(logger))
	defer sig.Stop()

	out.Info(fmt.Sprintf("Writing %s every %s. Press Ctrl+C to stop.", opts.png, setup.cfg.Clock.Interval))
	logger.Info().
		Str("path", opts.png).
		Dur("interval", setup.cfg.Clock.Interval).
		Str("error_policy", setup.cfg.Clock.ErrorPolicy).
		Msg("starting headless clock")

	h := loop.Start(sig.Context(), func() error {
		return stderrors.Join(c.Tick(), writePNG(img, opts.png))
	},
		loop.WithInterval(setup.cfg.Clock.Interval),
		loop.WithErrorPolicy(setup.cfg.Clock.ErrorPolicy),
		loop.WithLogger(logger.With().Str("component", "loop").Logger()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-h.Done()
		return loopResult(h.Err())
	})
	if opts.duration > 0 {
		g.Go(func() error {
			stopAfter(gctx, h, opts.duration, logger)
			return nil
		})
	}
	err = g.Wait()

	logger.Info().Int64("frames", h.Ticks()).Msg("headless clock stopped")
	if err != nil {
		return err
	}
	out.Success(fmt.Sprintf("Wrote %d frames to %s", h.Ticks(), opts.png))
	return nil
}

// stopAfter stops h once d has elapsed, unless the loop ends first.
func stopAfter(ctx context.Context, h *loop.Handle, d time.Duration, logger zerolog.Logger) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		logger.Debug().Dur("duration", d).Msg("duration elapsed, stopping clock")
		h.Stop()
	case <-h.Done():
	case <-ctx.Done():
	}
}

// loopResult drops the context errors of a loop ended by interrupt or timeout.
func loopResult(err error) error {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
