package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/face"
	"github.com/mrz1836/clockface/internal/flock"
	"github.com/mrz1836/clockface/internal/surface"
	"github.com/mrz1836/clockface/internal/tui"
)

// frameOptions contains the flags of the frame command.
type frameOptions struct {
	at  string
	png string
}

// frameResult is the JSON form of one frame.
type frameResult struct {
	Time  string       `json:"time"`
	Hands []face.Hand  `json:"hands"`
	Marks []face.Mark  `json:"marks"`
	Ops   []surface.Op `json:"ops"`
	PNG   string       `json:"png,omitempty"`
}

// AddFrameCommand adds the frame command to the root command.
func AddFrameCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newFrameCmd(flags))
}

// newFrameCmd creates the frame command.
func newFrameCmd(flags *GlobalFlags) *cobra.Command {
	opts := &frameOptions{}

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Draw a single frame",
		Long: `Draw one frame of the clock and exit.

Text output prints the face as characters. JSON output lists the hand
angles, the tick marks and every draw call of the frame.

Examples:
  clockface frame
  clockface frame --at 06:30:45
  clockface frame --at 10:10 --png ten-past-ten.png
  clockface frame -o json | jq '.hands'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFrame(cmd.Context(), cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.at, "at", "", "time to draw as HH:MM:SS or HH:MM (default now)")
	cmd.Flags().StringVar(&opts.png, "png", "", "also write the frame to this PNG file")

	return cmd
}

// runFrame draws the requested targets concurrently, each on its own
// clock and surface.
func runFrame(ctx context.Context, cmd *cobra.Command, flags *GlobalFlags, opts *frameOptions) error {
	logger := GetLogger()
	cfg, err := loadConfig(logger.WithContext(ctx), flags.ConfigFile, nil)
	if err != nil {
		return err
	}
	setup, err := newClockSetup(cfg)
	if err != nil {
		return err
	}

	at := setup.now()
	if opts.at != "" {
		if at, err = parseClockTime(opts.at); err != nil {
			return err
		}
	}
	hour, minute, second := at.Hour(), at.Minute(), at.Second()
	asJSON := flags.Output == OutputJSON

	if opts.png != "" {
		lock, lockErr := flock.Acquire(opts.png)
		if lockErr != nil {
			return lockErr
		}
		defer func() { _ = lock.Release() }()
	}

	var (
		text   string
		result frameResult
		g      errgroup.Group
	)

	if !asJSON {
		g.Go(func() error {
			raster := setup.newRaster()
			c, err := setup.newClock(raster, true, logger)
			if err != nil {
				return err
			}
			c.SetTime(hour, minute, second)
			err = c.Frame()
			text = tui.RenderRaster(raster, terminalCheck() && tui.HasColorSupport())
			return err
		})
	} else {
		g.Go(func() error {
			rec := surface.NewRecorder(cfg.Surface.Width, cfg.Surface.Height)
			c, err := setup.newClock(rec, false, logger)
			if err != nil {
				return err
			}
			c.SetTime(hour, minute, second)
			err = c.Frame()
			result.Hands = c.Hands()
			result.Marks = face.Marks()
			result.Ops = rec.Ops()
			return err
		})
	}

	if opts.png != "" {
		g.Go(func() error {
			img := setup.newImage()
			c, err := setup.newClock(img, false, logger)
			if err != nil {
				return err
			}
			c.SetTime(hour, minute, second)
			if err := c.Frame(); err != nil {
				return err
			}
			return writePNG(img, opts.png)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Debug().
		Int("hour", hour).
		Int("minute", minute).
		Int("second", second).
		Str("png", opts.png).
		Msg("frame drawn")

	out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)
	if asJSON {
		result.Time = fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
		result.PNG = opts.png
		return out.JSON(result)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
	if opts.png != "" {
		out.Success("Wrote " + opts.png)
	}
	return nil
}

// parseClockTime accepts HH:MM:SS or HH:MM in 24-hour form.
func parseClockTime(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q, expected HH:MM:SS", errors.ErrInvalidTime, s)
}

// writePNG encodes img next to path and renames it into place, so a
// viewer never reads a half-written frame.
func writePNG(img *surface.Image, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".clockface-*.png")
	if err != nil {
		return errors.Wrap(err, "failed to create frame file")
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := img.EncodePNG(tmp); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "failed to encode frame")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to write frame")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "failed to replace frame file")
	}
	return nil
}
