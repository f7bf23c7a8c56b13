package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/clockface/internal/config"
	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/tui"
)

// formRunner is an interface that matches huh.Form's Run method.
type formRunner interface {
	Run() error
}

// clockConfigForm runs the themed config form on the terminal.
type clockConfigForm struct {
	values *tui.ConfigFormValues
}

func (f clockConfigForm) Run() error { return tui.RunClockConfigForm(f.values) }

// Test seams for the interactive parts of config init.
//
//nolint:gochecknoglobals // test seams
var (
	newConfigForm = func(v *tui.ConfigFormValues) formRunner {
		return clockConfigForm{values: v}
	}
	confirmOverwrite = tui.Confirm
)

// configInitOptions contains the flags of the config init command.
type configInitOptions struct {
	global bool
	yes    bool
}

// configInitResult is the JSON form of a finished config init.
type configInitResult struct {
	Path   string         `json:"path"`
	Config *config.Config `json:"config"`
}

// AddConfigCommand adds the config command and its subcommands.
func AddConfigCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write configuration",
		Long: `Show the effective configuration or write a config file.

Configuration is layered, highest precedence first:
  1. Command-line flags
  2. CLOCKFACE_* environment variables (e.g. CLOCKFACE_CLOCK_RADIUS)
  3. Project config (.clockface/config.yaml)
  4. Global config (~/.clockface/config.yaml)
  5. Built-in defaults`,
	}

	cmd.AddCommand(newConfigShowCmd(flags))
	cmd.AddCommand(newConfigInitCmd(flags))
	root.AddCommand(cmd)
}

// newConfigShowCmd creates the 'config show' subcommand.
func newConfigShowCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the configuration clockface would run with.

Examples:
  clockface config show
  clockface config show -o json
  CLOCKFACE_CLOCK_RADIUS=60 clockface config show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}
}

// runConfigShow prints the effective configuration as YAML or JSON.
func runConfigShow(ctx context.Context, w io.Writer, flags *GlobalFlags) error {
	cfg, err := loadConfig(GetLogger().WithContext(ctx), flags.ConfigFile, nil)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return tui.NewOutput(w, OutputJSON).JSON(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	for _, src := range configSources(flags.ConfigFile) {
		_, _ = fmt.Fprintf(w, "# %s\n", src)
	}
	_, _ = w.Write(data)
	return nil
}

// configSources describes the files that fed the configuration.
func configSources(configFile string) []string {
	if configFile != "" {
		return []string{"config: " + configFile}
	}

	sources := make([]string, 0, 2)
	if path, err := config.GlobalConfigPath(); err == nil {
		sources = append(sources, "global: "+describeFile(path))
	}
	return append(sources, "project: "+describeFile(config.ProjectConfigPath()))
}

func describeFile(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path + " (not found)"
	}
	return path
}

// newConfigInitCmd creates the 'config init' subcommand.
func newConfigInitCmd(flags *GlobalFlags) *cobra.Command {
	opts := &configInitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file",
		Long: `Ask for the clock settings and write them to a config file.

Without --global the file is .clockface/config.yaml in the current
directory. With --yes the current values are written without prompting.

Examples:
  clockface config init
  clockface config init --global
  clockface config init --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd.Context(), cmd.OutOrStdout(), flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.global, "global", false, "write ~/.clockface/config.yaml instead of the project file")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "write the current values without prompting")

	return cmd
}

// runConfigInit collects the settings and saves them.
func runConfigInit(ctx context.Context, w io.Writer, flags *GlobalFlags, opts *configInitOptions) error {
	logger := GetLogger()

	path := config.ProjectConfigPath()
	if opts.global {
		var err error
		if path, err = config.GlobalConfigPath(); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(logger.WithContext(ctx), flags.ConfigFile, nil)
	if err != nil {
		return err
	}

	if !opts.yes {
		if !terminalCheck() {
			return fmt.Errorf("%w: use --yes to write the config without prompting", errors.ErrNotTerminal)
		}

		values := formValues(cfg)
		if err := newConfigForm(&values).Run(); err != nil {
			return err
		}
		if err := applyFormValues(cfg, values); err != nil {
			return errors.NewExitCode2Error(err)
		}

		if _, statErr := os.Stat(path); statErr == nil {
			overwrite, err := confirmOverwrite(fmt.Sprintf("Overwrite %s?", path), false)
			if err != nil {
				return err
			}
			if !overwrite {
				return errors.ErrMenuCanceled
			}
		}
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	logger.Info().Str("path", path).Msg("config written")

	out := tui.NewOutput(w, flags.Output)
	if flags.Output == OutputJSON {
		return out.JSON(configInitResult{Path: path, Config: cfg})
	}
	out.Success("Wrote " + path)
	return nil
}

// formValues fills the form with the current configuration.
func formValues(cfg *config.Config) tui.ConfigFormValues {
	return tui.ConfigFormValues{
		Radius:      strconv.FormatFloat(cfg.Clock.Radius, 'f', -1, 64),
		Interval:    cfg.Clock.Interval.String(),
		Accent:      cfg.Style.Accent,
		Timezone:    cfg.Clock.Timezone,
		ErrorPolicy: cfg.Clock.ErrorPolicy,
	}
}

// applyFormValues copies the form answers into cfg and validates the result.
func applyFormValues(cfg *config.Config, v tui.ConfigFormValues) error {
	radius, err := strconv.ParseFloat(strings.TrimSpace(v.Radius), 64)
	if err != nil {
		return fmt.Errorf("%w: radius %q", errors.ErrConfigInvalidClock, v.Radius)
	}
	interval, err := time.ParseDuration(strings.TrimSpace(v.Interval))
	if err != nil {
		return fmt.Errorf("%w: interval %q", errors.ErrConfigInvalidClock, v.Interval)
	}

	cfg.Clock.Radius = radius
	cfg.Clock.Interval = interval
	cfg.Clock.Timezone = strings.TrimSpace(v.Timezone)
	cfg.Clock.ErrorPolicy = v.ErrorPolicy
	cfg.Style.Accent = v.Accent

	return config.Validate(cfg)
}
