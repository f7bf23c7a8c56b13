package tui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/mrz1836/clockface/internal/clock"
	"github.com/mrz1836/clockface/internal/config"
	"github.com/mrz1836/clockface/internal/constants"
	cferrors "github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/surface"
)

// Form layout constants.
const (
	// TerminalEdgeMargin is the gap kept between the form and the terminal edge.
	TerminalEdgeMargin = 4

	// MinFormWidth is the narrowest usable form.
	MinFormWidth = 40

	// DefaultFormWidth is used when the terminal width is unknown.
	DefaultFormWidth = 60
)

// accentChoices are offered for the second hand color.
//
//nolint:gochecknoglobals // fixed option list
var accentChoices = []string{"pink", "hotpink", "red", "crimson", "orange", "gold", "lime", "cyan", "blue", "magenta"}

// ConfigFormValues holds the answers of the config form as the text the
// user typed. The caller converts them back to configuration values.
type ConfigFormValues struct {
	Radius      string
	Interval    string
	Accent      string
	Timezone    string
	ErrorPolicy string
}

// ClockTheme returns the huh theme built from the styles in styles.go.
func ClockTheme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorPrimary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorPrimary)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(ColorSuccess)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)

	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(ColorMuted)

	return t
}

// NewClockConfigForm builds the form used by "config init". Answers are
// written into v; its current contents are the defaults shown.
func NewClockConfigForm(v *ConfigFormValues) *huh.Form {
	accents := make([]huh.Option[string], 0, len(accentChoices)+1)
	if v.Accent != "" && !containsFold(accentChoices, v.Accent) {
		accents = append(accents, huh.NewOption(v.Accent+" (current)", v.Accent))
	}
	for _, name := range accentChoices {
		accents = append(accents, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Face radius").
				Description(fmt.Sprintf("Surface units, %.0f to %.0f.", config.MinRadius, config.MaxRadius)).
				Value(&v.Radius).
				Validate(ValidateRadius),
			huh.NewInput().
				Title("Redraw interval").
				Description("A Go duration such as 100ms or 1s.").
				Value(&v.Interval).
				Validate(ValidateInterval),
			huh.NewSelect[string]().
				Title("Second hand color").
				Options(accents...).
				Value(&v.Accent),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Timezone").
				Description("IANA name such as Europe/Berlin. Empty uses the local zone.").
				Value(&v.Timezone).
				Validate(ValidateTimezone),
			huh.NewSelect[string]().
				Title("When a frame fails to draw").
				Options(
					huh.NewOption("Log it and keep ticking", constants.ErrorPolicyContinue),
					huh.NewOption("Stop the clock", constants.ErrorPolicyStop),
				).
				Value(&v.ErrorPolicy),
		),
	)
}

// RunClockConfigForm shows the config form. It returns
// errors.ErrNotTerminal without a terminal and errors.ErrMenuCanceled when
// the user aborts.
func RunClockConfigForm(v *ConfigFormValues) error {
	form := NewClockConfigForm(v)
	return runForm(form, "config form failed")
}

// Confirm asks a yes or no question.
func Confirm(message string, defaultYes bool) (bool, error) {
	confirmed := defaultYes
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))
	if err := runForm(form, "confirm prompt failed"); err != nil {
		return false, err
	}
	return confirmed, nil
}

// runForm applies the theme and width and runs form.
func runForm(form *huh.Form, errorContext string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return cferrors.ErrNotTerminal
	}

	_, accessible := os.LookupEnv("ACCESSIBLE")
	form = form.
		WithTheme(ClockTheme()).
		WithWidth(adaptWidth(GetTerminalWidth())).
		WithAccessible(accessible).
		WithShowHelp(true)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return cferrors.ErrMenuCanceled
		}
		return fmt.Errorf("%s: %w", errorContext, err)
	}
	return nil
}

// adaptWidth fits the form into a terminal of the given width.
func adaptWidth(terminalWidth int) int {
	if terminalWidth <= 0 {
		return DefaultFormWidth
	}
	available := terminalWidth - TerminalEdgeMargin
	if available < MinFormWidth {
		return MinFormWidth
	}
	return min(available, DefaultFormWidth)
}

// ValidateRadius accepts a number within the radius bounds.
func ValidateRadius(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return cferrors.ErrEmptyValue
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number: %w", s, cferrors.ErrValueOutOfRange)
	}
	if r < config.MinRadius || r > config.MaxRadius {
		return fmt.Errorf("radius must be between %.0f and %.0f: %w",
			config.MinRadius, config.MaxRadius, cferrors.ErrValueOutOfRange)
	}
	return nil
}

// ValidateInterval accepts a duration within the tick interval bounds.
func ValidateInterval(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return cferrors.ErrEmptyValue
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%q is not a duration: %w", s, cferrors.ErrValueOutOfRange)
	}
	if d < constants.MinTickInterval || d > constants.MaxTickInterval {
		return fmt.Errorf("interval must be between %s and %s: %w",
			constants.MinTickInterval, constants.MaxTickInterval, cferrors.ErrValueOutOfRange)
	}
	return nil
}

// ValidateTimezone accepts an IANA zone name or the empty string.
func ValidateTimezone(s string) error {
	if _, err := clock.LoadLocation(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", s, cferrors.ErrValueOutOfRange)
	}
	return nil
}

// ValidateColor accepts anything surface.ParseColor does.
func ValidateColor(s string) error {
	_, err := surface.ParseColor(s)
	return err
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
