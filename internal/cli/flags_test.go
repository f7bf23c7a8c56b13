package cli

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/clockface/internal/errors"
)

func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   bool
	}{
		{"text", true},
		{"json", true},
		{"yaml", false},
		{"", false},
		{"JSON", false},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsValidOutputFormat(tc.format))
		})
	}
}

func TestValidOutputFormats(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{OutputText, OutputJSON}, ValidOutputFormats())
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", stderrors.New("boom"), ExitError},
		{"surface unavailable", fmt.Errorf("%w: %w", errors.ErrSurfaceUnavailable, errors.ErrNotTerminal), ExitError},
		{"draw failed", errors.ErrDrawFailed, ExitError},
		{"invalid output format", fmt.Errorf("%w: %q", errors.ErrInvalidOutputFormat, "xml"), ExitInvalidInput},
		{"invalid time", fmt.Errorf("%w: %q", errors.ErrInvalidTime, "25:00"), ExitInvalidInput},
		{"exit code 2 wrapper", errors.NewExitCode2Error(errors.ErrConfigInvalidClock), ExitInvalidInput},
		{"unknown flag", stderrors.New("unknown flag: --nope"), ExitInvalidInput},
		{"unknown shorthand", stderrors.New("unknown shorthand flag: 'z' in -z"), ExitInvalidInput},
		{"missing argument", stderrors.New("flag needs an argument: --at"), ExitInvalidInput},
		{"bad flag value", stderrors.New(`invalid argument "x" for "--radius" flag`), ExitInvalidInput},
		{"flag group", stderrors.New("if any flags in the group [verbose quiet] are set none of the others can be"), ExitInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCodeForError(tc.err))
		})
	}
}
