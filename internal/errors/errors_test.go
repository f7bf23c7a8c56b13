package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cferrors "github.com/mrz1836/clockface/internal/errors"
)

// testError is a custom error type used to test default branches
// in UserMessage and Actionable without matching any sentinel.
type testError struct {
	msg string
}

func (e testError) Error() string {
	return e.msg
}

func sentinels() []error {
	return []error{
		cferrors.ErrSurfaceUnavailable,
		cferrors.ErrDrawFailed,
		cferrors.ErrNotTerminal,
		cferrors.ErrConfigNil,
		cferrors.ErrConfigInvalidClock,
		cferrors.ErrConfigInvalidSurface,
		cferrors.ErrConfigInvalidStyle,
		cferrors.ErrInvalidOutputFormat,
		cferrors.ErrInvalidTime,
		cferrors.ErrInvalidColor,
		cferrors.ErrEmptyValue,
		cferrors.ErrValueOutOfRange,
		cferrors.ErrMenuCanceled,
		cferrors.ErrOutputLocked,
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	all := sentinels()
	for i, err1 := range all {
		for j, err2 := range all {
			if i == j {
				assert.ErrorIs(t, err1, err2)
			} else {
				assert.NotErrorIs(t, err1, err2)
			}
		}
	}
}

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{cferrors.ErrSurfaceUnavailable, "drawing surface unavailable"},
		{cferrors.ErrDrawFailed, "draw failed"},
		{cferrors.ErrInvalidTime, "invalid time"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestWrap_PreservesErrorChain(t *testing.T) {
	for _, sentinel := range sentinels() {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := cferrors.Wrap(sentinel, "context message")

			require.Error(t, wrapped)
			require.ErrorIs(t, wrapped, sentinel)
			assert.Contains(t, wrapped.Error(), "context message")
			assert.Contains(t, wrapped.Error(), sentinel.Error())
		})
	}
}

func TestWrap_NilError(t *testing.T) {
	require.NoError(t, cferrors.Wrap(nil, "should not appear"))
	require.NoError(t, cferrors.Wrapf(nil, "should not appear %d", 1))
}

func TestWrapf_FormatsMessage(t *testing.T) {
	wrapped := cferrors.Wrapf(cferrors.ErrDrawFailed, "draw at %.1f degrees", 105.0)

	require.ErrorIs(t, wrapped, cferrors.ErrDrawFailed)
	assert.Equal(t, "draw at 105.0 degrees: draw failed", wrapped.Error())
}

func TestExitCode2Error(t *testing.T) {
	exitErr := cferrors.NewExitCode2Error(cferrors.ErrInvalidTime)

	assert.True(t, cferrors.IsExitCode2Error(exitErr))
	assert.True(t, cferrors.IsExitCode2Error(fmt.Errorf("outer: %w", exitErr)))
	assert.False(t, cferrors.IsExitCode2Error(cferrors.ErrInvalidTime))
	require.ErrorIs(t, exitErr, cferrors.ErrInvalidTime)
	assert.Equal(t, cferrors.ErrInvalidTime.Error(), exitErr.Error())
}

func TestUserMessage(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Empty(t, cferrors.UserMessage(nil))
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := cferrors.Wrap(cferrors.ErrSurfaceUnavailable, "startup")
		assert.Contains(t, cferrors.UserMessage(err), "clock was not started")
	})

	t.Run("unknown error falls back to message", func(t *testing.T) {
		assert.Equal(t, "boom", cferrors.UserMessage(testError{msg: "boom"}))
	})
}

func TestActionable(t *testing.T) {
	msg, action := cferrors.Actionable(cferrors.ErrInvalidTime)
	assert.NotEmpty(t, msg)
	assert.Contains(t, action, "HH:MM:SS")

	msg, action = cferrors.Actionable(cferrors.ErrMenuCanceled)
	assert.Equal(t, "Canceled.", msg)
	assert.Empty(t, action)

	msg, action = cferrors.Actionable(nil)
	assert.Empty(t, msg)
	assert.Empty(t, action)
}
