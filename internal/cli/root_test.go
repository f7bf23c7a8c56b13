package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/clockface/internal/errors"
)

func TestRootCmd_Help(t *testing.T) {
	isolate(t)

	stdout, _, err := executeCmd(t, "--help")
	require.NoError(t, err)

	for _, want := range []string{"analog clock", "run", "frame", "config", "--output", "--verbose", "--quiet", "--config", "--version"} {
		assert.Contains(t, stdout, want)
	}
}

func TestRootCmd_NoArgsShowsHelp(t *testing.T) {
	isolate(t)

	stdout, _, err := executeCmd(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Available Commands")
}

func TestRootCmd_Version(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		info           BuildInfo
		expectContains []string
	}{
		{
			name:           "full version info",
			info:           BuildInfo{Version: "1.0.0", Commit: "abc1234", Date: "2026-01-01"},
			expectContains: []string{"1.0.0", "abc1234", "2026-01-01"},
		},
		{
			name:           "default dev version",
			info:           BuildInfo{},
			expectContains: []string{"dev", "none", "unknown"},
		},
		{
			name:           "partial version info",
			info:           BuildInfo{Version: "2.0.0-beta"},
			expectContains: []string{"2.0.0-beta", "none", "unknown"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cmd := newRootCmd(&GlobalFlags{}, tc.info)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{"--version"})

			require.NoError(t, cmd.Execute())
			for _, expected := range tc.expectContains {
				assert.Contains(t, buf.String(), expected)
			}
		})
	}
}

func TestRootCmd_InvalidOutputFormat(t *testing.T) {
	isolate(t)

	_, _, err := executeCmd(t, "config", "show", "--output", "xml")
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRootCmd_OutputFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("CLOCKFACE_OUTPUT", "json")

	stdout, _, err := executeCmd(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"clock": {`)
}

func TestRootCmd_VerboseAndQuietExclusive(t *testing.T) {
	isolate(t)

	_, _, err := executeCmd(t, "frame", "--verbose", "--quiet")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	isolate(t)

	_, _, err := executeCmd(t, "alarm")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestGetLogger_SetDuringPreRun(t *testing.T) {
	isolate(t)

	_, _, err := executeCmd(t, "--verbose", "frame", "--at", "01:02:03")
	require.NoError(t, err)
	assert.Equal(t, "debug", GetLogger().GetLevel().String())
}
