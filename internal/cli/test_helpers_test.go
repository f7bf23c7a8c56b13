package cli

// This file contains test utilities and mocks for testing CLI functions.

import (
	"bytes"
	"context"
	"testing"

	"github.com/mrz1836/clockface/internal/constants"
	"github.com/mrz1836/clockface/internal/tui"
)

// mockFormRunner implements formRunner without a terminal.
type mockFormRunner struct {
	// runErr is the error to return from Run()
	runErr error

	// onRun simulates user input by modifying form values
	onRun func()
}

// Run executes the mock form, optionally calling the onRun callback.
func (m *mockFormRunner) Run() error {
	if m.onRun != nil {
		m.onRun()
	}
	return m.runErr
}

// mockTerminalCheckFunc replaces terminalCheck until the returned cleanup runs.
func mockTerminalCheckFunc(isTerminal bool) func() {
	original := terminalCheck
	terminalCheck = func() bool { return isTerminal }
	return func() { terminalCheck = original }
}

// mockConfigForm makes config init use a mock form that applies edit.
func mockConfigForm(t *testing.T, runErr error, edit func(v *tui.ConfigFormValues)) {
	t.Helper()
	original := newConfigForm
	newConfigForm = func(v *tui.ConfigFormValues) formRunner {
		return &mockFormRunner{
			runErr: runErr,
			onRun: func() {
				if edit != nil {
					edit(v)
				}
			},
		}
	}
	t.Cleanup(func() { newConfigForm = original })
}

// mockConfirm makes the overwrite prompt answer answer.
func mockConfirm(t *testing.T, answer bool, err error) {
	t.Helper()
	original := confirmOverwrite
	confirmOverwrite = func(string, bool) (bool, error) { return answer, err }
	t.Cleanup(func() { confirmOverwrite = original })
}

// isolate points the clockface home at an empty temp dir, moves into
// another and turns colors off. It returns both directories.
func isolate(t *testing.T) (home, project string) {
	t.Helper()

	home = t.TempDir()
	project = t.TempDir()
	t.Setenv(constants.HomeEnvVar, home)
	t.Setenv("NO_COLOR", "1")
	t.Chdir(project)
	t.Cleanup(CloseLogFile)
	return home, project
}

// executeCmd runs the root command with args and returns what it printed.
func executeCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}
