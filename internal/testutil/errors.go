// Package testutil provides testing utilities for clockface.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
var (
	// ErrMockDraw simulates a drawing callback that fails.
	ErrMockDraw = errors.New("mock draw failure")

	// ErrMockStep simulates a loop step that fails.
	ErrMockStep = errors.New("mock step failure")

	// ErrMockForm simulates an interactive form that fails to run.
	ErrMockForm = errors.New("mock form failure")
)
