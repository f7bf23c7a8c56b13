package testutil

import (
	"errors"
	"fmt"
	"testing"
)

func TestMockErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrMockDraw", ErrMockDraw, "mock draw failure"},
		{"ErrMockStep", ErrMockStep, "mock step failure"},
		{"ErrMockForm", ErrMockForm, "mock form failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
			if !errors.Is(fmt.Errorf("wrapped: %w", tt.err), tt.err) {
				t.Errorf("%s should survive wrapping", tt.name)
			}
		})
	}
}
