package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeader_Render(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 1, 1, 6, 30, 45, 0, time.UTC)

	tests := []struct {
		name      string
		width     int
		zone      string
		wantTitle bool
		wantText  string
	}{
		{"wide shows title", 80, "", true, "06:30:45"},
		{"narrow drops title", 20, "", false, "06:30:45"},
		{"unknown width drops title", 0, "", false, "06:30:45"},
		{"zone follows time", 80, "UTC", true, "06:30:45 UTC"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := NewHeader(tc.width).Render(at, tc.zone)
			assert.Contains(t, out, tc.wantText)
			assert.Equal(t, tc.wantTitle, strings.Contains(out, "CLOCKFACE"))
		})
	}
}

func TestCenterText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "   abcd", centerText("abcd", "abcd", 10))
	assert.Equal(t, "abcd", centerText("abcd", "abcd", 4), "no room to pad")
	assert.Equal(t, "abcd", centerText("abcd", "abcd", 0))
	// wide runes count double
	assert.Equal(t, "  時計", centerText("時計", "時計", 8))
}
