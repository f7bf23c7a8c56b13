package cli

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/face"
	"github.com/mrz1836/clockface/internal/flock"
	"github.com/mrz1836/clockface/internal/surface"
)

type frameJSON struct {
	Time  string `json:"time"`
	Hands []struct {
		Name  string  `json:"name"`
		Angle float64 `json:"angle"`
	} `json:"hands"`
	Marks []face.Mark  `json:"marks"`
	Ops   []surface.Op `json:"ops"`
	PNG   string       `json:"png"`
}

func TestParseClockTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in                   string
		hour, minute, second int
	}{
		{"06:30:45", 6, 30, 45},
		{"00:00:00", 0, 0, 0},
		{"23:59", 23, 59, 0},
		{" 12:00:01 ", 12, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			got, err := parseClockTime(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.hour, got.Hour())
			assert.Equal(t, tc.minute, got.Minute())
			assert.Equal(t, tc.second, got.Second())
		})
	}
}

func TestParseClockTime_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "noon", "24:00:00", "12:60", "12:00:61"} {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			_, err := parseClockTime(in)
			require.ErrorIs(t, err, errors.ErrInvalidTime)
		})
	}
}

func TestFrame_TextOutput(t *testing.T) {
	isolate(t)
	defer mockTerminalCheckFunc(false)()

	stdout, _, err := executeCmd(t, "frame", "--at", "03:00:10")
	require.NoError(t, err)

	for _, numeral := range []string{"12", "3", "6", "9"} {
		assert.Contains(t, stdout, numeral)
	}
	assert.Contains(t, stdout, "█", "hour hand drawn solid")
	assert.NotContains(t, stdout, "\x1b[", "no colors off a terminal")
}

func TestFrame_JSONOutput(t *testing.T) {
	isolate(t)

	stdout, _, err := executeCmd(t, "frame", "--at", "06:30:45", "-o", "json")
	require.NoError(t, err)

	var got frameJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))

	assert.Equal(t, "06:30:45", got.Time)
	require.Len(t, got.Hands, 3)
	assert.Equal(t, face.HandHour, got.Hands[0].Name)
	assert.InDelta(t, 195.0, got.Hands[0].Angle, 1e-9)
	assert.InDelta(t, 180.0, got.Hands[1].Angle, 1e-9)
	assert.InDelta(t, 270.0, got.Hands[2].Angle, 1e-9)

	require.Len(t, got.Marks, 60)
	assert.Equal(t, 12, got.Marks[0].Numeral)

	strokes, fills := 0, 0
	for _, op := range got.Ops {
		switch op.Name {
		case "stroke":
			strokes++
		case "fillText":
			fills++
		}
	}
	assert.Equal(t, 63, strokes, "60 marks and 3 hands")
	assert.Equal(t, 12, fills, "one numeral per hour")
	assert.Empty(t, got.PNG)
}

func TestFrame_WritesPNG(t *testing.T) {
	_, project := isolate(t)
	path := filepath.Join(project, "frame.png")

	stdout, _, err := executeCmd(t, "frame", "--at", "10:10:30", "--png", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote "+path)

	f, err := os.Open(path) //nolint:gosec // test file
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 220, img.Bounds().Dx())
	assert.Equal(t, 220, img.Bounds().Dy())

	leftovers, err := filepath.Glob(filepath.Join(project, ".clockface-*.png"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "temp file renamed into place")
}

func TestFrame_JSONReportsPNGPath(t *testing.T) {
	_, project := isolate(t)
	path := filepath.Join(project, "frame.png")

	stdout, _, err := executeCmd(t, "frame", "--at", "10:10:30", "--png", path, "-o", "json")
	require.NoError(t, err)

	var got frameJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, path, got.PNG)
	assert.FileExists(t, path)
}

func TestFrame_InvalidTime(t *testing.T) {
	isolate(t)

	_, _, err := executeCmd(t, "frame", "--at", "25:61")
	require.ErrorIs(t, err, errors.ErrInvalidTime)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestFrame_PNGIntoMissingDirectory(t *testing.T) {
	_, project := isolate(t)

	_, _, err := executeCmd(t, "frame", "--at", "01:00:00", "--png", filepath.Join(project, "missing", "x.png"))
	require.Error(t, err)
	assert.Equal(t, ExitError, ExitCodeForError(err))
}

func TestFrame_PNGRefusesLockedOutput(t *testing.T) {
	_, project := isolate(t)
	path := filepath.Join(project, "frame.png")

	held, err := flock.Acquire(path)
	require.NoError(t, err)
	defer func() { _ = held.Release() }()

	_, _, err = executeCmd(t, "frame", "--at", "10:10:30", "--png", path)
	require.ErrorIs(t, err, errors.ErrOutputLocked)
	assert.NoFileExists(t, path)
}
