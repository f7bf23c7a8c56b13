// Package constants provides centralized constant values used throughout clockface.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Clock face geometry. Values are in surface units.
const (
	// DefaultRadius is the distance from the clock center to the outer end of the tick marks.
	DefaultRadius = 100.0

	// MarkCount is the number of tick marks drawn around the face.
	MarkCount = 60

	// MarkStepDegrees is the angular spacing between two adjacent tick marks.
	MarkStepDegrees = 360 / MarkCount

	// MajorMarkDegrees is the spacing of the bold, numbered tick marks.
	MajorMarkDegrees = 30

	// MinorMarkLength is the length of an unnumbered tick mark.
	MinorMarkLength = 5.0

	// MajorMarkLength is the length of a numbered tick mark.
	MajorMarkLength = 10.0

	// NumeralInset is the distance from the rim to the numeral baseline.
	NumeralInset = 25.0

	// NumeralFontSize is the font size of the hour numerals.
	NumeralFontSize = 13.0
)

// Hand geometry and angular rates.
const (
	// DegreesPerHour is the hour hand travel per hour.
	DegreesPerHour = 30.0

	// DegreesPerMinuteOfHour is the hour hand creep per minute (30 degrees over 60 minutes).
	DegreesPerMinuteOfHour = 0.5

	// DegreesPerMinute is the minute hand travel per minute.
	DegreesPerMinute = 6.0

	// DegreesPerSecond is the second hand travel per second.
	DegreesPerSecond = 6.0
)

// Loop timing.
const (
	// DefaultTickInterval is the delay between the end of one redraw and the start of the next.
	DefaultTickInterval = 100 * time.Millisecond

	// MinTickInterval is the smallest accepted redraw interval.
	MinTickInterval = 10 * time.Millisecond

	// MaxTickInterval is the largest accepted redraw interval.
	MaxTickInterval = 10 * time.Second
)

// Surface defaults.
const (
	// DefaultSurfaceWidth is the default drawing surface width in surface units.
	DefaultSurfaceWidth = 220

	// DefaultSurfaceHeight is the default drawing surface height in surface units.
	DefaultSurfaceHeight = 220

	// DefaultCellWidth is the number of surface units covered by one terminal column.
	DefaultCellWidth = 5.0

	// DefaultCellHeight is the number of surface units covered by one terminal row.
	// Terminal cells are roughly twice as tall as they are wide.
	DefaultCellHeight = 10.0
)

// Error policies for failed redraws.
const (
	// ErrorPolicyContinue logs a failed redraw and keeps the loop running.
	ErrorPolicyContinue = "continue"

	// ErrorPolicyStop ends the loop on the first failed redraw.
	ErrorPolicyStop = "stop"
)
