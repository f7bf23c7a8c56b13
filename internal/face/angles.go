package face

import "github.com/mrz1836/clockface/internal/constants"

// HourAngle returns the hour hand angle in degrees. The hand creeps half a
// degree per minute, so 3:30 is 105, not 90. Hours past 12 are not reduced;
// the rotation wraps them onto the same position.
func HourAngle(hour, minute int) float64 {
	return float64(hour)*constants.DegreesPerHour + float64(minute)*constants.DegreesPerMinuteOfHour
}

// MinuteAngle returns the minute hand angle in degrees.
func MinuteAngle(minute int) float64 {
	return float64(minute) * constants.DegreesPerMinute
}

// SecondAngle returns the second hand angle in degrees.
func SecondAngle(second int) float64 {
	return float64(second) * constants.DegreesPerSecond
}

// Numeral returns the hour printed at a major mark. The mark at 0 degrees
// is 12.
func Numeral(angle int) int {
	if angle == 0 {
		return 12
	}
	return angle / constants.MajorMarkDegrees
}

// Mark is one tick mark on the face.
type Mark struct {
	Angle   int  `json:"angle"`
	Major   bool `json:"major"`
	Numeral int  `json:"numeral,omitempty"`
}

// Marks returns the 60 tick marks, clockwise from 12 o'clock.
func Marks() []Mark {
	marks := make([]Mark, 0, constants.MarkCount)
	for angle := 0; angle < 360; angle += constants.MarkStepDegrees {
		m := Mark{Angle: angle}
		if angle%constants.MajorMarkDegrees == 0 {
			m.Major = true
			m.Numeral = Numeral(angle)
		}
		marks = append(marks, m)
	}
	return marks
}
