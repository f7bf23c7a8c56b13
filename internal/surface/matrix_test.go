package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertPoint(t *testing.T, want, got Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestMatrix_Identity(t *testing.T) {
	m := Identity()

	assert.True(t, m.IsIdentity())
	assertPoint(t, Point{X: 3, Y: -4}, m.Apply(3, -4))
}

func TestMatrix_Translate(t *testing.T) {
	m := Identity().Translate(110, 110)

	assertPoint(t, Point{X: 110, Y: 10}, m.Apply(0, -100))
}

func TestMatrix_RotateIsClockwiseOnScreen(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		want    Point
	}{
		{"up stays up", 0, Point{X: 0, Y: -1}},
		{"quarter turn points right", 90, Point{X: 1, Y: 0}},
		{"half turn points down", 180, Point{X: 0, Y: 1}},
		{"three quarters points left", 270, Point{X: -1, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := Identity().Rotate(tc.degrees * math.Pi / 180)
			assertPoint(t, tc.want, m.Apply(0, -1))
		})
	}
}

func TestMatrix_TranslateThenRotate(t *testing.T) {
	m := Identity().Translate(110, 110).Rotate(math.Pi / 2)

	// Local "up" by 100 lands 100 units right of the center.
	assertPoint(t, Point{X: 210, Y: 110}, m.Apply(0, -100))
}

func TestMatrix_MultiplyOrder(t *testing.T) {
	translate := Identity().Translate(10, 0)
	rotate := Identity().Rotate(math.Pi / 2)

	// rotate first, then translate
	assertPoint(t, Point{X: 11, Y: 0}, translate.Multiply(rotate).Apply(0, -1))
	// translate first, then rotate
	assertPoint(t, Point{X: 1, Y: 10}, rotate.Multiply(translate).Apply(0, -1))
}
