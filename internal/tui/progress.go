package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
)

// ProgressBar wraps the bubbles progress bar. It shows how far the second
// hand is through the current minute.
type ProgressBar struct {
	bar   progress.Model
	width int
}

// ProgressOption is a functional option for configuring a ProgressBar.
type ProgressOption func(*ProgressBar)

// WithWidth sets the progress bar width.
func WithWidth(w int) ProgressOption {
	return func(pb *ProgressBar) {
		pb.width = w
		pb.bar.Width = w
	}
}

// NewProgressBar creates a progress bar. It uses a gradient when colors are
// supported and a solid gray fill otherwise.
func NewProgressBar(width int, opts ...ProgressOption) *ProgressBar {
	var bar progress.Model
	if HasColorSupport() {
		bar = progress.New(
			progress.WithWidth(width),
			progress.WithScaledGradient("#0087AF", "#00D7FF"),
			progress.WithoutPercentage(),
		)
	} else {
		bar = progress.New(
			progress.WithWidth(width),
			progress.WithSolidFill("#808080"),
			progress.WithoutPercentage(),
		)
	}

	pb := &ProgressBar{bar: bar, width: width}
	for _, opt := range opts {
		opt(pb)
	}
	return pb
}

// Render returns the bar for percent, clamped to [0, 1]. ViewAs renders
// statically without animation.
func (pb *ProgressBar) Render(percent float64) string {
	percent = max(0, min(1, percent))
	return pb.bar.ViewAs(percent)
}

// Width returns the current width of the progress bar.
func (pb *ProgressBar) Width() int {
	return pb.width
}

// MinuteFraction returns how far second is through its minute.
func MinuteFraction(second int) float64 {
	return float64(second) / 60
}

// FormatSeconds formats second as "ss/60".
func FormatSeconds(second int) string {
	return fmt.Sprintf("%02d/60", second)
}
