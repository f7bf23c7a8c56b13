package tui

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	// headerTitle is shown on terminals at least wideThreshold columns wide.
	headerTitle = "═══ CLOCKFACE ═══"

	// wideThreshold is the minimum width for the title line.
	wideThreshold = 40

	// digitalLayout formats the digital readout under the title.
	digitalLayout = "15:04:05"
)

// Header renders the title and a digital readout of the displayed time.
type Header struct {
	width int
}

// NewHeader creates a header for the given terminal width. Zero or less
// means unknown and drops the title.
func NewHeader(width int) *Header {
	return &Header{width: width}
}

// Render returns the header for t. zone, when set, follows the time.
func (h *Header) Render(t time.Time, zone string) string {
	digital := t.Format(digitalLayout)
	if zone != "" {
		digital += " " + zone
	}
	digitalLine := centerText(StyleBold.Render(digital), digital, h.width)

	if h.width < wideThreshold {
		return digitalLine
	}

	title := lipgloss.NewStyle().Foreground(ColorPrimary).Render(headerTitle)
	return centerText(title, headerTitle, h.width) + "\n" + digitalLine
}

// centerText pads styled text so the plain original sits in the middle of
// totalWidth columns.
func centerText(styled, original string, totalWidth int) string {
	textWidth := runewidth.StringWidth(original)
	if totalWidth <= 0 || textWidth >= totalWidth {
		return styled
	}
	padding := (totalWidth - textWidth) / 2
	if padding <= 0 {
		return styled
	}
	return strings.Repeat(" ", padding) + styled
}

// GetTerminalWidth returns the stdout terminal width, or 0 if unknown.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
