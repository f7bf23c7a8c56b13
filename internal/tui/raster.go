package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrz1836/clockface/internal/surface"
)

// RenderRaster turns a raster into terminal text. Neighboring cells that
// share a color are rendered as one run with a single lipgloss style; blank
// cells join the run they sit in. With colored false the plain glyphs are
// returned.
func RenderRaster(r *surface.Raster, colored bool) string {
	if !colored {
		return r.String()
	}

	styles := make(map[string]lipgloss.Style)
	styleFor := func(hex string) lipgloss.Style {
		s, ok := styles[hex]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
			styles[hex] = s
		}
		return s
	}

	rows := r.Cells()
	lines := make([]string, len(rows))
	var line, run strings.Builder

	for i, row := range rows {
		line.Reset()
		run.Reset()
		runHex := ""

		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runHex == "" {
				line.WriteString(run.String())
			} else {
				line.WriteString(styleFor(runHex).Render(run.String()))
			}
			run.Reset()
		}

		for _, c := range row {
			if c.Continuation() {
				continue
			}
			if c.Rune == 0 {
				run.WriteByte(' ')
				continue
			}
			if hex := surface.Hex(c.Color); hex != runHex {
				flush()
				runHex = hex
			}
			run.WriteRune(c.Rune)
		}
		flush()
		lines[i] = line.String()
	}

	return strings.Join(lines, "\n")
}
