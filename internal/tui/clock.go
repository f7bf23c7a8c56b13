package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/mrz1836/clockface/internal/constants"
	"github.com/mrz1836/clockface/internal/surface"
)

// Ticker is the part of the analog clock the model drives.
type Ticker interface {
	Tick() error
	Time() (hour, minute, second int)
}

// ClockConfig holds configuration for the live clock.
type ClockConfig struct {
	// Interval is the redraw interval.
	Interval time.Duration
	// ErrorPolicy is constants.ErrorPolicyContinue or constants.ErrorPolicyStop.
	ErrorPolicy string
	// Zone is shown next to the digital time.
	Zone string
	// Quiet hides the header and the key help.
	Quiet bool
	// ShowProgress shows the minute progress bar at start.
	ShowProgress bool
	// Colored renders the raster with its colors.
	Colored bool
}

// DefaultClockConfig returns the default live clock configuration.
func DefaultClockConfig() ClockConfig {
	return ClockConfig{
		Interval:     constants.DefaultTickInterval,
		ErrorPolicy:  constants.ErrorPolicyContinue,
		ShowProgress: true,
		Colored:      HasColorSupport(),
	}
}

// TickMsg signals time for a redraw.
type TickMsg time.Time

// ClockModel is the Bubble Tea model for the live clock. Each TickMsg
// redraws the whole face on the raster and arms the next tick, so redraws
// never overlap.
type ClockModel struct {
	clock  Ticker
	raster *surface.Raster
	config ClockConfig
	logger zerolog.Logger

	keys     keyMap
	help     help.Model
	progress *ProgressBar

	width, height int
	frames        int
	failures      int
	err           error
	quitting      bool
	showProgress  bool
}

// NewClockModel creates a model that ticks c, which draws onto raster.
func NewClockModel(c Ticker, raster *surface.Raster, cfg ClockConfig, logger zerolog.Logger) *ClockModel {
	if cfg.Interval <= 0 {
		cfg.Interval = constants.DefaultTickInterval
	}
	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(ColorMuted)
	h.Styles.ShortDesc = h.Styles.ShortDesc.Foreground(ColorMuted)

	return &ClockModel{
		clock:        c,
		raster:       raster,
		config:       cfg,
		logger:       logger,
		keys:         defaultKeyMap(),
		help:         h,
		progress:     NewProgressBar(raster.Cols()),
		showProgress: cfg.ShowProgress,
	}
}

// Init draws the first frame right away.
func (m *ClockModel) Init() tea.Cmd {
	return func() tea.Msg { return TickMsg(time.Now()) }
}

// Update handles messages and returns the updated model and any commands.
func (m *ClockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Progress):
			m.showProgress = !m.showProgress
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m, m.redraw()
	}

	return m, nil
}

// redraw runs one frame and decides whether to keep ticking.
func (m *ClockModel) redraw() tea.Cmd {
	err := m.clock.Tick()
	m.frames++
	if err == nil {
		m.err = nil
		return m.tick()
	}

	m.failures++
	m.err = err
	if m.config.ErrorPolicy == constants.ErrorPolicyStop {
		m.logger.Error().Err(err).Int("frame", m.frames).Msg("frame failed, stopping")
		m.quitting = true
		return tea.Quit
	}
	m.logger.Warn().Err(err).Int("frame", m.frames).Msg("frame failed, continuing")
	return m.tick()
}

// tick returns a command that sends a TickMsg after the configured interval.
func (m *ClockModel) tick() tea.Cmd {
	return tea.Tick(m.config.Interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// View renders the current frame.
func (m *ClockModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	hour, minute, second := m.clock.Time()

	if !m.config.Quiet {
		displayed := time.Date(0, time.January, 1, hour, minute, second, 0, time.UTC)
		b.WriteString(NewHeader(m.raster.Cols()).Render(displayed, m.config.Zone))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderRaster(m.raster, m.config.Colored))

	if m.showProgress {
		b.WriteString("\n")
		b.WriteString(m.progress.Render(MinuteFraction(second)))
		b.WriteString(" ")
		b.WriteString(StyleDim.Render(FormatSeconds(second)))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(ColorWarning).Render("⚠ " + m.err.Error()))
	}

	if !m.config.Quiet {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}

	content := b.String()
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Frames returns the number of frames drawn.
func (m *ClockModel) Frames() int {
	return m.frames
}

// Failures returns the number of frames that reported an error.
func (m *ClockModel) Failures() int {
	return m.failures
}

// Err returns the error of the last frame, nil if it succeeded.
func (m *ClockModel) Err() error {
	return m.err
}

// IsQuitting returns true if the model is in quitting state.
func (m *ClockModel) IsQuitting() bool {
	return m.quitting
}
