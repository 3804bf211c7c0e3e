package tui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"beatcut/pkg/beatplan"
)

const (
	cursorStepSec = 0.1
	gaugeCells    = 20
	defaultWidth  = 72
)

// InspectorModel is a bubbletea model that lets the operator scrub through a
// planned timeline: the cursor moves along the track while the view shows the
// active segment, the nearest beat, and the interpolated energy at the cursor.
type InspectorModel struct {
	title    string
	timeline beatplan.Timeline
	grid     beatplan.BeatGrid
	envelope beatplan.EnergyEnvelope
	duration float64

	cursor float64
	width  int
	keys   keyMap
	help   help.Model
	done   bool
}

// NewInspectorModel creates an inspector over a planned timeline.
func NewInspectorModel(title string, timeline beatplan.Timeline, grid beatplan.BeatGrid, envelope beatplan.EnergyEnvelope, duration float64) InspectorModel {
	return InspectorModel{
		title:    title,
		timeline: timeline,
		grid:     grid,
		envelope: envelope,
		duration: duration,
		width:    defaultWidth,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init satisfies the tea.Model interface.
func (m InspectorModel) Init() tea.Cmd {
	return nil
}

// Update satisfies the tea.Model interface.
func (m InspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.cursor = clamp(m.cursor-cursorStepSec, 0, m.duration)
		case key.Matches(msg, m.keys.Right):
			m.cursor = clamp(m.cursor+cursorStepSec, 0, m.duration)
		case key.Matches(msg, m.keys.Home):
			m.cursor = 0
		case key.Matches(msg, m.keys.End):
			m.cursor = m.duration
		case key.Matches(msg, m.keys.PrevBeat):
			m.cursor = m.adjacentBeat(-1)
		case key.Matches(msg, m.keys.NextBeat):
			m.cursor = m.adjacentBeat(+1)
		case key.Matches(msg, m.keys.PrevSeg):
			m.cursor = m.adjacentSegmentStart(-1)
		case key.Matches(msg, m.keys.NextSeg):
			m.cursor = m.adjacentSegmentStart(+1)
		}
		return m, nil
	}
	return m, nil
}

// View satisfies the tea.Model interface.
func (m InspectorModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	barWidth := m.width - 2
	if barWidth < 10 {
		barWidth = 10
	}

	b.WriteString(" " + m.renderBar(barWidth) + "\n")
	b.WriteString(" " + m.renderBeatTicks(barWidth) + "\n")
	b.WriteString(" " + m.renderCursorLine(barWidth) + "\n\n")

	seg, idx := m.activeSegment()
	b.WriteString(fmt.Sprintf(" %s %d/%d  %.3f – %.3f (%.3fs)\n",
		labelStyle.Render("segment"), idx+1, len(m.timeline), seg.Start, seg.End, seg.Duration()))

	b.WriteString(fmt.Sprintf(" %s %.3fs", labelStyle.Render("cursor"), m.cursor))
	if beat, err := beatplan.FindNearestBeat(m.grid, m.cursor); err == nil {
		b.WriteString(fmt.Sprintf("  %s %.3f (Δ%.3f)", labelStyle.Render("nearest beat"), beat, math.Abs(beat-m.cursor)))
	} else {
		b.WriteString("  " + labelStyle.Render("no beats"))
	}
	b.WriteString("\n")

	if value, err := beatplan.BeatIntensity(m.envelope, m.cursor); err == nil {
		b.WriteString(fmt.Sprintf(" %s %s %.2f\n", labelStyle.Render("intensity"), renderGauge(value), value))
	} else {
		b.WriteString(" " + errStyle.Render("no energy envelope") + "\n")
	}

	b.WriteString("\n " + m.help.View(m.keys) + "\n")
	return b.String()
}

// Done reports whether the operator quit the inspector.
func (m InspectorModel) Done() bool {
	return m.done
}

// renderBar draws the timeline as proportional segment blocks, highlighting
// the segment under the cursor.
func (m InspectorModel) renderBar(barWidth int) string {
	_, active := m.activeSegment()
	var b strings.Builder
	for i, seg := range m.timeline {
		start := scalePos(seg.Start, m.duration, barWidth)
		end := scalePos(seg.End, m.duration, barWidth)
		if end <= start {
			end = start + 1
		}
		cells := strings.Repeat("█", end-start)
		if i == active {
			b.WriteString(activeSegmentStyle.Render(cells))
		} else if i%2 == 0 {
			b.WriteString(segmentStyle.Render(cells))
		} else {
			b.WriteString(cells)
		}
	}
	return b.String()
}

func (m InspectorModel) renderBeatTicks(barWidth int) string {
	ticks := make([]byte, barWidth)
	for i := range ticks {
		ticks[i] = ' '
	}
	for _, beat := range m.grid {
		if beat < 0 || beat > m.duration {
			continue
		}
		ticks[scalePos(beat, m.duration, barWidth)] = '|'
	}
	return beatMarkStyle.Render(string(ticks))
}

func (m InspectorModel) renderCursorLine(barWidth int) string {
	pos := scalePos(m.cursor, m.duration, barWidth)
	return strings.Repeat(" ", pos) + cursorStyle.Render("▲")
}

func renderGauge(value float64) string {
	filled := int(math.Round(value * gaugeCells))
	if filled < 0 {
		filled = 0
	}
	if filled > gaugeCells {
		filled = gaugeCells
	}
	return gaugeFillStyle.Render(strings.Repeat("█", filled)) +
		gaugeEmptyStyle.Render(strings.Repeat("░", gaugeCells-filled))
}

// activeSegment returns the segment containing the cursor and its index.
func (m InspectorModel) activeSegment() (beatplan.Segment, int) {
	for i, seg := range m.timeline {
		if m.cursor < seg.End || i == len(m.timeline)-1 {
			return seg, i
		}
	}
	return beatplan.Segment{}, 0
}

// adjacentBeat returns the nearest beat strictly before (dir < 0) or after
// (dir > 0) the cursor, or the cursor itself when none exists.
func (m InspectorModel) adjacentBeat(dir int) float64 {
	if dir < 0 {
		for i := len(m.grid) - 1; i >= 0; i-- {
			if m.grid[i] < m.cursor {
				return clamp(m.grid[i], 0, m.duration)
			}
		}
		return m.cursor
	}
	for _, beat := range m.grid {
		if beat > m.cursor {
			return clamp(beat, 0, m.duration)
		}
	}
	return m.cursor
}

func (m InspectorModel) adjacentSegmentStart(dir int) float64 {
	_, idx := m.activeSegment()
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.timeline) {
		return m.duration
	}
	return m.timeline[idx].Start
}

func scalePos(t, duration float64, barWidth int) int {
	if duration <= 0 {
		return 0
	}
	pos := int(t / duration * float64(barWidth))
	if pos >= barWidth {
		pos = barWidth - 1
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run launches the inspector and blocks until the operator quits.
func Run(out io.Writer, model InspectorModel) error {
	p := tea.NewProgram(model, tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
