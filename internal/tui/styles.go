package tui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle styles the inspector header line.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	segmentStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeSegmentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	cursorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	beatMarkStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	labelStyle         = lipgloss.NewStyle().Faint(true)
	gaugeFillStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	gaugeEmptyStyle    = lipgloss.NewStyle().Faint(true)
	errStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
