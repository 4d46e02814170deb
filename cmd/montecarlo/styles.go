package main

import (
	"github.com/charmbracelet/lipgloss"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

	// HelpStyle for secondary lines.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// HeaderStyle for table header cells.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	// CellStyle for table body cells.
	CellStyle = lipgloss.NewStyle().Padding(0, 1)

	// NumberStyle right-aligns numeric cells.
	NumberStyle = CellStyle.Align(lipgloss.Right)
)
