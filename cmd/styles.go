package cmd

import (
	"charm.land/lipgloss/v2"
)

// Shared CLI styles.
var (
	colPrimary = lipgloss.Color("#8B5CF6")
	colSuccess = lipgloss.Color("#22C55E")
	colWarn    = lipgloss.Color("#F97316")
	colError   = lipgloss.Color("#F43F5E")
	colDim     = lipgloss.Color("#94A3B8")

	styleHeading  = lipgloss.NewStyle().Bold(true).Foreground(colPrimary)
	styleQuestion = lipgloss.NewStyle().Bold(true)
	styleSupport  = lipgloss.NewStyle().Italic(true).Foreground(colDim)
	styleGood     = lipgloss.NewStyle().Foreground(colSuccess)
	styleWarn     = lipgloss.NewStyle().Foreground(colWarn)
	styleBad      = lipgloss.NewStyle().Foreground(colError)
	styleDim      = lipgloss.NewStyle().Foreground(colDim)
)
