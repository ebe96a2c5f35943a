package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for terminal output, using the basic ANSI
// palette: green for results, cyan for structure, yellow for emphasis, red
// for errors.
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	commandStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	groupStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	simStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("3"))
)
