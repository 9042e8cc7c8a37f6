// Package common provides shared styles for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"
)

// Lipgloss Styles - shared by the demo printer and the interactive model
var (
	RedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	JokerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	GoodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)
