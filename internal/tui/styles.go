// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	badgeStyle     = lipgloss.NewStyle().Padding(0, 1).Reverse(true)
	watermarkStyle = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("8"))
	obscuredStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 4)
)
