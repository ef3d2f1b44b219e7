// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

// Package tui implements the interactive exit-code browser.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the styles used by the browser.
type Styles struct {
	Primary lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color

	Title      lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	MutedText  lipgloss.Style
	Footer     lipgloss.Style
}

// NewStyles creates the default Tokyo Night palette styles.
func NewStyles() *Styles {
	primary := lipgloss.Color("#7aa2f7")    // Blue
	warning := lipgloss.Color("#e0af68")    // Yellow
	errorColor := lipgloss.Color("#f7768e") // Red
	muted := lipgloss.Color("#565f89")      // Gray

	background := lipgloss.Color("#1a1b26")
	foreground := lipgloss.Color("#c0caf5")

	return &Styles{
		Primary: primary,
		Warning: warning,
		Error:   errorColor,
		Muted:   muted,

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(background).
			Padding(0, 1),

		Unselected: lipgloss.NewStyle().
			Foreground(foreground).
			Padding(0, 1),

		MutedText: lipgloss.NewStyle().
			Foreground(muted),

		Footer: lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1),
	}
}
