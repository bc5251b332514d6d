// Package styles provides shared lipgloss styles for hookgen output.
//
// This package centralizes color definitions and the status symbol set so
// success, warning and error lines look the same from every command.
package styles

import "charm.land/lipgloss/v2"

// Primary colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent = lipgloss.Color("212")

	// Success is used for checkmarks and positive outcomes (green)
	Success = lipgloss.Color("82")

	// Warning is used for non-fatal findings (yellow)
	Warning = lipgloss.Color("220")

	// Error is used for error messages (red)
	Error = lipgloss.Color("196")

	// Muted is used for secondary text (gray)
	Muted = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)
