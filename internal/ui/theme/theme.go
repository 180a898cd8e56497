// Package theme holds the terminal styles for rendered hints.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Blockly category colours.
var (
	Logic   = lipgloss.Color("#5B80A5") // logic blocks
	Loops   = lipgloss.Color("#5BA55B") // loop blocks
	Math    = lipgloss.Color("#5B67A5") // math blocks
	Text    = lipgloss.Color("#E2E8F0")
	Muted   = lipgloss.Color("#94A3B8")
	Warning = lipgloss.Color("#F43F5E")
	Frame   = lipgloss.Color("#475569")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Logic)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	SectionLabel = lipgloss.NewStyle().
			Foreground(Loops).
			Bold(true)

	Example = lipgloss.NewStyle().
		Foreground(Math)

	Failure = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)
)

// Card frames a rendered hint.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Frame).
	Padding(1, 2).
	Width(88)
