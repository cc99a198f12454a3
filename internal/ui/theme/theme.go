package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — Tokyo Night
var (
	Primary   = lipgloss.Color("#7AA2F7") // Blue
	Secondary = lipgloss.Color("#9ECE6A") // Green
	Accent    = lipgloss.Color("#BB9AF7") // Purple
	Success   = lipgloss.Color("#9ECE6A") // Green
	Error     = lipgloss.Color("#F7768E") // Red
	Warning   = lipgloss.Color("#E0AF68") // Yellow
	Text      = lipgloss.Color("#C0CAF5") // Foreground
	TextDim   = lipgloss.Color("#9AA5CE") // Dim foreground
	BgDark    = lipgloss.Color("#1A1B26") // Main background
	BgCard    = lipgloss.Color("#24283B") // Frame background
	Border    = lipgloss.Color("#414868") // Border
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Gain = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Invalid = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
