package ui

import "github.com/charmbracelet/lipgloss"

// Color palette: violet, hot pink and teal.
var (
	Violet = lipgloss.Color("#7C4DFF")
	Pink   = lipgloss.Color("#FF4081")
	Teal   = lipgloss.Color("#00BFA5")
	Blush  = lipgloss.Color("#FFB3C8")
	Ruby   = lipgloss.Color("#E0115F")
	Amber  = lipgloss.Color("#FFBF00")
	Dim    = lipgloss.Color("#666666")
	Bright = lipgloss.Color("#FFFFFF")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Pink)

	Subtitle = lipgloss.NewStyle().
			Foreground(Blush)

	Success = lipgloss.NewStyle().
		Foreground(Teal)

	Error = lipgloss.NewStyle().
		Foreground(Ruby)

	Warning = lipgloss.NewStyle().
		Foreground(Amber)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Violet).
		Bold(true)

	// Component styles
	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Violet).
		Padding(1, 3)

	Score = lipgloss.NewStyle().
		Bold(true).
		Foreground(Bright)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Violet).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)
)

// Icon constants.
const (
	IconHeart  = "💗"
	IconPerson = "👤"
	IconSpark  = "✨"
	IconWarn   = "⚠️ "
	IconError  = "✗ "
	IconOk     = "✓ "
	IconArrow  = "→"
)

// BarFilled and BarEmpty draw the score bar.
const (
	BarFilled = "█"
	BarEmpty  = "░"
)
