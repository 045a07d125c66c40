package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/lovetest/internal/love"
)

// ProgressBar draws a bar of width cells, filled to pct (0..1).
func ProgressBar(pct float64, width int) string {
	if width < 1 {
		width = 1
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct*float64(width) + 0.5)
	return lipgloss.NewStyle().Foreground(Pink).Render(strings.Repeat(BarFilled, filled)) +
		Muted.Render(strings.Repeat(BarEmpty, width-filled))
}

// ResultCard renders a scored pair as a bordered card. shown is the score
// displayed on the bar, which lets callers animate from 0 to r.Score.
func ResultCard(r love.Result, shown int, width int) string {
	if width < 24 {
		width = 24
	}
	inner := width - 8
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	lines := []string{
		center.Render(Accent.Render(fmt.Sprintf("%s  +  %s", r.Subject, r.Target))),
		"",
		center.Render(ProgressBar(float64(shown)/love.MaxScore, inner-4)),
		"",
		center.Render(Score.Render(fmt.Sprintf("%d%%", shown))),
		center.Render(Muted.Render("compatibility")),
		"",
		center.Render(Title.Render(r.Title)),
		center.Render(Subtitle.Render(r.Subtitle)),
	}
	return Card.Render(strings.Join(lines, "\n"))
}
