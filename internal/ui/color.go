package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size cannot be read.
const DefaultWidth = 60

// SetColorMode applies a display.color setting ("auto", "always", "never")
// to every lipgloss style. NO_COLOR in the environment wins over "auto".
func SetColorMode(mode string) error {
	switch mode {
	case "", "auto":
		if termenv.EnvNoColor() {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("unknown color mode %q", mode)
	}
	return nil
}

// TermWidth returns the stdout terminal width, capped to a readable size.
func TermWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	if w > 80 {
		return 80
	}
	return w
}
