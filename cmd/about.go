package cmd

import (
	"fmt"
	"time"

	"github.com/rnwolfe/lovetest/internal/love"
	"github.com/rnwolfe/lovetest/internal/tips"
	"github.com/rnwolfe/lovetest/internal/ui"
	"github.com/rnwolfe/lovetest/internal/version"
	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "How the score works",
	Run:   runAbout,
}

func runAbout(_ *cobra.Command, _ []string) {
	fmt.Println()
	fmt.Println(ui.Title.Render("  " + ui.IconHeart + " lovetest"))
	fmt.Println(ui.Muted.Render("  ────────────────────────────────────────────"))
	fmt.Println()
	fmt.Println("  " + ui.Subtitle.Render("Enter two names and get a fun compatibility score."))
	fmt.Println()
	fmt.Println(ui.Muted.Render("  Both names are trimmed and lowercased, joined with a version tag,"))
	fmt.Println(ui.Muted.Render("  hashed with SHA-256, and folded into a number from 0 to 100."))
	fmt.Println(ui.Muted.Render("  No randomness, no network. Just math pretending to be romance."))
	fmt.Println()
	ui.Kv("Version", version.Full())
	ui.Kv("Score key", love.VersionTag)
	ui.Tip(tips.Daily(time.Now()))
	fmt.Println()
}
