package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rnwolfe/lovetest/internal/config"
	"github.com/rnwolfe/lovetest/internal/tui"
	"github.com/rnwolfe/lovetest/internal/ui"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "lovetest",
	Short: "Two names in, one compatibility score out",
	Long: `lovetest: a playful compatibility score for two names.

The same two names always give the same score, on any machine. For fun only.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print processing steps to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(aboutCmd)
}

// logger returns the stderr step logger; it discards unless --verbose is set.
func logger() *log.Logger {
	var w io.Writer = io.Discard
	if verbose {
		w = os.Stderr
	}
	return log.New(w, "lovetest: ", 0)
}

// loadSettings reads the config file and applies its color mode. --no-color
// wins over the file. Invalid values fall back to defaults with a warning.
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger().Printf("config: %s (exists: %t)", config.GetPaths().ConfigFile, config.Initialized())
	for _, p := range cfg.Problems() {
		ui.Warn(p.Error())
	}

	mode := cfg.Display.Color
	if noColor {
		mode = "never"
	}
	if err := ui.SetColorMode(mode); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runInteractive opens the two-screen love test when attached to a terminal.
func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	if !ui.IsStdinTTY() || !ui.IsStdoutTTY() {
		logger().Printf("not a terminal, showing help")
		return cmd.Help()
	}

	out, err := tui.Run(tui.Options{
		YourName:  cfg.User.Name,
		Animation: cfg.Display.AnimationDuration(),
	})
	if err != nil {
		return err
	}
	if out.Shared {
		fmt.Println(ui.Muted.Render("  " + out.Last.Share))
	}
	return nil
}
