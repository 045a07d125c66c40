package cmd

import (
	"github.com/rnwolfe/lovetest/internal/love"
	"github.com/rnwolfe/lovetest/internal/output"
	"github.com/spf13/cobra"
)

var tiersFormat string

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List the score bands and their messages",
	Args:  cobra.NoArgs,
	RunE:  runTiers,
}

func init() {
	tiersCmd.Flags().StringVarP(&tiersFormat, "format", "f", "md", "Output format: text, json, yaml, md")
}

func runTiers(cmd *cobra.Command, _ []string) error {
	if _, err := loadSettings(); err != nil {
		return err
	}
	return output.Tiers(cmd.OutOrStdout(), tiersFormat, love.Tiers())
}
