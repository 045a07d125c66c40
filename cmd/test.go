package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rnwolfe/lovetest/internal/config"
	"github.com/rnwolfe/lovetest/internal/love"
	"github.com/rnwolfe/lovetest/internal/output"
	"github.com/rnwolfe/lovetest/internal/ui"
	"github.com/spf13/cobra"
)

var (
	testFormat string
	testShare  bool
)

var testCmd = &cobra.Command{
	Use:     "test [your-name] <crush-name>",
	Aliases: []string{"score"},
	Short:   "Score two names",
	Long: `Score two names. With a single argument, user.name from the config is used
as your name.

  lovetest test Romeo Juliet
  lovetest test "Mary Jane" Peter --format json
  lovetest test Romeo Juliet --share`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTest,
}

func init() {
	testCmd.Flags().StringVarP(&testFormat, "format", "f", "", "Output format: "+strings.Join(config.Formats, ", ")+" (default from config)")
	testCmd.Flags().BoolVar(&testShare, "share", false, "Print only the share line")
}

func runTest(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	subject, target, err := testNames(cfg, args)
	if err != nil {
		return err
	}

	log := logger()
	log.Printf("key: %s", love.CompositeKey(subject, target))

	r, err := love.Test(subject, target)
	if err != nil {
		return err
	}
	log.Printf("score: %d", r.Score)

	if testShare {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), r.Share)
		return err
	}

	format := testFormat
	if format == "" {
		format = cfg.Display.Format
	}
	return output.Result(cmd.OutOrStdout(), format, r, ui.TermWidth())
}

// testNames resolves the pair from args, falling back to user.name for a
// single argument.
func testNames(cfg *config.Config, args []string) (string, string, error) {
	var subject, target string
	if len(args) == 2 {
		subject, target = args[0], args[1]
	} else {
		subject, target = cfg.User.Name, args[0]
		if strings.TrimSpace(subject) == "" {
			return "", "", errors.New("only one name given and user.name is not set (try `lovetest config set user.name <you>`)")
		}
	}

	if !love.CanTest(subject, target) {
		return "", "", errors.New("both names are required")
	}
	return subject, target, nil
}
