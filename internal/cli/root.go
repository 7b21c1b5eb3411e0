package cli

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cribbage-core/internal/config"
)

// NewRootCmd returns the cribbage command with all subcommands attached
func NewRootCmd() *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:   "cribbage",
		Short: "Score cribbage hands and pegging",
		Long: `Cribbage scores hands, cribs and pegging sequences, and shows shuffled deals.

Cards are written as two characters, rank then suit (e.g., AS, TD, 5h).
Configuration is read from config.yaml (or CRIBBAGE_CONFIG_FILE) and
CRIBBAGE_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}

			if err := setupLogger(config.Instance(), cmd); err != nil {
				return err
			}

			if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
				color.NoColor = true
			}

			return nil
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newScoreCmd())
	root.AddCommand(newPegCmd())
	root.AddCommand(newDealCmd())

	return root
}

// Execute runs the root command with the process arguments
func Execute() error {
	return NewRootCmd().Execute()
}

func setupLogger(cfg config.Config, cmd *cobra.Command) error {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return err
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetOutput(cmd.ErrOrStderr())
	return nil
}

var (
	bold    = color.New(color.Bold)
	points  = color.New(color.FgGreen, color.Bold)
	warning = color.New(color.FgYellow)
)

func playerName(i int) string {
	return "P" + string(rune('1'+i))
}
