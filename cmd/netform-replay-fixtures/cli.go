package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netform-dev/netform/internal/config"
	"github.com/netform-dev/netform/internal/log"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *log.Logger

	fixturesDirFlag string
	verbose         bool
	quiet           bool
)

var rootCmd = &cobra.Command{
	Use:   "netform-replay-fixtures",
	Short: "Replay the diff fixture corpus and verify expectations.",
	Long: `netform-replay-fixtures loads every *.json fixture under a fixtures
directory, in path-sorted order, runs each through the parse/compare/diff
pipeline, and checks has_changes, edit_types, and finding_codes against the
fixture's expected block. It stops and reports the first mismatch.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.LoadConfigWithFlags(cfgFile, cmd.Flags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logLevel := cfg.Logging.Level
		switch {
		case quiet:
			logLevel = "error"
		case verbose:
			logLevel = "debug"
		}
		logger, err = log.New(log.Config{
			Level:           logLevel,
			Format:          cfg.Logging.Format,
			Output:          os.Stderr,
			ReportCaller:    false,
			ReportTimestamp: true,
		})
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		return nil
	},
	RunE: runReplayFixtures,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default: $HOME/.config-diff.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all logging except errors")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Flags().StringVar(&fixturesDirFlag, "fixtures-dir", "fixtures", "Directory containing *.json fixture files")
	rootCmd.Flags().SortFlags = false
}
