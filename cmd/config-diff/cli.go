// Command config-diff compares two textual device configurations and
// prints a Markdown report, a Diff JSON document, or a remediation Plan
// JSON document, per spec §6.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netform-dev/netform/internal/config"
	"github.com/netform-dev/netform/internal/log"
)

const configDiffRequiredArgs = 2

var (
	cfgFile string         //nolint:gochecknoglobals // CLI config file path
	cfg     *config.Config //nolint:gochecknoglobals // resolved configuration
	logger  *log.Logger    //nolint:gochecknoglobals // application logger

	jsonOutput    bool   //nolint:gochecknoglobals // Cobra flag variable
	yamlOutput    bool   //nolint:gochecknoglobals // Cobra flag variable
	planJSON      bool   //nolint:gochecknoglobals // Cobra flag variable
	ignoreComments bool  //nolint:gochecknoglobals // Cobra flag variable
	ignoreBlankLines bool //nolint:gochecknoglobals // Cobra flag variable
	normalizeWhitespace bool //nolint:gochecknoglobals // Cobra flag variable
	orderPolicyFlag string //nolint:gochecknoglobals // Cobra flag variable
	dialectFlag     string //nolint:gochecknoglobals // Cobra flag variable
	colorFlag       string //nolint:gochecknoglobals // Cobra flag variable
	verbose         bool   //nolint:gochecknoglobals // Cobra flag variable
	quiet           bool   //nolint:gochecknoglobals // Cobra flag variable
)

var rootCmd = &cobra.Command{ //nolint:gochecknoglobals // Cobra root command
	Use:   "config-diff <file_a> <file_b>",
	Short: "Compare two device configuration files and report the difference.",
	Long: `config-diff parses two textual device configurations into a lossless
indentation tree, normalizes and identity-keys each line, computes a
two-tier Myers shortest-edit-script diff, and reports the result as a
Markdown document (default), a Diff JSON document (--json), a Diff YAML
document (--yaml), or a transport-neutral remediation Plan JSON document
(--plan-json).`,
	Args: cobra.ExactArgs(configDiffRequiredArgs),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.LoadConfigWithFlags(cfgFile, cmd.Flags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if !cmd.Flags().Changed("dialect") {
			dialectFlag = cfg.DefaultDialect
		}
		if !cmd.Flags().Changed("order-policy") {
			orderPolicyFlag = cfg.DefaultOrderPolicy
		}
		if !cmd.Flags().Changed("json") && !yamlOutput {
			jsonOutput = cfg.Output.JSON
		}

		logLevel := cfg.Logging.Level
		if quiet {
			logLevel = "error"
		} else if verbose {
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

		return validateFlags()
	},
	RunE: runConfigDiff,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default: $HOME/.config-diff.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all logging except errors")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the Diff as JSON instead of Markdown")
	rootCmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Emit the Diff as YAML instead of Markdown")
	rootCmd.Flags().BoolVar(&planJSON, "plan-json", false, "Emit the remediation Plan as JSON (overrides --json and --yaml)")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rootCmd.Flags().BoolVar(&ignoreComments, "ignore-comments", false, "Drop comment lines before diffing")
	rootCmd.Flags().BoolVar(&ignoreBlankLines, "ignore-blank-lines", false, "Drop blank lines before diffing")
	rootCmd.Flags().BoolVar(&normalizeWhitespace, "normalize-whitespace", false, "Collapse internal whitespace runs before diffing")
	rootCmd.Flags().StringVar(&orderPolicyFlag, "order-policy", "ordered", "Line-diff policy: ordered, unordered, or keyed-stable")
	rootCmd.Flags().StringVar(&dialectFlag, "dialect", "generic", "Vendor dialect: generic, eos, iosxe, or junos")
	rootCmd.Flags().StringVar(&colorFlag, "color", "auto", "Terminal styling: auto, always, or never")

	rootCmd.Flags().SortFlags = false
}

