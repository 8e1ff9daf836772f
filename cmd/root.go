package cmd

import (
	"fmt"
	"os"

	"config-diff/core/config"
	"config-diff/core/logger"
	"config-diff/core/report"
	"config-diff/feature/compare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputFlag  string
	filterFlag  string
	ignoreFlag  []string
	workersFlag int
	summaryFlag bool
)

// RootCmd compares configuration folders when called without a subcommand.
var RootCmd = &cobra.Command{
	Use:   "configdiff <help_folder> <config_folder_1> <config_folder_2> [<config_folder_N> ...]",
	Short: "Compare INI configuration files across folders",
	Long: `configdiff compares the INI files found in two or more folders, key by key.
Help text and default values are read from <help_folder>/<file name>.csv when present.
The difference report is written to result.csv unless --output is given.`,
	Args:          usageArgs(1+compare.MinFolders),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(applyCompareFlags(cmd))
		if err != nil {
			return err
		}
		defer a.close()

		res, err := a.compare.Execute(cmd.Context(), args[0], args[1:])
		if err != nil {
			return err
		}

		if summaryFlag {
			files := make([]report.FileSummary, 0, len(res.Files))
			for _, f := range res.Files {
				files = append(files, report.FileSummary{File: f.File, Summary: f.Summary})
			}
			if err := report.RenderSummary(cmd.OutOrStdout(), files); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Comparison finished. See %s for the report.\n", a.compare.Config().Output)
		return nil
	},
}

// usageArgs requires at least n arguments and prints usage when they are missing.
func usageArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			_ = cmd.Usage()
			return fmt.Errorf("%w: got %d argument(s), need a help folder and at least %d config folders",
				compare.ErrNotEnoughFolders, len(args), compare.MinFolders)
		}
		return nil
	}
}

// folderCollision rejects positional arguments on first-level commands whose
// name may also be a help folder, e.g. "configdiff reports a b".
func folderCollision(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return fmt.Errorf("%q is a configdiff command; to compare a folder with that name pass it as ./%s",
		cmd.Name(), cmd.Name())
}

// helpCmd replaces cobra's help command so "configdiff help a b" fails
// instead of printing an unknown help topic.
var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _, err := RootCmd.Find(args)
		if err != nil || (target == RootCmd && len(args) > 0) {
			return folderCollision(cmd, args)
		}
		return target.Help()
	},
}

// applyCompareFlags copies explicitly set flags over the loaded configuration.
func applyCompareFlags(cmd *cobra.Command) func(*config.Config) {
	return func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("output") {
			cfg.Compare.Output = outputFlag
		}
		if flags.Changed("filter") {
			cfg.Compare.Filter = filterFlag
		}
		if flags.Changed("ignore") {
			cfg.Compare.IgnoreSubstrings = ignoreFlag
		}
		if flags.Changed("workers") {
			cfg.Compare.Workers = workersFlag
		}
	}
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable ISO8601 timestamps for a CLI.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	// "completion" would shadow a help folder of that name.
	RootCmd.CompletionOptions.DisableDefaultCmd = true
	RootCmd.SetHelpCommand(helpCmd)

	RootCmd.Flags().StringVarP(&outputFlag, "output", "o", "result.csv", "Report file path")
	RootCmd.Flags().StringVar(&filterFlag, "filter", "*", "Glob that file names must match")
	RootCmd.Flags().StringSliceVar(&ignoreFlag, "ignore", nil, "Skip file names containing this substring (repeatable)")
	RootCmd.Flags().IntVar(&workersFlag, "workers", 4, "Number of files compared concurrently")
	RootCmd.Flags().BoolVar(&summaryFlag, "summary", false, "Print a per-file summary table")
}
