// Package cmd provides the root command and CLI setup for snakeshift.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"snakeshift.dev/pkg/snakeshift/internal/adapter"
	"snakeshift.dev/pkg/snakeshift/internal/controller"
	"snakeshift.dev/pkg/snakeshift/internal/domain"
	m "snakeshift.dev/pkg/snakeshift/internal/model"
)

var sourceFS adapter.SourceFS
var reportStore adapter.ReportStore
var ui controller.UI
var migrator domain.Migrator

// reportPathFlag is a root-level flag shared by commands that read or write
// the migration report.
var reportPathFlag string

// excludePatterns is a root-level flag that filters discovered files.
var excludePatterns []string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFS = adapter.NewLocalSourceFS()
	reportStore = adapter.NewReportStore()
	migrator = domain.NewMigrator(sourceFS, reportStore, ui)
}

const rootLongDescription = `Snakeshift migrates a C++ source tree from CamelCase file naming to
snake_case. Qualifying files (one source and one header extension) are
renamed, and their #include directives and namespace declarations are
rewritten to match, content first, rename second.

The rename plan is staged fully in memory and committed in path order, so
an aborted run leaves a clean boundary. A YAML report of every performed
rename is written after each run.`

const migrateLongDescription = `Migrate the given directory (default: current directory) to snake_case
naming: rewrite each qualifying file in place, then rename it.

Discovery is a recursive directory walk; pass --glob to match files in the
root directory only, the layout of older flat trees.`

const planLongDescription = `Stage the migration for the given directory (default: current directory)
and print the planned renames and rewrites without touching any file.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snakeshift",
		Short: "CamelCase to snake_case source tree migrator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportPathFlag, reportFlagName, "o",
			viper.GetString(reportFlagName),
			"path the migration report is written to",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parseRoot resolves the single optional positional argument, defaulting to
// the current directory.
func parseRoot(args []string) m.Path {
	if len(args) == 0 {
		return m.Path(".")
	}

	return m.Path(args[0])
}

func parseMode(glob bool) m.Mode {
	if glob {
		return m.ModeGlob
	}

	return m.ModeWalk
}

func extensionsFromConfig() m.ExtensionMap {
	return m.ExtensionMap{
		Source: viper.GetString(sourceExtKey),
		Target: viper.GetString(targetExtKey),
		Header: viper.GetString(headerExtKey),
	}
}
