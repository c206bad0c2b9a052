package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snakeshift.dev/pkg/snakeshift/internal/domain"
)

var planGlobFlag bool
var planDiffFlag bool

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [path]",
		Short: "Show planned renames and rewrites without applying them",
		Long:  planLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return migrator.Preview(domain.PreviewArgs{
				PlanArgs: domain.PlanArgs{
					Root:       parseRoot(args),
					Mode:       parseMode(planGlobFlag),
					Extensions: extensionsFromConfig(),
					Exclude:    viper.GetStringSlice(excludeConfigKey),
				},
				ShowDiff: planDiffFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&planGlobFlag, globFlagName, false, "match files in the root directory with a flat glob instead of walking recursively")
	cmd.Flags().BoolVar(&planDiffFlag, diffFlagName, false, "print a unified diff of each staged content rewrite")

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}
