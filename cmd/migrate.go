package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snakeshift.dev/pkg/snakeshift/internal/domain"
	m "snakeshift.dev/pkg/snakeshift/internal/model"
)

var migrateGlobFlag bool

// migrateCmd represents the migrate command.
var migrateCmd = newMigrateCmd()

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [path]",
		Short: "Rename files and rewrite references in place",
		Long:  migrateLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return migrator.Migrate(domain.MigrateArgs{
				PlanArgs: domain.PlanArgs{
					Root:       parseRoot(args),
					Mode:       parseMode(migrateGlobFlag),
					Extensions: extensionsFromConfig(),
					Exclude:    viper.GetStringSlice(excludeConfigKey),
				},
				Report: m.Path(viper.GetString(reportFlagName)),
			})
		},
	}

	cmd.Flags().BoolVar(&migrateGlobFlag, globFlagName, false, "match files in the root directory with a flat glob instead of walking recursively")

	return cmd
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
