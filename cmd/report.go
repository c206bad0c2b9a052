package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "snakeshift.dev/pkg/snakeshift/internal/model"
)

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the report of the last migration",
		Long:  "Show the saved report of the last migration run, including runs that aborted partway.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return migrator.ShowReport(m.Path(viper.GetString(reportFlagName)))
		},
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
