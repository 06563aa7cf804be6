package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexraskin/linkcraft/server"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), server.FormatBuildVersion(appVersion))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
