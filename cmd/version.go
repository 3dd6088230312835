package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docsrv/docsrv/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "docsrv %s (%s)\n", version.BuildVersion(), version.Platform())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
