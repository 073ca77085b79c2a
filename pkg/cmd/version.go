package cmd

import (
	"github.com/alibaba/arraystack/version"
	"github.com/spf13/cobra"
)

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "show version",
		Run: func(cmd *cobra.Command, _ []string) {
			version.PrintVersion(cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.AddCommand(versionCmd)
}
