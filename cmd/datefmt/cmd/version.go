package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build variables, set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "datefmt version %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", Commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
