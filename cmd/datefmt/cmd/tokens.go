package cmd

import (
	"fmt"

	"github.com/preston-bernstein/datefmt-service/internal/timeutil"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens PATTERN",
	Short: "Show how a pattern is scanned",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, seg := range timeutil.Tokenize(args[0]) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-7s %q\n", seg.Kind, seg.Text)
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
