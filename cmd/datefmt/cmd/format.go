package cmd

import (
	"fmt"

	"github.com/preston-bernstein/datefmt-service/internal/timeutil"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format [DATE...]",
	Short: "Format one or more dates",
	Long: `Format each DATE (YYYY-MM-DD or RFC 3339) with --pattern, one line per date.
An empty argument is treated as no date and prints an empty line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		date, err := timeutil.ParseDate(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), timeutil.FormatDate(date, pattern))
	}
	return nil
}
