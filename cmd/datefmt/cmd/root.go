package cmd

import (
	"github.com/spf13/cobra"
)

var pattern string

var rootCmd = &cobra.Command{
	Use:           "datefmt",
	Short:         "Render dates with YYYY/MM/DD style patterns",
	Long:          `datefmt renders dates using token patterns (YYYY, MM, DD, HH, mm, ss). Characters outside tokens are copied as-is.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&pattern, "pattern", "p", "YYYY-MM-DD", "Output pattern")
}

func Execute() error {
	return rootCmd.Execute()
}
