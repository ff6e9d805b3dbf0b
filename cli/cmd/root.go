package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "textscan",
		Short:        "textscan",
		SilenceUsage: true,
		Long:         `CLI tool for running the textscan character-stream scanner over files: line dumps, number parsing and syntax-driven extraction. See README.md.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	directory string
	capacity  int
	verbose   bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory that glob patterns are resolved against")
	rootCmd.PersistentFlags().IntVarP(&capacity, "capacity", "c", 0, "scanner buffer capacity (0 selects the default)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return rootCmd.Execute()
}
