package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vippsas/textscan"
)

var (
	trimLines bool

	linesCmd = &cobra.Command{
		Use:   "lines <glob>...",
		Short: "Prints the numbered lines of every matching file",
		Long:  "Streams every file matching the glob patterns through the scanner's line reader and prints numbered lines. Files ending in .xz are decompressed on the fly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("at least one glob pattern required")
			}
			logger := logrus.StandardLogger()
			for _, pattern := range args {
				err := textscan.ScanFS(os.DirFS(directory), pattern, capacity,
					func(path string, s *textscan.Scanner) error {
						logger.WithField("file", path).Debug("scanning")
						s.SetMessageHandler(textscan.LogMessages(logger))
						for n := 1; ; n++ {
							line, ok := s.ReadLine(trimLines)
							if !ok {
								break
							}
							fmt.Printf("%s:%d: %s\n", path, n, line)
						}
						return s.Err()
					})
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
)

func init() {
	linesCmd.Flags().BoolVarP(&trimLines, "trim", "t", false, "strip surrounding whitespace from every line")
	rootCmd.AddCommand(linesCmd)
}
