package cmd

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vippsas/textscan"
)

var (
	syntaxName string
	stopChar   string

	extractCmd = &cobra.Command{
		Use:   "extract <glob>...",
		Short: "Splits matching files into fields using a named syntax from textscan.yaml",
		Long:  "Runs the syntax-driven scanner over every matching file, splitting the input at the stop character while honoring the quoting, escaping and entity rules of the configured syntax.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("at least one glob pattern required")
			}
			stop, size := utf8.DecodeRuneInString(stopChar)
			if size != len(stopChar) || stop == utf8.RuneError {
				return errors.New("--stop must be a single character")
			}
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			syn, err := config.Syntax(syntaxName)
			if err != nil {
				return err
			}
			logger := logrus.StandardLogger()
			for _, pattern := range args {
				err := textscan.ScanFS(os.DirFS(directory), pattern, capacity,
					func(path string, s *textscan.Scanner) error {
						s.SetMessageHandler(textscan.LogMessages(logger))
						for i := 1; s.HasNext(); i++ {
							field, ok, err := s.ReadUntilSyntax(stop, syn, true)
							if err != nil {
								return err
							}
							if !ok {
								break
							}
							fmt.Printf("%s:%d: %s\n", path, i, field)
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
	extractCmd.Flags().StringVarP(&syntaxName, "syntax", "s", "", "name of a syntax from textscan.yaml")
	extractCmd.Flags().StringVar(&stopChar, "stop", ",", "field separator character")
	_ = extractCmd.MarkFlagRequired("syntax")
	rootCmd.AddCommand(extractCmd)
}
