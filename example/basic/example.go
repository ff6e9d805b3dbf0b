package example

import (
	"embed"

	"github.com/vippsas/textscan"
)

//go:embed *.csv
var fixtures embed.FS

// csv-ish field splitting: double quotes protect separators, doubling
// escapes a quote
var fieldSyntax = &textscan.Syntax{
	QuoteStart:  '"',
	QuoteEnd:    '"',
	QuoteEscape: '"',
}

// Records parses every embedded fixture file into rows of unquoted fields.
func Records() (map[string][][]string, error) {
	result := make(map[string][][]string)
	err := textscan.ScanFS(fixtures, "*.csv", 0, func(path string, s *textscan.Scanner) error {
		var rows [][]string
		for s.HasNext() {
			line, ok := s.ReadLine(false)
			if !ok {
				break
			}
			row, err := splitRow(line)
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}
		result[path] = rows
		return nil
	})
	return result, err
}

func splitRow(line string) ([]string, error) {
	s := textscan.NewString(line)
	var row []string
	for {
		field, ok, err := s.ReadUntilSyntax(',', fieldSyntax, true)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		row = append(row, field)
		if !s.HasNext() {
			break
		}
	}
	return row, nil
}
