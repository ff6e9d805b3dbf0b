package cmd

import (
	"errors"
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
	"github.com/vippsas/textscan"
)

var radixMode string

// per-literal parse outcome, dumped with repr
type numberReport struct {
	Input   string
	Long    any
	Double  any
	Decimal any
}

func parseRadixMode(name string) (textscan.RadixMode, error) {
	switch name {
	case "all":
		return textscan.RadixAll, nil
	case "only10":
		return textscan.RadixOnly10, nil
	case "nooctal":
		return textscan.RadixNoOctal, nil
	}
	return 0, fmt.Errorf("unknown radix mode %q (want all, only10 or nooctal)", name)
}

var numbersCmd = &cobra.Command{
	Use:   "numbers <literal>...",
	Short: "Parses each argument as int64, float64 and arbitrary-precision decimal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_ = cmd.Help()
			return errors.New("at least one literal required")
		}
		mode, err := parseRadixMode(radixMode)
		if err != nil {
			return err
		}
		for _, arg := range args {
			report := numberReport{Input: arg}
			if v, err := textscan.NewString(arg).ReadLong(mode); err != nil {
				report.Long = err.Error()
			} else {
				report.Long = v
			}
			if v, err := textscan.NewString(arg).ReadDouble(mode); err != nil {
				report.Double = err.Error()
			} else {
				report.Double = v
			}
			if v, err := textscan.NewString(arg).ReadDecimal(); err != nil {
				report.Decimal = err.Error()
			} else {
				report.Decimal = v.String()
			}
			fmt.Println(repr.String(report, repr.Indent("  ")))
		}
		return nil
	},
}

func init() {
	numbersCmd.Flags().StringVarP(&radixMode, "radix-mode", "r", "all", "radix prefix policy: all, only10 or nooctal")
	rootCmd.AddCommand(numbersCmd)
}
