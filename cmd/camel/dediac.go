package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/camel-lab/camelgo/dediac"
)

var dediacFuncs = map[string]func(string) string{
	"ar":     dediac.AR,
	"bw":     dediac.BW,
	"safebw": dediac.SafeBW,
	"xmlbw":  dediac.XMLBW,
	"hsb":    dediac.HSB,
}

var (
	dediacScheme string
	dediacList   bool
	dediacInput  string
	dediacOutput string
)

var dediacCmd = &cobra.Command{
	Use:   "dediac",
	Short: "Remove diacritical marks from text",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dediacList {
			schemes := make([]string, 0, len(dediacFuncs))
			for scheme := range dediacFuncs {
				schemes = append(schemes, scheme)
			}
			sort.Strings(schemes)
			fmt.Println(strings.Join(schemes, "\n"))
			return nil
		}

		fn, ok := dediacFuncs[dediacScheme]
		if !ok {
			return fmt.Errorf("invalid scheme %q", dediacScheme)
		}

		lines, err := readLines(dediacInput)
		if err != nil {
			return err
		}
		out := make([]string, len(lines))
		for i, line := range lines {
			out[i] = fn(line)
		}
		return writeLines(dediacOutput, out)
	},
}

func init() {
	dediacCmd.Flags().StringVarP(&dediacScheme, "scheme", "s", "ar", "encoding scheme of the input")
	dediacCmd.Flags().BoolVarP(&dediacList, "list", "l", false, "list supported schemes")
	dediacCmd.Flags().StringVarP(&dediacInput, "input", "i", "", "input file (default stdin)")
	dediacCmd.Flags().StringVarP(&dediacOutput, "output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(dediacCmd)
}
