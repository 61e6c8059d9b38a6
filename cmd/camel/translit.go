package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/camel-lab/camelgo/charmap"
	"github.com/camel-lab/camelgo/transliterate"
)

var (
	translitScheme string
	translitMarker string
	translitStrip  bool
	translitIgnore bool
	translitList   bool
	translitInput  string
	translitOutput string
)

var translitCmd = &cobra.Command{
	Use:   "transliterate",
	Short: "Transliterate text between Arabic transliteration schemes",
	Long: `Transliterates input line by line using a builtin mapping such as
ar2bw or bw2ar. Tokens prefixed with the marker are not transliterated;
they can be kept, stripped of the marker, or the marker can be ignored
entirely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if translitList {
			fmt.Println(strings.Join(charmap.BuiltinNames(), "\n"))
			return nil
		}

		translit, err := transliterate.NewBuiltin(translitScheme, translitMarker)
		if err != nil {
			return err
		}

		lines, err := readLines(translitInput)
		if err != nil {
			return err
		}
		out := make([]string, len(lines))
		for i, line := range lines {
			out[i] = translit.Transliterate(line, translitStrip, translitIgnore)
		}
		return writeLines(translitOutput, out)
	},
}

var (
	arcleanInput  string
	arcleanOutput string
)

var arcleanCmd = &cobra.Command{
	Use:   "arclean",
	Short: "Clean Arabic text",
	Long: `Normalizes spacing characters, unicode-deprecated presentation
forms, and ligatures in Arabic text, and removes non-Arabic characters
outside the basic Latin range.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mapper, err := charmap.Builtin("arclean")
		if err != nil {
			return err
		}

		lines, err := readLines(arcleanInput)
		if err != nil {
			return err
		}
		out := make([]string, len(lines))
		for i, line := range lines {
			out[i] = mapper.Map(line)
		}
		return writeLines(arcleanOutput, out)
	},
}

func init() {
	translitCmd.Flags().StringVarP(&translitScheme, "scheme", "s", "ar2bw", "transliteration scheme")
	translitCmd.Flags().StringVarP(&translitMarker, "marker", "m", transliterate.DefaultMarker, "ignore marker prefix")
	translitCmd.Flags().BoolVar(&translitStrip, "strip", false, "strip markers from marked tokens")
	translitCmd.Flags().BoolVar(&translitIgnore, "ignore-markers", false, "transliterate marked tokens too")
	translitCmd.Flags().BoolVarP(&translitList, "list", "l", false, "list builtin schemes")
	translitCmd.Flags().StringVarP(&translitInput, "input", "i", "", "input file (default stdin)")
	translitCmd.Flags().StringVarP(&translitOutput, "output", "o", "", "output file (default stdout)")

	arcleanCmd.Flags().StringVarP(&arcleanInput, "input", "i", "", "input file (default stdin)")
	arcleanCmd.Flags().StringVarP(&arcleanOutput, "output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(translitCmd, arcleanCmd)
}
