package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/camel-lab/camelgo/disambig"
	"github.com/camel-lab/camelgo/tokenizer"
)

var (
	tokenizeMorph       string
	tokenizeDataset     string
	tokenizeSplit       bool
	tokenizeSplitDigits bool
	tokenizeList        bool
	tokenizeInput       string
	tokenizeOutput      string
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize",
	Short: "Tokenize text",
	Long: `Splits each input line into word and punctuation tokens. With
--morph, words are further segmented into morphemes according to a
tokenization scheme, using a pretrained disambiguator.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenizeList {
			fmt.Println(strings.Join(tokenizer.MorphSchemes(), "\n"))
			return nil
		}

		lines, err := readLines(tokenizeInput)
		if err != nil {
			return err
		}

		var morphTok *tokenizer.MorphologicalTokenizer
		if tokenizeMorph != "" {
			d, err := disambig.Pretrained(tokenizeDataset)
			if err != nil {
				return err
			}
			morphTok, err = tokenizer.NewMorphologicalTokenizer(d, tokenizeMorph, tokenizeSplit)
			if err != nil {
				return err
			}
		}

		out := make([]string, len(lines))
		for i, line := range lines {
			tokens := tokenizer.SimpleWordTokenize(line, tokenizeSplitDigits)
			if morphTok != nil {
				tokens = morphTok.Tokenize(tokens)
			}
			out[i] = strings.Join(tokens, " ")
		}
		return writeLines(tokenizeOutput, out)
	},
}

func init() {
	tokenizeCmd.Flags().StringVarP(&tokenizeMorph, "morph", "m", "", "morphological tokenization scheme")
	tokenizeCmd.Flags().StringVarP(&tokenizeDataset, "dataset", "d", "", "pretrained dataset name (default from catalogue)")
	tokenizeCmd.Flags().BoolVar(&tokenizeSplit, "split", false, "emit morphemes as separate tokens")
	tokenizeCmd.Flags().BoolVar(&tokenizeSplitDigits, "split-digits", false, "separate digit runs into their own tokens")
	tokenizeCmd.Flags().BoolVarP(&tokenizeList, "list", "l", false, "list morphological schemes")
	tokenizeCmd.Flags().StringVarP(&tokenizeInput, "input", "i", "", "input file (default stdin)")
	tokenizeCmd.Flags().StringVarP(&tokenizeOutput, "output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(tokenizeCmd)
}
