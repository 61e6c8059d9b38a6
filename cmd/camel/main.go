// Command camel is the command line interface to the Arabic NLP toolkit.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "camel",
	Short: "Arabic natural language processing toolkit",
	Long: `camel provides Arabic text utilities (transliteration,
dediacritization, cleaning, tokenization), morphological analysis,
generation and reinflection, pretrained data management, and an HTTP
server exposing the same functionality.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
