package main

import (
	"fmt"
	"strings"

	"github.com/oarkflow/json"
	"github.com/spf13/cobra"

	"github.com/camel-lab/camelgo/morphology"
)

var (
	morphDBPath  string
	morphDataset string
	morphBackoff string
	morphInput   string
	morphOutput  string
)

var morphCmd = &cobra.Command{
	Use:   "morphology",
	Short: "Morphological analysis, generation, and reinflection",
}

func openMorphDB(flags string) (*morphology.DB, error) {
	if morphDBPath != "" {
		return morphology.OpenDBCached(morphDBPath, flags)
	}
	return morphology.BuiltinDB(morphDataset, flags)
}

// parseFeats turns feat=value arguments into a feature map.
func parseFeats(args []string) (map[string]string, error) {
	feats := make(map[string]string, len(args))
	for _, arg := range args {
		feat, val, ok := strings.Cut(arg, "=")
		if !ok || feat == "" {
			return nil, fmt.Errorf("invalid feature %q, expected feat=value", arg)
		}
		feats[feat] = val
	}
	return feats, nil
}

func marshalAnalyses(analyses []morphology.Analysis) (string, error) {
	raw, err := json.Marshal(analyses)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

var morphAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze words out of context",
	Long: `Analyzes each whitespace-separated word of the input and prints
one JSON array of analyses per word.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openMorphDB("a")
		if err != nil {
			return err
		}
		analyzer, err := morphology.NewAnalyzer(db, morphology.AnalyzerConfig{
			Backoff: morphBackoff,
		})
		if err != nil {
			return err
		}

		lines, err := readLines(morphInput)
		if err != nil {
			return err
		}

		var out []string
		for _, line := range lines {
			for _, aw := range analyzer.AnalyzeWords(strings.Fields(line)) {
				encoded, err := marshalAnalyses(aw.Analyses)
				if err != nil {
					return err
				}
				out = append(out, aw.Word+"\t"+encoded)
			}
		}
		return writeLines(morphOutput, out)
	},
}

var morphGenerateCmd = &cobra.Command{
	Use:   "generate lemma [feat=value...]",
	Short: "Generate inflections of a lemma",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feats, err := parseFeats(args[1:])
		if err != nil {
			return err
		}

		db, err := openMorphDB("g")
		if err != nil {
			return err
		}
		generator, err := morphology.NewGenerator(db)
		if err != nil {
			return err
		}

		analyses, err := generator.Generate(args[0], feats)
		if err != nil {
			return err
		}
		encoded, err := marshalAnalyses(analyses)
		if err != nil {
			return err
		}
		return writeLines(morphOutput, []string{encoded})
	},
}

var morphReinflectCmd = &cobra.Command{
	Use:   "reinflect word [feat=value...]",
	Short: "Reinflect a word with new features",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feats, err := parseFeats(args[1:])
		if err != nil {
			return err
		}

		db, err := openMorphDB("r")
		if err != nil {
			return err
		}
		reinflector, err := morphology.NewReinflector(db)
		if err != nil {
			return err
		}

		analyses, err := reinflector.Reinflect(args[0], feats)
		if err != nil {
			return err
		}
		encoded, err := marshalAnalyses(analyses)
		if err != nil {
			return err
		}
		return writeLines(morphOutput, []string{encoded})
	},
}

func init() {
	morphCmd.PersistentFlags().StringVar(&morphDBPath, "db", "", "path to a local morphology database")
	morphCmd.PersistentFlags().StringVarP(&morphDataset, "dataset", "d", "", "pretrained dataset name (default from catalogue)")
	morphCmd.PersistentFlags().StringVarP(&morphOutput, "output", "o", "", "output file (default stdout)")
	morphAnalyzeCmd.Flags().StringVarP(&morphInput, "input", "i", "", "input file (default stdin)")
	morphAnalyzeCmd.Flags().StringVarP(&morphBackoff, "backoff", "b", morphology.BackoffNone, "backoff mode (NONE, NOAN_ALL, NOAN_PROP, ADD_ALL, ADD_PROP)")

	morphCmd.AddCommand(morphAnalyzeCmd, morphGenerateCmd, morphReinflectCmd)
	rootCmd.AddCommand(morphCmd)
}
