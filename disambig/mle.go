package disambig

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/oarkflow/json"
	"github.com/oarkflow/maps"

	"github.com/camel-lab/camelgo/data"
	"github.com/camel-lab/camelgo/dediac"
	"github.com/camel-lab/camelgo/morphology"
)

// MLEDisambiguator disambiguates words with a word-based maximum likelihood
// model, falling back to ranking analyzer output by pos-lex log
// probabilities for words outside the model.
type MLEDisambiguator struct {
	analyzer *morphology.Analyzer
	model    maps.IMap[string, morphology.Analysis]
}

// NewMLEDisambiguator builds a disambiguator around analyzer. When mlePath
// is nonempty it names a JSON file mapping dediacritized words to their most
// likely analysis.
func NewMLEDisambiguator(analyzer *morphology.Analyzer, mlePath string) (*MLEDisambiguator, error) {
	d := &MLEDisambiguator{analyzer: analyzer}

	if mlePath != "" {
		raw, err := os.ReadFile(mlePath)
		if err != nil {
			return nil, err
		}

		var model map[string]map[string]any
		if err := json.Unmarshal(raw, &model); err != nil {
			return nil, fmt.Errorf("disambig: decoding mle model: %w", err)
		}

		d.model = maps.New[string, morphology.Analysis]()
		for word, entry := range model {
			analysis := make(morphology.Analysis, len(entry))
			for feat, val := range entry {
				switch v := val.(type) {
				case string:
					analysis[feat] = v
				case float64:
					analysis[feat] = strconv.FormatFloat(v, 'g', -1, 64)
				case nil:
				default:
					analysis[feat] = fmt.Sprint(v)
				}
			}
			d.model.Set(word, analysis)
		}
	}

	return d, nil
}

// Pretrained builds an MLEDisambiguator from a catalogued model. An empty
// name selects the catalogue default. The matching morphology database is
// opened with proper-noun backoff and a bounded analysis cache.
func Pretrained(name string) (*MLEDisambiguator, error) {
	cat, err := data.Default()
	if err != nil {
		return nil, err
	}

	modelPath, err := cat.DatasetPath("DisambigMLE", name)
	if err != nil {
		return nil, err
	}

	db, err := morphology.BuiltinDB(name, "a")
	if err != nil {
		return nil, err
	}

	analyzer, err := morphology.NewAnalyzer(db, morphology.AnalyzerConfig{
		Backoff:   morphology.BackoffNoanProp,
		CacheSize: 100000,
	})
	if err != nil {
		return nil, err
	}

	return NewMLEDisambiguator(analyzer, filepath.Join(modelPath, "model.json"))
}

// Analyzer returns the underlying morphological analyzer.
func (d *MLEDisambiguator) Analyzer() *morphology.Analyzer {
	return d.analyzer
}

func posLexLogProb(analysis morphology.Analysis) float64 {
	raw, ok := analysis["pos_lex_logprob"]
	if !ok {
		return -99.0
	}
	logprob, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return -99.0
	}
	return logprob
}

// DisambiguateWord disambiguates the word at index in sentence.
func (d *MLEDisambiguator) DisambiguateWord(sentence []string, index, top int) DisambiguatedWord {
	word := sentence[index]
	wordDediac := dediac.AR(word)

	if d.model != nil {
		if analysis, ok := d.model.Get(wordDediac); ok {
			return DisambiguatedWord{
				Word:     word,
				Analyses: []ScoredAnalysis{{Score: 1.0, Analysis: analysis}},
			}
		}
	}

	analyses := d.analyzer.Analyze(wordDediac)
	if len(analyses) == 0 {
		return DisambiguatedWord{Word: word}
	}

	probs := make([]float64, len(analyses))
	maxProb := math.Inf(-1)
	for i, analysis := range analyses {
		probs[i] = math.Pow(10, posLexLogProb(analysis))
		if probs[i] > maxProb {
			maxProb = probs[i]
		}
	}

	scored := make([]ScoredAnalysis, len(analyses))
	for i, analysis := range analyses {
		scored[i] = ScoredAnalysis{Score: probs[i] / maxProb, Analysis: analysis}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		bwI := utf8.RuneCountInString(scored[i].Analysis["bw"])
		bwJ := utf8.RuneCountInString(scored[j].Analysis["bw"])
		if bwI != bwJ {
			return bwI < bwJ
		}
		return scored[i].Analysis["diac"] < scored[j].Analysis["diac"]
	})

	if top >= 1 && top < len(scored) {
		scored = scored[:top]
	}

	return DisambiguatedWord{Word: word, Analyses: scored}
}

// Disambiguate disambiguates every word of sentence.
func (d *MLEDisambiguator) Disambiguate(sentence []string, top int) []DisambiguatedWord {
	result := make([]DisambiguatedWord, len(sentence))
	for i := range sentence {
		result[i] = d.DisambiguateWord(sentence, i, top)
	}
	return result
}
