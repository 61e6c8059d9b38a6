// Package dialectid identifies the Arabic dialect of a sentence by scoring
// it against per-dialect character and word n-gram language models.
package dialectid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/devchat-ai/gopool"
	"github.com/daniel-hutao/spinlock"
	"github.com/oarkflow/log"

	"github.com/camel-lab/camelgo/dediac"
	"github.com/camel-lab/camelgo/lib"
	"github.com/camel-lab/camelgo/tokenizer"
)

// ErrUntrainedModel is returned when predicting with an untrained
// identifier.
var ErrUntrainedModel = errors.New("dialectid: model has not been trained")

// InvalidDataSetError is returned when a training or evaluation data set
// cannot be used.
type InvalidDataSetError struct {
	Path string
	Msg  string
}

func (e *InvalidDataSetError) Error() string {
	return fmt.Sprintf("dialectid: invalid data set %q: %s", e.Path, e.Msg)
}

// Prediction holds the result of identifying one sentence.
type Prediction struct {
	// Top is the dialect label with the highest score.
	Top string
	// Scores maps every dialect label to its normalized score.
	Scores map[string]float64
}

var defaultLabels = []string{
	"ALE", "ALG", "ALX", "AMM", "ASW", "BAG", "BAS", "BEI", "BEN", "CAI",
	"DAM", "DOH", "FES", "JED", "JER", "KHA", "MOS", "MSA", "MUS", "RAB",
	"RIY", "SAL", "SAN", "SFX", "TRI", "TUN",
}

var extraLabels = []string{"BEI", "CAI", "DOH", "MSA", "RAB", "TUN"}

var labelNames = map[string]string{
	"ALE": "Aleppo",
	"ALG": "Algiers",
	"ALX": "Alexandria",
	"AMM": "Amman",
	"ASW": "Aswan",
	"BAG": "Baghdad",
	"BAS": "Basra",
	"BEI": "Beirut",
	"BEN": "Benghazi",
	"CAI": "Cairo",
	"DAM": "Damascus",
	"DOH": "Doha",
	"FES": "Fes",
	"JED": "Jeddha",
	"JER": "Jerusalem",
	"KHA": "Khartoum",
	"MOS": "Mosul",
	"MSA": "Modern Standard Arabic",
	"MUS": "Muscat",
	"RAB": "Rabat",
	"RIY": "Riyadh",
	"SAL": "Salt",
	"SAN": "Sana'a",
	"SFX": "Sfax",
	"TRI": "Tripoli",
	"TUN": "Tunis",
}

// DefaultLabels returns the 26 city labels of the main model.
func DefaultLabels() []string {
	out := make([]string, len(defaultLabels))
	copy(out, defaultLabels)
	return out
}

// ExtraLabels returns the 6 city labels of the extra model.
func ExtraLabels() []string {
	out := make([]string, len(extraLabels))
	copy(out, extraLabels)
	return out
}

// LabelName returns the city name of a dialect label.
func LabelName(label string) (string, bool) {
	name, ok := labelNames[label]
	return name, ok
}

// Config configures an Identifier.
type Config struct {
	// Labels overrides DefaultLabels when non-empty.
	Labels []string
	// CharOrder is the order of the character language models. Defaults
	// to 3.
	CharOrder int
	// WordOrder is the order of the word language models. Defaults to 1.
	WordOrder int
	// Workers bounds the training worker pool. Defaults to 4.
	Workers int
}

// Identifier scores sentences against per-dialect character and word n-gram
// language models. Train or Load must be called before Predict.
type Identifier struct {
	labels    []string
	charOrder int
	wordOrder int
	workers   int

	mu      sync.RWMutex
	charLMs map[string]*ngramModel
	wordLMs map[string]*ngramModel
	trained bool
}

// New builds an untrained Identifier.
func New(cfg Config) *Identifier {
	labels := cfg.Labels
	if len(labels) == 0 {
		labels = DefaultLabels()
	} else {
		labels = lib.Unique(labels)
	}
	sort.Strings(labels)

	charOrder := cfg.CharOrder
	if charOrder <= 0 {
		charOrder = 3
	}
	wordOrder := cfg.WordOrder
	if wordOrder <= 0 {
		wordOrder = 1
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}

	return &Identifier{
		labels:    labels,
		charOrder: charOrder,
		wordOrder: wordOrder,
		workers:   workers,
		charLMs:   map[string]*ngramModel{},
		wordLMs:   map[string]*ngramModel{},
	}
}

// Labels returns the labels the identifier was built with.
func (d *Identifier) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

func prepareSentence(s string) string {
	return strings.Join(tokenizer.SimpleWordTokenize(dediac.AR(s), false), " ")
}

// ReadDataSet reads a tab-separated training or evaluation file with "ar"
// and "dialect" columns, returning sentences grouped by dialect label.
func ReadDataSet(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, &InvalidDataSetError{Path: path, Msg: "missing header"}
	}

	arCol, dialectCol := -1, -1
	for i, name := range header {
		switch name {
		case "ar":
			arCol = i
		case "dialect":
			dialectCol = i
		}
	}
	if arCol < 0 || dialectCol < 0 {
		return nil, &InvalidDataSetError{Path: path, Msg: "missing ar or dialect column"}
	}

	samples := map[string][]string{}
	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		if len(record) <= arCol || len(record) <= dialectCol {
			continue
		}
		label := record[dialectCol]
		samples[label] = append(samples[label], record[arCol])
	}

	return samples, nil
}

// Train fits one character and one word language model per label from the
// tab-separated data set at dataPath. Samples with labels outside the
// identifier's label set are skipped.
func (d *Identifier) Train(dataPath string) error {
	samples, err := ReadDataSet(dataPath)
	if err != nil {
		return err
	}
	return d.TrainSamples(samples)
}

// TrainSamples fits the language models from sentences grouped by label.
func (d *Identifier) TrainSamples(samples map[string][]string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	charLMs := map[string]*ngramModel{}
	wordLMs := map[string]*ngramModel{}
	for _, label := range d.labels {
		charLMs[label] = newNgramModel(d.charOrder)
		wordLMs[label] = newNgramModel(d.wordOrder)
	}

	pool := gopool.NewGoPool(min(d.workers, len(d.labels)),
		gopool.WithTaskQueueSize(len(d.labels)),
		gopool.WithLock(new(spinlock.SpinLock)),
		gopool.WithErrorCallback(func(err error) {
			log.Error().Err(err).Msg("dialect lm training task failed")
		}),
	)
	defer pool.Release()

	trainedSamples := 0
	for _, label := range d.labels {
		label := label
		sentences := samples[label]
		trainedSamples += len(sentences)

		pool.AddTask(func() (interface{}, error) {
			charLM := charLMs[label]
			wordLM := wordLMs[label]
			for _, sentence := range sentences {
				prepared := prepareSentence(sentence)
				charLM.Add(charTokens(prepared))
				wordLM.Add(strings.Fields(prepared))
			}
			return nil, nil
		})
	}
	pool.Wait()

	if trainedSamples == 0 {
		return &InvalidDataSetError{Path: "", Msg: "no samples match the label set"}
	}

	d.charLMs = charLMs
	d.wordLMs = wordLMs
	d.trained = true

	log.Info().Int("labels", len(d.labels)).Int("samples", trainedSamples).
		Msg("trained dialect language models")
	return nil
}

// normalizeScores turns per-label log scores into a probability
// distribution.
func normalizeScores(scores map[string]float64) map[string]float64 {
	maxScore := math.Inf(-1)
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	var sum float64
	normalized := make(map[string]float64, len(scores))
	for label, s := range scores {
		normalized[label] = math.Pow(10, s-maxScore)
		sum += normalized[label]
	}
	for label := range normalized {
		normalized[label] /= sum
	}
	return normalized
}

// PredictSentence identifies the dialect of a single sentence.
func (d *Identifier) PredictSentence(sentence string) (Prediction, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.trained {
		return Prediction{}, ErrUntrainedModel
	}

	prepared := prepareSentence(sentence)
	chars := charTokens(prepared)
	words := strings.Fields(prepared)

	charScores := make(map[string]float64, len(d.labels))
	wordScores := make(map[string]float64, len(d.labels))
	for _, label := range d.labels {
		charScores[label] = d.charLMs[label].Score(chars)
		wordScores[label] = d.wordLMs[label].Score(words)
	}

	charProbs := normalizeScores(charScores)
	wordProbs := normalizeScores(wordScores)

	scores := make(map[string]float64, len(d.labels))
	top := ""
	best := -1.0
	for _, label := range d.labels {
		scores[label] = (charProbs[label] + wordProbs[label]) / 2
		if scores[label] > best {
			best = scores[label]
			top = label
		}
	}

	return Prediction{Top: top, Scores: scores}, nil
}

// Predict identifies the dialect of every sentence.
func (d *Identifier) Predict(sentences []string) ([]Prediction, error) {
	predictions := make([]Prediction, len(sentences))
	for i, sentence := range sentences {
		pred, err := d.PredictSentence(sentence)
		if err != nil {
			return nil, err
		}
		predictions[i] = pred
	}
	return predictions, nil
}

// Eval returns the accuracy of the trained model on a labeled data set.
func (d *Identifier) Eval(dataPath string) (float64, error) {
	samples, err := ReadDataSet(dataPath)
	if err != nil {
		return 0, err
	}

	total, correct := 0, 0
	for label, sentences := range samples {
		for _, sentence := range sentences {
			pred, err := d.PredictSentence(sentence)
			if err != nil {
				return 0, err
			}
			total++
			if pred.Top == label {
				correct++
			}
		}
	}

	if total == 0 {
		return 0, &InvalidDataSetError{Path: dataPath, Msg: "no samples"}
	}
	return float64(correct) / float64(total), nil
}

type modelSnapshot struct {
	Labels    []string
	CharOrder int
	WordOrder int
	CharLMs   map[string]*ngramModel
	WordLMs   map[string]*ngramModel
}

// Save writes the trained language models to path as compressed
// MessagePack.
func (d *Identifier) Save(path string) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.trained {
		return ErrUntrainedModel
	}

	raw, err := lib.Serialize(modelSnapshot{
		Labels:    d.labels,
		CharOrder: d.charOrder,
		WordOrder: d.wordOrder,
		CharLMs:   d.charLMs,
		WordLMs:   d.wordLMs,
	})
	if err != nil {
		return err
	}

	compressed, err := lib.Compress(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(path, compressed, 0o644)
}

// Load restores language models written by Save.
func (d *Identifier) Load(path string) error {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	raw, err := lib.Decompress(compressed)
	if err != nil {
		return err
	}

	snapshot, err := lib.Deserialize[modelSnapshot](raw)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.labels = snapshot.Labels
	d.charOrder = snapshot.CharOrder
	d.wordOrder = snapshot.WordOrder
	d.charLMs = snapshot.CharLMs
	d.wordLMs = snapshot.WordLMs
	d.trained = true
	return nil
}
