package morphology

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/devchat-ai/gopool"
	"github.com/daniel-hutao/spinlock"
	"github.com/oarkflow/log"

	"github.com/camel-lab/camelgo/charmap"
	"github.com/camel-lab/camelgo/charsets"
	"github.com/camel-lab/camelgo/dediac"
)

// Backoff modes.
const (
	BackoffNone     = "NONE"
	BackoffNoanAll  = "NOAN_ALL"
	BackoffNoanProp = "NOAN_PROP"
	BackoffAddAll   = "ADD_ALL"
	BackoffAddProp  = "ADD_PROP"
)

var backoffModes = map[string]struct{}{
	BackoffNone:     {},
	BackoffNoanAll:  {},
	BackoffNoanProp: {},
	BackoffAddAll:   {},
	BackoffAddProp:  {},
}

// DefaultNormalizeMap is the character map applied to input words before
// segmentation. It removes tatweel and collapses alef, alef maksura and teh
// marbuta variants.
var DefaultNormalizeMap = func() *charmap.Mapper {
	m, err := charmap.New(map[string]*string{
		"إ": strPtr("ا"),
		"أ": strPtr("ا"),
		"آ": strPtr("ا"),
		"ٱ": strPtr("ا"),
		"ى": strPtr("ي"),
		"ة": strPtr("ه"),
		"ـ": strPtr(""),
	}, nil)
	if err != nil {
		panic(err)
	}
	return m
}()

func strPtr(s string) *string { return &s }

var (
	isDigitRe       = regexp.MustCompile(`[0-9\x{0660}-\x{0669}]`)
	isStrictDigitRe = regexp.MustCompile(`^[0-9\x{0660}-\x{0669}]+$`)
	noanRe          = regexp.MustCompile(`NOAN`)
)

// Features copied verbatim from the input word for digit, punctuation and
// foreign words.
var copyFeats = []string{"gloss", "atbtok", "atbseg", "d1tok", "d1seg",
	"d2tok", "d2seg", "d3tok", "d3seg", "bwtok"}

var undefinedLexFeats = []string{"root", "pattern", "caphi"}

// AnalyzedWord pairs a word with its analyses.
type AnalyzedWord struct {
	Word     string
	Analyses []Analysis
}

// AnalyzerConfig configures an Analyzer.
type AnalyzerConfig struct {
	// Backoff selects how words without analyses are handled. Defaults to
	// BackoffNone.
	Backoff string
	// NormMap overrides DefaultNormalizeMap when non-nil.
	NormMap *charmap.Mapper
	// StrictDigit restricts the digit special case to words made up
	// entirely of digits.
	StrictDigit bool
	// CacheSize bounds the analysis LRU cache. Zero disables caching.
	CacheSize int
	// Workers bounds the worker pool used by AnalyzeWords. Defaults to 4.
	Workers int
}

// Analyzer produces morphological analyses of Arabic words from a DB opened
// for analysis.
type Analyzer struct {
	db               *DB
	backoffCondition string
	backoffAction    string
	normMap          *charmap.Mapper
	strictDigit      bool
	cache            *analysisCache
	workers          int
}

// NewAnalyzer builds an Analyzer over db.
func NewAnalyzer(db *DB, cfg AnalyzerConfig) (*Analyzer, error) {
	if db == nil {
		return nil, &AnalyzerError{Msg: "analyzer db is nil"}
	}
	if !db.Flags.Analysis {
		return nil, &AnalyzerError{Msg: "db does not support analysis"}
	}

	backoff := cfg.Backoff
	if backoff == "" {
		backoff = BackoffNone
	}
	if _, ok := backoffModes[backoff]; !ok {
		return nil, &AnalyzerError{Msg: fmt.Sprintf("invalid backoff mode %q", backoff)}
	}

	a := &Analyzer{
		db:          db,
		normMap:     cfg.NormMap,
		strictDigit: cfg.StrictDigit,
		workers:     cfg.Workers,
	}
	if a.normMap == nil {
		a.normMap = DefaultNormalizeMap
	}
	if a.workers <= 0 {
		a.workers = 4
	}
	if backoff != BackoffNone {
		condition, action, _ := strings.Cut(backoff, "_")
		a.backoffCondition = condition
		a.backoffAction = action
	}
	if cfg.CacheSize > 0 {
		a.cache = newAnalysisCache(cfg.CacheSize)
	}

	return a, nil
}

// AllFeats returns the set of features defined by the underlying database.
func (a *Analyzer) AllFeats() map[string]struct{} { return a.db.AllFeats() }

// TokFeats returns the set of tokenization features defined by the
// underlying database.
func (a *Analyzer) TokFeats() map[string]struct{} { return a.db.TokFeats() }

// Analyze returns all analyses of word.
func (a *Analyzer) Analyze(word string) []Analysis {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}

	if a.cache != nil {
		if analyses, ok := a.cache.Get(word); ok {
			return analyses
		}
	}

	analyses := a.analyze(word)

	if a.cache != nil {
		a.cache.Put(word, analyses)
	}
	return analyses
}

func (a *Analyzer) analyze(word string) []Analysis {
	wordDediac := dediac.AR(word)
	wordNormal := a.normMap.Map(wordDediac)

	switch {
	case a.strictDigit && isStrictDigitRe.MatchString(word),
		!a.strictDigit && isDigitRe.MatchString(word):
		return []Analysis{a.wordClassDefault(word, "digit", "NOUN_NUM", "DIGIT", "NOM", "NUM")}

	case charsets.IsPunctSymbolString(word):
		return []Analysis{a.wordClassDefault(word, "punc", "PUNC", "PUNC", "PNX", "PUNCT")}

	case charsets.HasPunctSymbol(word):
		// Mixed punctuation gets no segment analyses, only backoff.

	case !charsets.AR.ContainsAll(word):
		result := a.wordClassDefault(word, "latin", "FOREIGN", "FOREIGN", "FOREIGN", "X")
		result["pos"] = "foreign"
		return []Analysis{result}

	default:
		return a.backoff(word, wordDediac, wordNormal,
			a.segmentAnalyses(wordDediac, wordNormal))
	}

	return a.backoff(word, wordDediac, wordNormal, nil)
}

func (a *Analyzer) segmentAnalyses(wordDediac, wordNormal string) []Analysis {
	var analyses []Analysis

	for _, seg := range segments(wordNormal, a.db.MaxPrefixSize, a.db.MaxSuffixSize) {
		prefixAnalyses, ok := a.db.PrefixHash[seg.prefix]
		if !ok {
			continue
		}
		suffixAnalyses, ok := a.db.SuffixHash[seg.suffix]
		if !ok {
			continue
		}
		stemAnalyses, ok := a.db.StemHash[seg.stem]
		if !ok {
			continue
		}

		analyses = append(analyses, a.combine(wordDediac, prefixAnalyses,
			stemAnalyses, suffixAnalyses)...)
	}

	return analyses
}

func (a *Analyzer) backoff(word, wordDediac, wordNormal string, analyses []Analysis) []Analysis {
	if (a.backoffCondition == "NOAN" && len(analyses) == 0) ||
		a.backoffCondition == "ADD" {
		backoffCats := a.db.StemBackoffs[a.backoffAction]
		var stemAnalyses []AffixEntry
		for _, entry := range a.db.StemHash["NOAN"] {
			if contains(backoffCats, entry.Category) {
				stemAnalyses = append(stemAnalyses, entry)
			}
		}

		for _, seg := range segments(wordNormal, a.db.MaxPrefixSize, a.db.MaxSuffixSize) {
			prefixAnalyses, ok := a.db.PrefixHash[seg.prefix]
			if !ok {
				continue
			}
			suffixAnalyses, ok := a.db.SuffixHash[seg.suffix]
			if !ok {
				continue
			}

			analyses = append(analyses, a.combineBackoff(seg.stem, prefixAnalyses,
				stemAnalyses, suffixAnalyses)...)
		}
	}

	return analyses
}

// wordClassDefault builds the single analysis used for digit, punctuation
// and foreign words.
func (a *Analyzer) wordClassDefault(word, class, bwTag, lexTag, catib6, ud string) Analysis {
	result := a.db.Defaults[class].Clone()
	result["diac"] = word
	result["stem"] = word
	result["stemgloss"] = word
	result["stemcat"] = ""
	result["lex"] = word
	result["bw"] = word + "/" + bwTag
	if class == "latin" {
		result["source"] = "foreign"
	} else {
		result["source"] = class
	}

	for _, feat := range copyFeats {
		if a.db.hasFeat(feat) {
			result[feat] = word
		}
	}
	for _, feat := range undefinedLexFeats {
		if a.db.hasFeat(feat) {
			result[feat] = lexTag
		}
	}
	if a.db.hasFeat("catib6") {
		result["catib6"] = catib6
	}
	if a.db.hasFeat("ud") {
		result["ud"] = ud
	}

	result["pos_logprob"] = "-99.0"
	result["lex_logprob"] = "-99.0"
	result["pos_lex_logprob"] = "-99.0"

	if a.db.hasFeat("form_gen") && result["gen"] == "-" {
		result["gen"] = result["form_gen"]
	}
	if a.db.hasFeat("form_num") && result["num"] == "-" {
		result["num"] = result["form_num"]
	}

	return result
}

func (a *Analyzer) combine(wordDediac string, prefixAnalyses, stemAnalyses, suffixAnalyses []AffixEntry) []Analysis {
	var combined []Analysis
	target := strings.ReplaceAll(wordDediac, "ـ", "")

	for _, prefix := range prefixAnalyses {
		compatStems := a.db.PrefixStemCompat[prefix.Category]
		compatSuffixes := a.db.PrefixSuffixCompat[prefix.Category]

		for _, stem := range stemAnalyses {
			if _, ok := compatStems[stem.Category]; !ok {
				continue
			}
			stemSuffixes := a.db.StemSuffixCompat[stem.Category]

			for _, suffix := range suffixAnalyses {
				if _, ok := stemSuffixes[suffix.Category]; !ok {
					continue
				}
				if _, ok := compatSuffixes[suffix.Category]; !ok {
					continue
				}

				merged := mergeFeatures(a.db, prefix.Feats, stem.Feats,
					suffix.Feats, "AF")
				merged["stem"] = stem.Feats["diac"]
				merged["stemcat"] = stem.Category

				if dediac.AR(merged["diac"]) != target {
					merged["source"] = "spvar"
				}

				combined = append(combined, merged)
			}
		}
	}

	return combined
}

func (a *Analyzer) combineBackoff(stemSurface string, prefixAnalyses, stemAnalyses, suffixAnalyses []AffixEntry) []Analysis {
	var combined []Analysis

	for _, prefix := range prefixAnalyses {
		compatStems := a.db.PrefixStemCompat[prefix.Category]
		compatSuffixes := a.db.PrefixSuffixCompat[prefix.Category]

		for _, stem := range stemAnalyses {
			if _, ok := compatStems[stem.Category]; !ok {
				continue
			}
			stemSuffixes := a.db.StemSuffixCompat[stem.Category]

			for _, suffix := range suffixAnalyses {
				if _, ok := stemSuffixes[suffix.Category]; !ok {
					continue
				}
				if _, ok := compatSuffixes[suffix.Category]; !ok {
					continue
				}

				if a.backoffAction == "PROP" &&
					!strings.Contains(stem.Feats["bw"], "NOUN_PROP") {
					continue
				}

				stemFeats := stem.Feats.Clone()
				stemFeats["bw"] = noanRe.ReplaceAllString(stemFeats["bw"], stemSurface)
				stemFeats["diac"] = noanRe.ReplaceAllString(stemFeats["diac"], stemSurface)
				stemFeats["lex"] = noanRe.ReplaceAllString(stemFeats["lex"], stemSurface)
				stemFeats["caphi"] = simpleArToCaphi(stemSurface)

				merged := mergeFeatures(a.db, prefix.Feats, stemFeats,
					suffix.Feats, "AF")
				merged["stem"] = stemFeats["diac"]
				merged["stemcat"] = stem.Category
				merged["source"] = "backoff"
				merged["pattern"] = "backoff"
				merged["gloss"] = stemFeats["gloss"]

				combined = append(combined, merged)
			}
		}
	}

	return combined
}

type segment struct {
	prefix string
	stem   string
	suffix string
}

// segments enumerates every prefix/stem/suffix split of word bounded by the
// database affix sizes. The stem is never empty.
func segments(word string, maxPrefix, maxSuffix int) []segment {
	runes := []rune(word)
	w := len(runes)
	var segs []segment

	for p := 0; p <= min(maxPrefix, w-1); p++ {
		for s := max(1, w-p-maxSuffix); s <= w-p; s++ {
			segs = append(segs, segment{
				prefix: string(runes[:p]),
				stem:   string(runes[p : p+s]),
				suffix: string(runes[p+s:]),
			})
		}
	}

	return segs
}

// AnalyzeWords analyzes words concurrently over a worker pool, preserving
// input order.
func (a *Analyzer) AnalyzeWords(words []string) []AnalyzedWord {
	results := make([]AnalyzedWord, len(words))
	if len(words) == 0 {
		return results
	}

	pool := gopool.NewGoPool(min(a.workers, len(words)),
		gopool.WithTaskQueueSize(len(words)),
		gopool.WithLock(new(spinlock.SpinLock)),
		gopool.WithErrorCallback(func(err error) {
			log.Error().Err(err).Msg("analyze task failed")
		}),
	)
	defer pool.Release()

	for i, word := range words {
		i, word := i, word
		pool.AddTask(func() (interface{}, error) {
			results[i] = AnalyzedWord{Word: word, Analyses: a.Analyze(word)}
			return nil, nil
		})
	}
	pool.Wait()

	return results
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
