package morphology

import (
	"sort"
	"strings"

	"github.com/camel-lab/camelgo/dediac"
)

var reinflectorCliticFeats = map[string]struct{}{
	"enc0": {}, "prc0": {}, "prc1": {}, "prc2": {}, "prc3": {},
}

// Features of an analysis that never constrain generation.
var reinflectorIgnoredFeats = map[string]struct{}{
	"diac": {}, "lex": {}, "bw": {}, "gloss": {}, "source": {}, "stem": {},
	"stemcat": {}, "lmm": {}, "dediac": {}, "caphi": {}, "catib6": {},
	"ud": {}, "d3seg": {}, "atbseg": {}, "d2seg": {}, "d1seg": {},
	"d1tok": {}, "d2tok": {}, "atbtok": {}, "d3tok": {}, "bwtok": {},
	"root": {}, "pattern": {}, "freq": {}, "pos_logprob": {},
	"lex_logprob": {}, "pos_lex_logprob": {}, "stemgloss": {},
}

// Features only carried over when explicitly specified.
var reinflectorSpecifiedFeats = map[string]struct{}{
	"form_gen": {}, "form_num": {},
}

// Features dropped from the carried-over analysis when clitics are
// requested.
var reinflectorCliticIgnoredFeats = map[string]struct{}{
	"stt": {}, "cas": {}, "mod": {},
}

// Features accepting the wildcard value ANY.
var reinflectorAnyFeats = map[string]struct{}{
	"per": {}, "gen": {}, "num": {}, "cas": {}, "stt": {}, "vox": {},
	"mod": {}, "asp": {},
}

// Reinflector maps a surface word to new surface forms matching a feature
// specification, by analyzing the word and regenerating from its lemmas.
type Reinflector struct {
	db        *DB
	analyzer  *Analyzer
	generator *Generator
}

// NewReinflector builds a Reinflector over db, which must be opened for
// reinflection.
func NewReinflector(db *DB) (*Reinflector, error) {
	if db == nil {
		return nil, &ReinflectorError{Msg: "reinflector db is nil"}
	}
	if !db.Flags.Reinflection {
		return nil, &ReinflectorError{Msg: "db does not support reinflection"}
	}

	analyzer, err := NewAnalyzer(db, AnalyzerConfig{})
	if err != nil {
		return nil, &ReinflectorError{Msg: err.Error()}
	}
	generator, err := NewGenerator(db)
	if err != nil {
		return nil, &ReinflectorError{Msg: err.Error()}
	}

	return &Reinflector{db: db, analyzer: analyzer, generator: generator}, nil
}

// AllFeats returns the set of features defined by the underlying database.
func (r *Reinflector) AllFeats() map[string]struct{} { return r.db.AllFeats() }

// TokFeats returns the set of tokenization features defined by the
// underlying database.
func (r *Reinflector) TokFeats() map[string]struct{} { return r.db.TokFeats() }

// Reinflect generates surface forms for word matching feats. The surface
// form of each result is its "diac" feature.
func (r *Reinflector) Reinflect(word string, feats Analysis) ([]Analysis, error) {
	analyses := r.analyzer.Analyze(word)
	if len(analyses) == 0 {
		return nil, nil
	}

	for feat, val := range feats {
		vals, ok := r.db.Defines[feat]
		if !ok {
			return nil, &InvalidReinflectorFeatureError{Feat: feat}
		}
		if vals == nil {
			continue
		}
		if _, anyOK := reinflectorAnyFeats[feat]; anyOK && val == "ANY" {
			continue
		}
		if !contains(vals, val) {
			return nil, &InvalidReinflectorFeatureValueError{Feat: feat, Value: val}
		}
	}

	hasClitics := false
	for feat := range reinflectorCliticFeats {
		if _, ok := feats[feat]; ok {
			hasClitics = true
			break
		}
	}

	wordDediac := dediac.AR(word)
	var results []Analysis

	for _, analysis := range analyses {
		if dediac.AR(analysis["diac"]) != wordDediac {
			continue
		}
		if want, ok := feats["pos"]; ok && want != analysis["pos"] {
			continue
		}

		lemma := stripLex(analysis["lex"])
		if want, ok := feats["lex"]; ok && want != lemma {
			continue
		}

		generateFeats := Analysis{}
		valid := true

		for feat, val := range analysis {
			if _, ok := reinflectorIgnoredFeats[feat]; ok {
				continue
			}
			if _, ok := reinflectorSpecifiedFeats[feat]; ok {
				if _, given := feats[feat]; !given {
					continue
				}
			}
			if hasClitics {
				if _, ok := reinflectorCliticIgnoredFeats[feat]; ok {
					continue
				}
			}

			if want, given := feats[feat]; given {
				if want == "ANY" {
					continue
				}
				if val == "na" {
					valid = false
					break
				}
				generateFeats[feat] = want
			} else if val != "na" {
				generateFeats[feat] = val
			}
		}

		if !valid {
			continue
		}

		generated, err := r.generator.Generate(lemma, generateFeats)
		if err != nil {
			return nil, err
		}
		results = append(results, generated...)
	}

	return uniqueAnalyses(results), nil
}

// uniqueAnalyses drops duplicate analyses, keeping first occurrences in
// order.
func uniqueAnalyses(analyses []Analysis) []Analysis {
	seen := make(map[string]struct{}, len(analyses))
	var out []Analysis

	for _, analysis := range analyses {
		keys := make([]string, 0, len(analysis))
		for k := range analysis {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var b strings.Builder
		for _, k := range keys {
			b.WriteString(k)
			b.WriteByte('\x00')
			b.WriteString(analysis[k])
			b.WriteByte('\x00')
		}

		key := b.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, analysis)
	}

	return out
}
