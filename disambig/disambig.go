// Package disambig ranks the morphological analyses of words in context.
package disambig

import "github.com/camel-lab/camelgo/morphology"

// ScoredAnalysis is an analysis with its disambiguation score.
type ScoredAnalysis struct {
	Score    float64
	Analysis morphology.Analysis
}

// DisambiguatedWord pairs a word with its scored analyses, best first.
type DisambiguatedWord struct {
	Word     string
	Analyses []ScoredAnalysis
}

// Disambiguator ranks analyses of the words of a sentence. A top value below
// one returns all scored analyses.
type Disambiguator interface {
	Disambiguate(sentence []string, top int) []DisambiguatedWord
	DisambiguateWord(sentence []string, index, top int) DisambiguatedWord
}
