package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camel-lab/camelgo/disambig"
	"github.com/camel-lab/camelgo/morphology"
)

// fixedDisambiguator returns canned analyses per word.
type fixedDisambiguator struct {
	analyses map[string]morphology.Analysis
}

func (f *fixedDisambiguator) DisambiguateWord(sentence []string, index, top int) disambig.DisambiguatedWord {
	word := sentence[index]
	analysis, ok := f.analyses[word]
	if !ok {
		return disambig.DisambiguatedWord{Word: word}
	}
	return disambig.DisambiguatedWord{
		Word:     word,
		Analyses: []disambig.ScoredAnalysis{{Score: 1.0, Analysis: analysis}},
	}
}

func (f *fixedDisambiguator) Disambiguate(sentence []string, top int) []disambig.DisambiguatedWord {
	result := make([]disambig.DisambiguatedWord, len(sentence))
	for i := range sentence {
		result[i] = f.DisambiguateWord(sentence, i, top)
	}
	return result
}

func newFixedDisambiguator() *fixedDisambiguator {
	return &fixedDisambiguator{analyses: map[string]morphology.Analysis{
		"والكتاب": {"atbtok": "و+_الكتاب", "d3tok": "و+_ال+_كتاب"},
		"كتابه":   {"atbtok": "كتاب_+ه", "d3tok": "كتاب_+ه"},
		"غامض":    {"d3tok": "غامض"},
	}}
}

func TestMorphologicalTokenizerInvalidScheme(t *testing.T) {
	_, err := NewMorphologicalTokenizer(newFixedDisambiguator(), "bogus", false)
	assert.ErrorIs(t, err, ErrInvalidScheme)
}

func TestMorphologicalTokenizerDefaultScheme(t *testing.T) {
	tok, err := NewMorphologicalTokenizer(newFixedDisambiguator(), "", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"و+_الكتاب"}, tok.Tokenize([]string{"والكتاب"}))
}

func TestMorphologicalTokenizerSplit(t *testing.T) {
	tok, err := NewMorphologicalTokenizer(newFixedDisambiguator(), SchemeD3Tok, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"و+", "ال+", "كتاب", "كتاب", "+ه"},
		tok.Tokenize([]string{"والكتاب", "كتابه"}))
}

func TestMorphologicalTokenizerPassthrough(t *testing.T) {
	tok, err := NewMorphologicalTokenizer(newFixedDisambiguator(), SchemeD3Tok, false)
	require.NoError(t, err)

	// Words without analyses pass through unchanged.
	assert.Equal(t, []string{"مجهول"}, tok.Tokenize([]string{"مجهول"}))
}

func TestMorphologicalTokenizerMissingSchemeFeat(t *testing.T) {
	tok, err := NewMorphologicalTokenizer(newFixedDisambiguator(), SchemeATBTok, false)
	require.NoError(t, err)

	// The analysis for this word has no atbtok value.
	assert.Equal(t, []string{"غامض"}, tok.Tokenize([]string{"غامض"}))
}

func TestMorphSchemes(t *testing.T) {
	assert.Equal(t, []string{SchemeATBTok, SchemeD3Tok}, MorphSchemes())
}
