package tokenizer

import (
	"errors"
	"strings"

	"github.com/camel-lab/camelgo/disambig"
)

// Morphological tokenization schemes.
const (
	SchemeATBTok = "atbtok"
	SchemeD3Tok  = "d3tok"
)

// ErrInvalidScheme is returned when a tokenization scheme is not supported.
var ErrInvalidScheme = errors.New("tokenizer: invalid tokenization scheme")

var morphSchemes = map[string]struct{}{
	SchemeATBTok: {},
	SchemeD3Tok:  {},
}

// MorphSchemes returns the supported morphological tokenization schemes.
func MorphSchemes() []string {
	return []string{SchemeATBTok, SchemeD3Tok}
}

// MorphologicalTokenizer splits Arabic words into morphemes according to a
// tokenization scheme, using a disambiguator to pick each word's best
// analysis.
type MorphologicalTokenizer struct {
	disambiguator disambig.Disambiguator
	scheme        string
	split         bool
}

// NewMorphologicalTokenizer builds a tokenizer for the given scheme. With
// split set, morphemes become separate tokens instead of being joined by an
// underscore.
func NewMorphologicalTokenizer(d disambig.Disambiguator, scheme string, split bool) (*MorphologicalTokenizer, error) {
	if scheme == "" {
		scheme = SchemeATBTok
	}
	if _, ok := morphSchemes[scheme]; !ok {
		return nil, ErrInvalidScheme
	}
	return &MorphologicalTokenizer{disambiguator: d, scheme: scheme, split: split}, nil
}

// Tokenize produces morphological tokens for words. Words without analyses
// or without a value for the scheme pass through unchanged.
func (t *MorphologicalTokenizer) Tokenize(words []string) []string {
	disambiguated := t.disambiguator.Disambiguate(words, 1)
	result := make([]string, 0, len(words))

	for _, dw := range disambiguated {
		if len(dw.Analyses) == 0 {
			result = append(result, dw.Word)
			continue
		}

		tok, ok := dw.Analyses[0].Analysis[t.scheme]
		if !ok {
			result = append(result, dw.Word)
		} else if t.split {
			result = append(result, strings.Split(tok, "_")...)
		} else {
			result = append(result, tok)
		}
	}

	return result
}
