package dialectid

import (
	"math"
	"strings"
)

const (
	bosToken = "<s>"
	eosToken = "</s>"
)

// ngramModel is an add-one smoothed n-gram language model over string
// tokens.
type ngramModel struct {
	Order    int
	Grams    map[string]int
	Contexts map[string]int
	Vocab    map[string]struct{}
}

func newNgramModel(order int) *ngramModel {
	if order < 1 {
		order = 1
	}
	return &ngramModel{
		Order:    order,
		Grams:    map[string]int{},
		Contexts: map[string]int{},
		Vocab:    map[string]struct{}{},
	}
}

func (m *ngramModel) pad(tokens []string) []string {
	padded := make([]string, 0, len(tokens)+m.Order)
	for i := 0; i < m.Order-1; i++ {
		padded = append(padded, bosToken)
	}
	padded = append(padded, tokens...)
	return append(padded, eosToken)
}

func key(tokens []string) string {
	return strings.Join(tokens, "\x1f")
}

// Add counts the n-grams of one token sequence.
func (m *ngramModel) Add(tokens []string) {
	for _, tok := range tokens {
		m.Vocab[tok] = struct{}{}
	}

	padded := m.pad(tokens)
	for i := m.Order - 1; i < len(padded); i++ {
		gram := padded[i-m.Order+1 : i+1]
		m.Grams[key(gram)]++
		m.Contexts[key(gram[:m.Order-1])]++
	}
}

// Score returns the add-one smoothed log10 probability of a token sequence,
// averaged per token to keep scores comparable across lengths.
func (m *ngramModel) Score(tokens []string) float64 {
	padded := m.pad(tokens)
	vocab := len(m.Vocab) + 2

	var logProb float64
	n := 0
	for i := m.Order - 1; i < len(padded); i++ {
		gram := padded[i-m.Order+1 : i+1]
		count := m.Grams[key(gram)]
		context := m.Contexts[key(gram[:m.Order-1])]
		logProb += math.Log10(float64(count+1) / float64(context+vocab))
		n++
	}

	if n == 0 {
		return 0
	}
	return logProb / float64(n)
}

// charTokens turns text into the character token stream used by the
// character language models, with spaces marked as X.
func charTokens(txt string) []string {
	txt = strings.ReplaceAll(txt, " ", "X")
	tokens := make([]string, 0, len(txt))
	for _, r := range txt {
		tokens = append(tokens, string(r))
	}
	return tokens
}
