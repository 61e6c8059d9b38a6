// Package tokenizer splits text into word and morpheme tokens.
package tokenizer

import "regexp"

var (
	tokenRe      = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+|[^\p{L}\p{M}\p{N}_\s]`)
	tokenDigitRe = regexp.MustCompile(`\p{N}+|[\p{L}\p{M}_]+|[^\p{L}\p{M}\p{N}_\s]`)
)

// SimpleWordTokenize splits sentence on whitespace and isolates every
// punctuation and symbol character as its own token. Runs of letters, marks
// and digits are kept whole; with splitDigits set, digit runs become
// separate tokens.
func SimpleWordTokenize(sentence string, splitDigits bool) []string {
	if splitDigits {
		return tokenDigitRe.FindAllString(sentence, -1)
	}
	return tokenRe.FindAllString(sentence, -1)
}
