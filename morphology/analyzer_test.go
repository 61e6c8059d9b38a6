package morphology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T, cfg AnalyzerConfig) *Analyzer {
	t.Helper()
	analyzer, err := NewAnalyzer(loadTestDB(t, "a"), cfg)
	require.NoError(t, err)
	return analyzer
}

func TestNewAnalyzerValidation(t *testing.T) {
	_, err := NewAnalyzer(nil, AnalyzerConfig{})
	assert.Error(t, err)

	_, err = NewAnalyzer(loadTestDB(t, "g"), AnalyzerConfig{})
	assert.Error(t, err)

	_, err = NewAnalyzer(loadTestDB(t, "a"), AnalyzerConfig{Backoff: "BOGUS"})
	assert.Error(t, err)
}

func TestAnalyzeBareStem(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{})

	analyses := analyzer.Analyze("كتاب")
	require.Len(t, analyses, 1)
	assert.Equal(t, "كِتاب", analyses[0]["diac"])
	assert.Equal(t, "كِتاب/NOUN", analyses[0]["bw"])
	assert.Equal(t, "noun", analyses[0]["pos"])
	assert.Equal(t, "lex", analyses[0]["source"])
	assert.Equal(t, "N0", analyses[0]["stemcat"])
}

func TestAnalyzeWithPrefix(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{})

	analyses := analyzer.Analyze("الكتاب")
	require.Len(t, analyses, 1)
	assert.Equal(t, "الْكِتاب", analyses[0]["diac"])
	assert.Equal(t, "الْ/DET+كِتاب/NOUN", analyses[0]["bw"])
}

func TestAnalyzeWithSuffix(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{})

	analyses := analyzer.Analyze("كتابه")
	require.Len(t, analyses, 1)
	assert.Equal(t, "كِتابهُ", analyses[0]["diac"])
	assert.Equal(t, "كِتاب/NOUN+هُ/POSS_PRON_3MS", analyses[0]["bw"])
	assert.Equal(t, "book+his", analyses[0]["gloss"])
}

func TestAnalyzeIncompatibleSegmentation(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{})

	// The determiner prefix is not compatible with the possessive suffix.
	analyses := analyzer.Analyze("الكتابه")
	assert.Empty(t, analyses)
}

func TestAnalyzeDiacritizedInput(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{})

	// Diacritics are stripped before segmentation.
	analyses := analyzer.Analyze("كِتاب")
	require.Len(t, analyses, 1)
	assert.Equal(t, "كِتاب", analyses[0]["diac"])
}

func TestAnalyzeDigit(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{})

	analyses := analyzer.Analyze("123")
	require.Len(t, analyses, 1)
	assert.Equal(t, "123", analyses[0]["diac"])
	assert.Equal(t, "123/NOUN_NUM", analyses[0]["bw"])
	assert.Equal(t, "digit", analyses[0]["pos"])
	assert.Equal(t, "digit", analyses[0]["source"])
	assert.Equal(t, "-99.0", analyses[0]["pos_lex_logprob"])
}

func TestAnalyzeStrictDigit(t *testing.T) {
	strict := newTestAnalyzer(t, AnalyzerConfig{StrictDigit: true})
	lax := newTestAnalyzer(t, AnalyzerConfig{})

	// A mixed token only counts as a digit in lax mode.
	analyses := lax.Analyze("3a")
	require.Len(t, analyses, 1)
	assert.Equal(t, "digit", analyses[0]["pos"])

	analyses = strict.Analyze("3a")
	require.Len(t, analyses, 1)
	assert.NotEqual(t, "digit", analyses[0]["pos"])
}

func TestAnalyzePunctuation(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{})

	analyses := analyzer.Analyze("؟")
	require.Len(t, analyses, 1)
	assert.Equal(t, "punc", analyses[0]["pos"])
	assert.Equal(t, "؟/PUNC", analyses[0]["bw"])
}

func TestAnalyzeForeign(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{})

	analyses := analyzer.Analyze("hello")
	require.Len(t, analyses, 1)
	assert.Equal(t, "foreign", analyses[0]["pos"])
	assert.Equal(t, "foreign", analyses[0]["source"])
	assert.Equal(t, "hello/FOREIGN", analyses[0]["bw"])
}

func TestAnalyzeNoAnalyses(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{})
	assert.Empty(t, analyzer.Analyze("مجهول"))
	assert.Empty(t, analyzer.Analyze(""))
	assert.Empty(t, analyzer.Analyze("   "))
}

func TestAnalyzeBackoff(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{Backoff: BackoffNoanAll})

	analyses := analyzer.Analyze("مجهول")
	require.NotEmpty(t, analyses)
	assert.Equal(t, "مجهول", analyses[0]["diac"])
	assert.Equal(t, "مجهول/NOUN_PROP", analyses[0]["bw"])
	assert.Equal(t, "backoff", analyses[0]["source"])
	assert.Equal(t, "backoff", analyses[0]["pattern"])
	assert.Equal(t, "مجهول", stripLex(analyses[0]["lex"]))
}

func TestAnalyzeBackoffAddKeepsLexicalAnalyses(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{Backoff: BackoffAddAll})

	analyses := analyzer.Analyze("كتاب")
	require.NotEmpty(t, analyses)

	sources := map[string]bool{}
	for _, analysis := range analyses {
		sources[analysis["source"]] = true
	}
	assert.True(t, sources["lex"])
	assert.True(t, sources["backoff"])
}

func TestAnalyzeCache(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{CacheSize: 2})

	first := analyzer.Analyze("كتاب")
	second := analyzer.Analyze("كتاب")
	assert.Equal(t, first, second)
}

func TestAnalyzeWords(t *testing.T) {
	analyzer := newTestAnalyzer(t, AnalyzerConfig{Workers: 2})

	words := []string{"كتاب", "123", "hello"}
	results := analyzer.AnalyzeWords(words)
	require.Len(t, results, 3)
	assert.Equal(t, "كتاب", results[0].Word)
	assert.Equal(t, "noun", results[0].Analyses[0]["pos"])
	assert.Equal(t, "digit", results[1].Analyses[0]["pos"])
	assert.Equal(t, "foreign", results[2].Analyses[0]["pos"])
}

func TestSegments(t *testing.T) {
	segs := segments("ab", 1, 1)
	assert.Equal(t, []segment{
		{prefix: "", stem: "a", suffix: "b"},
		{prefix: "", stem: "ab", suffix: ""},
		{prefix: "a", stem: "b", suffix: ""},
	}, segs)
}
