package morphology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripLex(t *testing.T) {
	assert.Equal(t, "كِتاب", stripLex("كِتاب_1"))
	assert.Equal(t, "قال", stripLex("قال-u_1"))
	assert.Equal(t, "كِتاب", stripLex("كِتاب"))
}

func TestRewriteDiacSunLetter(t *testing.T) {
	// The definite article assimilates into a following sun letter.
	assert.Equal(t, "الشّمس", rewriteDiac("ال#+شمس"))
}

func TestRewriteDiacMoonLetter(t *testing.T) {
	assert.Equal(t, "القمر", rewriteDiac("ال#+قمر"))
}

func TestRewriteDiacRemovesSeparators(t *testing.T) {
	assert.Equal(t, "كِتابهُ", rewriteDiac("كِتاب+هُ"))
}

func TestRewriteDiacHamzatWasl(t *testing.T) {
	assert.Equal(t, "استمع", rewriteDiac("ٱستمع"))
}

func TestRewriteDiacCollapsesShadda(t *testing.T) {
	assert.Equal(t, "ّ", rewriteDiac("ّّ"))
}

func TestNormalizeTanwyn(t *testing.T) {
	// FA mode places the fathatan before the alef.
	assert.Equal(t, "كتابًا", normalizeTanwyn("كتاباً", "FA"))
	// AF mode places it after.
	assert.Equal(t, "كتاباً", normalizeTanwyn("كتابًا", "AF"))
}

func TestSimpleArToCaphi(t *testing.T) {
	assert.Equal(t, "k_t_aa_b", simpleArToCaphi("كتاب"))
	// A leading bare alef is pronounced as a hamza.
	assert.Equal(t, "2_k_t_b", simpleArToCaphi("اكتب"))
}

func TestRewriteCaphi(t *testing.T) {
	// Separators collapse to single underscores.
	assert.Equal(t, "k_i_t_aa_b", rewriteCaphi("k_i_t_aa_b-+"))
	// Shadda doubles the consonant.
	assert.Equal(t, "b_b", rewriteCaphi("b-+~"))
}

func TestMergeFeaturesOverrides(t *testing.T) {
	db := loadTestDB(t, "a")

	stem := Analysis{"pos": "noun", "gen": "m", "diac": "كِتاب",
		"gloss": "book", "bw": "كِتاب/NOUN", "lex": "كِتاب"}
	prefix := Analysis{"gen": "f"}
	suffix := Analysis{}

	merged := mergeFeatures(db, prefix, stem, suffix, "AF")
	// Prefix values override stem values for shared features.
	assert.Equal(t, "f", merged["gen"])
	assert.Equal(t, "كِتاب", merged["stem"])
	assert.Equal(t, "book", merged["stemgloss"])
}

func TestMergeFeaturesDashDoesNotOverride(t *testing.T) {
	db := loadTestDB(t, "a")

	stem := Analysis{"pos": "noun", "gen": "m", "diac": "كِتاب",
		"gloss": "book", "bw": "كِتاب/NOUN", "lex": "كِتاب"}
	suffix := Analysis{"gen": "-"}

	merged := mergeFeatures(db, Analysis{}, stem, suffix, "AF")
	assert.Equal(t, "m", merged["gen"])
}

func TestAnalysisClone(t *testing.T) {
	a := Analysis{"pos": "noun"}
	b := a.Clone()
	b["pos"] = "verb"
	assert.Equal(t, "noun", a["pos"])
}
