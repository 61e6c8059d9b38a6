package morphology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	generator, err := NewGenerator(loadTestDB(t, "g"))
	require.NoError(t, err)
	return generator
}

func TestNewGeneratorValidation(t *testing.T) {
	_, err := NewGenerator(nil)
	assert.Error(t, err)

	_, err = NewGenerator(loadTestDB(t, "a"))
	assert.Error(t, err)
}

func diacs(analyses []Analysis) []string {
	out := make([]string, len(analyses))
	for i, analysis := range analyses {
		out[i] = analysis["diac"]
	}
	return out
}

func TestGenerateBareForm(t *testing.T) {
	generator := newTestGenerator(t)

	analyses, err := generator.Generate("كِتاب", Analysis{"pos": "noun"})
	require.NoError(t, err)
	require.NotEmpty(t, analyses)
	// Default clitic values exclude the determiner and the possessive.
	assert.Equal(t, []string{"كِتاب"}, diacs(analyses))
}

func TestGenerateWithEnclitic(t *testing.T) {
	generator := newTestGenerator(t)

	analyses, err := generator.Generate("كِتاب", Analysis{
		"pos":  "noun",
		"enc0": "3ms_poss",
	})
	require.NoError(t, err)
	require.NotEmpty(t, analyses)
	assert.Equal(t, []string{"كِتابهُ"}, diacs(analyses))
}

func TestGenerateWithProclitic(t *testing.T) {
	generator := newTestGenerator(t)

	analyses, err := generator.Generate("كِتاب", Analysis{
		"pos":  "noun",
		"prc0": "Al_det",
	})
	require.NoError(t, err)
	require.NotEmpty(t, analyses)
	assert.Equal(t, []string{"الْكِتاب"}, diacs(analyses))
}

func TestGenerateUnknownLemma(t *testing.T) {
	generator := newTestGenerator(t)

	analyses, err := generator.Generate("مجهول", Analysis{"pos": "noun"})
	require.NoError(t, err)
	assert.Empty(t, analyses)
}

func TestGenerateInvalidFeature(t *testing.T) {
	generator := newTestGenerator(t)

	_, err := generator.Generate("كِتاب", Analysis{"pos": "noun", "bogus": "x"})
	var featErr *InvalidGeneratorFeatureError
	require.ErrorAs(t, err, &featErr)
	assert.Equal(t, "bogus", featErr.Feat)
}

func TestGenerateInvalidFeatureValue(t *testing.T) {
	generator := newTestGenerator(t)

	_, err := generator.Generate("كِتاب", Analysis{"pos": "noun", "gen": "x"})
	var valErr *InvalidGeneratorFeatureValueError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "gen", valErr.Feat)
	assert.Equal(t, "x", valErr.Value)
}

func TestGenerateMissingPos(t *testing.T) {
	generator := newTestGenerator(t)

	_, err := generator.Generate("كِتاب", Analysis{"gen": "m"})
	var valErr *InvalidGeneratorFeatureValueError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "pos", valErr.Feat)
}

func TestGenerateFeatureOutsideDefaults(t *testing.T) {
	generator := newTestGenerator(t)

	// atbtok is defined but not part of the pos defaults, so no analyses
	// can match it.
	analyses, err := generator.Generate("كِتاب", Analysis{
		"pos":    "noun",
		"atbtok": "x",
	})
	require.NoError(t, err)
	assert.Empty(t, analyses)
}

func TestGenerateMismatchedFeatureValue(t *testing.T) {
	generator := newTestGenerator(t)

	analyses, err := generator.Generate("كِتاب", Analysis{
		"pos": "noun",
		"gen": "f",
	})
	require.NoError(t, err)
	assert.Empty(t, analyses)
}
