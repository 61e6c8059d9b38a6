package charsets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	assert.True(t, ARLetters.Contains('ب'))
	assert.False(t, ARLetters.Contains('b'))
	assert.True(t, ARDiac.Contains('ّ'))
	assert.False(t, ARDiac.Contains('ب'))
	assert.True(t, AR.Contains('ب'))
	assert.True(t, AR.Contains('ّ'))
}

func TestContainsAll(t *testing.T) {
	assert.True(t, AR.ContainsAll("بَيت"))
	assert.False(t, AR.ContainsAll("بَيت!"))
	assert.False(t, AR.ContainsAll(""))
	assert.True(t, BW.ContainsAll("bayt"))
	assert.True(t, HSB.ContainsAll("šams"))
}

func TestSchemeSetsDisjointDiac(t *testing.T) {
	for r := range ARDiac {
		assert.False(t, ARLetters.Contains(r), "%c in both letter and diac sets", r)
	}
	for r := range BWDiac {
		assert.False(t, BWLetters.Contains(r), "%c in both letter and diac sets", r)
	}
}

func TestPunctSymbol(t *testing.T) {
	assert.True(t, IsPunctSymbol('!'))
	assert.True(t, IsPunctSymbol('؟'))
	assert.True(t, IsPunctSymbol('+'))
	assert.False(t, IsPunctSymbol('b'))
	assert.False(t, IsPunctSymbol('٣'))

	assert.True(t, IsPunctSymbolString("?!"))
	assert.False(t, IsPunctSymbolString("a!"))
	assert.False(t, IsPunctSymbolString(""))

	assert.True(t, HasPunctSymbol("ab!"))
	assert.False(t, HasPunctSymbol("ab"))
}
