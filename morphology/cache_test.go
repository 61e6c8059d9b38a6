package morphology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisCacheEvictsOldest(t *testing.T) {
	cache := newAnalysisCache(2)

	cache.Put("a", []Analysis{{"pos": "noun"}})
	cache.Put("b", []Analysis{{"pos": "verb"}})

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Put("c", []Analysis{{"pos": "punc"}})

	_, ok = cache.Get("b")
	assert.False(t, ok)
	_, ok = cache.Get("a")
	assert.True(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
}

func TestAnalysisCacheUpdate(t *testing.T) {
	cache := newAnalysisCache(2)

	cache.Put("a", []Analysis{{"pos": "noun"}})
	cache.Put("a", []Analysis{{"pos": "verb"}})

	analyses, ok := cache.Get("a")
	require.True(t, ok)
	require.Len(t, analyses, 1)
	assert.Equal(t, "verb", analyses[0]["pos"])
}
