package morphology

import (
	"container/list"
	"sync"

	"github.com/oarkflow/xsync"
)

// analysisCache is a fixed-capacity LRU of word analyses.
type analysisCache struct {
	capacity int
	mu       sync.Mutex
	entries  xsync.IMap[string, *list.Element]
	order    *list.List
}

type cacheEntry struct {
	word     string
	analyses []Analysis
}

func newAnalysisCache(capacity int) *analysisCache {
	return &analysisCache{
		capacity: capacity,
		entries:  xsync.NewMap[string, *list.Element](),
		order:    list.New(),
	}
}

func (c *analysisCache) Get(word string) ([]Analysis, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.entries.Get(word)
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(ele)
	return ele.Value.(*cacheEntry).analyses, true
}

func (c *analysisCache) Put(word string, analyses []Analysis) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.entries.Get(word); ok {
		c.order.MoveToFront(ele)
		ele.Value.(*cacheEntry).analyses = analyses
		return
	}

	ele := c.order.PushFront(&cacheEntry{word: word, analyses: analyses})
	c.entries.Set(word, ele)

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			c.entries.Del(oldest.Value.(*cacheEntry).word)
		}
	}
}
