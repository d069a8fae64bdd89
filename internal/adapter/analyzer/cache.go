package analyzer

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"poorcene/internal/port"
)

// CachedStemmer memoizes a stemmer in a bounded LRU. Stemming is pure, so a
// cached stem is always identical to a fresh one.
type CachedStemmer struct {
	inner port.Stemmer
	cache *lru.Cache[string, string]
}

// NewCachedStemmer wraps inner with an LRU holding up to size entries.
func NewCachedStemmer(inner port.Stemmer, size int) (*CachedStemmer, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create stem cache: %w", err)
	}
	return &CachedStemmer{inner: inner, cache: cache}, nil
}

func (c *CachedStemmer) Stem(word string) string {
	if stem, ok := c.cache.Get(word); ok {
		return stem
	}
	stem := c.inner.Stem(word)
	c.cache.Add(word, stem)
	return stem
}

// Len returns the number of cached stems.
func (c *CachedStemmer) Len() int {
	return c.cache.Len()
}

// NewStemmer returns the Portuguese stemmer, memoized when cacheSize > 0.
func NewStemmer(cacheSize int) (port.Stemmer, error) {
	base := NewPortugueseStemmer()
	if cacheSize <= 0 {
		return base, nil
	}
	return NewCachedStemmer(base, cacheSize)
}
