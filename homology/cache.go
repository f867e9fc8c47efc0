// SPDX-License-Identifier: MIT

package homology

import (
	"crypto/sha256"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alessimichele/PersHomEmbProj/diagram"
)

// cacheKey identifies one computation: identical clouds with the same
// maxdim and configured threshold always produce identical diagrams.
type cacheKey struct {
	fingerprint [sha256.Size]byte
	maxdim      int
	threshold   float64
}

// diagramCache is a thread-safe LRU of diagram sets. Values are cloned on the
// way in and out so callers never share storage. A nil *diagramCache is a
// valid, always-missing cache.
type diagramCache struct {
	lru    *lru.Cache[cacheKey, diagram.Set]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func newDiagramCache(size int) *diagramCache {
	if size == 0 {
		return nil
	}
	c, err := lru.New[cacheKey, diagram.Set](size)
	if err != nil {
		// lru.New only fails for size <= 0, which WithCacheSize rejects.
		panic("homology: " + err.Error())
	}

	return &diagramCache{lru: c}
}

func (c *diagramCache) get(k cacheKey) (diagram.Set, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.lru.Get(k)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)

	return v.Clone(), true
}

func (c *diagramCache) put(k cacheKey, v diagram.Set) {
	if c == nil {
		return
	}
	c.lru.Add(k, v.Clone())
}

// CacheStats reports diagram cache hits and misses since construction.
// Both are zero when caching is disabled.
func (r *Rips) CacheStats() (hits, misses uint64) {
	if r.cache == nil {
		return 0, 0
	}

	return r.cache.hits.Load(), r.cache.misses.Load()
}
