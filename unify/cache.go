package unify

import (
	"container/list"

	"github.com/fol-prover/resolver/term"
)

// cacheEntry is the cached outcome of a single MGU computation.
type cacheEntry struct {
	sigma Subst
	ok    bool
}

// Cache is a bounded LRU cache over MGU results, keyed by the canonical
// string form of the two input terms (§4.4.2 "Memoization", §9 "Caching").
// unify and resolve are pure functions of their inputs, so memoizing is
// sound; the cache is per-job and must be released on job completion, which
// callers do simply by letting the Cache value be garbage collected.
type Cache struct {
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
}

type cacheNode struct {
	key   string
	entry cacheEntry
}

// NewCache constructs an MGU cache bounded to at most capacity entries.
// capacity <= 0 disables caching (every lookup misses, every unify call runs
// the full disagreement-set loop).
func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// MGU computes (or retrieves from cache) the most general unifier of t1, t2.
func (c *Cache) MGU(t1, t2 term.Term) (Subst, bool) {
	if c == nil || c.capacity <= 0 {
		return MGU(t1, t2)
	}
	key := t1.String() + "\x00" + t2.String()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		node := el.Value.(*cacheNode)
		return node.entry.sigma, node.entry.ok
	}

	sigma, ok := MGU(t1, t2)
	c.put(key, cacheEntry{sigma: sigma, ok: ok})
	return sigma, ok
}

func (c *Cache) put(key string, entry cacheEntry) {
	el := c.order.PushFront(&cacheNode{key: key, entry: entry})
	c.entries[key] = el
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheNode).key)
	}
}

// Len reports the number of cached entries, mainly for tests.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.order.Len()
}
