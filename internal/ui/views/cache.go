package views

// blockCache memoizes rendered cards. Rendering a card wraps and styles its
// text, and a frame renders every card that intersects the window, so
// paging back and forth would otherwise redo the same work every frame.
//
// Entries never expire on their own: anything that changes how a card looks
// (items, theme, size) calls invalidate. The cache is bounded by
// maxCacheEntries so long decks cannot grow it without limit.
type blockCache struct {
	entries map[blockKey]string
	hits    int
	misses  int
}

// maxCacheEntries caps the number of cached cards. When exceeded, the
// whole cache is flushed.
const maxCacheEntries = 256

type blockKey struct {
	index  int
	width  int
	height int
	hidden bool
}

func newBlockCache() *blockCache {
	return &blockCache{entries: make(map[blockKey]string, 16)}
}

// invalidate clears all cached entries.
func (c *blockCache) invalidate() {
	c.entries = make(map[blockKey]string, 16)
}

// get returns the cached block for key, rendering and storing it on a miss.
func (c *blockCache) get(key blockKey, render func() string) string {
	if v, ok := c.entries[key]; ok {
		c.hits++
		return v
	}
	c.misses++
	v := render()
	if len(c.entries) >= maxCacheEntries {
		c.entries = make(map[blockKey]string, 16)
	}
	c.entries[key] = v
	return v
}

func (c *blockCache) len() int { return len(c.entries) }
