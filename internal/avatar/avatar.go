// Package avatar generates deterministic placeholder images for expenses that
// end up with no real logo or photo. DiceBear renders a stable identicon from
// the seed, so equal inputs always yield the same URL.
package avatar

import (
	"container/list"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

const dicebearBaseURL = "https://api.dicebear.com/7.x/icons/png"

// defaultCacheSize bounds the URL memoization. Keys are (name, category)
// pairs, low-cardinality for a single household, so 512 entries is generous.
const defaultCacheSize = 512

// Generator builds placeholder avatar URLs, memoizing results in a bounded
// LRU cache. Safe for concurrent use.
type Generator struct {
	entries map[string]*list.Element
	lru     *list.List
	maxSize int
	mu      sync.Mutex
}

type cacheEntry struct {
	key string
	url string
}

// NewGenerator creates a Generator with the default cache bound.
func NewGenerator() *Generator {
	return newGenerator(defaultCacheSize)
}

func newGenerator(maxSize int) *Generator {
	return &Generator{
		entries: make(map[string]*list.Element),
		lru:     list.New(),
		maxSize: maxSize,
	}
}

// URL returns the placeholder avatar URL for an expense name and category.
// It always succeeds; the same inputs always produce the same URL.
func (g *Generator) URL(name, category string) string {
	key := seed(name, category)

	g.mu.Lock()
	defer g.mu.Unlock()

	if elem, ok := g.entries[key]; ok {
		g.lru.MoveToFront(elem)
		return elem.Value.(*cacheEntry).url
	}

	params := url.Values{}
	params.Set("seed", key)
	params.Set("size", "256")
	params.Set("backgroundColor", "6366f1")
	params.Set("backgroundType", "gradientLinear")
	avatarURL := dicebearBaseURL + "?" + params.Encode()

	g.entries[key] = g.lru.PushFront(&cacheEntry{key: key, url: avatarURL})
	if g.lru.Len() > g.maxSize {
		oldest := g.lru.Back()
		if oldest != nil {
			delete(g.entries, oldest.Value.(*cacheEntry).key)
			g.lru.Remove(oldest)
		}
	}

	return avatarURL
}

// size returns the number of memoized entries.
func (g *Generator) size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}

func seed(name, category string) string {
	key := strings.ToLower(strings.TrimSpace(name)) + "|" + category
	if key == "|" {
		key = fmt.Sprintf("expense-%s", strings.ReplaceAll(strings.ToLower(category), " ", "-"))
	}
	return key
}
