package numfmt

import (
	"fmt"
	"sync"

	"github.com/TsubasaBE/go-cellfmt/serialdate"
	"github.com/TsubasaBE/go-cellfmt/styles"
)

// Cache memoizes Parse by format code.  Both results and errors are kept
// and entries are never evicted; a workbook has few distinct codes.  A
// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	pf  *ParsedFormat
	err error
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

var defaultCache = NewCache()

// DefaultCache returns the process-wide cache used by FormatValue.
func DefaultCache() *Cache { return defaultCache }

// Get returns the parsed form of code, parsing it on first use.
func (c *Cache) Get(code string) (*ParsedFormat, error) {
	c.mu.RLock()
	e, ok := c.entries[code]
	c.mu.RUnlock()
	if ok {
		return e.pf, e.err
	}

	pf, err := Parse(code)
	c.mu.Lock()
	// Another goroutine may have won the race; keep its entry so every
	// caller sees the same *ParsedFormat.
	if prev, ok := c.entries[code]; ok {
		c.mu.Unlock()
		return prev.pf, prev.err
	}
	c.entries[code] = cacheEntry{pf: pf, err: err}
	c.mu.Unlock()
	return pf, err
}

// Builtin returns the parsed form of builtin numFmtId id.
func (c *Cache) Builtin(id int) (*ParsedFormat, error) {
	code, ok := styles.BuiltIn(id)
	if !ok {
		return nil, fmt.Errorf("numfmt: id %d: %w", id, ErrUnknownBuiltin)
	}
	return c.Get(code)
}

// Len returns the number of cached codes, failed ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Format is FormatValue with c as the cache.
func (c *Cache) Format(v any, numFmtID int, fmtStr string, date1904 bool) string {
	val, ok := valueOf(v)
	if !ok {
		return fallbackString(v)
	}
	pf, err := c.Get(styles.Resolve(numFmtID, fmtStr))
	if err != nil {
		pf = generalFormat
	}
	return pf.Render(val, RenderContext{Epoch: serialdate.EpochFor(date1904)})
}
