package categorization

import (
	"regexp"
	"sync"
)

// regexCache compiles rule patterns once and reuses them across matches.
// Entries are idempotent and never invalidated within an engine's lifetime,
// so concurrent read/insert is safe under the RWMutex. The cache is owned by
// its engine rather than being process-global, which keeps engines
// independently testable.
type regexCache struct {
	mu       sync.RWMutex
	compiled map[string]*regexp.Regexp
}

func newRegexCache() *regexCache {
	return &regexCache{compiled: make(map[string]*regexp.Regexp)}
}

// get returns the compiled, case-insensitive form of pattern. A pattern that
// fails to compile falls back to an escaped-literal match instead of
// erroring, so one malformed user rule cannot break categorization.
func (c *regexCache) get(pattern string) *regexp.Regexp {
	c.mu.RLock()
	re, ok := c.compiled[pattern]
	c.mu.RUnlock()
	if ok {
		return re
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))
	}

	c.mu.Lock()
	c.compiled[pattern] = re
	c.mu.Unlock()
	return re
}
