package exec

import (
	"regexp"
	"sync"
)

// regexCache memoizes STRING->REGEX compilations for the lifetime of a
// single query execution. One is created per Cursor and threaded
// explicitly through evaluation so a compiled pattern's lifetime is tied to
// the query that compiled it, without retaining any state between
// unrelated queries or holding it as package-global state.
type regexCache struct {
	mu   sync.Mutex
	byRE map[string]*regexp.Regexp
}

func newRegexCache() *regexCache {
	return &regexCache{byRE: make(map[string]*regexp.Regexp)}
}

func (c *regexCache) compile(src string) (*regexp.Regexp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if re, ok := c.byRE[src]; ok {
		return re, nil
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}
	c.byRE[src] = re
	return re, nil
}
