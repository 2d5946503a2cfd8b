package dirglob

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// Cache holds recently compiled patterns, so that callers globbing the same
// patterns repeatedly only compile them once. It is safe for concurrent use.
type Cache struct {
	opts []ParseOption
	lru  *lru.Cache[string, *Pattern]
}

// NewCache returns a cache holding up to size patterns, each compiled with
// opts.
func NewCache(size int, opts ...ParseOption) (*Cache, error) {
	c, err := lru.New[string, *Pattern](size)
	if err != nil {
		return nil, errors.Wrap(err, "new pattern cache")
	}
	return &Cache{opts: opts, lru: c}, nil
}

// Compile returns the compiled pattern, compiling it if it isn't cached.
// Invalid patterns are not cached.
func (c *Cache) Compile(pattern string) (*Pattern, error) {
	if p, ok := c.lru.Get(pattern); ok {
		return p, nil
	}
	p, err := Compile(pattern, c.opts...)
	if err != nil {
		return nil, err
	}
	c.lru.Add(pattern, p)
	return p, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int { return c.lru.Len() }
