package repository

import (
	"context"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/opmodel/enhance/internal/project"
)

// DefaultCacheSize bounds the number of memoized lookups.
const DefaultCacheSize = 1024

type cachedLookup struct {
	path string
	err  error
}

// Cached memoizes a Resolver by coordinates. Failures are memoized as well,
// so a missing artifact costs one lookup per run. Context errors are not.
type Cached struct {
	next  Resolver
	cache *lru.Cache[string, cachedLookup]
}

// NewCached wraps next with an LRU of the given size.
func NewCached(next Resolver, size int) (*Cached, error) {
	cache, err := lru.New[string, cachedLookup](size)
	if err != nil {
		return nil, err
	}
	return &Cached{next: next, cache: cache}, nil
}

// Resolve implements Resolver.
func (c *Cached) Resolve(ctx context.Context, coords project.Coordinates) (string, error) {
	key := coords.String()
	if hit, ok := c.cache.Get(key); ok {
		return hit.path, hit.err
	}

	p, err := c.next.Resolve(ctx, coords)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "", err
	}
	c.cache.Add(key, cachedLookup{path: p, err: err})
	return p, err
}
